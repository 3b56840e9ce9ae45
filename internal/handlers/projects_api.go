package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/pkg/logger"
)

// filterAll is the sentinel filter value meaning "no filter".
const filterAll = "All"

type ProjectAPIHandler struct {
	projectService *services.ProjectService
	exportService  *services.ExportService

	// exposeErrorDetails switches the list endpoint between surfacing
	// data-access failures (development) and degrading to an empty
	// list (production).
	exposeErrorDetails bool
}

func NewProjectAPIHandler(projectService *services.ProjectService, exportService *services.ExportService, exposeErrorDetails bool) *ProjectAPIHandler {
	return &ProjectAPIHandler{
		projectService:     projectService,
		exportService:      exportService,
		exposeErrorDetails: exposeErrorDetails,
	}
}

// ListProjects handles GET /api/projects with optional conjunctive
// type/status/featured filters.
func (h *ProjectAPIHandler) ListProjects(c *gin.Context) {
	filter := repositories.ProjectFilter{}

	if t := c.Query("type"); t != "" && t != filterAll {
		filter.Type = t
	}
	if s := c.Query("status"); s != "" && s != filterAll {
		filter.Status = s
	}
	// Only the literal value "true" narrows to featured projects;
	// anything else leaves the filter off rather than matching false.
	if c.Query("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	projects, err := h.projectService.ListProjects(filter)
	if err != nil {
		logger.WithError(err).Error("Error fetching projects")
		if h.exposeErrorDetails {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to fetch projects",
				"details": err.Error(),
			})
			return
		}
		// Keep the public page alive on store failures.
		c.JSON(http.StatusOK, []*models.Project{})
		return
	}

	c.JSON(http.StatusOK, projects)
}

type projectRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription *string  `json:"longDescription"`
	ImageURL        *string  `json:"imageUrl"`
	Technologies    []string `json:"technologies"`
	Link            *string  `json:"link"`
	GitHub          *string  `json:"github"`
	Type            string   `json:"type"`
	Featured        bool     `json:"featured"`
	Year            string   `json:"year"`
	Status          string   `json:"status"`
	Stars           int      `json:"stars"`
	Forks           int      `json:"forks"`
}

func (r *projectRequest) toModel() *models.Project {
	return &models.Project{
		Title:           r.Title,
		Description:     r.Description,
		LongDescription: r.LongDescription,
		ImageURL:        r.ImageURL,
		Technologies:    r.Technologies,
		Link:            r.Link,
		GitHub:          r.GitHub,
		Type:            r.Type,
		Featured:        r.Featured,
		Year:            r.Year,
		Status:          r.Status,
		Stars:           r.Stars,
		Forks:           r.Forks,
	}
}

// CreateProject handles POST /api/projects
func (h *ProjectAPIHandler) CreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project := req.toModel()
	if err := h.projectService.CreateProject(project); err != nil {
		if validationErr, ok := err.(*models.ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		logger.WithError(err).Error("Error creating project")
		h.serverError(c, "Failed to create project", err)
		return
	}

	// The stored row was just written; echo it back with timestamps
	// filled in so the caller sees server truth.
	created, err := h.projectService.GetProject(project.ID)
	if err != nil {
		created = project
		created.CreatedAt = time.Now()
		created.UpdatedAt = created.CreatedAt
	}

	c.JSON(http.StatusOK, created)
}

// UpdateProject handles PUT /api/projects/:id. Every mutable field is
// replaced; partial update is not supported.
func (h *ProjectAPIHandler) UpdateProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	project := req.toModel()
	project.ID = id

	if err := h.projectService.UpdateProject(project); err != nil {
		if validationErr, ok := err.(*models.ValidationError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
			return
		}
		logger.WithError(err).Error("Error updating project")
		h.serverError(c, "Failed to update project", err)
		return
	}

	updated, err := h.projectService.GetProject(id)
	if err != nil {
		updated = project
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteProject handles DELETE /api/projects/:id. The delete is
// unconditional; nothing references a project by id.
func (h *ProjectAPIHandler) DeleteProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	if err := h.projectService.DeleteProject(id); err != nil {
		logger.WithError(err).Error("Error deleting project")
		h.serverError(c, "Failed to delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ExportProjects handles GET /api/projects/export, returning all
// projects as an xlsx workbook.
func (h *ProjectAPIHandler) ExportProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(repositories.ProjectFilter{})
	if err != nil {
		logger.WithError(err).Error("Error exporting projects")
		h.serverError(c, "Failed to export projects", err)
		return
	}

	workbook, err := h.exportService.BuildProjectsWorkbook(projects)
	if err != nil {
		logger.WithError(err).Error("Error building workbook")
		h.serverError(c, "Failed to export projects", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="projects.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Error writing workbook")
	}
}

func (h *ProjectAPIHandler) serverError(c *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	if h.exposeErrorDetails {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
