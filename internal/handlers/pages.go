package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruanfv/portfolio/internal/middleware"
	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/ruanfv/portfolio/internal/services"
)

// PageHandler serves the public site and the dashboard shell. Pages
// render server truth at load time; the dashboard console keeps itself
// consistent afterwards by re-fetching through the JSON API.
type PageHandler struct {
	projectService *services.ProjectService
	statusService  *services.ProjectStatusService
	typeService    *services.ProjectTypeService
}

func NewPageHandler(projectService *services.ProjectService, statusService *services.ProjectStatusService, typeService *services.ProjectTypeService) *PageHandler {
	return &PageHandler{
		projectService: projectService,
		statusService:  statusService,
		typeService:    typeService,
	}
}

// Home handles the home page with its featured project strip
func (h *PageHandler) Home(c *gin.Context) {
	session := middleware.GetSession(c)

	featured := true
	projects, err := h.projectService.ListProjects(repositories.ProjectFilter{Featured: &featured})
	if err != nil {
		// The hero still renders without the strip.
		projects = []*models.Project{}
	}

	data := gin.H{
		"Title":    "Home",
		"User":     session,
		"Featured": projects,
	}

	c.HTML(http.StatusOK, "index", data)
}

// About handles the about page
func (h *PageHandler) About(c *gin.Context) {
	data := gin.H{
		"Title": "About",
		"User":  middleware.GetSession(c),
	}

	c.HTML(http.StatusOK, "about", data)
}

// ContactForm handles the contact page
func (h *PageHandler) ContactForm(c *gin.Context) {
	data := gin.H{
		"Title": "Contact",
		"User":  middleware.GetSession(c),
		"Sent":  c.Query("sent") == "1",
		"Error": c.Query("error"),
	}

	c.HTML(http.StatusOK, "contact", data)
}

// Projects handles the public project listing page
func (h *PageHandler) Projects(c *gin.Context) {
	session := middleware.GetSession(c)

	projects, err := h.projectService.ListProjects(repositories.ProjectFilter{})
	if err != nil {
		projects = []*models.Project{}
	}

	types, err := h.typeService.ListTypes()
	if err != nil {
		types = []*models.ProjectType{}
	}

	data := gin.H{
		"Title":    "Projects",
		"User":     session,
		"Projects": projects,
		"Types":    types,
	}

	c.HTML(http.StatusOK, "projects", data)
}

// Dashboard handles the authenticated CRUD console shell
func (h *PageHandler) Dashboard(c *gin.Context) {
	session := middleware.GetSession(c)

	data := gin.H{
		"Title": "Dashboard",
		"User":  session,
	}

	c.HTML(http.StatusOK, "dashboard", data)
}
