package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/pkg/logger"
)

// TypeAPIHandler mirrors the status endpoints for project types. The
// one behavioral difference: type keys are stored verbatim, without the
// lower-case-hyphenate normalization status keys get.
type TypeAPIHandler struct {
	typeService        *services.ProjectTypeService
	exposeErrorDetails bool
}

func NewTypeAPIHandler(typeService *services.ProjectTypeService, exposeErrorDetails bool) *TypeAPIHandler {
	return &TypeAPIHandler{
		typeService:        typeService,
		exposeErrorDetails: exposeErrorDetails,
	}
}

// ListTypes handles GET /api/types; public, ordered by label.
func (h *TypeAPIHandler) ListTypes(c *gin.Context) {
	types, err := h.typeService.ListTypes()
	if err != nil {
		logger.WithError(err).Error("Error fetching types")
		h.serverError(c, "Failed to fetch types", err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// CreateType handles POST /api/types
func (h *TypeAPIHandler) CreateType(c *gin.Context) {
	var req keyLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	projectType, err := h.typeService.CreateType(req.Key, req.Label)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Key and label are required"})
			return
		}
		logger.WithError(err).Error("Error creating type")
		h.serverError(c, "Failed to create type", err)
		return
	}

	c.JSON(http.StatusOK, projectType)
}

// UpdateType handles PUT /api/types/:id; key and/or label.
func (h *TypeAPIHandler) UpdateType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type id"})
		return
	}

	var req keyLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	projectType, err := h.typeService.UpdateType(id, req.Key, req.Label)
	if err != nil {
		if errors.Is(err, services.ErrTypeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
			return
		}
		logger.WithError(err).Error("Error updating type")
		h.serverError(c, "Failed to update type", err)
		return
	}

	c.JSON(http.StatusOK, projectType)
}

// DeleteType handles DELETE /api/types/:id, refused while referenced.
func (h *TypeAPIHandler) DeleteType(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type id"})
		return
	}

	if err := h.typeService.DeleteType(id); err != nil {
		switch {
		case errors.Is(err, services.ErrTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Type not found"})
		case errors.Is(err, services.ErrTypeInUse):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete type that is being used by projects"})
		default:
			logger.WithError(err).Error("Error deleting type")
			h.serverError(c, "Failed to delete type", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *TypeAPIHandler) serverError(c *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	if h.exposeErrorDetails {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
