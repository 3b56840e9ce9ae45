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

type StatusAPIHandler struct {
	statusService      *services.ProjectStatusService
	exposeErrorDetails bool
}

func NewStatusAPIHandler(statusService *services.ProjectStatusService, exposeErrorDetails bool) *StatusAPIHandler {
	return &StatusAPIHandler{
		statusService:      statusService,
		exposeErrorDetails: exposeErrorDetails,
	}
}

// ListStatuses handles GET /api/status; public, ordered by label.
func (h *StatusAPIHandler) ListStatuses(c *gin.Context) {
	statuses, err := h.statusService.ListStatuses()
	if err != nil {
		logger.WithError(err).Error("Error fetching statuses")
		h.serverError(c, "Failed to fetch statuses", err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}

type keyLabelRequest struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// CreateStatus handles POST /api/status. The key is lower-cased and
// hyphenated, the label upper-cased.
func (h *StatusAPIHandler) CreateStatus(c *gin.Context) {
	var req keyLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	status, err := h.statusService.CreateStatus(req.Key, req.Label)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Key and label are required"})
			return
		}
		logger.WithError(err).Error("Error creating status")
		h.serverError(c, "Failed to create status", err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// UpdateStatus handles PUT /api/status/:id; key and/or label.
func (h *StatusAPIHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status id"})
		return
	}

	var req keyLabelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	status, err := h.statusService.UpdateStatus(id, req.Key, req.Label)
	if err != nil {
		if errors.Is(err, services.ErrStatusNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Status not found"})
			return
		}
		logger.WithError(err).Error("Error updating status")
		h.serverError(c, "Failed to update status", err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// DeleteStatus handles DELETE /api/status/:id. The delete is refused
// while any project still references the status key.
func (h *StatusAPIHandler) DeleteStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status id"})
		return
	}

	if err := h.statusService.DeleteStatus(id); err != nil {
		switch {
		case errors.Is(err, services.ErrStatusNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Status not found"})
		case errors.Is(err, services.ErrStatusInUse):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete status that is being used by projects"})
		default:
			logger.WithError(err).Error("Error deleting status")
			h.serverError(c, "Failed to delete status", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *StatusAPIHandler) serverError(c *gin.Context, message string, err error) {
	body := gin.H{"error": message}
	if h.exposeErrorDetails {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
