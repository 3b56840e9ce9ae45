package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type NotFoundHandler struct{}

func NewNotFoundHandler() *NotFoundHandler {
	return &NotFoundHandler{}
}

// NotFound handles 404 errors for non-existent routes
func (h *NotFoundHandler) NotFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	data := gin.H{
		"Title":         "404 - Page Not Found",
		"User":          nil,
		"RequestedPath": c.Request.URL.Path,
	}

	c.HTML(http.StatusNotFound, "404", data)
}
