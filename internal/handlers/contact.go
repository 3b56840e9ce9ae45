package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/pkg/logger"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit handles the contact form POST
func (h *ContactHandler) Submit(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	if _, err := h.contactService.SubmitMessage(name, email, message); err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.Redirect(http.StatusFound, "/contact?error=missing_fields")
			return
		}
		logger.WithError(err).Error("Error storing contact message")
		c.Redirect(http.StatusFound, "/contact?error=send_failed")
		return
	}

	c.Redirect(http.StatusFound, "/contact?sent=1")
}
