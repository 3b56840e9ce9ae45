package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ruanfv/portfolio/internal/middleware"
	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/pkg/logger"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

// LoginForm handles the login page
func (h *AuthHandler) LoginForm(c *gin.Context) {
	session := middleware.GetSession(c)
	if session != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	data := gin.H{
		"Title": "Login",
		"User":  session,
		"Error": c.Query("error"),
	}

	c.HTML(http.StatusOK, "login", data)
}

// Login verifies the submitted credentials and creates a session
func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	user, err := h.userService.Authenticate(email, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.Redirect(http.StatusFound, "/login?error=invalid_credentials")
			return
		}
		logger.WithError(err).Error("Login failed")
		c.Redirect(http.StatusFound, "/login?error=login_failed")
		return
	}

	if err := middleware.SetSession(c, user.ID.String(), user.Name, user.Email); err != nil {
		c.Redirect(http.StatusFound, "/login?error=session_creation_failed")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, "/")
}
