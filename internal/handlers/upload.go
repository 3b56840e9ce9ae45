package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/pkg/logger"
)

type UploadHandler struct {
	uploadService      *services.UploadService
	exposeErrorDetails bool
}

func NewUploadHandler(uploadService *services.UploadService, exposeErrorDetails bool) *UploadHandler {
	return &UploadHandler{
		uploadService:      uploadService,
		exposeErrorDetails: exposeErrorDetails,
	}
}

// Upload handles POST /api/upload: a single multipart image file,
// validated for type and size, stored through the configured backend.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if err := h.uploadService.ValidateUpload(contentType, fileHeader.Size); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": uploadErrorMessage(err)})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.serverError(c, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.serverError(c, err)
		return
	}

	imageURL, err := h.uploadService.Store(c.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		logger.WithError(err).Error("Error uploading file")
		h.serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

func uploadErrorMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrInvalidFileType):
		return "Invalid file type. Only JPEG, PNG and WebP are allowed."
	case errors.Is(err, services.ErrFileTooLarge):
		return "File size exceeds 5MB limit."
	default:
		return err.Error()
	}
}

func (h *UploadHandler) serverError(c *gin.Context, err error) {
	body := gin.H{"error": "Failed to upload file"}
	if h.exposeErrorDetails {
		body["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
