package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ruanfv/portfolio/internal/middleware"
	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/internal/storage"
	"github.com/ruanfv/portfolio/pkg/config"
	"github.com/ruanfv/portfolio/pkg/database"
	"github.com/stretchr/testify/require"
)

// testEnv wires the API routes over a throwaway database, mirroring the
// server's route tree for the JSON endpoints.
type testEnv struct {
	db        *sql.DB
	router    *gin.Engine
	uploadDir string

	projectService *services.ProjectService
}

func newTestEnv(t *testing.T, exposeErrorDetails bool) *testEnv {
	t.Helper()

	config.Load()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.RunSQLScripts(db, filepath.Join("..", "..", "migrations")))

	projectRepo := repositories.NewProjectRepository(db)
	statusRepo := repositories.NewProjectStatusRepository(db)
	typeRepo := repositories.NewProjectTypeRepository(db)

	projectService := services.NewProjectService(projectRepo)
	statusService := services.NewProjectStatusService(statusRepo, projectRepo)
	typeService := services.NewProjectTypeService(typeRepo, projectRepo)

	uploadDir := t.TempDir()
	uploadService := services.NewUploadService(storage.NewLocalStorage(uploadDir, "/static/uploads"))

	projectHandler := NewProjectAPIHandler(projectService, services.NewExportService(), exposeErrorDetails)
	statusHandler := NewStatusAPIHandler(statusService, exposeErrorDetails)
	typeHandler := NewTypeAPIHandler(typeService, exposeErrorDetails)
	uploadHandler := NewUploadHandler(uploadService, exposeErrorDetails)

	router := gin.New()
	router.Use(middleware.SessionMiddleware())

	api := router.Group("/api")
	api.GET("/projects", projectHandler.ListProjects)
	api.GET("/status", statusHandler.ListStatuses)
	api.GET("/types", typeHandler.ListTypes)

	protected := api.Group("")
	protected.Use(middleware.APIAuthRequired())
	protected.POST("/projects", projectHandler.CreateProject)
	protected.PUT("/projects/:id", projectHandler.UpdateProject)
	protected.DELETE("/projects/:id", projectHandler.DeleteProject)
	protected.GET("/projects/export", projectHandler.ExportProjects)
	protected.POST("/status", statusHandler.CreateStatus)
	protected.PUT("/status/:id", statusHandler.UpdateStatus)
	protected.DELETE("/status/:id", statusHandler.DeleteStatus)
	protected.POST("/types", typeHandler.CreateType)
	protected.PUT("/types/:id", typeHandler.UpdateType)
	protected.DELETE("/types/:id", typeHandler.DeleteType)
	protected.POST("/upload", uploadHandler.Upload)

	return &testEnv{
		db:             db,
		router:         router,
		uploadDir:      uploadDir,
		projectService: projectService,
	}
}

func (e *testEnv) seedLookups(t *testing.T) {
	t.Helper()

	statusRepo := repositories.NewProjectStatusRepository(e.db)
	for _, s := range []models.ProjectStatus{
		{Key: "shipped", Label: "SHIPPED"},
		{Key: "in-progress", Label: "IN PROGRESS"},
	} {
		status := s
		require.NoError(t, statusRepo.Create(&status))
	}

	typeRepo := repositories.NewProjectTypeRepository(e.db)
	for _, ty := range []models.ProjectType{
		{Key: "Web", Label: "WEB"},
		{Key: "Saas", Label: "SAAS"},
	} {
		projectType := ty
		require.NoError(t, typeRepo.Create(&projectType))
	}
}

// authCookie produces a signed session cookie the way a login would.
func authCookie(t *testing.T) *http.Cookie {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	require.NoError(t, middleware.SetSession(c, "user-1", "Test User", "test@example.com"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

// do performs a request against the test router, optionally
// authenticated, with an optional JSON body.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authenticated {
		req.AddCookie(authCookie(t))
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
