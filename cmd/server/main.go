package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/ruanfv/portfolio/internal/handlers"
	"github.com/ruanfv/portfolio/internal/middleware"
	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/internal/storage"
	"github.com/ruanfv/portfolio/internal/workers"
	"github.com/ruanfv/portfolio/pkg/config"
	"github.com/ruanfv/portfolio/pkg/database"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Set Gin mode
	gin.SetMode(config.AppConfig.Server.Mode)

	// Initialize database
	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Initialize dependencies
	projectRepo := repositories.NewProjectRepository(database.DB)
	statusRepo := repositories.NewProjectStatusRepository(database.DB)
	typeRepo := repositories.NewProjectTypeRepository(database.DB)
	userRepo := repositories.NewUserRepository(database.DB)
	messageRepo := repositories.NewContactMessageRepository(database.DB)

	projectService := services.NewProjectService(projectRepo)
	statusService := services.NewProjectStatusService(statusRepo, projectRepo)
	typeService := services.NewProjectTypeService(typeRepo, projectRepo)
	userService := services.NewUserService(userRepo)
	contactService := services.NewContactService(messageRepo)
	exportService := services.NewExportService()
	statsService := services.NewGitHubStatsService(config.AppConfig.GitHub.Token, projectRepo)

	uploadStorage, err := buildStorage()
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}
	uploadService := services.NewUploadService(uploadStorage)

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(statsService, config.AppConfig.GitHub.StatsInterval)

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.SessionMiddleware())

	// Setup static files
	router.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(router, projectService, statusService, typeService, userService, contactService, exportService, uploadService)
	loadTemplates(router)

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	// Setup server
	server := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func buildStorage() (storage.Storage, error) {
	uploadCfg := config.AppConfig.Upload
	if uploadCfg.Backend == "s3" {
		return storage.NewS3Storage(uploadCfg)
	}
	return storage.NewLocalStorage(uploadCfg.LocalDir, uploadCfg.BaseURL), nil
}

func setupRoutes(router *gin.Engine, projectService *services.ProjectService, statusService *services.ProjectStatusService, typeService *services.ProjectTypeService, userService *services.UserService, contactService *services.ContactService, exportService *services.ExportService, uploadService *services.UploadService) {
	exposeErrorDetails := config.AppConfig.ExposeErrorDetails

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(projectService, statusService, typeService)
	authHandler := handlers.NewAuthHandler(userService)
	contactHandler := handlers.NewContactHandler(contactService)
	projectAPIHandler := handlers.NewProjectAPIHandler(projectService, exportService, exposeErrorDetails)
	statusAPIHandler := handlers.NewStatusAPIHandler(statusService, exposeErrorDetails)
	typeAPIHandler := handlers.NewTypeAPIHandler(typeService, exposeErrorDetails)
	uploadHandler := handlers.NewUploadHandler(uploadService, exposeErrorDetails)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// Public pages
	router.GET("/", pageHandler.Home)
	router.GET("/about", pageHandler.About)
	router.GET("/contact", pageHandler.ContactForm)
	router.POST("/contact", contactHandler.Submit)
	router.GET("/projects", pageHandler.Projects)

	// Auth routes
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Protected dashboard page
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthRequired())
	{
		dashboard.GET("/", pageHandler.Dashboard)
	}

	// Public read API
	api := router.Group("/api")
	{
		api.GET("/projects", projectAPIHandler.ListProjects)
		api.GET("/status", statusAPIHandler.ListStatuses)
		api.GET("/types", typeAPIHandler.ListTypes)
	}

	// Session-gated write API
	protected := router.Group("/api")
	protected.Use(middleware.APIAuthRequired())
	{
		protected.POST("/projects", projectAPIHandler.CreateProject)
		protected.PUT("/projects/:id", projectAPIHandler.UpdateProject)
		protected.DELETE("/projects/:id", projectAPIHandler.DeleteProject)
		protected.GET("/projects/export", projectAPIHandler.ExportProjects)
		protected.POST("/status", statusAPIHandler.CreateStatus)
		protected.PUT("/status/:id", statusAPIHandler.UpdateStatus)
		protected.DELETE("/status/:id", statusAPIHandler.DeleteStatus)
		protected.POST("/types", typeAPIHandler.CreateType)
		protected.PUT("/types/:id", typeAPIHandler.UpdateType)
		protected.DELETE("/types/:id", typeAPIHandler.DeleteType)
		protected.POST("/upload", uploadHandler.Upload)
	}

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal("Couldn't get working directory:", err)
	}

	router.LoadHTMLFiles(
		filepath.Join(cwd, "web/templates/layouts/header.html"),
		filepath.Join(cwd, "web/templates/layouts/footer.html"),
		filepath.Join(cwd, "web/templates/index.html"),
		filepath.Join(cwd, "web/templates/about.html"),
		filepath.Join(cwd, "web/templates/contact.html"),
		filepath.Join(cwd, "web/templates/projects.html"),
		filepath.Join(cwd, "web/templates/login.html"),
		filepath.Join(cwd, "web/templates/dashboard.html"),
		filepath.Join(cwd, "web/templates/404.html"),
	)
}
