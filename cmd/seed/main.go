package main

import (
	"log"
	"os"

	"github.com/ruanfv/portfolio/internal/models"
	"github.com/ruanfv/portfolio/internal/repositories"
	"github.com/ruanfv/portfolio/internal/services"
	"github.com/ruanfv/portfolio/pkg/config"
	"github.com/ruanfv/portfolio/pkg/database"
)

// Seeds the database with the admin user, the base status/type labels
// and a starter set of portfolio entries. Existing rows are left alone.
func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := database.Init(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	userRepo := repositories.NewUserRepository(database.DB)
	statusRepo := repositories.NewProjectStatusRepository(database.DB)
	typeRepo := repositories.NewProjectTypeRepository(database.DB)
	projectRepo := repositories.NewProjectRepository(database.DB)

	seedAdminUser(userRepo)
	seedStatuses(statusRepo)
	seedTypes(typeRepo)
	seedProjects(projectRepo)

	log.Println("Seeding complete")
}

func seedAdminUser(userRepo *repositories.UserRepository) {
	email := getEnv("ADMIN_EMAIL", "admin@example.com")
	password := getEnv("ADMIN_PASSWORD", "admin123")

	if _, err := userRepo.GetByEmail(email); err == nil {
		log.Printf("Admin user %s already exists", email)
		return
	}

	userService := services.NewUserService(userRepo)
	if _, err := userService.CreateUser("Admin User", email, password); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}

	log.Printf("Created admin user %s", email)
}

func seedStatuses(statusRepo *repositories.ProjectStatusRepository) {
	statuses := []models.ProjectStatus{
		{Key: "shipped", Label: "SHIPPED"},
		{Key: "in-progress", Label: "IN PROGRESS"},
		{Key: "archived", Label: "ARCHIVED"},
	}

	for _, status := range statuses {
		s := status
		if err := statusRepo.Create(&s); err != nil {
			log.Printf("Status %s skipped: %v", s.Key, err)
		}
	}
}

func seedTypes(typeRepo *repositories.ProjectTypeRepository) {
	types := []models.ProjectType{
		{Key: "Web", Label: "WEB"},
		{Key: "Saas", Label: "SAAS"},
		{Key: "Mobile", Label: "MOBILE"},
	}

	for _, projectType := range types {
		t := projectType
		if err := typeRepo.Create(&t); err != nil {
			log.Printf("Type %s skipped: %v", t.Key, err)
		}
	}
}

func seedProjects(projectRepo *repositories.ProjectRepository) {
	existing, err := projectRepo.List(repositories.ProjectFilter{})
	if err != nil {
		log.Fatalf("Failed to check existing projects: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Projects already seeded (%d rows)", len(existing))
		return
	}

	projects := []models.Project{
		{
			Title:           "AllProtect",
			Description:     "Digital security platform protecting users against online fraud with intelligent threat detection.",
			LongDescription: strPtr("Real-time protection against fraud attempts with an alerting system and an administrative dashboard."),
			ImageURL:        strPtr("/static/img/allprotect.png"),
			Technologies:    []string{"Java", "Firebase", "Javascript", "Spring Boot"},
			Type:            "Saas",
			Featured:        true,
			Year:            "2023",
			Status:          "shipped",
		},
		{
			Title:        "AZap",
			Description:  "Sales and billing automation platform for WhatsApp with a real-time analytics dashboard.",
			ImageURL:     strPtr("/static/img/azap.png"),
			Technologies: []string{"ReactJS", "TailwindCSS", "TypeScript", "WhatsApp API"},
			Type:         "Web",
			Year:         "2023",
			Status:       "shipped",
		},
		{
			Title:        "LuxWatch",
			Description:  "E-commerce storefront specialized in luxury watches.",
			ImageURL:     strPtr("/static/img/luxwatch.png"),
			Technologies: []string{"NextJS", "TailwindCSS", "TypeScript", "Stripe"},
			Link:         strPtr("https://watchwebpage.netlify.app/"),
			Type:         "Web",
			Year:         "2023",
			Status:       "shipped",
		},
		{
			Title:        "Personal Blog",
			Description:  "Technical blog with a content management system.",
			ImageURL:     strPtr("/static/img/blog.png"),
			Technologies: []string{"NextJS", "Prisma", "tRPC", "TailwindCSS"},
			Type:         "Saas",
			Year:         "2025",
			Status:       "shipped",
		},
	}

	for _, project := range projects {
		p := project
		if err := projectRepo.Create(&p); err != nil {
			log.Printf("Project %s skipped: %v", p.Title, err)
		}
	}
}

func strPtr(s string) *string {
	return &s
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
