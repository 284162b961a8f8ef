package main

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"github.com/Maxme77/School-finance-management-system/app/config"
	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/routes/dashboard"
	"github.com/Maxme77/School-finance-management-system/app/routes/expenses"
	"github.com/Maxme77/School-finance-management-system/app/routes/payments"
	"github.com/Maxme77/School-finance-management-system/app/routes/reports"
	"github.com/Maxme77/School-finance-management-system/app/routes/salaries"
	"github.com/Maxme77/School-finance-management-system/app/routes/staff"
	"github.com/Maxme77/School-finance-management-system/app/routes/students"
)

// customErrorHandler renders error pages for web routes and JSON for the API.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("error", fiber.Map{
			"Title":        "Page Not Found - School Finance",
			"ErrorCode":    "404",
			"ErrorTitle":   "Page Not Found",
			"ErrorMessage": "The page you are looking for doesn't exist.",
		})
	case 500:
		return c.Status(500).Render("error", fiber.Map{
			"Title":        "Server Error - School Finance",
			"ErrorCode":    "500",
			"ErrorTitle":   "Internal Server Error",
			"ErrorMessage": "We're experiencing technical difficulties. Please try again later.",
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Error - School Finance",
			"ErrorCode":    code,
			"ErrorTitle":   "An Error Occurred",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Initialize template engine
	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	// Create Fiber app
	app := fiber.New(fiber.Config{
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "School Finance Management System API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	db := config.GetDB()

	// Routes
	dashboard.SetupDashboardRoutes(app, db)
	students.SetupStudentsRoutes(app, db)
	staff.SetupStaffRoutes(app, db)
	payments.SetupPaymentsRoutes(app, db)
	expenses.SetupExpensesRoutes(app, db)
	salaries.SetupSalariesRoutes(app, db)
	reports.SetupReportsRoutes(app, db)

	log.Printf("Server starting on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
