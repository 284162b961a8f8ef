package salaries

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

var db *sql.DB

func SetupSalariesRoutes(app *fiber.App, conn *sql.DB) {
	db = conn

	api := app.Group("/api/salaries")
	api.Get("/", GetSalariesAPI)
	api.Get("/:id", GetSalaryByIDAPI)
	api.Post("/", CreateSalaryAPI)
}
