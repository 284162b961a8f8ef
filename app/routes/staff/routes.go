package staff

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

var db *sql.DB

func SetupStaffRoutes(app *fiber.App, database *sql.DB) {
	db = database

	api := app.Group("/api/staff")
	api.Get("/", GetStaffAPI)
	api.Get("/:id", GetStaffByIDAPI)
	api.Get("/:id/salaries", GetStaffSalariesAPI)
	api.Post("/", CreateStaffAPI)
	api.Put("/:id", UpdateStaffAPI)
	api.Delete("/:id", DeleteStaffAPI)
}
