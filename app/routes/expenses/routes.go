package expenses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

var db *sql.DB

func SetupExpensesRoutes(app *fiber.App, conn *sql.DB) {
	db = conn

	api := app.Group("/api/expenses")
	api.Get("/", GetExpensesAPI)
	api.Get("/:id", GetExpenseByIDAPI)
	api.Post("/", CreateExpenseAPI)
}
