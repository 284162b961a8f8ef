package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

var db *sql.DB

func SetupStudentsRoutes(app *fiber.App, database *sql.DB) {
	db = database

	api := app.Group("/api/students")
	api.Get("/", GetStudentsAPI)             // Get all students
	api.Get("/:id", GetStudentByIDAPI)       // Get single student by ID
	api.Get("/:id/payments", GetStudentPaymentsAPI)
	api.Post("/", CreateStudentAPI)   // Enroll new student
	api.Put("/:id", UpdateStudentAPI) // Update existing student
	api.Delete("/:id", DeleteStudentAPI)
}
