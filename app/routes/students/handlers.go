package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/models"
	"github.com/Maxme77/School-finance-management-system/app/services"
)

func isValidUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search: c.Query("search"),
		Class:  c.Query("class"),
		Status: c.Query("status"),
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}

	students, err := database.GetAllStudents(db, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch students",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    students,
		"count":   len(students),
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid student ID format. Expected UUID.",
		})
	}

	student, err := database.GetStudentByID(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch student",
		})
	}
	if student == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Student not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    student,
	})
}

// GetStudentPaymentsAPI returns a student's payment history together with
// the outstanding balance recomputed from that history. The recomputed
// figure is authoritative when it disagrees with the cached dues.
func GetStudentPaymentsAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid student ID format. Expected UUID.",
		})
	}

	student, err := database.GetStudentByID(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch student",
		})
	}
	if student == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Student not found",
		})
	}

	payments, err := database.GetStudentPayments(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch student payments",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"data":        payments,
		"count":       len(payments),
		"dues":        student.Dues,
		"outstanding": services.OutstandingBalance(student.FeeStructure, payments),
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var s models.Student
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if s.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":       false,
			"error":         "Missing required fields",
			"missingFields": []string{"name"},
		})
	}

	if err := database.CreateStudent(db, &s); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create student",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Student created successfully",
		"data":    s,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid student ID format. Expected UUID.",
		})
	}

	var patch models.StudentPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	student, err := database.UpdateStudent(db, id, &patch)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update student",
		})
	}
	if student == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Student not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
		"data":    student,
	})
}

// DeleteStudentAPI deactivates a student. Rows are never removed, so
// historical payments keep a valid reference.
func DeleteStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid student ID format. Expected UUID.",
		})
	}

	if err := database.DeactivateStudent(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Student not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to delete student",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}
