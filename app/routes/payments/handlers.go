package payments

import (
	"errors"

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

func GetPaymentsAPI(c *fiber.Ctx) error {
	studentID := c.Query("student_id")

	var (
		payments []*models.Payment
		err      error
	)
	if studentID != "" {
		if !isValidUUID(studentID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "student_id must be a valid UUID format",
			})
		}
		payments, err = database.GetStudentPayments(db, studentID)
	} else {
		payments, err = database.GetAllPayments(db)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch payments",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payments,
		"count":   len(payments),
	})
}

func GetPaymentByIDAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid payment ID format. Expected UUID.",
		})
	}

	payment, err := database.GetPaymentByID(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch payment",
		})
	}
	if payment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Payment not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// RecordPaymentAPI records a fee payment and applies its dues adjustment.
// The receipt reports whether the dues projection was applied; a projection
// failure is never an error response.
func RecordPaymentAPI(c *fiber.Ctx) error {
	var input models.PaymentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	missing := []string{}
	if input.StudentID == "" {
		missing = append(missing, "student_id")
	}
	if input.Amount == 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":       false,
			"error":         "Missing required fields",
			"missingFields": missing,
		})
	}
	if !isValidUUID(input.StudentID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "student_id must be a valid UUID format",
		})
	}

	receipt, err := paymentService.RecordPayment(input)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Payment processing failed",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Payment recorded successfully",
		"data":    receipt,
	})
}
