package salaries

import (
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

func GetSalariesAPI(c *fiber.Ctx) error {
	staffID := c.Query("staff_id")
	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)

	var (
		salaries []*models.Salary
		err      error
	)
	switch {
	case staffID != "":
		if !isValidUUID(staffID) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "staff_id must be a valid UUID format",
			})
		}
		salaries, err = database.GetStaffSalaries(db, staffID)
	case month != 0 && year != 0:
		period, periodErr := services.NewPeriod(month, year)
		if periodErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   periodErr.Error(),
			})
		}
		salaries, err = database.GetSalariesByDateRange(db, period.Start(), period.End())
	default:
		salaries, err = database.GetAllSalaries(db)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch salaries",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    salaries,
		"count":   len(salaries),
	})
}

func GetSalaryByIDAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if !isValidUUID(id) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid salary ID format. Expected UUID.",
		})
	}

	salary, err := database.GetSalaryByID(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch salary record",
		})
	}
	if salary == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Salary record not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    salary,
	})
}

func CreateSalaryAPI(c *fiber.Ctx) error {
	var input models.SalaryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	missing := []string{}
	if input.StaffID == "" {
		missing = append(missing, "staff_id")
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
	if !isValidUUID(input.StaffID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "staff_id must be a valid UUID format",
		})
	}

	salary := &models.Salary{
		StaffID: input.StaffID,
		Amount:  input.Amount,
	}
	if input.PaidDate != "" {
		date, err := services.ParseDate(input.PaidDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid paid_date. Expected YYYY-MM-DD.",
			})
		}
		salary.PaidDate = &date
	}

	if err := database.CreateSalary(db, salary); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to add salary record",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Salary record added successfully",
		"data":    salary,
	})
}
