package expenses

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/models"
	"github.com/Maxme77/School-finance-management-system/app/services"
)

// expenseInput mirrors the expense schema: every field optional, date as a
// YYYY-MM-DD string.
type expenseInput struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	ExpenseDate string   `json:"expense_date"`
}

func GetExpensesAPI(c *fiber.Ctx) error {
	category := c.Query("category")
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	var (
		expenses []*models.Expense
		err      error
	)
	switch {
	case category != "":
		expenses, err = database.GetExpensesByCategory(db, category)
	case startDate != "" && endDate != "":
		start, parseErr := services.ParseDate(startDate)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid start_date. Expected YYYY-MM-DD.",
			})
		}
		end, parseErr := services.ParseDate(endDate)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid end_date. Expected YYYY-MM-DD.",
			})
		}
		expenses, err = database.GetExpensesByDateRange(db, start, end)
	default:
		expenses, err = database.GetAllExpenses(db)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch expenses",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    expenses,
		"count":   len(expenses),
	})
}

func GetExpenseByIDAPI(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid expense ID format. Expected UUID.",
		})
	}

	expense, err := database.GetExpenseByID(db, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to fetch expense",
		})
	}
	if expense == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Expense not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    expense,
	})
}

// CreateExpenseAPI appends an expense. There are no required fields; the
// schema permits a fully empty record.
func CreateExpenseAPI(c *fiber.Ctx) error {
	var input expenseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	expense := &models.Expense{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
	}
	if input.ExpenseDate != "" {
		date, err := services.ParseDate(input.ExpenseDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Invalid expense_date. Expected YYYY-MM-DD.",
			})
		}
		expense.ExpenseDate = &date
	}

	if err := database.CreateExpense(db, expense); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to create expense",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Expense added successfully",
		"data":    expense,
	})
}
