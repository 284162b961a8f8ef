package reports

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Maxme77/School-finance-management-system/app/services"
)

// GetReportsAPI returns the full financial report, or a month-scoped report
// when both month and year query parameters are present.
func GetReportsAPI(c *fiber.Ctx) error {
	month := c.QueryInt("month", 0)
	year := c.QueryInt("year", 0)

	if month != 0 || year != 0 {
		report, err := reportService.GetMonthlyReport(month, year)
		if err != nil {
			if errors.Is(err, services.ErrInvalidInput) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"success": false,
					"error":   err.Error(),
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to generate monthly report",
			})
		}
		return c.JSON(fiber.Map{
			"success": true,
			"data":    report,
		})
	}

	report, err := reportService.GetReports()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to generate reports",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    report,
	})
}
