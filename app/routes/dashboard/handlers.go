package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/models"
)

func DashboardPage(c *fiber.Ctx) error {
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - School Finance",
		"CurrentPage": "dashboard",
	})
}

// GetDashboardStatsAPI combines entity counts with the lifetime financial
// summary and the current month's collected fees.
func GetDashboardStatsAPI(c *fiber.Ctx) error {
	counts, err := database.GetDashboardCounts(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load dashboard statistics",
		})
	}

	report, err := reportService.GetReports()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load financial summary",
		})
	}

	now := time.Now()
	monthly, err := reportService.GetMonthlyReport(int(now.Month()), now.Year())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to load monthly revenue",
		})
	}

	stats := models.DashboardStats{
		TotalStudents:  counts.TotalStudents,
		TotalStaff:     counts.TotalStaff,
		MonthlyRevenue: monthly.Summary.TotalFeesCollected,
		Summary:        report.Summary,
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
