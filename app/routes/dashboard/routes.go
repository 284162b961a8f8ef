package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/services"
)

var (
	db            *sql.DB
	reportService *services.ReportService
)

func SetupDashboardRoutes(app *fiber.App, conn *sql.DB) {
	db = conn
	store := database.NewStore(db)
	reportService = services.NewReportService(store, store, store)

	app.Get("/dashboard", DashboardPage)

	api := app.Group("/api/dashboard")
	api.Get("/stats", GetDashboardStatsAPI)
}
