package reports

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/services"
)

var reportService *services.ReportService

func SetupReportsRoutes(app *fiber.App, conn *sql.DB) {
	store := database.NewStore(conn)
	reportService = services.NewReportService(store, store, store)

	api := app.Group("/api/reports")
	api.Get("/", GetReportsAPI)
}
