package payments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/Maxme77/School-finance-management-system/app/database"
	"github.com/Maxme77/School-finance-management-system/app/services"
)

var (
	db             *sql.DB
	paymentService *services.PaymentService
)

func SetupPaymentsRoutes(app *fiber.App, conn *sql.DB) {
	db = conn
	store := database.NewStore(db)
	paymentService = services.NewPaymentService(store, store)

	api := app.Group("/api/payments")
	api.Get("/", GetPaymentsAPI)
	api.Get("/:id", GetPaymentByIDAPI)
	api.Post("/", RecordPaymentAPI)
}
