package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vehicleto-api/internal/application/intake"
	"github.com/jhoicas/vehicleto-api/internal/application/reservation"
	"github.com/jhoicas/vehicleto-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	IntakeUC      *intake.SubmitCustomerUseCase
	CustomerUC    *usecase.CustomerUseCase
	VehicleUC     *usecase.VehicleUseCase
	ReservationUC *reservation.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers (intake + consultas)
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.IntakeUC, deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Vehicles (catálogo CRUD)
	vehicles := api.Group("/vehicles")
	vehicleHandler := NewVehicleHandler(deps.VehicleUC)
	vehicles.Get("/", vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.GetByID)
	vehicles.Post("/", vehicleHandler.Create)
	vehicles.Put("/:id", vehicleHandler.Update)
	vehicles.Delete("/:id", vehicleHandler.Delete)

	// Reservations (proyección del broker + correo de confirmación)
	reservations := api.Group("/reservations")
	reservationHandler := NewReservationHandler(deps.ReservationUC)
	reservations.Get("/", reservationHandler.List)
	reservations.Put("/:id/email", reservationHandler.SendEmail)
}
