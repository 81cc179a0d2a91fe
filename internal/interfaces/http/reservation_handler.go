package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vehicleto-api/internal/application/dto"
	"github.com/jhoicas/vehicleto-api/internal/application/reservation"
	"github.com/jhoicas/vehicleto-api/internal/domain"
)

// ReservationHandler maneja las peticiones HTTP de reservas.
type ReservationHandler struct {
	uc *reservation.UseCase
}

// NewReservationHandler construye el handler.
func NewReservationHandler(uc *reservation.UseCase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

// List GET /api/reservations
func (h *ReservationHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, dto.ReservationResponse{
			ID:          r.ID,
			Name:        r.Name,
			Email:       r.Email,
			Phone:       r.Phone,
			VehicleID:   r.VehicleID,
			IsEmailSent: r.IsEmailSent,
		})
	}
	return c.JSON(out)
}

// SendEmail PUT /api/reservations/:id/email
//
// Idempotente: si el correo de esa reserva ya salió, responde 200 sin
// reenviar.
func (h *ReservationHandler) SendEmail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.SendConfirmation(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reserva no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
