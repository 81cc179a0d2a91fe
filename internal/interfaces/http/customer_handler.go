package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/vehicleto-api/internal/application/dto"
	"github.com/jhoicas/vehicleto-api/internal/application/intake"
	"github.com/jhoicas/vehicleto-api/internal/application/usecase"
	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	intakeUC *intake.SubmitCustomerUseCase
	queryUC  *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(intakeUC *intake.SubmitCustomerUseCase, queryUC *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{intakeUC: intakeUC, queryUC: queryUC}
}

// Create POST /api/customers
//
// La validación de name/email vive acá, no en el coordinador: el contrato
// del intake asume que quien llama ya validó. Un 502 significa que el
// cliente SÍ quedó persistido pero el evento de notificación se perdió.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y email son requeridos"})
	}

	customer := &entity.Customer{
		ID:        in.ID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		VehicleID: in.VehicleID,
	}
	if in.Vehicle != nil {
		customer.Vehicle = &entity.Vehicle{ID: in.Vehicle.ID, Name: in.Vehicle.Name}
	}

	if err := h.intakeUC.Submit(c.Context(), customer); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventPublish):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code:    "NOTIFICATION_FAILED",
				Message: "el cliente quedó registrado pero la notificación no se pudo publicar",
			})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un registro con esa clave"})
		case errors.Is(err, domain.ErrVehicleMissing):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VEHICLE_MISSING", Message: "el vehículo referenciado no existe"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "registro rechazado por la base de datos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(customer))
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.queryUC.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, customer := range list {
		out = append(out, toCustomerResponse(customer))
	}
	return c.JSON(out)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	customer, err := h.queryUC.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toCustomerResponse(customer))
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		VehicleID: c.VehicleID,
	}
}
