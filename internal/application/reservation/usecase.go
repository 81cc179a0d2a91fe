package reservation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
	"github.com/jhoicas/vehicleto-api/internal/domain/repository"
)

const (
	confirmationSubject = "VehicleTo App"
	confirmationBody    = "Your test drive is reserved! Email us for more details."
)

// UseCase casos de uso de reservas: proyección de clientes recibidos por el
// broker y envío único del correo de confirmación.
type UseCase struct {
	repo   repository.ReservationRepository
	sender EmailSender
	from   string
}

// NewUseCase construye el caso de uso. from es el remitente de los correos.
func NewUseCase(repo repository.ReservationRepository, sender EmailSender, from string) *UseCase {
	return &UseCase{repo: repo, sender: sender, from: from}
}

// List lista todas las reservas.
func (uc *UseCase) List(ctx context.Context) ([]*entity.Reservation, error) {
	return uc.repo.List(ctx)
}

// RegisterFromEvent proyecta el payload de un evento de cliente registrado
// como fila de reserva pendiente de correo. Un evento repetido produce
// domain.ErrDuplicate; el consumidor decide si lo ignora.
func (uc *UseCase) RegisterFromEvent(ctx context.Context, payload []byte) error {
	var customer entity.Customer
	if err := json.Unmarshal(payload, &customer); err != nil {
		return fmt.Errorf("decodificar evento de cliente: %w", err)
	}

	return uc.repo.Create(ctx, &entity.Reservation{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		VehicleID: customer.VehicleID,
	})
}

// SendConfirmation envía el correo de confirmación de la reserva una sola
// vez: si is_email_sent ya está en true la llamada no hace nada.
func (uc *UseCase) SendConfirmation(ctx context.Context, id int64) error {
	reservation, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if reservation == nil {
		return domain.ErrNotFound
	}
	if reservation.IsEmailSent {
		return nil
	}

	if err := uc.sender.Send(uc.from, reservation.Email, confirmationSubject, confirmationBody); err != nil {
		return fmt.Errorf("enviar correo de reserva %d: %w", id, err)
	}
	return uc.repo.MarkEmailSent(ctx, id)
}
