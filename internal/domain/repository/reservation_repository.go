package repository

import (
	"context"

	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
)

// ReservationRepository define el puerto de persistencia para Reservation.
// GetByID retorna (nil, nil) cuando la reserva no existe.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	GetByID(ctx context.Context, id int64) (*entity.Reservation, error)
	List(ctx context.Context) ([]*entity.Reservation, error)
	MarkEmailSent(ctx context.Context, id int64) error
}
