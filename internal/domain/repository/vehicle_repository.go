package repository

import (
	"context"

	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
)

// VehicleRepository define el puerto de persistencia para Vehicle.
// GetByID retorna (nil, nil) cuando el vehículo no existe.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	GetByID(ctx context.Context, id int64) (*entity.Vehicle, error)
	List(ctx context.Context) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
