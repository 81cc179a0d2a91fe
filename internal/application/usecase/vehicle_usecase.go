package usecase

import (
	"context"

	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
	"github.com/jhoicas/vehicleto-api/internal/domain/repository"
)

// VehicleUseCase casos de uso del catálogo de vehículos (CRUD).
type VehicleUseCase struct {
	repo repository.VehicleRepository
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(repo repository.VehicleRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo}
}

// List lista todos los vehículos del catálogo.
func (uc *VehicleUseCase) List(ctx context.Context) ([]*entity.Vehicle, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un vehículo por su clave.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}
	return vehicle, nil
}

// Create registra un vehículo nuevo. La clave la asigna quien llama.
func (uc *VehicleUseCase) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if vehicle.ID <= 0 || vehicle.Name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Create(ctx, vehicle)
}

// Update reemplaza los atributos mutables de un vehículo existente.
func (uc *VehicleUseCase) Update(ctx context.Context, id int64, in *entity.Vehicle) (*entity.Vehicle, error) {
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, domain.ErrNotFound
	}

	vehicle.Name = in.Name
	vehicle.ImageURL = in.ImageURL
	vehicle.Height = in.Height
	vehicle.Width = in.Width
	vehicle.MaxSpeed = in.MaxSpeed
	vehicle.Price = in.Price
	vehicle.Displacement = in.Displacement

	if err := uc.repo.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete elimina un vehículo por su clave.
func (uc *VehicleUseCase) Delete(ctx context.Context, id int64) error {
	vehicle, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
