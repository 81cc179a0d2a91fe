package usecase

import (
	"context"

	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
	"github.com/jhoicas/vehicleto-api/internal/domain/repository"
)

// CustomerUseCase consultas de clientes ya persistidos. El alta pasa por
// el coordinador de intake, no por acá.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// List lista todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) ([]*entity.Customer, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un cliente por su clave.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}
