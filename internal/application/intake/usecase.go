package intake

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
	"github.com/jhoicas/vehicleto-api/internal/domain/repository"
)

// SubmitCustomerUseCase coordina el alta de un cliente: dedup del vehículo
// referenciado, persistencia del cliente y publicación del evento para los
// consumidores de reservas. Recibe sus dependencias por constructor; no
// resuelve nada por estado ambiente.
type SubmitCustomerUseCase struct {
	vehicles  repository.VehicleRepository
	customers repository.CustomerRepository
	publisher EventPublisher
}

// NewSubmitCustomerUseCase construye el caso de uso.
func NewSubmitCustomerUseCase(
	vehicles repository.VehicleRepository,
	customers repository.CustomerRepository,
	publisher EventPublisher,
) *SubmitCustomerUseCase {
	return &SubmitCustomerUseCase{
		vehicles:  vehicles,
		customers: customers,
		publisher: publisher,
	}
}

// Submit ejecuta el alta. Orden del contrato: lookup del vehículo, insert
// condicional del vehículo, insert del cliente y recién entonces publish.
// Los errores de persistencia se propagan tal cual; solo el fallo de
// publicación se envuelve en domain.ErrEventPublish, porque para ese punto
// el cliente (y el vehículo, si se creó) ya quedaron confirmados y no se
// revierten.
func (uc *SubmitCustomerUseCase) Submit(ctx context.Context, customer *entity.Customer) error {
	vehicleDB, err := uc.vehicles.GetByID(ctx, customer.VehicleID)
	if err != nil {
		return err
	}

	// Vehículo ausente y el intake trae el payload anidado: crearlo primero,
	// así el insert del cliente encuentra su referencia. Sin payload se sigue
	// de largo y la FK de la base rechaza el insert del cliente.
	//
	// Dos requests concurrentes con la misma clave pueden ver ambos el
	// lookup vacío; la constraint de unicidad de la tabla decide y el
	// perdedor recibe domain.ErrDuplicate sin reintento.
	if vehicleDB == nil && customer.Vehicle != nil {
		if err := uc.vehicles.Create(ctx, customer.Vehicle); err != nil {
			return err
		}
	}

	// El registro persistido lleva solo la clave escalar, nunca el objeto.
	customer.Vehicle = nil

	if err := uc.customers.Create(ctx, customer); err != nil {
		return err
	}

	payload, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("serializar cliente %d: %w", customer.ID, err)
	}
	if err := uc.publisher.Publish(ctx, payload); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrEventPublish, err)
	}
	return nil
}
