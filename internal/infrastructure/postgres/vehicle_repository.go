package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
	"github.com/jhoicas/vehicleto-api/internal/domain/repository"
)

var _ repository.VehicleRepository = (*VehicleRepo)(nil)

// VehicleRepo implementación de VehicleRepository (usable con pool o tx).
type VehicleRepo struct {
	q Querier
}

// NewVehicleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVehicleRepository(q Querier) *VehicleRepo {
	return &VehicleRepo{q: q}
}

// Create persiste un vehículo nuevo. La PK es la única defensa contra la
// carrera lookup-then-insert del intake: el perdedor recibe ErrDuplicate.
func (r *VehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, name, image_url, height, width, max_speed, price, displacement)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Name, v.ImageURL, v.Height, v.Width, v.MaxSpeed, v.Price, v.Displacement,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vehicle: %w", err)
	}
	return nil
}

// GetByID obtiene un vehículo por su clave. Retorna (nil, nil) si no existe.
func (r *VehicleRepo) GetByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	query := `
		SELECT id, name, image_url, height, width, max_speed, price, displacement
		FROM vehicles WHERE id = $1`
	var v entity.Vehicle
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.ImageURL, &v.Height, &v.Width, &v.MaxSpeed, &v.Price, &v.Displacement,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return &v, nil
}

// List lista todos los vehículos del catálogo.
func (r *VehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	query := `
		SELECT id, name, image_url, height, width, max_speed, price, displacement
		FROM vehicles ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Vehicle
	for rows.Next() {
		var v entity.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.ImageURL, &v.Height, &v.Width, &v.MaxSpeed, &v.Price, &v.Displacement); err != nil {
			return nil, fmt.Errorf("scan vehicle: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza los atributos mutables de un vehículo.
func (r *VehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	query := `
		UPDATE vehicles SET name = $2, image_url = $3, height = $4, width = $5,
			max_speed = $6, price = $7, displacement = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		v.ID, v.Name, v.ImageURL, v.Height, v.Width, v.MaxSpeed, v.Price, v.Displacement,
	)
	if err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	return nil
}

// Delete elimina un vehículo por su clave.
func (r *VehicleRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vehicle: %w", err)
	}
	return nil
}
