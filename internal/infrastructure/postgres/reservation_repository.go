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

var _ repository.ReservationRepository = (*ReservationRepo)(nil)

// ReservationRepo implementación de ReservationRepository (usable con pool o tx).
type ReservationRepo struct {
	q Querier
}

// NewReservationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReservationRepository(q Querier) *ReservationRepo {
	return &ReservationRepo{q: q}
}

// Create persiste una reserva proyectada desde un evento del broker.
// Un evento repetido cae en la PK y retorna ErrDuplicate.
func (r *ReservationRepo) Create(ctx context.Context, res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, name, email, phone, vehicle_id, is_email_sent)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		res.ID, res.Name, res.Email, res.Phone, res.VehicleID, res.IsEmailSent,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

// GetByID obtiene una reserva por su clave. Retorna (nil, nil) si no existe.
func (r *ReservationRepo) GetByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	query := `
		SELECT id, name, email, phone, vehicle_id, is_email_sent
		FROM reservations WHERE id = $1`
	var res entity.Reservation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&res.ID, &res.Name, &res.Email, &res.Phone, &res.VehicleID, &res.IsEmailSent,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// List lista todas las reservas.
func (r *ReservationRepo) List(ctx context.Context) ([]*entity.Reservation, error) {
	query := `
		SELECT id, name, email, phone, vehicle_id, is_email_sent
		FROM reservations ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Reservation
	for rows.Next() {
		var res entity.Reservation
		if err := rows.Scan(&res.ID, &res.Name, &res.Email, &res.Phone, &res.VehicleID, &res.IsEmailSent); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		list = append(list, &res)
	}
	return list, rows.Err()
}

// MarkEmailSent deja constancia de que el correo de confirmación ya salió.
func (r *ReservationRepo) MarkEmailSent(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `UPDATE reservations SET is_email_sent = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark email sent: %w", err)
	}
	return nil
}
