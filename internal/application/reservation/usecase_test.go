package reservation_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vehicleto-api/internal/application/reservation"
	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
)

const testFrom = "vehicletoapp@outlook.com"

type fakeReservationRepo struct {
	rows map[int64]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{rows: make(map[int64]*entity.Reservation)}
}

func (r *fakeReservationRepo) Create(ctx context.Context, res *entity.Reservation) error {
	if _, ok := r.rows[res.ID]; ok {
		return domain.ErrDuplicate
	}
	copia := *res
	r.rows[res.ID] = &copia
	return nil
}

func (r *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*entity.Reservation, error) {
	res, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copia := *res
	return &copia, nil
}

func (r *fakeReservationRepo) List(ctx context.Context) ([]*entity.Reservation, error) {
	out := make([]*entity.Reservation, 0, len(r.rows))
	for _, res := range r.rows {
		out = append(out, res)
	}
	return out, nil
}

func (r *fakeReservationRepo) MarkEmailSent(ctx context.Context, id int64) error {
	r.rows[id].IsEmailSent = true
	return nil
}

type fakeEmailSender struct {
	sent []string // destinatarios, en orden
	err  error
}

func (s *fakeEmailSender) Send(from, to, subject, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, to)
	return nil
}

// RegisterFromEvent proyecta el payload del broker como fila de reserva
// pendiente de correo.
func TestRegisterFromEvent_ProyectaElCliente(t *testing.T) {
	repo := newFakeReservationRepo()
	uc := reservation.NewUseCase(repo, &fakeEmailSender{}, testFrom)

	payload, err := json.Marshal(entity.Customer{
		ID: 1, Name: "Customer 1", Email: "customer1@example.com", VehicleID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, uc.RegisterFromEvent(context.Background(), payload))

	res := repo.rows[1]
	require.NotNil(t, res)
	assert.Equal(t, "customer1@example.com", res.Email)
	assert.EqualValues(t, 1, res.VehicleID)
	assert.False(t, res.IsEmailSent, "la reserva nueva debe quedar pendiente de correo")
}

func TestRegisterFromEvent_EventoRepetido(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.rows[1] = &entity.Reservation{ID: 1, Email: "customer1@example.com"}
	uc := reservation.NewUseCase(repo, &fakeEmailSender{}, testFrom)

	payload, _ := json.Marshal(entity.Customer{ID: 1, Name: "Customer 1", Email: "customer1@example.com"})
	err := uc.RegisterFromEvent(context.Background(), payload)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.rows, 1)
}

func TestRegisterFromEvent_PayloadInvalido(t *testing.T) {
	uc := reservation.NewUseCase(newFakeReservationRepo(), &fakeEmailSender{}, testFrom)

	err := uc.RegisterFromEvent(context.Background(), []byte("{no es json"))
	assert.Error(t, err)
}

// SendConfirmation envía el correo una sola vez y deja constancia.
func TestSendConfirmation_EnviaYMarca(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.rows[1] = &entity.Reservation{ID: 1, Email: "customer1@example.com"}
	sender := &fakeEmailSender{}
	uc := reservation.NewUseCase(repo, sender, testFrom)

	require.NoError(t, uc.SendConfirmation(context.Background(), 1))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "customer1@example.com", sender.sent[0])
	assert.True(t, repo.rows[1].IsEmailSent)
}

func TestSendConfirmation_NoReenviaSiYaSalio(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.rows[1] = &entity.Reservation{ID: 1, Email: "customer1@example.com", IsEmailSent: true}
	sender := &fakeEmailSender{}
	uc := reservation.NewUseCase(repo, sender, testFrom)

	require.NoError(t, uc.SendConfirmation(context.Background(), 1))
	assert.Empty(t, sender.sent, "el correo de confirmación sale una sola vez")
}

func TestSendConfirmation_ReservaInexistente(t *testing.T) {
	uc := reservation.NewUseCase(newFakeReservationRepo(), &fakeEmailSender{}, testFrom)

	err := uc.SendConfirmation(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el SMTP falla, la reserva no se marca como notificada: un reintento
// posterior vuelve a enviar.
func TestSendConfirmation_FalloDelSenderNoMarca(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.rows[1] = &entity.Reservation{ID: 1, Email: "customer1@example.com"}
	sender := &fakeEmailSender{err: assert.AnError}
	uc := reservation.NewUseCase(repo, sender, testFrom)

	err := uc.SendConfirmation(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, repo.rows[1].IsEmailSent)
}
