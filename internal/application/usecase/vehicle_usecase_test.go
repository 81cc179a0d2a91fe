package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/vehicleto-api/internal/application/usecase"
	"github.com/jhoicas/vehicleto-api/internal/domain"
	"github.com/jhoicas/vehicleto-api/internal/domain/entity"
)

type fakeVehicleRepo struct {
	rows map[int64]*entity.Vehicle
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{rows: make(map[int64]*entity.Vehicle)}
}

func (r *fakeVehicleRepo) Create(ctx context.Context, v *entity.Vehicle) error {
	if _, ok := r.rows[v.ID]; ok {
		return domain.ErrDuplicate
	}
	copia := *v
	r.rows[v.ID] = &copia
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id int64) (*entity.Vehicle, error) {
	v, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	return &copia, nil
}

func (r *fakeVehicleRepo) List(ctx context.Context) ([]*entity.Vehicle, error) {
	out := make([]*entity.Vehicle, 0, len(r.rows))
	for _, v := range r.rows {
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVehicleRepo) Update(ctx context.Context, v *entity.Vehicle) error {
	copia := *v
	r.rows[v.ID] = &copia
	return nil
}

func (r *fakeVehicleRepo) Delete(ctx context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

func TestVehicleGetByID_NoEncontrado(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newFakeVehicleRepo())

	_, err := uc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleCreate_RechazaClaveONombreVacios(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newFakeVehicleRepo())

	err := uc.Create(context.Background(), &entity.Vehicle{ID: 0, Name: "Vehicle 1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la clave la asigna quien llama y debe ser positiva")

	err = uc.Create(context.Background(), &entity.Vehicle{ID: 1, Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVehicleCreate_ClaveDuplicada(t *testing.T) {
	repo := newFakeVehicleRepo()
	uc := usecase.NewVehicleUseCase(repo)

	require.NoError(t, uc.Create(context.Background(), &entity.Vehicle{ID: 1, Name: "Vehicle 1"}))
	err := uc.Create(context.Background(), &entity.Vehicle{ID: 1, Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.rows, 1)
}

func TestVehicleUpdate_ReemplazaTodosLosAtributosMutables(t *testing.T) {
	repo := newFakeVehicleRepo()
	repo.rows[1] = &entity.Vehicle{ID: 1, Name: "Vehicle 1", MaxSpeed: 180}
	uc := usecase.NewVehicleUseCase(repo)

	updated, err := uc.Update(context.Background(), 1, &entity.Vehicle{
		Name:         "Vehicle 1 GT",
		ImageURL:     "https://img.example.com/gt.png",
		Height:       1400,
		Width:        1900,
		MaxSpeed:     250,
		Price:        decimal.NewFromInt(45000),
		Displacement: 2998,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 1, updated.ID, "la clave nunca cambia")
	assert.Equal(t, "Vehicle 1 GT", updated.Name)
	assert.Equal(t, 250, updated.MaxSpeed)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(45000)))
	assert.Equal(t, 2998, repo.rows[1].Displacement, "el cambio debe llegar al repositorio")
}

func TestVehicleUpdate_NoEncontrado(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newFakeVehicleRepo())

	_, err := uc.Update(context.Background(), 7, &entity.Vehicle{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleDelete_NoEncontrado(t *testing.T) {
	uc := usecase.NewVehicleUseCase(newFakeVehicleRepo())

	err := uc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleDelete_EliminaLaFila(t *testing.T) {
	repo := newFakeVehicleRepo()
	repo.rows[1] = &entity.Vehicle{ID: 1, Name: "Vehicle 1"}
	uc := usecase.NewVehicleUseCase(repo)

	require.NoError(t, uc.Delete(context.Background(), 1))
	assert.Empty(t, repo.rows)
}
