package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/service"
	"github.com/jarteaga/parte_reporting_system/internal/service/mocks"
	"github.com/jarteaga/parte_reporting_system/internal/webhook"
	webhook_mocks "github.com/jarteaga/parte_reporting_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

// stubTxManager runs the unit of work against a fixed scope and counts how
// often a transaction was opened.
type stubTxManager struct {
	scope service.TxScope
	runs  int
}

func (m *stubTxManager) Run(_ context.Context, fn func(service.TxScope) error) error {
	m.runs++
	return fn(m.scope)
}

type testScope struct {
	partes         service.ParteStore
	propietarios   service.PropietarioStore
	inmuebles      service.InmuebleStore
	otrosInmuebles service.OtroInmuebleStore
	vehiculos      service.VehiculoStore
	ocupantes      service.OcupanteStore
}

func (s *testScope) Partes() service.ParteStore                { return s.partes }
func (s *testScope) Propietarios() service.PropietarioStore    { return s.propietarios }
func (s *testScope) Inmuebles() service.InmuebleStore          { return s.inmuebles }
func (s *testScope) OtrosInmuebles() service.OtroInmuebleStore { return s.otrosInmuebles }
func (s *testScope) Vehiculos() service.VehiculoStore          { return s.vehiculos }
func (s *testScope) Ocupantes() service.OcupanteStore          { return s.ocupantes }

type parteServiceFixture struct {
	svc          service.ParteService
	tx           *stubTxManager
	partes       *mocks.MockParteStore
	propietarios *mocks.MockPropietarioStore
	inmuebles    *mocks.MockInmuebleStore
	otros        *mocks.MockOtroInmuebleStore
	vehiculos    *mocks.MockVehiculoStore
	ocupantes    *mocks.MockOcupanteStore
	cache        *mocks.MockParteCache
	publisher    *webhook_mocks.MockPublisher
}

// newTestParteService wires the service to store mocks behind a stub
// transaction manager.
func newTestParteService(t *testing.T) *parteServiceFixture {
	ctrl := gomock.NewController(t)

	f := &parteServiceFixture{
		partes:       mocks.NewMockParteStore(ctrl),
		propietarios: mocks.NewMockPropietarioStore(ctrl),
		inmuebles:    mocks.NewMockInmuebleStore(ctrl),
		otros:        mocks.NewMockOtroInmuebleStore(ctrl),
		vehiculos:    mocks.NewMockVehiculoStore(ctrl),
		ocupantes:    mocks.NewMockOcupanteStore(ctrl),
		cache:        mocks.NewMockParteCache(ctrl),
		publisher:    webhook_mocks.NewMockPublisher(ctrl),
	}
	f.tx = &stubTxManager{scope: &testScope{
		partes:         f.partes,
		propietarios:   f.propietarios,
		inmuebles:      f.inmuebles,
		otrosInmuebles: f.otros,
		vehiculos:      f.vehiculos,
		ocupantes:      f.ocupantes,
	}}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output quiet

	f.svc = service.NewParteService(f.tx, f.cache, f.publisher, logger)
	return f
}

func TestSubmitStep1_CreatesParte(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.partes.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Parte) (int64, error) {
			assert.Equal(t, int64(3), p.RedactorID)
			assert.Equal(t, "2026-02-01", p.Fecha)
			assert.Equal(t, service.EstadoAbierto, p.Estado)
			return 7, nil
		}).Times(1)
	f.cache.EXPECT().Invalidate(ctx, int64(7)).Return(nil).Times(1)

	res, err := f.svc.SubmitStep1(ctx, service.ParteInput{
		RedactorID: int64Ptr(3),
		Fecha:      strPtr("2026-02-01"),
		Direccion:  strPtr("Av. Heroinas 451"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ParteID)
	assert.Equal(t, 1, f.tx.runs)
}

func TestSubmitStep1_UpdatesExistingParte(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.partes.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Parte{
			ID:         7,
			RedactorID: 3,
			Fecha:      "2026-02-01",
			Direccion:  "Av. Heroinas 451",
			Zona:       "norte",
			Estado:     service.EstadoAbierto,
		}, nil).Times(1)
	f.partes.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Parte) error {
			assert.Equal(t, int64(7), p.ID)
			assert.Equal(t, "Calle Sucre 12", p.Direccion)
			// Fields absent from the payload keep their persisted value.
			assert.Equal(t, "norte", p.Zona)
			assert.Equal(t, "2026-02-01", p.Fecha)
			return nil
		}).Times(1)
	f.cache.EXPECT().Invalidate(ctx, int64(7)).Return(nil).Times(1)

	res, err := f.svc.SubmitStep1(ctx, service.ParteInput{
		ID:        int64Ptr(7),
		Direccion: strPtr("Calle Sucre 12"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ParteID)
}

func TestSubmitStep1_MissingRedactorRejected(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	_, err := f.svc.SubmitStep1(ctx, service.ParteInput{Fecha: strPtr("2026-02-01")})

	require.ErrorIs(t, err, service.ErrInvalidPayload)
	assert.Equal(t, 0, f.tx.runs)
}

func TestSubmitStep1_UnknownIDRollsBack(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.partes.EXPECT().
		GetByID(ctx, int64(999)).
		Return(nil, fmt.Errorf("parte 999: %w", service.ErrNotFound)).Times(1)

	_, err := f.svc.SubmitStep1(ctx, service.ParteInput{ID: int64Ptr(999)})

	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSubmitStep2_ReconcilesVehicleCollection(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	// Existing parte with vehicles 101 (Toyota) and 102 (Kia). The submission
	// keeps 101 with a new occupant, adds a new vehicle and drops 102.
	f.partes.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Parte{ID: 7, RedactorID: 3, Fecha: "2026-02-01", Estado: service.EstadoAbierto}, nil).Times(1)
	f.partes.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Parte) error {
			assert.Equal(t, "incendio", p.TipoIncidente)
			return nil
		}).Times(1)

	f.propietarios.EXPECT().
		Create(ctx, gomock.Any()).
		Return(int64(55), nil).Times(1)

	f.vehiculos.EXPECT().
		ListByParte(ctx, int64(7)).
		Return([]*models.VehiculoAfectado{
			{ID: 101, ParteID: 7, Marca: "Toyota"},
			{ID: 102, ParteID: 7, Marca: "Kia"},
		}, nil).Times(1)
	f.vehiculos.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.VehiculoAfectado) error {
			assert.Equal(t, int64(101), v.ID)
			assert.Equal(t, int64(7), v.ParteID)
			assert.Equal(t, int64(55), v.PropietarioID)
			assert.Equal(t, "Toyota", v.Marca)
			return nil
		}).Times(1)
	f.vehiculos.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.VehiculoAfectado) (int64, error) {
			assert.Equal(t, int64(55), v.PropietarioID)
			assert.Equal(t, "Nissan", v.Marca)
			return 103, nil
		}).Times(1)
	f.vehiculos.EXPECT().
		DeleteMany(ctx, []int64{102}).
		Return(int64(1), nil).Times(1)

	f.ocupantes.EXPECT().
		ListByVehiculo(ctx, int64(101)).
		Return(nil, nil).Times(1)
	f.ocupantes.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, o *models.Ocupante) (int64, error) {
			assert.Equal(t, int64(101), o.VehiculoID)
			assert.Equal(t, "Ana", o.Nombres)
			return 901, nil
		}).Times(1)
	f.ocupantes.EXPECT().
		ListByVehiculo(ctx, int64(103)).
		Return(nil, nil).Times(1)

	f.otros.EXPECT().
		ListByParte(ctx, int64(7)).
		Return(nil, nil).Times(1)

	f.cache.EXPECT().Invalidate(ctx, int64(7)).Return(nil).Times(1)
	f.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.ParteEvent) error {
			assert.Equal(t, int64(7), event.ParteID)
			assert.Equal(t, 2, event.Paso)
			assert.Equal(t, service.EstadoAbierto, event.Estado)
			return nil
		}).Times(1)

	res, err := f.svc.SubmitStep2(ctx, service.Step2Input{
		Caracteristicas: service.CaracteristicasInput{ParteID: 7, TipoIncidente: strPtr("incendio")},
		Propietario:     service.PropietarioInput{Nombres: "Luis", Apellidos: "Mamani"},
		Vehiculos: []service.VehiculoInput{
			{
				ID:    int64Ptr(101),
				Marca: "Toyota",
				Ocupantes: []service.OcupanteInput{
					{Nombres: "Ana", Rol: models.RolConductor, Gravedad: models.GravedadIleso},
				},
			},
			{Marca: "Nissan"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ParteID)
	assert.Equal(t, int64(55), res.PropietarioID)
	assert.Nil(t, res.InmuebleID)

	assert.Equal(t, []int64{103}, res.VehiculosDiff.CreatedIDs)
	assert.Equal(t, []int64{101}, res.VehiculosDiff.UpdatedIDs)
	assert.Equal(t, []int64{102}, res.VehiculosDiff.DeletedIDs)
	assert.Equal(t, []int64{101, 103}, res.VehiculosDiff.ResolvedIDs)

	require.Len(t, res.Vehiculos, 2)
	assert.Equal(t, int64(101), res.Vehiculos[0].VehiculoID)
	assert.Equal(t, []int64{901}, res.Vehiculos[0].OcupanteIDs)
	assert.Equal(t, int64(103), res.Vehiculos[1].VehiculoID)
	assert.Empty(t, res.Vehiculos[1].OcupanteIDs)
	assert.Equal(t, 1, f.tx.runs)
}

func TestSubmitStep2_UpsertsInmueble(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.partes.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Parte{ID: 7, Estado: service.EstadoAbierto}, nil).Times(1)
	f.partes.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)

	f.propietarios.EXPECT().Create(ctx, gomock.Any()).Return(int64(55), nil).Times(1)

	f.inmuebles.EXPECT().
		GetByID(ctx, int64(31)).
		Return(&models.InmuebleAfectado{ID: 31, ParteID: 7, PropietarioID: 40, TipoConstruccion: "adobe"}, nil).Times(1)
	f.inmuebles.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.InmuebleAfectado) error {
			assert.Equal(t, int64(31), m.ID)
			assert.Equal(t, "ladrillo", m.TipoConstruccion)
			// The owner reference always follows this submission's owner.
			assert.Equal(t, int64(55), m.PropietarioID)
			return nil
		}).Times(1)

	f.vehiculos.EXPECT().ListByParte(ctx, int64(7)).Return(nil, nil).Times(1)
	f.otros.EXPECT().ListByParte(ctx, int64(7)).Return(nil, nil).Times(1)

	f.cache.EXPECT().Invalidate(ctx, int64(7)).Return(nil).Times(1)
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	res, err := f.svc.SubmitStep2(ctx, service.Step2Input{
		Caracteristicas:  service.CaracteristicasInput{ParteID: 7},
		Propietario:      service.PropietarioInput{Nombres: "Luis"},
		InmuebleAfectado: &service.InmuebleInput{ID: int64Ptr(31), TipoConstruccion: "ladrillo"},
	})

	require.NoError(t, err)
	require.NotNil(t, res.InmuebleID)
	assert.Equal(t, int64(31), *res.InmuebleID)
}

func TestSubmitStep2_InmuebleOfOtherParteRejected(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.partes.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Parte{ID: 7, Estado: service.EstadoAbierto}, nil).Times(1)
	f.partes.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	f.propietarios.EXPECT().Create(ctx, gomock.Any()).Return(int64(55), nil).Times(1)

	f.inmuebles.EXPECT().
		GetByID(ctx, int64(31)).
		Return(&models.InmuebleAfectado{ID: 31, ParteID: 8}, nil).Times(1)

	_, err := f.svc.SubmitStep2(ctx, service.Step2Input{
		Caracteristicas:  service.CaracteristicasInput{ParteID: 7},
		Propietario:      service.PropietarioInput{Nombres: "Luis"},
		InmuebleAfectado: &service.InmuebleInput{ID: int64Ptr(31), TipoConstruccion: "ladrillo"},
	})

	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSubmitStep2_VehicleFailureAbortsRemainingSteps(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.partes.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Parte{ID: 7, Estado: service.EstadoAbierto}, nil).Times(1)
	f.partes.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	f.propietarios.EXPECT().Create(ctx, gomock.Any()).Return(int64(55), nil).Times(1)

	f.vehiculos.EXPECT().
		ListByParte(ctx, int64(7)).
		Return([]*models.VehiculoAfectado{{ID: 101, ParteID: 7}}, nil).Times(1)
	f.vehiculos.EXPECT().
		Update(ctx, gomock.Any()).
		Return(fmt.Errorf("connection reset")).Times(1)

	// No otros-inmuebles pass, no cache invalidation, no event: the failed
	// vehicle write aborts everything after it.
	_, err := f.svc.SubmitStep2(ctx, service.Step2Input{
		Caracteristicas: service.CaracteristicasInput{ParteID: 7},
		Propietario:     service.PropietarioInput{Nombres: "Luis"},
		Vehiculos:       []service.VehiculoInput{{ID: int64Ptr(101), Marca: "Toyota"}},
	})

	require.Error(t, err)
}

func TestSubmitStep2_ForeignVehicleRejected(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.partes.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Parte{ID: 7, Estado: service.EstadoAbierto}, nil).Times(1)
	f.partes.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	f.propietarios.EXPECT().Create(ctx, gomock.Any()).Return(int64(55), nil).Times(1)

	f.vehiculos.EXPECT().
		ListByParte(ctx, int64(7)).
		Return([]*models.VehiculoAfectado{{ID: 101, ParteID: 7}}, nil).Times(1)

	_, err := f.svc.SubmitStep2(ctx, service.Step2Input{
		Caracteristicas: service.CaracteristicasInput{ParteID: 7},
		Propietario:     service.PropietarioInput{Nombres: "Luis"},
		Vehiculos:       []service.VehiculoInput{{ID: int64Ptr(999), Marca: "Toyota"}},
	})

	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestSubmitStep2_OccupantUnderNewVehicleRejected(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	_, err := f.svc.SubmitStep2(ctx, service.Step2Input{
		Caracteristicas: service.CaracteristicasInput{ParteID: 7},
		Propietario:     service.PropietarioInput{Nombres: "Luis"},
		Vehiculos: []service.VehiculoInput{
			{
				Marca: "Toyota",
				Ocupantes: []service.OcupanteInput{
					{ID: int64Ptr(901), Nombres: "Ana"},
				},
			},
		},
	})

	require.ErrorIs(t, err, service.ErrInvalidPayload)
	assert.Equal(t, 0, f.tx.runs)
}

func TestSubmitStep2_DuplicateVehicleIDRejected(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	_, err := f.svc.SubmitStep2(ctx, service.Step2Input{
		Caracteristicas: service.CaracteristicasInput{ParteID: 7},
		Propietario:     service.PropietarioInput{Nombres: "Luis"},
		Vehiculos: []service.VehiculoInput{
			{ID: int64Ptr(101), Marca: "Toyota"},
			{ID: int64Ptr(101), Marca: "Kia"},
		},
	})

	require.ErrorIs(t, err, service.ErrInvalidPayload)
	assert.Equal(t, 0, f.tx.runs)
}

func TestSubmitStep2_PublishFailureDoesNotFailSubmission(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.partes.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Parte{ID: 7, Estado: service.EstadoAbierto}, nil).Times(1)
	f.partes.EXPECT().Update(ctx, gomock.Any()).Return(nil).Times(1)
	f.propietarios.EXPECT().Create(ctx, gomock.Any()).Return(int64(55), nil).Times(1)
	f.vehiculos.EXPECT().ListByParte(ctx, int64(7)).Return(nil, nil).Times(1)
	f.otros.EXPECT().ListByParte(ctx, int64(7)).Return(nil, nil).Times(1)
	f.cache.EXPECT().Invalidate(ctx, int64(7)).Return(nil).Times(1)
	f.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("redis down")).Times(1)

	res, err := f.svc.SubmitStep2(ctx, service.Step2Input{
		Caracteristicas: service.CaracteristicasInput{ParteID: 7},
		Propietario:     service.PropietarioInput{Nombres: "Luis"},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ParteID)
}

func TestGetParte_FromCache(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	expected := &models.ParteAggregate{Parte: &models.Parte{ID: 7}}
	f.cache.EXPECT().GetParte(ctx, int64(7)).Return(expected, nil).Times(1)

	agg, err := f.svc.GetParte(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, agg)
	assert.Equal(t, 0, f.tx.runs)
}

func TestGetParte_FromStores(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.cache.EXPECT().GetParte(ctx, int64(7)).Return(nil, nil).Times(1)

	f.partes.EXPECT().
		GetByID(ctx, int64(7)).
		Return(&models.Parte{ID: 7, Estado: service.EstadoAbierto}, nil).Times(1)
	f.inmuebles.EXPECT().
		FindByParte(ctx, int64(7)).
		Return(&models.InmuebleAfectado{ID: 31, ParteID: 7, PropietarioID: 55}, nil).Times(1)
	f.otros.EXPECT().ListByParte(ctx, int64(7)).Return(nil, nil).Times(1)
	f.vehiculos.EXPECT().
		ListByParte(ctx, int64(7)).
		Return([]*models.VehiculoAfectado{{ID: 101, ParteID: 7, PropietarioID: 55}}, nil).Times(1)
	f.ocupantes.EXPECT().
		ListByVehiculo(ctx, int64(101)).
		Return([]*models.Ocupante{{ID: 901, VehiculoID: 101, Nombres: "Ana"}}, nil).Times(1)
	f.propietarios.EXPECT().
		GetByID(ctx, int64(55)).
		Return(&models.Propietario{ID: 55, Nombres: "Luis"}, nil).Times(1)

	f.cache.EXPECT().SetParte(ctx, gomock.Any()).Return(nil).Times(1)

	agg, err := f.svc.GetParte(ctx, 7)

	require.NoError(t, err)
	require.NotNil(t, agg.Parte)
	assert.Equal(t, int64(7), agg.Parte.ID)
	require.NotNil(t, agg.Propietario)
	assert.Equal(t, int64(55), agg.Propietario.ID)
	require.NotNil(t, agg.InmuebleAfectado)
	require.Len(t, agg.Vehiculos, 1)
	require.Len(t, agg.Vehiculos[0].Ocupantes, 1)
	assert.Equal(t, "Ana", agg.Vehiculos[0].Ocupantes[0].Nombres)
}

func TestGetParte_NotFound(t *testing.T) {
	f := newTestParteService(t)
	ctx := context.Background()

	f.cache.EXPECT().GetParte(ctx, int64(999)).Return(nil, nil).Times(1)
	f.partes.EXPECT().
		GetByID(ctx, int64(999)).
		Return(nil, fmt.Errorf("parte 999: %w", service.ErrNotFound)).Times(1)

	_, err := f.svc.GetParte(ctx, 999)

	require.ErrorIs(t, err, service.ErrNotFound)
}
