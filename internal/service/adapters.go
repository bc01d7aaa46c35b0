package service

import (
	"context"

	"github.com/jarteaga/parte_reporting_system/internal/models"
)

// Per-entity ChildStore adapters. Each one maps the generic reconciler onto a
// concrete tx-bound store and injects the foreign keys the caller is never
// trusted to supply.

type otroInmuebleChildStore struct {
	store OtroInmuebleStore
}

func newOtroInmuebleChildStore(store OtroInmuebleStore) ChildStore[OtroInmuebleInput] {
	return &otroInmuebleChildStore{store: store}
}

func (a *otroInmuebleChildStore) ExistingIDs(ctx context.Context, parteID int64) ([]int64, error) {
	list, err := a.store.ListByParte(ctx, parteID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(list))
	for i, m := range list {
		ids[i] = m.ID
	}
	return ids, nil
}

func (a *otroInmuebleChildStore) Create(ctx context.Context, parteID int64, in OtroInmuebleInput) (int64, error) {
	return a.store.Create(ctx, otroInmuebleFromInput(0, parteID, in))
}

func (a *otroInmuebleChildStore) Update(ctx context.Context, id, parteID int64, in OtroInmuebleInput) error {
	return a.store.Update(ctx, otroInmuebleFromInput(id, parteID, in))
}

func (a *otroInmuebleChildStore) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	return a.store.DeleteMany(ctx, ids)
}

type vehiculoChildStore struct {
	store         VehiculoStore
	propietarioID int64
}

func newVehiculoChildStore(store VehiculoStore, propietarioID int64) ChildStore[VehiculoInput] {
	return &vehiculoChildStore{store: store, propietarioID: propietarioID}
}

func (a *vehiculoChildStore) ExistingIDs(ctx context.Context, parteID int64) ([]int64, error) {
	list, err := a.store.ListByParte(ctx, parteID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(list))
	for i, v := range list {
		ids[i] = v.ID
	}
	return ids, nil
}

func (a *vehiculoChildStore) Create(ctx context.Context, parteID int64, in VehiculoInput) (int64, error) {
	return a.store.Create(ctx, vehiculoFromInput(0, parteID, a.propietarioID, in))
}

func (a *vehiculoChildStore) Update(ctx context.Context, id, parteID int64, in VehiculoInput) error {
	return a.store.Update(ctx, vehiculoFromInput(id, parteID, a.propietarioID, in))
}

func (a *vehiculoChildStore) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	return a.store.DeleteMany(ctx, ids)
}

type ocupanteChildStore struct {
	store OcupanteStore
}

func newOcupanteChildStore(store OcupanteStore) ChildStore[OcupanteInput] {
	return &ocupanteChildStore{store: store}
}

func (a *ocupanteChildStore) ExistingIDs(ctx context.Context, vehiculoID int64) ([]int64, error) {
	list, err := a.store.ListByVehiculo(ctx, vehiculoID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, len(list))
	for i, o := range list {
		ids[i] = o.ID
	}
	return ids, nil
}

func (a *ocupanteChildStore) Create(ctx context.Context, vehiculoID int64, in OcupanteInput) (int64, error) {
	return a.store.Create(ctx, ocupanteFromInput(0, vehiculoID, in))
}

func (a *ocupanteChildStore) Update(ctx context.Context, id, vehiculoID int64, in OcupanteInput) error {
	return a.store.Update(ctx, ocupanteFromInput(id, vehiculoID, in))
}

func (a *ocupanteChildStore) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	return a.store.DeleteMany(ctx, ids)
}

func otroInmuebleFromInput(id, parteID int64, in OtroInmuebleInput) *models.OtroInmueble {
	return &models.OtroInmueble{
		ID:        id,
		ParteID:   parteID,
		Direccion: in.Direccion,
		Nombres:   in.Nombres,
		Apellidos: in.Apellidos,
		CI:        in.CI,
		Telefono:  in.Telefono,
	}
}

func vehiculoFromInput(id, parteID, propietarioID int64, in VehiculoInput) *models.VehiculoAfectado {
	return &models.VehiculoAfectado{
		ID:                 id,
		ParteID:            parteID,
		PropietarioID:      propietarioID,
		Marca:              in.Marca,
		Modelo:             in.Modelo,
		Placa:              in.Placa,
		Color:              in.Color,
		Tipo:               in.Tipo,
		ConductorNombres:   in.ConductorNombres,
		ConductorApellidos: in.ConductorApellidos,
		ConductorCI:        in.ConductorCI,
	}
}

func ocupanteFromInput(id, vehiculoID int64, in OcupanteInput) *models.Ocupante {
	return &models.Ocupante{
		ID:         id,
		VehiculoID: vehiculoID,
		Nombres:    in.Nombres,
		Apellidos:  in.Apellidos,
		Edad:       in.Edad,
		Rol:        in.Rol,
		Gravedad:   in.Gravedad,
	}
}
