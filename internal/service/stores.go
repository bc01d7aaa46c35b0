package service

import (
	"context"

	"github.com/jarteaga/parte_reporting_system/internal/models"
)

// ParteStore persists the root parte record.
type ParteStore interface {
	Create(ctx context.Context, p *models.Parte) (int64, error)
	// GetByID fails with ErrNotFound when the parte does not exist.
	GetByID(ctx context.Context, id int64) (*models.Parte, error)
	Update(ctx context.Context, p *models.Parte) error
}

// PropietarioStore persists owners. Owners are singleton references, never a
// reconciled collection, so there is no delete here.
type PropietarioStore interface {
	Create(ctx context.Context, p *models.Propietario) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Propietario, error)
	Update(ctx context.Context, p *models.Propietario) error
}

// InmuebleStore persists the primary affected property (0..1 per parte).
type InmuebleStore interface {
	Create(ctx context.Context, m *models.InmuebleAfectado) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.InmuebleAfectado, error)
	Update(ctx context.Context, m *models.InmuebleAfectado) error
	// FindByParte returns (nil, nil) when the parte has no affected property yet.
	FindByParte(ctx context.Context, parteID int64) (*models.InmuebleAfectado, error)
}

// OtroInmuebleStore persists the flat collection of additional affected
// properties under a parte.
type OtroInmuebleStore interface {
	ListByParte(ctx context.Context, parteID int64) ([]*models.OtroInmueble, error)
	Create(ctx context.Context, m *models.OtroInmueble) (int64, error)
	Update(ctx context.Context, m *models.OtroInmueble) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

// VehiculoStore persists affected vehicles. DeleteMany removes the occupants
// of the given vehicles in the same transaction before removing the vehicles,
// so a vehicle dropped from a submission never leaves orphaned occupants.
type VehiculoStore interface {
	ListByParte(ctx context.Context, parteID int64) ([]*models.VehiculoAfectado, error)
	Create(ctx context.Context, v *models.VehiculoAfectado) (int64, error)
	Update(ctx context.Context, v *models.VehiculoAfectado) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

// OcupanteStore persists occupants scoped to their owning vehicle.
type OcupanteStore interface {
	ListByVehiculo(ctx context.Context, vehiculoID int64) ([]*models.Ocupante, error)
	Create(ctx context.Context, o *models.Ocupante) (int64, error)
	Update(ctx context.Context, o *models.Ocupante) error
	DeleteMany(ctx context.Context, ids []int64) (int64, error)
}

// ParteCache caches assembled parte aggregates outside the transaction path.
type ParteCache interface {
	// GetParte returns (nil, nil) on a cache miss.
	GetParte(ctx context.Context, id int64) (*models.ParteAggregate, error)
	SetParte(ctx context.Context, agg *models.ParteAggregate) error
	Invalidate(ctx context.Context, id int64) error
}
