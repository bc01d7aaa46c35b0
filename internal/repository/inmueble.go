package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/service"
)

type InmuebleRepository struct {
	q querier
}

func (r *InmuebleRepository) Create(ctx context.Context, m *models.InmuebleAfectado) (int64, error) {
	query := `
		INSERT INTO inmuebles_afectados (parte_id, propietario_id, tipo_construccion, danos_descripcion, area_afectada_m2, area_total_m2)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.q.QueryRow(ctx, query,
		m.ParteID,
		m.PropietarioID,
		m.TipoConstruccion,
		m.DanosDescripcion,
		m.AreaAfectadaM2,
		m.AreaTotalM2,
	).Scan(&m.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create inmueble afectado: %w", err)
	}
	return m.ID, nil
}

func (r *InmuebleRepository) GetByID(ctx context.Context, id int64) (*models.InmuebleAfectado, error) {
	m := &models.InmuebleAfectado{}
	err := r.q.QueryRow(ctx, selectInmueble+` WHERE id = $1;`, id).Scan(
		&m.ID,
		&m.ParteID,
		&m.PropietarioID,
		&m.TipoConstruccion,
		&m.DanosDescripcion,
		&m.AreaAfectadaM2,
		&m.AreaTotalM2,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: inmueble afectado %d", service.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get inmueble afectado by id: %w", err)
	}
	return m, nil
}

// FindByParte returns (nil, nil) when the parte has no affected property.
func (r *InmuebleRepository) FindByParte(ctx context.Context, parteID int64) (*models.InmuebleAfectado, error) {
	m := &models.InmuebleAfectado{}
	err := r.q.QueryRow(ctx, selectInmueble+` WHERE parte_id = $1;`, parteID).Scan(
		&m.ID,
		&m.ParteID,
		&m.PropietarioID,
		&m.TipoConstruccion,
		&m.DanosDescripcion,
		&m.AreaAfectadaM2,
		&m.AreaTotalM2,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find inmueble afectado by parte: %w", err)
	}
	return m, nil
}

func (r *InmuebleRepository) Update(ctx context.Context, m *models.InmuebleAfectado) error {
	query := `
		UPDATE inmuebles_afectados SET
			propietario_id = $1,
			tipo_construccion = $2,
			danos_descripcion = $3,
			area_afectada_m2 = $4,
			area_total_m2 = $5
		WHERE id = $6;
	`
	cmdTag, err := r.q.Exec(ctx, query,
		m.PropietarioID,
		m.TipoConstruccion,
		m.DanosDescripcion,
		m.AreaAfectadaM2,
		m.AreaTotalM2,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update inmueble afectado: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: inmueble afectado %d", service.ErrNotFound, m.ID)
	}
	return nil
}

const selectInmueble = `
	SELECT id, parte_id, propietario_id, tipo_construccion, danos_descripcion, area_afectada_m2, area_total_m2
	FROM inmuebles_afectados`
