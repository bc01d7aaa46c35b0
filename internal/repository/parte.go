package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/service"
)

type ParteRepository struct {
	q querier
}

// Create inserts a new parte and returns its id.
func (r *ParteRepository) Create(ctx context.Context, p *models.Parte) (int64, error) {
	query := `
		INSERT INTO partes (redactor_id, fecha, direccion, zona, tipo_incidente, fase_alcanzada, descripcion_preliminar, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at;
	`
	err := r.q.QueryRow(ctx, query,
		p.RedactorID,
		p.Fecha,
		p.Direccion,
		p.Zona,
		p.TipoIncidente,
		p.FaseAlcanzada,
		p.DescripcionPreliminar,
		p.Estado,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create parte: %w", err)
	}
	return p.ID, nil
}

// GetByID returns the parte or service.ErrNotFound.
func (r *ParteRepository) GetByID(ctx context.Context, id int64) (*models.Parte, error) {
	p := &models.Parte{}
	query := `
		SELECT id, redactor_id, fecha, direccion, zona, tipo_incidente, fase_alcanzada, descripcion_preliminar, estado, created_at, updated_at
		FROM partes
		WHERE id = $1;
	`
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.RedactorID,
		&p.Fecha,
		&p.Direccion,
		&p.Zona,
		&p.TipoIncidente,
		&p.FaseAlcanzada,
		&p.DescripcionPreliminar,
		&p.Estado,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: parte %d", service.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get parte by id: %w", err)
	}
	return p, nil
}

func (r *ParteRepository) Update(ctx context.Context, p *models.Parte) error {
	query := `
		UPDATE partes SET
			redactor_id = $1,
			fecha = $2,
			direccion = $3,
			zona = $4,
			tipo_incidente = $5,
			fase_alcanzada = $6,
			descripcion_preliminar = $7,
			estado = $8,
			updated_at = NOW()
		WHERE id = $9;
	`
	cmdTag, err := r.q.Exec(ctx, query,
		p.RedactorID,
		p.Fecha,
		p.Direccion,
		p.Zona,
		p.TipoIncidente,
		p.FaseAlcanzada,
		p.DescripcionPreliminar,
		p.Estado,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update parte: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: parte %d", service.ErrNotFound, p.ID)
	}
	return nil
}
