package repository

import (
	"context"
	"fmt"

	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/service"
)

type OtroInmuebleRepository struct {
	q querier
}

func (r *OtroInmuebleRepository) ListByParte(ctx context.Context, parteID int64) ([]*models.OtroInmueble, error) {
	query := `
		SELECT id, parte_id, direccion, nombres, apellidos, ci, telefono
		FROM otros_inmuebles
		WHERE parte_id = $1
		ORDER BY id;
	`
	rows, err := r.q.Query(ctx, query, parteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list otros inmuebles: %w", err)
	}
	defer rows.Close()

	list := make([]*models.OtroInmueble, 0)
	for rows.Next() {
		m := &models.OtroInmueble{}
		err := rows.Scan(
			&m.ID,
			&m.ParteID,
			&m.Direccion,
			&m.Nombres,
			&m.Apellidos,
			&m.CI,
			&m.Telefono,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan otro inmueble row: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating otros inmuebles: %w", err)
	}
	return list, nil
}

func (r *OtroInmuebleRepository) Create(ctx context.Context, m *models.OtroInmueble) (int64, error) {
	query := `
		INSERT INTO otros_inmuebles (parte_id, direccion, nombres, apellidos, ci, telefono)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.q.QueryRow(ctx, query,
		m.ParteID,
		m.Direccion,
		m.Nombres,
		m.Apellidos,
		m.CI,
		m.Telefono,
	).Scan(&m.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create otro inmueble: %w", err)
	}
	return m.ID, nil
}

func (r *OtroInmuebleRepository) Update(ctx context.Context, m *models.OtroInmueble) error {
	query := `
		UPDATE otros_inmuebles SET
			direccion = $1,
			nombres = $2,
			apellidos = $3,
			ci = $4,
			telefono = $5
		WHERE id = $6 AND parte_id = $7;
	`
	cmdTag, err := r.q.Exec(ctx, query,
		m.Direccion,
		m.Nombres,
		m.Apellidos,
		m.CI,
		m.Telefono,
		m.ID,
		m.ParteID,
	)
	if err != nil {
		return fmt.Errorf("failed to update otro inmueble: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: otro inmueble %d under parte %d", service.ErrNotFound, m.ID, m.ParteID)
	}
	return nil
}

func (r *OtroInmuebleRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmdTag, err := r.q.Exec(ctx, `DELETE FROM otros_inmuebles WHERE id = ANY($1);`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete otros inmuebles: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
