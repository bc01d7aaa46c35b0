package repository

import (
	"context"
	"fmt"

	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/service"
)

type OcupanteRepository struct {
	q querier
}

func (r *OcupanteRepository) ListByVehiculo(ctx context.Context, vehiculoID int64) ([]*models.Ocupante, error) {
	query := `
		SELECT id, vehiculo_id, nombres, apellidos, edad, rol, gravedad
		FROM ocupantes
		WHERE vehiculo_id = $1
		ORDER BY id;
	`
	rows, err := r.q.Query(ctx, query, vehiculoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ocupantes: %w", err)
	}
	defer rows.Close()

	list := make([]*models.Ocupante, 0)
	for rows.Next() {
		o := &models.Ocupante{}
		err := rows.Scan(
			&o.ID,
			&o.VehiculoID,
			&o.Nombres,
			&o.Apellidos,
			&o.Edad,
			&o.Rol,
			&o.Gravedad,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ocupante row: %w", err)
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ocupantes: %w", err)
	}
	return list, nil
}

func (r *OcupanteRepository) Create(ctx context.Context, o *models.Ocupante) (int64, error) {
	query := `
		INSERT INTO ocupantes (vehiculo_id, nombres, apellidos, edad, rol, gravedad)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := r.q.QueryRow(ctx, query,
		o.VehiculoID,
		o.Nombres,
		o.Apellidos,
		o.Edad,
		o.Rol,
		o.Gravedad,
	).Scan(&o.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create ocupante: %w", err)
	}
	return o.ID, nil
}

func (r *OcupanteRepository) Update(ctx context.Context, o *models.Ocupante) error {
	query := `
		UPDATE ocupantes SET
			nombres = $1,
			apellidos = $2,
			edad = $3,
			rol = $4,
			gravedad = $5
		WHERE id = $6 AND vehiculo_id = $7;
	`
	cmdTag, err := r.q.Exec(ctx, query,
		o.Nombres,
		o.Apellidos,
		o.Edad,
		o.Rol,
		o.Gravedad,
		o.ID,
		o.VehiculoID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ocupante: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: ocupante %d under vehiculo %d", service.ErrNotFound, o.ID, o.VehiculoID)
	}
	return nil
}

func (r *OcupanteRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	cmdTag, err := r.q.Exec(ctx, `DELETE FROM ocupantes WHERE id = ANY($1);`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete ocupantes: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
