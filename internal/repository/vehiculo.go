package repository

import (
	"context"
	"fmt"

	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/service"
)

type VehiculoRepository struct {
	q querier
}

func (r *VehiculoRepository) ListByParte(ctx context.Context, parteID int64) ([]*models.VehiculoAfectado, error) {
	query := `
		SELECT id, parte_id, propietario_id, marca, modelo, placa, color, tipo, conductor_nombres, conductor_apellidos, conductor_ci
		FROM vehiculos_afectados
		WHERE parte_id = $1
		ORDER BY id;
	`
	rows, err := r.q.Query(ctx, query, parteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehiculos afectados: %w", err)
	}
	defer rows.Close()

	list := make([]*models.VehiculoAfectado, 0)
	for rows.Next() {
		v := &models.VehiculoAfectado{}
		err := rows.Scan(
			&v.ID,
			&v.ParteID,
			&v.PropietarioID,
			&v.Marca,
			&v.Modelo,
			&v.Placa,
			&v.Color,
			&v.Tipo,
			&v.ConductorNombres,
			&v.ConductorApellidos,
			&v.ConductorCI,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehiculo row: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehiculos: %w", err)
	}
	return list, nil
}

func (r *VehiculoRepository) Create(ctx context.Context, v *models.VehiculoAfectado) (int64, error) {
	query := `
		INSERT INTO vehiculos_afectados (parte_id, propietario_id, marca, modelo, placa, color, tipo, conductor_nombres, conductor_apellidos, conductor_ci)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id;
	`
	err := r.q.QueryRow(ctx, query,
		v.ParteID,
		v.PropietarioID,
		v.Marca,
		v.Modelo,
		v.Placa,
		v.Color,
		v.Tipo,
		v.ConductorNombres,
		v.ConductorApellidos,
		v.ConductorCI,
	).Scan(&v.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create vehiculo afectado: %w", err)
	}
	return v.ID, nil
}

func (r *VehiculoRepository) Update(ctx context.Context, v *models.VehiculoAfectado) error {
	query := `
		UPDATE vehiculos_afectados SET
			propietario_id = $1,
			marca = $2,
			modelo = $3,
			placa = $4,
			color = $5,
			tipo = $6,
			conductor_nombres = $7,
			conductor_apellidos = $8,
			conductor_ci = $9
		WHERE id = $10 AND parte_id = $11;
	`
	cmdTag, err := r.q.Exec(ctx, query,
		v.PropietarioID,
		v.Marca,
		v.Modelo,
		v.Placa,
		v.Color,
		v.Tipo,
		v.ConductorNombres,
		v.ConductorApellidos,
		v.ConductorCI,
		v.ID,
		v.ParteID,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehiculo afectado: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: vehiculo %d under parte %d", service.ErrNotFound, v.ID, v.ParteID)
	}
	return nil
}

// DeleteMany removes the vehicles and their occupants. Occupants go first in
// the same transaction, so the schema-level cascade is only a second line of
// defense.
func (r *VehiculoRepository) DeleteMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM ocupantes WHERE vehiculo_id = ANY($1);`, ids); err != nil {
		return 0, fmt.Errorf("failed to delete ocupantes of vehiculos: %w", err)
	}
	cmdTag, err := r.q.Exec(ctx, `DELETE FROM vehiculos_afectados WHERE id = ANY($1);`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete vehiculos afectados: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
