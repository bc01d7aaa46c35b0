package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/service"
)

type PropietarioRepository struct {
	q querier
}

func (r *PropietarioRepository) Create(ctx context.Context, p *models.Propietario) (int64, error) {
	query := `
		INSERT INTO propietarios (nombres, apellidos, ci, telefono, direccion)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.q.QueryRow(ctx, query,
		p.Nombres,
		p.Apellidos,
		p.CI,
		p.Telefono,
		p.Direccion,
	).Scan(&p.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to create propietario: %w", err)
	}
	return p.ID, nil
}

func (r *PropietarioRepository) GetByID(ctx context.Context, id int64) (*models.Propietario, error) {
	p := &models.Propietario{}
	query := `
		SELECT id, nombres, apellidos, ci, telefono, direccion
		FROM propietarios
		WHERE id = $1;
	`
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Nombres,
		&p.Apellidos,
		&p.CI,
		&p.Telefono,
		&p.Direccion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: propietario %d", service.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get propietario by id: %w", err)
	}
	return p, nil
}

func (r *PropietarioRepository) Update(ctx context.Context, p *models.Propietario) error {
	query := `
		UPDATE propietarios SET
			nombres = $1,
			apellidos = $2,
			ci = $3,
			telefono = $4,
			direccion = $5
		WHERE id = $6;
	`
	cmdTag, err := r.q.Exec(ctx, query,
		p.Nombres,
		p.Apellidos,
		p.CI,
		p.Telefono,
		p.Direccion,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update propietario: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: propietario %d", service.ErrNotFound, p.ID)
	}
	return nil
}
