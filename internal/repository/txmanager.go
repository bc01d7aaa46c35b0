package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jarteaga/parte_reporting_system/internal/service"
)

// querier is the subset of pgx operations the stores need. pgx.Tx satisfies
// it, which is how every store call inside a scope lands on the same
// transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxManager implements service.TxManager on a pgx connection pool.
type TxManager struct {
	db *pgxpool.Pool
}

func NewTxManager(db *pgxpool.Pool) *TxManager {
	return &TxManager{db: db}
}

// Run executes fn inside one database transaction. Errors returned by fn roll
// the transaction back and propagate unchanged; begin/commit/rollback failures
// surface as service.ErrTransaction.
func (m *TxManager) Run(ctx context.Context, fn func(scope service.TxScope) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: could not begin transaction: %v", service.ErrTransaction, err)
	}

	if err := fn(&txScope{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w: rollback failed: %v (unit of work error: %v)", service.ErrTransaction, rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit failed: %v", service.ErrTransaction, err)
	}
	return nil
}

// txScope hands out stores bound to one open transaction.
type txScope struct {
	tx pgx.Tx
}

func (s *txScope) Partes() service.ParteStore                { return &ParteRepository{q: s.tx} }
func (s *txScope) Propietarios() service.PropietarioStore    { return &PropietarioRepository{q: s.tx} }
func (s *txScope) Inmuebles() service.InmuebleStore          { return &InmuebleRepository{q: s.tx} }
func (s *txScope) OtrosInmuebles() service.OtroInmuebleStore { return &OtroInmuebleRepository{q: s.tx} }
func (s *txScope) Vehiculos() service.VehiculoStore          { return &VehiculoRepository{q: s.tx} }
func (s *txScope) Ocupantes() service.OcupanteStore          { return &OcupanteRepository{q: s.tx} }
