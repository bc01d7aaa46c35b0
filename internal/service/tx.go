package service

import "context"

// TxScope hands out stores bound to one database transaction. Every store call
// made through a scope participates in the same atomic commit/rollback. There
// is deliberately no ambient transaction handle: the scope is passed explicitly
// down every call chain that writes.
type TxScope interface {
	Partes() ParteStore
	Propietarios() PropietarioStore
	Inmuebles() InmuebleStore
	OtrosInmuebles() OtroInmuebleStore
	Vehiculos() VehiculoStore
	Ocupantes() OcupanteStore
}

// TxManager runs a unit of work inside a transaction. If fn returns an error
// the transaction is rolled back and that error is returned unchanged; if the
// commit itself fails the error wraps ErrTransaction.
type TxManager interface {
	Run(ctx context.Context, fn func(scope TxScope) error) error
}
