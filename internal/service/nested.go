package service

import (
	"context"
	"fmt"
)

// VehiculosResult combines the vehicle-level diff with the per-vehicle
// occupant outcomes, keyed and ordered by the submission.
type VehiculosResult struct {
	Diff      ReconcileResult
	Vehiculos []VehiculoResult
}

// reconcileVehiculos runs the two-level reconciliation: the vehicle collection
// under the parte first, then each submitted vehicle's occupant sub-list under
// its resolved vehicle id. Vehicle-level writes always precede occupant-level
// writes for the corresponding vehicle; vehicles dropped from the submission
// lose their occupants at the store boundary before the vehicle row goes.
func reconcileVehiculos(ctx context.Context, scope TxScope, parteID, propietarioID int64, vehiculos []VehiculoInput) (VehiculosResult, error) {
	var res VehiculosResult

	// An occupant id under a vehicle entry that has no id yet is contradictory:
	// a vehicle that does not exist cannot already have persisted occupants.
	for _, v := range vehiculos {
		if v.ID != nil {
			continue
		}
		for _, o := range v.Ocupantes {
			if o.ID != nil {
				return res, fmt.Errorf("%w: cannot reference existing occupant %d under a newly created vehicle", ErrInvalidPayload, *o.ID)
			}
		}
	}

	vehiculoStore := newVehiculoChildStore(scope.Vehiculos(), propietarioID)
	diff, err := reconcileChildren(ctx, vehiculoStore, parteID, vehiculos)
	if err != nil {
		return res, err
	}
	res.Diff = diff

	ocupanteStore := newOcupanteChildStore(scope.Ocupantes())
	for i, v := range vehiculos {
		vehiculoID := diff.ResolvedIDs[i]
		ocupantes, err := reconcileChildren(ctx, ocupanteStore, vehiculoID, v.Ocupantes)
		if err != nil {
			return res, err
		}
		res.Vehiculos = append(res.Vehiculos, VehiculoResult{
			VehiculoID:  vehiculoID,
			OcupanteIDs: ocupantes.ResolvedIDs,
			Ocupantes:   ocupantes,
		})
	}

	return res, nil
}
