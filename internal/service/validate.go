package service

import "fmt"

// Payload shape validation. Runs once at the workflow boundary, before any
// transaction is opened, so a contradictory submission never touches storage.

func validateStep1(in ParteInput) error {
	if in.ID != nil {
		if *in.ID <= 0 {
			return fmt.Errorf("%w: parte id must be positive", ErrInvalidPayload)
		}
		return nil
	}
	if in.RedactorID == nil {
		return fmt.Errorf("%w: redactor_id is required to create a parte", ErrInvalidPayload)
	}
	if in.Fecha == nil || *in.Fecha == "" {
		return fmt.Errorf("%w: fecha is required to create a parte", ErrInvalidPayload)
	}
	return nil
}

func validateStep2(in Step2Input) error {
	if in.Caracteristicas.ParteID <= 0 {
		return fmt.Errorf("%w: caracteristicas requires the parte id", ErrInvalidPayload)
	}

	if id := firstDuplicateID(in.OtrosInmuebles); id != nil {
		return fmt.Errorf("%w: otro inmueble id %d submitted more than once", ErrInvalidPayload, *id)
	}
	if id := firstDuplicateID(in.Vehiculos); id != nil {
		return fmt.Errorf("%w: vehiculo id %d submitted more than once", ErrInvalidPayload, *id)
	}

	for _, v := range in.Vehiculos {
		if id := firstDuplicateID(v.Ocupantes); id != nil {
			return fmt.Errorf("%w: ocupante id %d submitted more than once", ErrInvalidPayload, *id)
		}
		if v.ID != nil {
			continue
		}
		for _, o := range v.Ocupantes {
			if o.ID != nil {
				return fmt.Errorf("%w: cannot reference existing occupant %d under a newly created vehicle", ErrInvalidPayload, *o.ID)
			}
		}
	}
	return nil
}

func firstDuplicateID[T ChildItem](items []T) *int64 {
	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		id := item.ItemID()
		if id == nil {
			continue
		}
		if _, dup := seen[*id]; dup {
			return id
		}
		seen[*id] = struct{}{}
	}
	return nil
}
