package service

import "github.com/jarteaga/parte_reporting_system/internal/models"

// Pure field application per entity. Each function takes the persisted record
// by value and returns the patched copy, so partial updates stay auditable and
// testable without a live store.

func applyParteFields(existing models.Parte, in ParteInput) models.Parte {
	if in.RedactorID != nil {
		existing.RedactorID = *in.RedactorID
	}
	if in.Fecha != nil {
		existing.Fecha = *in.Fecha
	}
	if in.Direccion != nil {
		existing.Direccion = *in.Direccion
	}
	if in.Zona != nil {
		existing.Zona = *in.Zona
	}
	if in.TipoIncidente != nil {
		existing.TipoIncidente = *in.TipoIncidente
	}
	if in.FaseAlcanzada != nil {
		existing.FaseAlcanzada = *in.FaseAlcanzada
	}
	if in.DescripcionPreliminar != nil {
		existing.DescripcionPreliminar = *in.DescripcionPreliminar
	}
	if in.Estado != nil {
		existing.Estado = *in.Estado
	}
	return existing
}

// applyCaracteristicas merges the step-2 classification fields onto the parte.
// Identity and location fields are step-1 territory and stay untouched here.
func applyCaracteristicas(existing models.Parte, in CaracteristicasInput) models.Parte {
	if in.TipoIncidente != nil {
		existing.TipoIncidente = *in.TipoIncidente
	}
	if in.FaseAlcanzada != nil {
		existing.FaseAlcanzada = *in.FaseAlcanzada
	}
	if in.DescripcionPreliminar != nil {
		existing.DescripcionPreliminar = *in.DescripcionPreliminar
	}
	if in.Estado != nil {
		existing.Estado = *in.Estado
	}
	return existing
}

func applyPropietarioFields(existing models.Propietario, in PropietarioInput) models.Propietario {
	existing.Nombres = in.Nombres
	existing.Apellidos = in.Apellidos
	existing.CI = in.CI
	existing.Telefono = in.Telefono
	existing.Direccion = in.Direccion
	return existing
}

func applyInmuebleFields(existing models.InmuebleAfectado, in InmuebleInput) models.InmuebleAfectado {
	existing.TipoConstruccion = in.TipoConstruccion
	existing.DanosDescripcion = in.DanosDescripcion
	existing.AreaAfectadaM2 = in.AreaAfectadaM2
	existing.AreaTotalM2 = in.AreaTotalM2
	return existing
}
