package v1

import "github.com/jarteaga/parte_reporting_system/internal/service"

func step1ToInput(req Step1Request) service.ParteInput {
	return service.ParteInput{
		ID:                    req.ID,
		RedactorID:            req.RedactorID,
		Fecha:                 req.Fecha,
		Direccion:             req.Direccion,
		Zona:                  req.Zona,
		TipoIncidente:         req.TipoIncidente,
		FaseAlcanzada:         req.FaseAlcanzada,
		DescripcionPreliminar: req.DescripcionPreliminar,
		Estado:                req.Estado,
	}
}

func step2ToInput(req Step2Request) service.Step2Input {
	in := service.Step2Input{
		Caracteristicas: service.CaracteristicasInput{
			ParteID:               req.Caracteristicas.ID,
			TipoIncidente:         req.Caracteristicas.TipoIncidente,
			FaseAlcanzada:         req.Caracteristicas.FaseAlcanzada,
			DescripcionPreliminar: req.Caracteristicas.DescripcionPreliminar,
			Estado:                req.Caracteristicas.Estado,
		},
		Propietario: service.PropietarioInput{
			ID:        req.Owner.ID,
			Nombres:   req.Owner.Nombres,
			Apellidos: req.Owner.Apellidos,
			CI:        req.Owner.CI,
			Telefono:  req.Owner.Telefono,
			Direccion: req.Owner.Direccion,
		},
	}

	if req.InmuebleAfectado != nil {
		in.InmuebleAfectado = &service.InmuebleInput{
			ID:               req.InmuebleAfectado.ID,
			TipoConstruccion: req.InmuebleAfectado.TipoConstruccion,
			DanosDescripcion: req.InmuebleAfectado.DanosDescripcion,
			AreaAfectadaM2:   req.InmuebleAfectado.AreaAfectadaM2,
			AreaTotalM2:      req.InmuebleAfectado.AreaTotalM2,
		}
	}

	for _, o := range req.OtrosInmuebles {
		in.OtrosInmuebles = append(in.OtrosInmuebles, service.OtroInmuebleInput{
			ID:        o.ID,
			Direccion: o.Direccion,
			Nombres:   o.Nombres,
			Apellidos: o.Apellidos,
			CI:        o.CI,
			Telefono:  o.Telefono,
		})
	}

	for _, v := range req.Vehiculos {
		vin := service.VehiculoInput{
			ID:                 v.ID,
			Marca:              v.Marca,
			Modelo:             v.Modelo,
			Placa:              v.Placa,
			Color:              v.Color,
			Tipo:               v.Tipo,
			ConductorNombres:   v.ConductorNombres,
			ConductorApellidos: v.ConductorApellidos,
			ConductorCI:        v.ConductorCI,
		}
		for _, o := range v.Ocupantes {
			vin.Ocupantes = append(vin.Ocupantes, service.OcupanteInput{
				ID:        o.ID,
				Nombres:   o.Nombres,
				Apellidos: o.Apellidos,
				Edad:      o.Edad,
				Rol:       o.Rol,
				Gravedad:  o.Gravedad,
			})
		}
		in.Vehiculos = append(in.Vehiculos, vin)
	}

	return in
}

func reconcileToResponse(res service.ReconcileResult) ReconcileResultResponse {
	return ReconcileResultResponse{
		CreatedIDs:  res.CreatedIDs,
		UpdatedIDs:  res.UpdatedIDs,
		DeletedIDs:  res.DeletedIDs,
		ResolvedIDs: res.ResolvedIDs,
	}
}

func step2ToResponse(res service.Step2Result) Step2Response {
	out := Step2Response{
		ParteID:        res.ParteID,
		PropietarioID:  res.PropietarioID,
		InmuebleID:     res.InmuebleID,
		OtrosInmuebles: reconcileToResponse(res.OtrosInmuebles),
		VehiculosDiff:  reconcileToResponse(res.VehiculosDiff),
	}
	for _, v := range res.Vehiculos {
		out.Vehiculos = append(out.Vehiculos, VehiculoResultResponse{
			VehiculoID:  v.VehiculoID,
			OcupanteIDs: v.OcupanteIDs,
			Ocupantes:   reconcileToResponse(v.Ocupantes),
		})
	}
	return out
}
