package models

import (
	"time"
)

// Parte is the root record of one emergency response event.
// It is created on step 1 of the submission flow and enriched on step 2.
type Parte struct {
	ID                     int64     `json:"id"`
	RedactorID             int64     `json:"redactor_id"`
	Fecha                  string    `json:"fecha"`
	Direccion              string    `json:"direccion"`
	Zona                   string    `json:"zona"`
	TipoIncidente          string    `json:"tipo_incidente"`
	FaseAlcanzada          string    `json:"fase_alcanzada"`
	DescripcionPreliminar  string    `json:"descripcion_preliminar"`
	Estado                 string    `json:"estado"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ParteAggregate is the full report with every dependent collection,
// as the two-step client needs it to resume a draft.
type ParteAggregate struct {
	Parte            *Parte              `json:"parte"`
	Propietario      *Propietario        `json:"propietario,omitempty"`
	InmuebleAfectado *InmuebleAfectado   `json:"inmueble_afectado,omitempty"`
	OtrosInmuebles   []*OtroInmueble     `json:"otros_inmuebles"`
	Vehiculos        []*VehiculoAfectado `json:"vehiculos"`
}
