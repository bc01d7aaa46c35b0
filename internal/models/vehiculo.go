package models

// VehiculoAfectado is a vehicle involved in the incident. Each vehicle owns a
// nested collection of occupants.
type VehiculoAfectado struct {
	ID                 int64       `json:"id"`
	ParteID            int64       `json:"parte_id"`
	PropietarioID      int64       `json:"propietario_id"`
	Marca              string      `json:"marca"`
	Modelo             string      `json:"modelo,omitempty"`
	Placa              string      `json:"placa,omitempty"`
	Color              string      `json:"color,omitempty"`
	Tipo               string      `json:"tipo,omitempty"`
	ConductorNombres   string      `json:"conductor_nombres,omitempty"`
	ConductorApellidos string      `json:"conductor_apellidos,omitempty"`
	ConductorCI        string      `json:"conductor_ci,omitempty"`
	Ocupantes          []*Ocupante `json:"ocupantes"`
}

// Occupant roles inside a vehicle.
const (
	RolConductor   = "conductor"
	RolPropietario = "propietario"
	RolPasajero    = "pasajero"
)

// Injury severity levels.
const (
	GravedadIleso     = "ileso"
	GravedadHerido    = "herido"
	GravedadFallecido = "fallecido"
)

// Ocupante is a person present in an affected vehicle. Its id is only ever
// valid under the vehicle it was persisted for.
type Ocupante struct {
	ID         int64  `json:"id"`
	VehiculoID int64  `json:"vehiculo_id"`
	Nombres    string `json:"nombres"`
	Apellidos  string `json:"apellidos,omitempty"`
	Edad       int    `json:"edad,omitempty"`
	Rol        string `json:"rol"`
	Gravedad   string `json:"gravedad"`
}
