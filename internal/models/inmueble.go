package models

// InmuebleAfectado is the primary affected structure, co-located with the
// parte's own address. At most one per parte.
type InmuebleAfectado struct {
	ID               int64   `json:"id"`
	ParteID          int64   `json:"parte_id"`
	PropietarioID    int64   `json:"propietario_id"`
	TipoConstruccion string  `json:"tipo_construccion"`
	DanosDescripcion string  `json:"danos_descripcion,omitempty"`
	AreaAfectadaM2   float64 `json:"area_afectada_m2"`
	AreaTotalM2      float64 `json:"area_total_m2"`
}

// OtroInmueble is an additional affected structure with its own address and
// the affected party's personal data. Reconciled as a flat collection.
type OtroInmueble struct {
	ID        int64  `json:"id"`
	ParteID   int64  `json:"parte_id"`
	Direccion string `json:"direccion"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	CI        string `json:"ci,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}
