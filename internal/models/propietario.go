package models

// Propietario is the party holding title to an affected property or vehicle.
// It is a singleton reference per parte, never part of a reconciled collection.
type Propietario struct {
	ID        int64  `json:"id"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	CI        string `json:"ci,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}
