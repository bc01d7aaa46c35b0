package v1

// Step1Request is the first submission step: the parte itself. A present id
// updates the existing parte, an absent id creates a new one.
// @Description First submission step of a parte
type Step1Request struct {
	ID                    *int64  `json:"id"`
	RedactorID            *int64  `json:"redactor_id"`
	Fecha                 *string `json:"fecha"`
	Direccion             *string `json:"direccion"`
	Zona                  *string `json:"zona"`
	TipoIncidente         *string `json:"tipo_incidente"`
	FaseAlcanzada         *string `json:"fase_alcanzada"`
	DescripcionPreliminar *string `json:"descripcion_preliminar"`
	Estado                *string `json:"estado" validate:"omitempty,oneof=abierto cerrado"`
}

// Step1Response carries the resolved parte id.
// @Description Resolved parte id after step 1
type Step1Response struct {
	ParteID int64 `json:"parte_id"`
}

// CaracteristicasRequest carries the step-2 classification fields. The parte
// id is mandatory here: step 2 never creates the parte.
type CaracteristicasRequest struct {
	ID                    int64   `json:"id" validate:"required,gt=0"`
	TipoIncidente         *string `json:"tipo_incidente"`
	FaseAlcanzada         *string `json:"fase_alcanzada"`
	DescripcionPreliminar *string `json:"descripcion_preliminar"`
	Estado                *string `json:"estado" validate:"omitempty,oneof=abierto cerrado"`
}

type PropietarioRequest struct {
	ID        *int64 `json:"id"`
	Nombres   string `json:"nombres" validate:"required,min=2,max=255"`
	Apellidos string `json:"apellidos,omitempty"`
	CI        string `json:"ci,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

type InmuebleRequest struct {
	ID               *int64  `json:"id"`
	TipoConstruccion string  `json:"tipo_construccion" validate:"required"`
	DanosDescripcion string  `json:"danos_descripcion,omitempty"`
	AreaAfectadaM2   float64 `json:"area_afectada_m2" validate:"gte=0"`
	AreaTotalM2      float64 `json:"area_total_m2" validate:"gte=0"`
}

type OtroInmuebleRequest struct {
	ID        *int64 `json:"id"`
	Direccion string `json:"direccion" validate:"required"`
	Nombres   string `json:"nombres" validate:"required"`
	Apellidos string `json:"apellidos,omitempty"`
	CI        string `json:"ci,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}

type OcupanteRequest struct {
	ID        *int64 `json:"id"`
	Nombres   string `json:"nombres" validate:"required"`
	Apellidos string `json:"apellidos,omitempty"`
	Edad      int    `json:"edad,omitempty" validate:"gte=0,lte=150"`
	Rol       string `json:"rol" validate:"required,oneof=conductor propietario pasajero"`
	Gravedad  string `json:"gravedad" validate:"required,oneof=ileso herido fallecido"`
}

type VehiculoRequest struct {
	ID                 *int64            `json:"id"`
	Marca              string            `json:"marca" validate:"required"`
	Modelo             string            `json:"modelo,omitempty"`
	Placa              string            `json:"placa,omitempty"`
	Color              string            `json:"color,omitempty"`
	Tipo               string            `json:"tipo,omitempty"`
	ConductorNombres   string            `json:"conductor_nombres,omitempty"`
	ConductorApellidos string            `json:"conductor_apellidos,omitempty"`
	ConductorCI        string            `json:"conductor_ci,omitempty"`
	Ocupantes          []OcupanteRequest `json:"ocupantes" validate:"dive"`
}

// Step2Request is the second submission step: owner, properties, vehicles.
// @Description Second submission step of a parte
type Step2Request struct {
	Caracteristicas  CaracteristicasRequest `json:"caracteristicas" validate:"required"`
	Owner            PropietarioRequest     `json:"owner" validate:"required"`
	InmuebleAfectado *InmuebleRequest       `json:"inmueble_afectado,omitempty"`
	OtrosInmuebles   []OtroInmuebleRequest  `json:"otros_inmuebles" validate:"dive"`
	Vehiculos        []VehiculoRequest      `json:"vehiculos" validate:"dive"`
}

// ReconcileResultResponse mirrors one reconciliation pass for the client.
type ReconcileResultResponse struct {
	CreatedIDs  []int64 `json:"created_ids"`
	UpdatedIDs  []int64 `json:"updated_ids"`
	DeletedIDs  []int64 `json:"deleted_ids"`
	ResolvedIDs []int64 `json:"resolved_ids"`
}

type VehiculoResultResponse struct {
	VehiculoID  int64                   `json:"vehiculo_id"`
	OcupanteIDs []int64                 `json:"ocupante_ids"`
	Ocupantes   ReconcileResultResponse `json:"ocupantes"`
}

// Step2Response exposes every identifier step 2 resolved, created, updated or
// deleted, so the client can reconcile its own UI state.
// @Description Identifiers resolved by step 2
type Step2Response struct {
	ParteID        int64                    `json:"parte_id"`
	PropietarioID  int64                    `json:"propietario_id"`
	InmuebleID     *int64                   `json:"inmueble_id,omitempty"`
	OtrosInmuebles ReconcileResultResponse  `json:"otros_inmuebles"`
	VehiculosDiff  ReconcileResultResponse  `json:"vehiculos_diff"`
	Vehiculos      []VehiculoResultResponse `json:"vehiculos"`
}
