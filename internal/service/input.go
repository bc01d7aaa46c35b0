package service

// Submission payloads. A nil ID tags the create branch, a non-nil ID the
// update branch; the distinction is validated once at the workflow boundary
// instead of being re-derived ad hoc per store call.

// ParteInput is the step-1 payload. Fields are pointers so an update can patch
// only what the caller actually sent.
type ParteInput struct {
	ID                    *int64
	RedactorID            *int64
	Fecha                 *string
	Direccion             *string
	Zona                  *string
	TipoIncidente         *string
	FaseAlcanzada         *string
	DescripcionPreliminar *string
	Estado                *string
}

// ItemID implements ChildItem.
func (in ParteInput) ItemID() *int64 { return in.ID }

// CaracteristicasInput carries the parte classification fields merged on
// step 2. The parte id is required there.
type CaracteristicasInput struct {
	ParteID               int64
	TipoIncidente         *string
	FaseAlcanzada         *string
	DescripcionPreliminar *string
	Estado                *string
}

// PropietarioInput is the owner payload, upserted once per step-2 call.
type PropietarioInput struct {
	ID        *int64
	Nombres   string
	Apellidos string
	CI        string
	Telefono  string
	Direccion string
}

// ItemID implements ChildItem.
func (in PropietarioInput) ItemID() *int64 { return in.ID }

// InmuebleInput is the primary affected property payload. Parent references
// are injected by the workflow, never taken from the caller.
type InmuebleInput struct {
	ID               *int64
	TipoConstruccion string
	DanosDescripcion string
	AreaAfectadaM2   float64
	AreaTotalM2      float64
}

// ItemID implements ChildItem.
func (in InmuebleInput) ItemID() *int64 { return in.ID }

// OtroInmuebleInput is one entry of the additional-properties collection.
type OtroInmuebleInput struct {
	ID        *int64
	Direccion string
	Nombres   string
	Apellidos string
	CI        string
	Telefono  string
}

// ItemID implements ChildItem.
func (in OtroInmuebleInput) ItemID() *int64 { return in.ID }

// VehiculoInput is one entry of the vehicle collection, with its nested
// occupant sub-list.
type VehiculoInput struct {
	ID                 *int64
	Marca              string
	Modelo             string
	Placa              string
	Color              string
	Tipo               string
	ConductorNombres   string
	ConductorApellidos string
	ConductorCI        string
	Ocupantes          []OcupanteInput
}

// ItemID implements ChildItem.
func (in VehiculoInput) ItemID() *int64 { return in.ID }

// OcupanteInput is one occupant of a vehicle entry.
type OcupanteInput struct {
	ID        *int64
	Nombres   string
	Apellidos string
	Edad      int
	Rol       string
	Gravedad  string
}

// ItemID implements ChildItem.
func (in OcupanteInput) ItemID() *int64 { return in.ID }

// Step2Input is the full second-step payload.
type Step2Input struct {
	Caracteristicas  CaracteristicasInput
	Propietario      PropietarioInput
	InmuebleAfectado *InmuebleInput
	OtrosInmuebles   []OtroInmuebleInput
	Vehiculos        []VehiculoInput
}

// Step1Result carries the resolved parte id back to the caller.
type Step1Result struct {
	ParteID int64
}

// VehiculoResult exposes the resolved vehicle id and its occupant outcome for
// one submitted vehicle entry, in submission order.
type VehiculoResult struct {
	VehiculoID  int64
	OcupanteIDs []int64
	Ocupantes   ReconcileResult
}

// Step2Result aggregates every identifier the second step resolved, created,
// updated or deleted, so the client can reconcile its own UI state.
type Step2Result struct {
	ParteID        int64
	PropietarioID  int64
	InmuebleID     *int64
	OtrosInmuebles ReconcileResult
	VehiculosDiff  ReconcileResult
	Vehiculos      []VehiculoResult
}
