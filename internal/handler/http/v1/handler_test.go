package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jarteaga/parte_reporting_system/internal/config"
	"github.com/jarteaga/parte_reporting_system/internal/models"
	"github.com/jarteaga/parte_reporting_system/internal/service"
	"github.com/jarteaga/parte_reporting_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockParteService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockParteService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // keep test output quiet

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"X-API-Key": "test-api-key"}
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func TestSubmitStep1_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	reqBody := Step1Request{
		RedactorID: int64Ptr(3),
		Fecha:      strPtr("2026-02-01"),
		Direccion:  strPtr("Av. Heroinas 451"),
	}

	mockService.EXPECT().
		SubmitStep1(gomock.Any(), gomock.Any()).
		Return(service.Step1Result{ParteID: 7}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/partes/paso1", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Step1Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ParteID)
}

func TestSubmitStep1_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitStep1(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/partes/paso1", bytes.NewBufferString(`{"fecha": "2026`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSubmitStep1_Unauthorized(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitStep1(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/partes/paso1", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitStep1_ServiceRejection(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitStep1(gomock.Any(), gomock.Any()).
		Return(service.Step1Result{}, fmt.Errorf("%w: redactor_id is required to create a parte", service.ErrInvalidPayload)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/partes/paso1", bytes.NewBufferString(`{"fecha": "2026-02-01"}`), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "redactor_id")
}

func TestSubmitStep2_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	reqBody := Step2Request{
		Caracteristicas: CaracteristicasRequest{
			ID:            7,
			TipoIncidente: strPtr("incendio"),
		},
		Owner: PropietarioRequest{Nombres: "Luis", Apellidos: "Mamani"},
		Vehiculos: []VehiculoRequest{
			{
				ID:    int64Ptr(101),
				Marca: "Toyota",
				Ocupantes: []OcupanteRequest{
					{Nombres: "Ana", Rol: models.RolConductor, Gravedad: models.GravedadIleso},
				},
			},
			{Marca: "Nissan"},
		},
	}

	mockService.EXPECT().
		SubmitStep2(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.Step2Input) (service.Step2Result, error) {
			assert.Equal(t, int64(7), in.Caracteristicas.ParteID)
			assert.Equal(t, "Luis", in.Propietario.Nombres)
			require.Len(t, in.Vehiculos, 2)
			require.Len(t, in.Vehiculos[0].Ocupantes, 1)
			return service.Step2Result{
				ParteID:       7,
				PropietarioID: 55,
				VehiculosDiff: service.ReconcileResult{
					CreatedIDs:  []int64{103},
					UpdatedIDs:  []int64{101},
					DeletedIDs:  []int64{102},
					ResolvedIDs: []int64{101, 103},
				},
				Vehiculos: []service.VehiculoResult{
					{VehiculoID: 101, OcupanteIDs: []int64{901}},
					{VehiculoID: 103},
				},
			}, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/partes/paso2", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Step2Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ParteID)
	assert.Equal(t, int64(55), resp.PropietarioID)
	assert.Equal(t, []int64{103}, resp.VehiculosDiff.CreatedIDs)
	assert.Equal(t, []int64{102}, resp.VehiculosDiff.DeletedIDs)
	require.Len(t, resp.Vehiculos, 2)
	assert.Equal(t, []int64{901}, resp.Vehiculos[0].OcupanteIDs)
}

func TestSubmitStep2_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SubmitStep2(gomock.Any(), gomock.Any()).Times(0)

	// Owner name missing.
	reqBody := Step2Request{
		Caracteristicas: CaracteristicasRequest{ID: 7},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/partes/paso2", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitStep2_NotFoundMapsTo404(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitStep2(gomock.Any(), gomock.Any()).
		Return(service.Step2Result{}, fmt.Errorf("vehiculo 999 does not belong to parte 7: %w", service.ErrNotFound)).
		Times(1)

	reqBody := Step2Request{
		Caracteristicas: CaracteristicasRequest{ID: 7},
		Owner:           PropietarioRequest{Nombres: "Luis"},
		Vehiculos:       []VehiculoRequest{{ID: int64Ptr(999), Marca: "Toyota"}},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/partes/paso2", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitStep2_TransactionFailureMapsTo500(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		SubmitStep2(gomock.Any(), gomock.Any()).
		Return(service.Step2Result{}, fmt.Errorf("commit: %w", service.ErrTransaction)).
		Times(1)

	reqBody := Step2Request{
		Caracteristicas: CaracteristicasRequest{ID: 7},
		Owner:           PropietarioRequest{Nombres: "Luis"},
	}

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/partes/paso2", bytes.NewBuffer(bodyBytes), authHeader())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "storage failure")
}

func TestGetParte_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	expected := &models.ParteAggregate{
		Parte:       &models.Parte{ID: 7, Estado: "abierto"},
		Propietario: &models.Propietario{ID: 55, Nombres: "Luis"},
	}

	mockService.EXPECT().
		GetParte(gomock.Any(), int64(7)).
		Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/partes/7", nil, authHeader())

	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.ParteAggregate
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Parte)
	assert.Equal(t, int64(7), resp.Parte.ID)
}

func TestGetParte_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().GetParte(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/partes/abc", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetParte_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		GetParte(gomock.Any(), int64(999)).
		Return(nil, fmt.Errorf("parte 999: %w", service.ErrNotFound)).Times(1)

	w := makeRequest(router, "GET", "/api/v1/partes/999", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
