package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jarteaga/parte_reporting_system/internal/config"
	"github.com/jarteaga/parte_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	parteService service.ParteService
	logger       *logrus.Logger
	validate     *validator.Validate
	cfg          *config.Config
}

func NewHandler(parteService service.ParteService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		parteService: parteService,
		logger:       logger,
		validate:     validator.New(),
		cfg:          cfg,
	}
}

// @Summary Submit parte step 1
// @Description Create a new parte, or update an existing one when the payload carries an id. Requires API key.
// @Tags Partes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param parte body Step1Request true "Step 1 payload"
// @Success 200 {object} Step1Response
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parte not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /partes/paso1 [post]
func (h *Handler) submitStep1(c *gin.Context) {
	var input Step1Request
	log := h.logger.WithField("method", "submitStep1")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.parteService.SubmitStep1(c.Request.Context(), step1ToInput(input))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, Step1Response{ParteID: res.ParteID})
}

// @Summary Submit parte step 2
// @Description Merge the classification fields and reconcile owner, properties, vehicles and occupants against the submission. Requires API key.
// @Tags Partes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param parte body Step2Request true "Step 2 payload"
// @Success 200 {object} Step2Response
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Referenced entity not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /partes/paso2 [post]
func (h *Handler) submitStep2(c *gin.Context) {
	var input Step2Request
	log := h.logger.WithField("method", "submitStep2")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.parteService.SubmitStep2(c.Request.Context(), step2ToInput(input))
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, step2ToResponse(res))
}

// @Summary Get a parte aggregate
// @Description Get the full parte with owner, properties, vehicles and occupants. Requires API key.
// @Tags Partes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Parte ID"
// @Success 200 {object} models.ParteAggregate
// @Failure 400 {object} map[string]string "Invalid parte ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Parte not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /partes/{id} [get]
func (h *Handler) getParte(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid parte ID"})
		return
	}
	log := h.logger.WithField("method", "getParte").WithField("id", id)

	agg, err := h.parteService.GetParte(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondServiceError maps the service error taxonomy onto status codes, so
// clients can tell bad input from missing references from storage trouble.
func (h *Handler) respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPayload):
		log.WithError(err).Warn("Invalid submission")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		log.WithError(err).Warn("Referenced entity not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTransaction):
		log.WithError(err).Error("Storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
