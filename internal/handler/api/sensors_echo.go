package api

import (
	"net/http"
	"time"

	models "VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	xhttp "VibraPulse/pkg/http"
	xlogger "VibraPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SensorsHandler exposes CRUD over the sensor configuration registry.
type SensorsHandler struct {
	logger   *xlogger.Logger
	registry domrepo.SensorRegistry
}

func NewSensorsHandler(logger *xlogger.Logger, registry domrepo.SensorRegistry) *SensorsHandler {
	return &SensorsHandler{logger: logger, registry: registry}
}

func (h *SensorsHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/sensors")
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func (h *SensorsHandler) List(c echo.Context) error {
	sensors, err := h.registry.List(c.Request().Context())
	if err != nil {
		h.logger.Error("sensor list error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, sensors)
}

func (h *SensorsHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("sensor id is required"))
	}
	sensor, err := h.registry.Get(c.Request().Context(), id)
	if err != nil {
		h.logger.Error("sensor get error", xlogger.String("sensor", id), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	if sensor == nil {
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError("sensor not found"))
	}
	return xhttp.SuccessResponse(c, sensor)
}

func (h *SensorsHandler) Create(c echo.Context) error { return h.upsert(c, http.StatusCreated) }

func (h *SensorsHandler) Update(c echo.Context) error { return h.upsert(c, http.StatusOK) }

func (h *SensorsHandler) upsert(c echo.Context, status int) error {
	req := &models.SensorUpsertRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	sensor := &models.Sensor{
		ID:            req.ID,
		Name:          req.Name,
		Location:      req.Location,
		GRange:        req.GRange,
		SampleRate:    req.SampleRate,
		WarnThreshold: req.WarnThreshold,
		CritThreshold: req.CritThreshold,
		UpdatedAt:     time.Now().UTC(),
	}
	if err := h.registry.Put(c.Request().Context(), sensor); err != nil {
		h.logger.Error("sensor put error", xlogger.String("sensor", sensor.ID), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.DataResponse(c, status, sensor)
}

func (h *SensorsHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError("sensor id is required"))
	}
	if err := h.registry.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("sensor delete error", xlogger.String("sensor", id), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, map[string]any{"deleted": id})
}
