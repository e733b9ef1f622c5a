package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	models "VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	icache "VibraPulse/internal/service/cache"
	"VibraPulse/internal/service/metrics"
	"VibraPulse/internal/service/ratelimit"
	"VibraPulse/internal/services/signal"
	"VibraPulse/internal/usecase"
	xhttp "VibraPulse/pkg/http"
	xlogger "VibraPulse/pkg/logger"
	"VibraPulse/pkg/queue"

	"github.com/labstack/echo/v4"
)

// AnalysisHandler implements Echo-based HTTP handlers for the analysis
// pipeline: ad-hoc inline analysis, latest-batch sensor analysis for the
// polling dashboard, and async job submission.
type AnalysisHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.Analyzer
	jobs     queue.QueueService
	cache    icache.BytesCache
	cacheTTL time.Duration
	rl       *ratelimit.Limiter
}

func NewAnalysisHandler(logger *xlogger.Logger, analyzer *usecase.Analyzer) *AnalysisHandler {
	metrics.Register()
	return &AnalysisHandler{
		logger:   logger,
		analyzer: analyzer,
		cacheTTL: 15 * time.Second,
		rl:       ratelimit.New(),
	}
}

// SetCache enables short-TTL response caching for the polling endpoint.
func (h *AnalysisHandler) SetCache(c icache.BytesCache, ttl time.Duration) {
	h.cache = c
	if ttl > 0 {
		h.cacheTTL = ttl
	}
}

// SetJobQueue enables the async analysis job endpoint.
func (h *AnalysisHandler) SetJobQueue(q queue.QueueService) { h.jobs = q }

func (h *AnalysisHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/analysis", h.Analyze)
	g.GET("/sensors/:id/analysis", h.SensorAnalysis)
	g.POST("/analysis/jobs", h.EnqueueJob)
}

// Analyze runs the pipeline on a batch supplied inline in the request body.
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	start := time.Now()
	endpoint := "analyze"
	defer func() { metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.AnalyzeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	batch := &models.SampleBatch{
		SensorID:   req.SensorID,
		Timestamp:  time.Now().UTC(),
		SampleRate: req.SampleRate,
		GRange:     req.GRange,
		H:          req.H,
		V:          req.V,
		A:          req.A,
	}
	res, err := h.analyzer.AnalyzeBatch(batch, domrepo.NormalizeAxis(req.Axis), domrepo.NormalizeUnit(req.Unit), req.WarnThreshold, req.CritThreshold)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		if errors.Is(err, signal.ErrInvalidInput) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
		}
		h.logger.Error("analyze usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// SensorAnalysis serves the latest-batch analysis for a registered sensor.
// Dashboard clients poll this endpoint, so responses are briefly cached and
// rate limited per client.
func (h *AnalysisHandler) SensorAnalysis(c echo.Context) error {
	start := time.Now()
	endpoint := "sensor_analysis"
	defer func() { metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.SensorAnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	axis := domrepo.NormalizeAxis(req.Axis)
	unit := domrepo.NormalizeUnit(req.Unit)

	if !h.rl.Allow(c.RealIP()+":analysis", 5, 2) {
		if h.logger != nil {
			h.logger.Warn("analysis rate_limited", xlogger.String("remote", c.RealIP()))
		}
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
	}

	cacheKey := fmt.Sprintf("analysis:%s:%s:%s:%d", req.ID, axis, unit, req.N)
	if h.cache != nil {
		if b, ok, err := h.cache.GetBytes(cacheKey); err != nil {
			h.logger.Warn("analysis cache_get_error", xlogger.Error(err))
		} else if ok {
			h.logger.Debug("analysis cache_hit", xlogger.String("key", cacheKey))
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	res, err := h.analyzer.LatestAnalysis(c.Request().Context(), req.ID, axis, unit, req.N)
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		if errors.Is(err, signal.ErrInvalidInput) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
		}
		h.logger.Error("sensor analysis usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	b, err := json.Marshal(res)
	if err != nil {
		h.logger.Error("analysis marshal_error", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	if h.cache != nil {
		if err := h.cache.SetBytes(cacheKey, b, h.cacheTTL); err != nil {
			h.logger.Warn("analysis cache_set_error", xlogger.Error(err))
		}
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return c.JSONBlob(http.StatusOK, b)
}

// EnqueueJob submits an asynchronous re-analysis job.
func (h *AnalysisHandler) EnqueueJob(c echo.Context) error {
	req := &models.AnalysisJobRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.jobs == nil {
		return xhttp.AppErrorResponse(c, xhttp.InternalError("job queue not configured"))
	}
	err := h.jobs.PublishMessage(c.Request().Context(), usecase.AnalysisJobType, usecase.AnalysisJobPayload{
		SensorID: req.SensorID,
		Unit:     req.Unit,
		Samples:  req.Samples,
	})
	if err != nil {
		h.logger.Error("enqueue analysis job error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.DataResponse(c, http.StatusAccepted, map[string]any{"queued": true, "sensor_id": req.SensorID})
}
