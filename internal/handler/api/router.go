package api

import (
	"github.com/labstack/echo/v4"
)

// Router fans RegisterRoutes out to every API handler so the HTTP server
// takes a single handler value.
type Router struct {
	Analysis *AnalysisHandler
	Sensors  *SensorsHandler
}

func NewRouter(analysis *AnalysisHandler, sensors *SensorsHandler) *Router {
	return &Router{Analysis: analysis, Sensors: sensors}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	r.Analysis.RegisterRoutes(e)
	r.Sensors.RegisterRoutes(e)
}
