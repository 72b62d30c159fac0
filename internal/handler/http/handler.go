package http

import (
	"github.com/MKhiriev/go-user-service/internal/config"
	"github.com/MKhiriev/go-user-service/internal/logger"
	"github.com/MKhiriev/go-user-service/internal/metrics"
	"github.com/MKhiriev/go-user-service/internal/service"
	"github.com/MKhiriev/go-user-service/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	metrics  metrics.Recorder
	gatherer prometheus.Gatherer
	traceIDs *utils.UUIDGenerator

	// rateLimit is the number of requests per minute accepted from one IP.
	rateLimit int

	logger *logger.Logger
}

// NewHandler creates the HTTP handler. Request metrics are registered in
// registry and served from it on /metrics.
func NewHandler(services *service.Services, cfg config.Server, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		metrics:   metrics.NewCollector(registry),
		gatherer:  registry,
		traceIDs:  utils.NewUUIDGenerator(),
		rateLimit: cfg.RateLimit,
		logger:    logger,
	}
}
