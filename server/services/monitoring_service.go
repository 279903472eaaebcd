package services

import (
	"context"
	"fmt"
	"time"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/polish"
	apperrors "github.com/janm-comcon/stdtext/server/errors"
	"github.com/janm-comcon/stdtext/server/monitoring"
	"github.com/janm-comcon/stdtext/spell"
)

// MonitoringService aggregates component health, error metrics and
// request metrics.
type MonitoringService struct {
	health     *monitoring.HealthChecker
	errMetrics *apperrors.ErrorMetricsCollector
	reqMetrics *monitoring.RequestMetrics
}

// NewMonitoringService creates the service and registers the standard
// component checks: artifacts, spell engine and polish client.
func NewMonitoringService(
	version string,
	store *artifacts.Store,
	polishClient polish.Client,
	errMetrics *apperrors.ErrorMetricsCollector,
	reqMetrics *monitoring.RequestMetrics,
) *MonitoringService {
	health := monitoring.NewHealthChecker(version)
	health.RegisterComponent("artifacts", artifactsCheck(store))
	health.RegisterComponent("spell", spellCheck(store))
	health.RegisterComponent("polish", polishCheck(polishClient))

	return &MonitoringService{
		health:     health,
		errMetrics: errMetrics,
		reqMetrics: reqMetrics,
	}
}

// Health runs all component checks.
func (ms *MonitoringService) Health(ctx context.Context) monitoring.HealthCheckResult {
	return ms.health.Check(ctx)
}

// HealthChecker exposes the underlying checker for probe handlers.
func (ms *MonitoringService) HealthChecker() *monitoring.HealthChecker {
	return ms.health
}

// ErrorMetrics returns the collected error metrics.
func (ms *MonitoringService) ErrorMetrics() map[string]interface{} {
	if ms.errMetrics == nil {
		return map[string]interface{}{}
	}
	return ms.errMetrics.GetMetrics()
}

// RequestMetrics returns the collected request metrics.
func (ms *MonitoringService) RequestMetrics() map[string]interface{} {
	if ms.reqMetrics == nil {
		return map[string]interface{}{}
	}
	return ms.reqMetrics.GetMetrics()
}

// artifactsCheck reports whether a snapshot is loaded and how stale it
// is.
func artifactsCheck(store *artifacts.Store) monitoring.HealthCheckFunc {
	return func(ctx context.Context) monitoring.ComponentHealth {
		now := time.Now()
		snapshot := store.Current()
		if snapshot == nil {
			return monitoring.ComponentHealth{
				Name:      "artifacts",
				Status:    monitoring.HealthStatusUnhealthy,
				Message:   "no artifact snapshot loaded",
				Timestamp: now,
			}
		}

		return monitoring.ComponentHealth{
			Name:   "artifacts",
			Status: monitoring.HealthStatusHealthy,
			Message: fmt.Sprintf("model %s, %d rows, loaded %s",
				snapshot.ModelVersion(), snapshot.Rows(), snapshot.LoadedAt.Format(time.RFC3339)),
			Timestamp: now,
		}
	}
}

// spellCheck reports which engine serves corrections. Running on the
// corpus fallback is degraded: corrections work but rank on weaker
// frequencies.
func spellCheck(store *artifacts.Store) monitoring.HealthCheckFunc {
	return func(ctx context.Context) monitoring.ComponentHealth {
		now := time.Now()
		snapshot := store.Current()
		if snapshot == nil {
			return monitoring.ComponentHealth{
				Name:      "spell",
				Status:    monitoring.HealthStatusUnhealthy,
				Message:   "no artifact snapshot loaded",
				Timestamp: now,
			}
		}

		if snapshot.SpellMode() == spell.ModeFallback {
			return monitoring.ComponentHealth{
				Name:      "spell",
				Status:    monitoring.HealthStatusDegraded,
				Message:   "running on corpus fallback engine, no dictionary artifact",
				Timestamp: now,
			}
		}

		return monitoring.ComponentHealth{
			Name:      "spell",
			Status:    monitoring.HealthStatusHealthy,
			Message:   "primary dictionary engine",
			Timestamp: now,
		}
	}
}

// polishCheck reports whether the LLM polish pass is configured.
// Disabled is a deliberate state, not a fault.
func polishCheck(client polish.Client) monitoring.HealthCheckFunc {
	return func(ctx context.Context) monitoring.ComponentHealth {
		now := time.Now()
		if client == nil || !client.Enabled() {
			return monitoring.ComponentHealth{
				Name:      "polish",
				Status:    monitoring.HealthStatusHealthy,
				Message:   "disabled",
				Timestamp: now,
			}
		}

		return monitoring.ComponentHealth{
			Name:      "polish",
			Status:    monitoring.HealthStatusHealthy,
			Message:   "enabled",
			Timestamp: now,
		}
	}
}
