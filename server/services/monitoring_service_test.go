package services

import (
	"context"
	"testing"
	"time"

	"github.com/janm-comcon/stdtext/artifacts"
	"github.com/janm-comcon/stdtext/polish"
	apperrors "github.com/janm-comcon/stdtext/server/errors"
	"github.com/janm-comcon/stdtext/server/monitoring"
)

func componentByName(t *testing.T, result monitoring.HealthCheckResult, name string) monitoring.ComponentHealth {
	t.Helper()
	for _, c := range result.Components {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no %q component in %+v", name, result.Components)
	return monitoring.ComponentHealth{}
}

func TestHealth_AllComponentsHealthy(t *testing.T) {
	service := NewMonitoringService("1.0.0-test", newTestStore(t), polish.NoopClient{}, nil, nil)

	result := service.Health(context.Background())

	if result.Status != monitoring.HealthStatusHealthy {
		t.Errorf("Status = %q, want healthy", result.Status)
	}
	if result.Version != "1.0.0-test" {
		t.Errorf("Version = %q", result.Version)
	}
	if len(result.Components) != 3 {
		t.Fatalf("components = %d, want artifacts, spell and polish", len(result.Components))
	}

	if c := componentByName(t, result, "artifacts"); c.Status != monitoring.HealthStatusHealthy {
		t.Errorf("artifacts = %+v", c)
	}
	if c := componentByName(t, result, "spell"); c.Status != monitoring.HealthStatusHealthy {
		t.Errorf("spell = %+v", c)
	}
	if c := componentByName(t, result, "polish"); c.Status != monitoring.HealthStatusHealthy {
		t.Errorf("polish = %+v", c)
	}
}

func TestHealth_EmptyStoreIsUnhealthy(t *testing.T) {
	store := artifacts.NewStore(artifacts.LoadOptions{})
	service := NewMonitoringService("1.0.0-test", store, polish.NoopClient{}, nil, nil)

	result := service.Health(context.Background())

	if result.Status != monitoring.HealthStatusUnhealthy {
		t.Errorf("Status = %q, want unhealthy before artifacts load", result.Status)
	}
	if code := monitoring.StatusCode(result.Status); code != 503 {
		t.Errorf("StatusCode = %d, want 503", code)
	}
}

func TestErrorMetrics(t *testing.T) {
	collector := apperrors.NewErrorMetricsCollector()
	collector.RecordError(apperrors.NewValidationError("text is required", nil), "/api/normalize", "req-1")

	service := NewMonitoringService("1.0.0-test", newTestStore(t), polish.NoopClient{}, collector, nil)

	metrics := service.ErrorMetrics()
	if metrics["total_errors"].(int64) != 1 {
		t.Errorf("total_errors = %v", metrics["total_errors"])
	}
}

func TestErrorMetrics_NilCollector(t *testing.T) {
	service := NewMonitoringService("1.0.0-test", newTestStore(t), polish.NoopClient{}, nil, nil)

	if metrics := service.ErrorMetrics(); len(metrics) != 0 {
		t.Errorf("metrics = %v, want empty", metrics)
	}
}

func TestRequestMetrics(t *testing.T) {
	reqMetrics := monitoring.NewRequestMetrics()
	reqMetrics.Record("POST /api/normalize", 200, 12*time.Millisecond)
	reqMetrics.Record("POST /api/normalize", 422, 3*time.Millisecond)
	reqMetrics.Record("GET /api/health", 200, 1*time.Millisecond)

	service := NewMonitoringService("1.0.0-test", newTestStore(t), polish.NoopClient{}, nil, reqMetrics)

	metrics := service.RequestMetrics()
	httpMetrics := metrics["http"].(map[string]interface{})
	if httpMetrics["requests_total"].(int64) != 3 {
		t.Errorf("requests_total = %v", httpMetrics["requests_total"])
	}
	if httpMetrics["requests_error"].(int64) != 1 {
		t.Errorf("requests_error = %v", httpMetrics["requests_error"])
	}

	endpoints := metrics["endpoints"].(map[string]interface{})
	normalize := endpoints["POST /api/normalize"].(map[string]interface{})
	if normalize["count"].(int64) != 2 {
		t.Errorf("normalize count = %v", normalize["count"])
	}
	if normalize["errors"].(int64) != 1 {
		t.Errorf("normalize errors = %v", normalize["errors"])
	}
}

func TestRequestMetrics_NilCollector(t *testing.T) {
	service := NewMonitoringService("1.0.0-test", newTestStore(t), polish.NoopClient{}, nil, nil)

	if metrics := service.RequestMetrics(); len(metrics) != 0 {
		t.Errorf("metrics = %v, want empty", metrics)
	}
}
