package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConstructorStatusCodes(t *testing.T) {
	cause := fmt.Errorf("cause")
	tests := []struct {
		name     string
		err      *AppError
		wantCode int
	}{
		{"NotFound", NewNotFoundError("missing", cause), http.StatusNotFound},
		{"Validation", NewValidationError("bad input", cause), http.StatusBadRequest},
		{"Unprocessable", NewUnprocessableError("bad artifact", cause), http.StatusUnprocessableEntity},
		{"Internal", NewInternalError("boom", cause), http.StatusInternalServerError},
		{"Conflict", NewConflictError("exists", cause), http.StatusConflict},
		{"BadGateway", NewBadGatewayError("upstream", cause), http.StatusBadGateway},
		{"ServiceUnavailable", NewServiceUnavailableError("down", cause), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode() != tt.wantCode {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.wantCode)
			}
		})
	}
}

func TestInternalErrorHidesDetails(t *testing.T) {
	err := NewInternalError("database exploded", fmt.Errorf("disk full"))

	if err.UserMessage() != "internal server error" {
		t.Errorf("UserMessage() = %q, want generic message", err.UserMessage())
	}
	// Details must still be reachable through the wrapped error.
	if err.Err == nil {
		t.Fatal("internal error should keep the cause for logging")
	}
}

func TestUnwrapSupportsErrorsAs(t *testing.T) {
	cause := fmt.Errorf("root cause")
	appErr := NewValidationError("invalid", cause)
	wrapped := fmt.Errorf("handler: %w", appErr)

	var got *AppError
	if !errors.As(wrapped, &got) {
		t.Fatal("errors.As should find the AppError through wrapping")
	}
	if got.Code != http.StatusBadRequest {
		t.Errorf("Code = %d, want 400", got.Code)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should reach the root cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		if WrapError(nil, "context") != nil {
			t.Error("WrapError(nil) should return nil")
		}
	})

	t.Run("AppError keeps its code", func(t *testing.T) {
		inner := NewNotFoundError("row missing", nil)
		wrapped := WrapError(inner, "lookup failed")
		if wrapped.Code != http.StatusNotFound {
			t.Errorf("Code = %d, want 404", wrapped.Code)
		}
		if wrapped.Message != "lookup failed: row missing" {
			t.Errorf("Message = %q", wrapped.Message)
		}
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		wrapped := WrapError(fmt.Errorf("boom"), "operation failed")
		if wrapped.Code != http.StatusInternalServerError {
			t.Errorf("Code = %d, want 500", wrapped.Code)
		}
	})
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("invalid top_k", nil).WithContext("FindSimilar")
	if err.GetContext() != "FindSimilar" {
		t.Errorf("GetContext() = %q, want FindSimilar", err.GetContext())
	}
}

func TestErrorMetricsCollector(t *testing.T) {
	collector := NewErrorMetricsCollector()

	collector.RecordError(NewValidationError("bad", nil), "/api/similar", "req-1")
	collector.RecordError(NewValidationError("bad", nil), "/api/similar", "req-2")
	collector.RecordError(NewUnprocessableError("bad artifact", nil), "/api/artifacts/reload", "req-3")

	metrics := collector.GetMetrics()
	if metrics["total_errors"].(int64) != 3 {
		t.Errorf("total_errors = %v, want 3", metrics["total_errors"])
	}

	byType := metrics["errors_by_type"].(map[string]int64)
	if byType["ValidationError"] != 2 {
		t.Errorf("ValidationError count = %d, want 2", byType["ValidationError"])
	}
	if byType["UnprocessableError"] != 1 {
		t.Errorf("UnprocessableError count = %d, want 1", byType["UnprocessableError"])
	}

	byEndpoint := metrics["errors_by_endpoint"].(map[string]int64)
	if byEndpoint["/api/similar"] != 2 {
		t.Errorf("/api/similar count = %d, want 2", byEndpoint["/api/similar"])
	}

	last := collector.GetLastErrors(1)
	if len(last) != 1 {
		t.Fatalf("GetLastErrors(1) returned %d records", len(last))
	}
	if last[0].RequestID != "req-3" {
		t.Errorf("newest record request id = %q, want req-3", last[0].RequestID)
	}

	collector.Reset()
	metrics = collector.GetMetrics()
	if metrics["total_errors"].(int64) != 0 {
		t.Errorf("after Reset total_errors = %v, want 0", metrics["total_errors"])
	}
}
