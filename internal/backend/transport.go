package backend

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// AuthTransport adds the backend API key to every outgoing request
type AuthTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	return t.base.RoundTrip(req)
}

// LoggingTransport logs every backend request together with its response or error,
// and records request counts and latency.
type LoggingTransport struct {
	base    http.RoundTripper
	logger  *slog.Logger
	metrics MetricsRecorder
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	t.logger.Info("backend request",
		"method", req.Method,
		"url", req.URL.String(),
	)

	resp, err := t.base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Error("backend request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		t.record(req.Method, "error", duration)
		return nil, err
	}

	level := slog.LevelInfo
	if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	}
	t.logger.Log(req.Context(), level, "backend response",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)
	t.record(req.Method, strconv.Itoa(resp.StatusCode), duration)

	return resp, nil
}

func (t *LoggingTransport) record(method, status string, duration time.Duration) {
	if t.metrics == nil {
		return
	}
	t.metrics.IncrementCounter("backend_request", map[string]string{
		"method": method,
		"status": status,
	})
	t.metrics.RecordProcessingTime("backend_request", duration)
}
