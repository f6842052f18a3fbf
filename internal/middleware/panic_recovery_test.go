package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"itapay-admin/internal/errors"
	"itapay-admin/internal/ui"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

// PanicRecoveryTestSuite defines the test suite for panic recovery middleware
type PanicRecoveryTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	logs    *bytes.Buffer
	handler echo.MiddlewareFunc
}

// SetupTest runs before each test
func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.logs = &bytes.Buffer{}
	s.handler = PanicRecovery(slog.New(slog.NewJSONHandler(s.logs, nil)))
}

// TestPanicRecoveryTestSuite runs the test suite
func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

// TestPanicRecovery_ErrorResponseAndLog tests the JSON body and the structured log entry
func (s *PanicRecoveryTestSuite) TestPanicRecovery_ErrorResponseAndLog() {
	c, rec := s.newContext(httptest.NewRequest(http.MethodPost, "/customers/cus_1/approve", nil))
	c.SetPath("/customers/:id/:action")
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := s.handler(func(c echo.Context) error {
		panic("decision map missing")
	})

	s.NotPanics(func() { _ = handler(c) })

	s.Equal(http.StatusInternalServerError, rec.Code)
	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
	s.NotContains(rec.Body.String(), "decision map missing")

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(s.logs.Bytes(), &entry))
	s.Equal("ERROR", entry["level"])
	s.Equal("Panic recovered", entry["msg"])
	s.Equal("test-trace-id", entry["trace_id"])
	s.Equal("decision map missing", entry["panic"])
	s.Equal("/customers/:id/:action", entry["route"])
	s.Equal(http.MethodPost, entry["method"])
	s.Contains(entry["stack_trace"], "runtime/debug.Stack")
}

// TestPanicRecovery_CountsByRoute tests the recovered panic counter
func (s *PanicRecoveryTestSuite) TestPanicRecovery_CountsByRoute() {
	counter := panicsRecoveredTotal.WithLabelValues("/accounts/:id")
	before := testutil.ToFloat64(counter)

	handler := s.handler(func(c echo.Context) error {
		panic("boom")
	})
	for i := 0; i < 2; i++ {
		c, _ := s.newContext(httptest.NewRequest(http.MethodGet, "/accounts/acc_1", nil))
		c.SetPath("/accounts/:id")
		s.NotPanics(func() { _ = handler(c) })
	}

	s.Equal(before+2, testutil.ToFloat64(counter))
}

// TestPanicRecovery_NoTraceIDOrRoute tests the fallbacks when RequestID and routing have not run
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoTraceIDOrRoute() {
	unmatched := panicsRecoveredTotal.WithLabelValues("unmatched")
	before := testutil.ToFloat64(unmatched)
	c, rec := s.newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	handler := s.handler(func(c echo.Context) error {
		panic("test panic")
	})

	s.NotPanics(func() { _ = handler(c) })

	var errorResponse errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	s.Equal("unknown", errorResponse.Error.TraceID)
	s.Equal(before+1, testutil.ToFloat64(unmatched))
}

// TestPanicRecovery_NormalFlow tests that middleware doesn't interfere with normal flow
func (s *PanicRecoveryTestSuite) TestPanicRecovery_NormalFlow() {
	c, rec := s.newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	handler := s.handler(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Zero(s.logs.Len())
}

// TestPanicRecovery_DifferentPanicTypes tests recovery from different panic types
func (s *PanicRecoveryTestSuite) TestPanicRecovery_DifferentPanicTypes() {
	testCases := []struct {
		name      string
		panicWith any
	}{
		{"String panic", "string panic"},
		{"Int panic", 42},
		{"Error panic", fmt.Errorf("nil map write")},
		{"Wrapped error panic", fmt.Errorf("closing: %w", fmt.Errorf("other"))},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, rec := s.newContext(httptest.NewRequest(http.MethodGet, "/", nil))

			handler := s.handler(func(c echo.Context) error {
				panic(tc.panicWith)
			})

			s.NotPanics(func() { _ = handler(c) })
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}

// TestPanicRecovery_AbortHandlerIsRepanicked tests that net/http's abort sentinel passes through
func (s *PanicRecoveryTestSuite) TestPanicRecovery_AbortHandlerIsRepanicked() {
	for _, abort := range []error{
		http.ErrAbortHandler,
		fmt.Errorf("client went away: %w", http.ErrAbortHandler),
	} {
		c, rec := s.newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		handler := s.handler(func(c echo.Context) error {
			panic(abort)
		})

		s.PanicsWithError(abort.Error(), func() { _ = handler(c) })
		s.False(c.Response().Committed)
		s.Zero(rec.Body.Len())
	}
	s.Zero(s.logs.Len())
}

// TestPanicRecovery_BrowserGetsErrorPage tests that browsers see the error page
func (s *PanicRecoveryTestSuite) TestPanicRecovery_BrowserGetsErrorPage() {
	renderer, err := ui.NewRenderer()
	s.Require().NoError(err)
	s.echo.Renderer = renderer

	req := httptest.NewRequest(http.MethodGet, "/customers/cus_1", nil)
	req.Header.Set(echo.HeaderAccept, "text/html")
	c, rec := s.newContext(req)
	c.Set(TraceIDContextKey, "test-trace-id")

	handler := s.handler(func(c echo.Context) error {
		panic("template data missing")
	})

	s.NotPanics(func() { _ = handler(c) })

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	s.Contains(rec.Body.String(), "test-trace-id")
	s.NotContains(rec.Body.String(), "template data missing")
}

// TestPanicRecovery_CommittedResponse tests that a partially written response is left alone
func (s *PanicRecoveryTestSuite) TestPanicRecovery_CommittedResponse() {
	c, rec := s.newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	handler := s.handler(func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("late panic")
	})

	s.NotPanics(func() { _ = handler(c) })

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
	s.Contains(s.logs.String(), "late panic")
}
