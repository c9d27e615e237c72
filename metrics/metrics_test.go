package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCanonifyTotalIncrements(t *testing.T) {
	Reset()
	CanonifyTotal.WithLabelValues("ok").Inc()
	CanonifyTotal.WithLabelValues("ok").Inc()
	CanonifyTotal.WithLabelValues("parse_error").Inc()

	if got := testutil.ToFloat64(CanonifyTotal.WithLabelValues("ok")); got != 2 {
		t.Fatalf("expected 2 ok outcomes, got %v", got)
	}
	if got := testutil.ToFloat64(CanonifyTotal.WithLabelValues("parse_error")); got != 1 {
		t.Fatalf("expected 1 parse_error outcome, got %v", got)
	}
}

func TestResetRebuildsRegistryWithoutPanicking(t *testing.T) {
	Reset()
	Reset() // a second Reset must not panic on duplicate registration
}

func TestHandlerServesExposition(t *testing.T) {
	Reset()
	CanonifyTotal.WithLabelValues("ok").Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "abcdb_canonify_total") {
		t.Fatalf("expected exposition to mention abcdb_canonify_total, got %q", rec.Body.String())
	}
}
