package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/theabolton/abcdb/log"
	"github.com/theabolton/abcdb/metrics"
)

func TestHandleCanonifySuccess(t *testing.T) {
	metrics.Reset()
	req := httptest.NewRequest(http.MethodPost, "/v1/canonify", strings.NewReader("A1"))
	rec := httptest.NewRecorder()

	handleCanonify(rec, req, log.WithField("test", true))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "A" {
		t.Fatalf("expected body %q, got %q", "A", got)
	}
}

func TestHandleCanonifyParseError(t *testing.T) {
	metrics.Reset()
	req := httptest.NewRequest(http.MethodPost, "/v1/canonify", strings.NewReader(`"unterminated`))
	rec := httptest.NewRecorder()

	handleCanonify(rec, req, log.WithField("test", true))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestHandleCanonifyRejectsNonPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/canonify", nil)
	rec := httptest.NewRecorder()

	handleCanonify(rec, req, log.WithField("test", true))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	handleHealthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", rec.Body.String())
	}
}

func TestCanonifyRecoveredSuccess(t *testing.T) {
	result, err := canonifyRecovered("A1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "A" {
		t.Fatalf("expected %q, got %q", "A", result)
	}
}
