package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"spin_wheel/internal/config/env"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestProvider(t *testing.T) *ServiceProvider {
	t.Helper()
	sp := newServiceProvider(true)
	sp.logger = zap.NewNop()
	sp.wheelCfg = env.DefaultWheelConfig()
	t.Cleanup(func() { sp.WheelService().Close() })
	return sp
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func TestRouter_Health(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	rec := do(t, r, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("status %d body %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_PageAndFragments(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	for _, path := range []string{"/", "/wheel.svg", "/result"} {
		rec := do(t, r, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status %d", path, rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
			t.Errorf("%s: content type %q", path, ct)
		}
	}
}

func TestRouter_Segments(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	rec := do(t, r, http.MethodPut, "/api/segments/3", `{"text":"No crossing"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set label: status %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, http.MethodGet, "/api/state", "")
	if !strings.Contains(rec.Body.String(), "No crossing") {
		t.Fatalf("state does not reflect the label: %s", rec.Body.String())
	}

	rec = do(t, r, http.MethodPut, "/api/segments/99", `{"text":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("out of range: status %d, want 404", rec.Code)
	}

	rec = do(t, r, http.MethodPost, "/api/segments/randomize", "")
	if rec.Code != http.StatusOK {
		t.Errorf("randomize: status %d", rec.Code)
	}
}

func TestRouter_SpinLifecycle(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	rec := do(t, r, http.MethodPost, "/api/spin/cancel", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("cancel while idle: status %d, want 409", rec.Code)
	}

	rec = do(t, r, http.MethodPost, "/api/spin", "")
	if rec.Code != http.StatusAccepted {
		t.Fatalf("spin: status %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, r, http.MethodPost, "/api/spin", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("second spin: status %d, want 409", rec.Code)
	}

	rec = do(t, r, http.MethodPut, "/api/segments/0", `{"text":"x"}`)
	if rec.Code != http.StatusConflict {
		t.Errorf("edit while spinning: status %d, want 409", rec.Code)
	}

	rec = do(t, r, http.MethodPost, "/api/spin/restart", "")
	if rec.Code != http.StatusAccepted {
		t.Errorf("restart: status %d", rec.Code)
	}

	rec = do(t, r, http.MethodPost, "/api/spin/cancel", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("cancel: status %d, want 204", rec.Code)
	}

	rec = do(t, r, http.MethodGet, "/api/stats", "")
	if !strings.Contains(rec.Body.String(), `"cancelled_spins":2`) {
		t.Errorf("stats %s", rec.Body.String())
	}
}

func TestRouter_EmptyWheel(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	rec := do(t, r, http.MethodPut, "/api/segments", `{"segments":[]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("replace: status %d", rec.Code)
	}

	rec = do(t, r, http.MethodPost, "/api/spin", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("spin on empty wheel: status %d, want 422", rec.Code)
	}

	rec = do(t, r, http.MethodGet, "/wheel.svg", "")
	if !strings.Contains(rec.Body.String(), "No segments to display") {
		t.Errorf("wheel %s", rec.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	rec := do(t, r, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	for _, want := range []string{"wheel_spins_started_total", "go_goroutines"} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("metrics lack %s", want)
		}
	}
}

func TestRouter_CORS(t *testing.T) {
	r := newTestProvider(t).Router(context.Background())

	req := httptest.NewRequest(http.MethodOptions, "/api/spin", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("allow origin %q", got)
	}
}
