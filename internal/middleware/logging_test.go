package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	handler := chimw.RequestID(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/missing", nil))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}

	ok := entries[0]
	if ok.Level != zapcore.DebugLevel {
		t.Errorf("2xx logged at %s", ok.Level)
	}
	fields := ok.ContextMap()
	if fields["path"] != "/healthz" || fields["status"] != int64(200) || fields["bytes"] != int64(2) {
		t.Errorf("fields %v", fields)
	}
	if fields["request_id"] == "" || fields["request_id"] == nil {
		t.Error("request id not logged")
	}

	missing := entries[1]
	if missing.Level != zapcore.WarnLevel {
		t.Errorf("4xx logged at %s", missing.Level)
	}
	if missing.ContextMap()["status"] != int64(404) {
		t.Errorf("fields %v", missing.ContextMap())
	}
}
