package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAccessLog_RecordsStatus(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status/418", nil))

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("want 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["status"] != int64(418) {
		t.Fatalf("want status 418, got %v", fields["status"])
	}
	if fields["path"] != "/status/418" {
		t.Fatalf("unexpected path %v", fields["path"])
	}
}

func TestAccessLog_ImplicitOK(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if got := logs.All()[0].ContextMap()["status"]; got != int64(200) {
		t.Fatalf("handler that never writes should log 200, got %v", got)
	}
}
