package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	h := NewRequestIDMiddleware().Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/workouts", nil))
	if !strings.HasPrefix(seen, "req_") || len(seen) != len("req_")+requestIDLength {
		t.Fatalf("generated request id = %q", seen)
	}
	if rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("response header = %q, want %q", rec.Header().Get(RequestIDHeader), seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req.Header.Set(RequestIDHeader, "upstream-1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if seen != "upstream-1" {
		t.Fatalf("inbound request id not kept: %q", seen)
	}
}

func TestLoggerMiddleware(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	hook := test.NewLocal(log)

	h := NewRequestIDMiddleware().Handle(NewLoggerMiddleware(log).Handle(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}),
	))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/workouts?page=x", nil))

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatalf("no access log entry")
	}
	if entry.Level != logrus.WarnLevel {
		t.Fatalf("level = %s, want warning", entry.Level)
	}
	if entry.Data["status"] != http.StatusBadRequest || entry.Data["path"] != "/workouts" || entry.Data["query"] != "page=x" {
		t.Fatalf("fields = %v", entry.Data)
	}
	if id, _ := entry.Data["request_id"].(string); id == "" {
		t.Fatalf("request_id missing from access log")
	}
}

func TestCORSMiddleware(t *testing.T) {
	called := false
	h := NewCORSMiddleware("").Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/workouts", nil))
	if called || rec.Code != http.StatusNoContent {
		t.Fatalf("preflight: called=%v code=%d, want false/204", called, rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("allow origin = %q", rec.Header().Get("Access-Control-Allow-Origin"))
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/workouts", nil))
	if !called {
		t.Fatalf("GET not passed through")
	}
}
