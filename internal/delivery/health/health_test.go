package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/aliskhannn/divine-names-bot/internal/delivery/health"
)

func okCheck(_ context.Context) error { return nil }

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		checks     map[string]health.Checker
		wantStatus int
		wantBody   map[string]string
	}{
		{
			name:       "no checks",
			checks:     map[string]health.Checker{},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{},
		},
		{
			name: "all healthy",
			checks: map[string]health.Checker{
				"postgres": health.CheckerFunc(okCheck),
				"redis":    health.CheckerFunc(okCheck),
			},
			wantStatus: http.StatusOK,
			wantBody:   map[string]string{"postgres": "ok", "redis": "ok"},
		},
		{
			name: "redis down",
			checks: map[string]health.Checker{
				"postgres": health.CheckerFunc(okCheck),
				"redis": health.CheckerFunc(func(context.Context) error {
					return errors.New("refused")
				}),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   map[string]string{"postgres": "ok", "redis": "error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := health.NewHandler(zap.NewNop(), tt.checks)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			h.Routes().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q", ct)
			}

			var body map[string]struct{ Status string }
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if len(body) != len(tt.wantBody) {
				t.Errorf("got %d results, want %d", len(body), len(tt.wantBody))
			}
			for name, want := range tt.wantBody {
				if got := body[name].Status; got != want {
					t.Errorf("%s status = %q, want %q", name, got, want)
				}
			}
		})
	}
}

func TestHandlerCheckHasDeadline(t *testing.T) {
	var hasDeadline bool
	h := health.NewHandler(zap.NewNop(), map[string]health.Checker{
		"probe": health.CheckerFunc(func(ctx context.Context) error {
			_, hasDeadline = ctx.Deadline()
			return nil
		}),
	})

	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if !hasDeadline {
		t.Error("check context has no deadline")
	}
}
