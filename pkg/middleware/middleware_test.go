package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/inventory-intelligence-api/pkg/log"
)

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name        string
		allowed     []string
		origin      string
		method      string
		wantStatus  int
		wantAllowed string
	}{
		{
			name:        "Origem liberada",
			allowed:     []string{"http://localhost:3000"},
			origin:      "http://localhost:3000",
			method:      http.MethodGet,
			wantStatus:  http.StatusTeapot,
			wantAllowed: "http://localhost:3000",
		},
		{
			name:       "Origem não liberada",
			allowed:    []string{"http://localhost:3000"},
			origin:     "https://evil.example",
			method:     http.MethodGet,
			wantStatus: http.StatusTeapot,
		},
		{
			name:        "Curinga libera qualquer origem",
			allowed:     []string{"*"},
			origin:      "https://shop.example",
			method:      http.MethodGet,
			wantStatus:  http.StatusTeapot,
			wantAllowed: "https://shop.example",
		},
		{
			name:        "Preflight responde 200 sem chamar o próximo handler",
			allowed:     []string{"http://localhost:3000"},
			origin:      "http://localhost:3000",
			method:      http.MethodOptions,
			wantStatus:  http.StatusOK,
			wantAllowed: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/cron/status", nil)
			req.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()

			Cors(tt.allowed)(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantAllowed, recorder.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_PropagaCorrelationID(t *testing.T) {
	log.SetupTestLogger()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Reaproveita o ID recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set(CorrelationIDHeader, "abc-123")
		recorder := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", recorder.Header().Get(CorrelationIDHeader))
	})

	t.Run("Gera um ID quando ausente", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		recorder := httptest.NewRecorder()

		LoggingMiddleware()(next).ServeHTTP(recorder, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, recorder.Header().Get(CorrelationIDHeader))
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/stores/1/intelligence", nil)
	recorder := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		LogPanicMiddleware()(panicking).ServeHTTP(recorder, req)
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRV_001")
}

func TestJSONBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	tests := []struct {
		name        string
		contentType string
		wantStatus  int
	}{
		{name: "JSON aceito", contentType: "application/json", wantStatus: http.StatusAccepted},
		{name: "JSON com charset aceito", contentType: "application/json; charset=utf-8", wantStatus: http.StatusAccepted},
		{name: "Formulário rejeitado", contentType: "application/x-www-form-urlencoded", wantStatus: http.StatusBadRequest},
		{name: "Sem Content-Type", contentType: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/intelligence/compute", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			recorder := httptest.NewRecorder()

			JSONBody()(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
