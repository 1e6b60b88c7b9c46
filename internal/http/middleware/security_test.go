package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/straye-as/fieldservice-api/internal/config"
	"github.com/straye-as/fieldservice-api/internal/http/middleware"
	"github.com/stretchr/testify/assert"
)

func serveSecured(cfg *config.SecurityConfig, path string) *httptest.ResponseRecorder {
	h := middleware.SecurityHeaders(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestSecurityHeaders_Defaults(t *testing.T) {
	cfg := &config.SecurityConfig{
		ContentSecurityPolicy: "default-src 'self'",
		FrameOptions:          "DENY",
		ContentTypeNosniff:    true,
		XSSProtection:         "1; mode=block",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		PermissionsPolicy:     "camera=()",
	}

	w := serveSecured(cfg, "/api/v1/offers")

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "default-src 'self'", w.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "strict-origin-when-cross-origin", w.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=()", w.Header().Get("Permissions-Policy"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
}

func TestSecurityHeaders_HSTS(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.SecurityConfig
		want string
	}{
		{"plain", config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: 31536000}, "max-age=31536000"},
		{"subdomains", config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: 60, HSTSIncludeSubdomains: true}, "max-age=60; includeSubDomains"},
		{"preload", config.SecurityConfig{EnableHSTS: true, HSTSMaxAge: 60, HSTSIncludeSubdomains: true, HSTSPreload: true}, "max-age=60; includeSubDomains; preload"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serveSecured(&tt.cfg, "/")
			assert.Equal(t, tt.want, w.Header().Get("Strict-Transport-Security"))
		})
	}
}

func TestSecurityHeaders_PreviewContentIsFramable(t *testing.T) {
	cfg := &config.SecurityConfig{FrameOptions: "DENY"}

	assert.Equal(t, "SAMEORIGIN", serveSecured(cfg, "/api/v1/previews/abc/content").Header().Get("X-Frame-Options"))
	assert.Equal(t, "SAMEORIGIN", serveSecured(cfg, "/api/v1/documents/offers/abc/preview").Header().Get("X-Frame-Options"))
	assert.Equal(t, "DENY", serveSecured(cfg, "/api/v1/documents/offers/abc/pdf").Header().Get("X-Frame-Options"))
}

func TestSecurityHeaders_FrameOptionsDisabled(t *testing.T) {
	w := serveSecured(&config.SecurityConfig{}, "/api/v1/previews/abc/content")
	assert.Empty(t, w.Header().Get("X-Frame-Options"))
}
