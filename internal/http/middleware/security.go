package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/straye-as/fieldservice-api/internal/config"
)

// embeddablePaths are served into same-origin iframes by the preview pane
var embeddablePaths = []string{"/content", "/preview"}

// SecurityHeaders adds the configured security headers to every response.
// Rendered document content may be framed by the same origin so the live
// preview can show it.
func SecurityHeaders(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	hsts := ""
	if cfg.EnableHSTS {
		hsts = fmt.Sprintf("max-age=%d", cfg.HSTSMaxAge)
		if cfg.HSTSIncludeSubdomains {
			hsts += "; includeSubDomains"
		}
		if cfg.HSTSPreload {
			hsts += "; preload"
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if cfg.ContentTypeNosniff {
				h.Set("X-Content-Type-Options", "nosniff")
			}

			frameOptions := cfg.FrameOptions
			if frameOptions != "" && isEmbeddable(r.URL.Path) {
				frameOptions = "SAMEORIGIN"
			}
			if frameOptions != "" {
				h.Set("X-Frame-Options", frameOptions)
			}

			if cfg.XSSProtection != "" {
				h.Set("X-XSS-Protection", cfg.XSSProtection)
			}
			if cfg.ContentSecurityPolicy != "" {
				h.Set("Content-Security-Policy", cfg.ContentSecurityPolicy)
			}
			if cfg.ReferrerPolicy != "" {
				h.Set("Referrer-Policy", cfg.ReferrerPolicy)
			}
			if cfg.PermissionsPolicy != "" {
				h.Set("Permissions-Policy", cfg.PermissionsPolicy)
			}
			if hsts != "" {
				h.Set("Strict-Transport-Security", hsts)
			}

			h.Del("X-Powered-By")
			h.Del("Server")

			next.ServeHTTP(w, r)
		})
	}
}

func isEmbeddable(path string) bool {
	for _, suffix := range embeddablePaths {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
