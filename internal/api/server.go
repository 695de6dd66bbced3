// Package api exposes the noise and plate generators over HTTP, speaking
// the JSON envelope in internal/httputil.
package api

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/terragen/tectonic/internal/httputil"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Server routes generation requests. It holds no mutable state; every
// handler is safe for concurrent use.
type Server struct{}

// NewServer returns a ready-to-mount Server.
func NewServer() *Server {
	return &Server{}
}

// ServeMux mounts every endpoint on a fresh mux.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.health)
	mux.HandleFunc("/api/noise/generate", s.generateNoise)
	mux.HandleFunc("/api/noise/perlin", s.generatePerlin)
	mux.HandleFunc("/api/noise/simplex", s.generateSimplex)
	mux.HandleFunc("/api/noise/worley", s.generateWorley)
	mux.HandleFunc("/api/noise/parameters", s.noiseParameters)
	mux.HandleFunc("/api/noise/presets", s.noisePresets)
	mux.HandleFunc("/api/plates/generate", s.generatePlates)
	mux.HandleFunc("/api/plates/parameters", s.plateParameters)
	mux.HandleFunc("/api/plates/presets", s.platePresets)
	mux.HandleFunc("/", s.root)
	return mux
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		httputil.NotFound(w)
		return
	}
	httputil.WriteSuccess(w, map[string]string{
		"service": "Tectonic Generator API",
		"version": Version,
	}, "welcome to the tectonic generator")
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteSuccess(w, map[string]interface{}{
		"status":         "healthy",
		"version":        Version,
		"algorithms":     []string{"perlin", "simplex", "worley"},
		"max_resolution": 4096,
	}, "tectonic generator is running")
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware tags each request with an id, then logs method, path,
// status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf("[%s] %d %s %s %vms",
			id[:8], lrw.statusCode, r.Method, r.RequestURI,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}
