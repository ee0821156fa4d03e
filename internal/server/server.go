package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Alchemy_Go/internal/brewing"
	"github.com/osse101/Alchemy_Go/internal/catalog"
	"github.com/osse101/Alchemy_Go/internal/database"
	"github.com/osse101/Alchemy_Go/internal/handler"
	"github.com/osse101/Alchemy_Go/internal/logger"
	"github.com/osse101/Alchemy_Go/internal/metrics"
)

// Config holds the listener and middleware settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
}

type Server struct {
	httpServer     *http.Server
	catalogs       *catalog.Store
	brewingService brewing.Service
	dbPool         database.Pool
}

// NewServer creates a new Server instance. dbPool may be nil when the
// catalog is served from a file.
func NewServer(cfg Config, catalogs *catalog.Store, brewingService brewing.Service, dbPool database.Pool) *Server {
	s := &Server{
		catalogs:       catalogs,
		brewingService: brewingService,
		dbPool:         dbPool,
	}
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.routes(cfg),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

func (s *Server) routes(cfg Config) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	limiter := NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, limiter))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(s.catalogs, s.dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(s.catalogs))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	catalogHandler := handler.NewCatalogHandler(s.catalogs)
	potionHandler := handler.NewPotionHandler(s.brewingService)
	adminHandler := handler.NewAdminHandler(s.catalogs, s.brewingService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/effects", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleListEffects)
			r.Get("/{name}", catalogHandler.HandleGetEffect)
		})

		r.Route("/ingredients", func(r chi.Router) {
			r.Get("/", catalogHandler.HandleListIngredients)
			r.Get("/{name}", catalogHandler.HandleGetIngredient)
		})

		r.Route("/potions", func(r chi.Router) {
			r.Get("/", potionHandler.HandleBrewQuery)
			r.Post("/brew", potionHandler.HandleBrew)
			r.Get("/by-effects", potionHandler.HandleByEffectsQuery)
			r.Post("/search", potionHandler.HandleSearch)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))

			r.Post("/catalog/reload", adminHandler.HandleReloadCatalog)
			r.Route("/cache", func(r chi.Router) {
				r.Get("/stats", adminHandler.HandleGetCacheStats)
				r.Post("/clear", adminHandler.HandleClearCache)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler returns the root handler, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Honor a caller-supplied request ID so traces line up across services
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
