package trajectory

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/theoremus-urban-solutions/transit-trajectory/metrics"
)

// Server exposes the engine's query surface over HTTP.
type Server struct {
	engine     *Engine
	cache      *responseCache
	collector  *metrics.Collector
	httpServer *http.Server
}

// NewServer wires the engine, the response cache and the metrics collector
// onto a chi router.
func NewServer(e *Engine, collector *metrics.Collector, port int) *Server {
	s := &Server{
		engine:    e,
		cache:     newResponseCache(),
		collector: collector,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/positions", s.handlePositions)
	r.Get("/api/journeys/{code}/positions", s.handleJourneyPositions)
	if collector != nil {
		r.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Router returns the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler { return s.httpServer.Handler }

// OnFeedUpdate invalidates memoized responses and records feed freshness.
// Feed collaborators call this after every applied snapshot.
func (s *Server) OnFeedUpdate(epoch int64) {
	s.cache.clear()
	if s.collector != nil {
		s.collector.SetLastFeedEpoch(epoch)
	}
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", s.httpServer.Addr).Msg("server listening")
}

// WaitForShutdown blocks until SIGINT/SIGTERM, then drains the server.
func (s *Server) WaitForShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	} else {
		log.Info().Msg("server shut down")
	}
}
