package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"vitrina/internal/deeplink"
	"vitrina/internal/http-server/handlers/health"
	"vitrina/internal/http-server/handlers/showcase"
	"vitrina/internal/http-server/middleware"
)

type Server struct {
	log *slog.Logger
	mux *http.ServeMux
}

func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, mux: http.NewServeMux()}
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = middleware.WithRequestID(h)
	h = middleware.RecoverPanic(s.log, h)
	h = middleware.AccessLog(s.log, h)
	return h
}

type Deps struct {
	Snapshots showcase.SnapshotFetcher
	Deeplinks deeplink.Builder
	Timeout   time.Duration
}

func (s *Server) RegisterRoutes(dep Deps) {
	opts := showcase.Options{
		Log:       s.log,
		Snapshots: dep.Snapshots,
		Deeplinks: dep.Deeplinks,
		Timeout:   dep.Timeout,
	}

	s.mux.HandleFunc("/catalog", showcase.NewListHandler(opts))
	s.mux.HandleFunc("/catalog/products/", showcase.NewProductHandler(opts))
	s.mux.HandleFunc("/healthz", health.NewHandler())
}
