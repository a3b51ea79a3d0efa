package main

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (s *Server) router() {
	r := s.Factory.Router

	r.Use(s.Factory.Middleware.RequestID)
	r.Use(s.Factory.Middleware.LoggerMiddleware)
	r.Use(middleware.Recoverer)

	r.NotFound(s.Handlers.NotFoundHandler)
	r.MethodNotAllowed(s.Handlers.MethodNotAllowedHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", s.Handlers.InfoHandler)
		r.Get("/healthz", s.Handlers.HealthCheckHandler)
	})
}
