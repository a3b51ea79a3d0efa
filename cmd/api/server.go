package main

import (
	"net/http"
	"time"

	"github.com/kubelab-dev/sysinfo-service/factory"
	"github.com/kubelab-dev/sysinfo-service/internal/api/handlers"
	"github.com/kubelab-dev/sysinfo-service/internal/config"
	"github.com/kubelab-dev/sysinfo-service/internal/version"
)

type Server struct {
	Config   *config.Config
	Factory  *factory.Factory
	Handlers *handlers.Handlers
}

func NewServer() (*Server, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	factory := factory.New(cfg)
	handlers := handlers.NewHandlers(factory, cfg)

	server := &Server{
		Config:   cfg,
		Factory:  factory,
		Handlers: handlers,
	}

	server.router()
	return server, nil
}

func (s *Server) Start() error {
	s.Factory.Logger.Info().
		Str("version", version.Version).
		Str("env", s.Config.Server.Env).
		Str("port", s.Config.Server.Port).
		Msg("starting server")

	srv := &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      s.Factory.Router,
		WriteTimeout: time.Second * 50,
		ReadTimeout:  time.Second * 30,
		IdleTimeout:  time.Minute,
	}

	return srv.ListenAndServe()
}
