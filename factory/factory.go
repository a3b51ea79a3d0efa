package factory

import (
	"github.com/kubelab-dev/sysinfo-service/internal/config"
	"github.com/kubelab-dev/sysinfo-service/internal/middleware"
	"github.com/kubelab-dev/sysinfo-service/internal/services/system"
	"github.com/kubelab-dev/sysinfo-service/pkg/logger"

	"github.com/go-chi/chi/v5"
)

type Services struct {
	System *system.System
}

type Factory struct {
	Logger     *logger.Logger
	Router     *chi.Mux
	Services   *Services
	Middleware *middleware.Middleware
}

func New(cfg *config.Config) *Factory {
	log := logger.New(cfg)

	systemService := system.New()

	middleware := middleware.New(log)

	return &Factory{
		Logger: log,
		Router: chi.NewRouter(),
		Services: &Services{
			System: systemService,
		},
		Middleware: middleware,
	}
}
