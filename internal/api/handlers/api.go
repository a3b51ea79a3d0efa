package handlers

import (
	"github.com/kubelab-dev/sysinfo-service/factory"
	"github.com/kubelab-dev/sysinfo-service/internal/config"
)

type Handlers struct {
	factory *factory.Factory
	config  *config.Config
}

func NewHandlers(factory *factory.Factory, config *config.Config) *Handlers {
	return &Handlers{
		factory: factory,
		config:  config,
	}
}
