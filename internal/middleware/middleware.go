package middleware

import (
	"github.com/kubelab-dev/sysinfo-service/pkg/logger"
)

type Middleware struct {
	Logger *logger.Logger
}

func New(log *logger.Logger) *Middleware {
	return &Middleware{Logger: log}
}
