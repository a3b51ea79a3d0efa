package system

import (
	"fmt"
	"os"
	"time"

	"github.com/kubelab-dev/sysinfo-service/internal/constants"
	"github.com/kubelab-dev/sysinfo-service/internal/dto"
)

// System reports where and when the service is running. Both lookups are
// read fresh on every call, so two requests can see different values.
type System struct {
	now      func() time.Time
	hostname func() (string, error)
}

func New() *System {
	return NewWithLookups(time.Now, os.Hostname)
}

// NewWithLookups lets tests substitute the clock and hostname lookup.
func NewWithLookups(now func() time.Time, hostname func() (string, error)) *System {
	return &System{
		now:      now,
		hostname: hostname,
	}
}

func (s *System) Info() (*dto.InfoResponse, error) {
	host, err := s.hostname()
	if err != nil {
		return nil, fmt.Errorf("resolve hostname: %w", err)
	}

	return &dto.InfoResponse{
		Time:       s.now().Format(constants.TimeLayout),
		Hostname:   host,
		Message:    constants.Greeting,
		DeployedOn: constants.DeployTarget,
	}, nil
}

func (s *System) Health() *dto.HealthResponse {
	return &dto.HealthResponse{Status: "up"}
}
