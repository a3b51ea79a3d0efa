package system

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/kubelab-dev/sysinfo-service/internal/constants"
)

func TestInfoTimeFormat(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"afternoon", time.Date(2026, time.January, 31, 12, 34, 56, 0, time.Local), "12:34:56PM on January 31, 2026"},
		{"morning zero padded", time.Date(2026, time.March, 5, 9, 5, 7, 0, time.Local), "09:05:07AM on March 05, 2026"},
		{"midnight", time.Date(2026, time.December, 25, 0, 0, 0, 0, time.Local), "12:00:00AM on December 25, 2026"},
		{"just before midnight", time.Date(2026, time.June, 1, 23, 59, 59, 0, time.Local), "11:59:59PM on June 01, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWithLookups(
				func() time.Time { return tt.at },
				func() (string, error) { return "test-host", nil },
			)

			info, err := s.Info()
			if err != nil {
				t.Fatalf("Info() returned error: %v", err)
			}
			if info.Time != tt.want {
				t.Errorf("Time = %q, want %q", info.Time, tt.want)
			}
		})
	}
}

func TestInfoConstants(t *testing.T) {
	s := NewWithLookups(
		func() time.Time { return time.Now() },
		func() (string, error) { return "test-host", nil },
	)

	info, err := s.Info()
	if err != nil {
		t.Fatalf("Info() returned error: %v", err)
	}

	if info.Hostname != "test-host" {
		t.Errorf("Hostname = %q, want %q", info.Hostname, "test-host")
	}
	if info.Message != constants.Greeting {
		t.Errorf("Message = %q, want %q", info.Message, constants.Greeting)
	}
	if info.DeployedOn != constants.DeployTarget {
		t.Errorf("DeployedOn = %q, want %q", info.DeployedOn, constants.DeployTarget)
	}
}

func TestInfoRealLookups(t *testing.T) {
	s := New()

	info, err := s.Info()
	if err != nil {
		t.Fatalf("Info() returned error: %v", err)
	}

	host, err := os.Hostname()
	if err != nil {
		t.Fatalf("os.Hostname() failed: %v", err)
	}
	if info.Hostname != host {
		t.Errorf("Hostname = %q, want %q", info.Hostname, host)
	}

	if _, err := time.ParseInLocation(constants.TimeLayout, info.Time, time.Local); err != nil {
		t.Errorf("Time %q does not parse with layout %q: %v", info.Time, constants.TimeLayout, err)
	}
}

func TestInfoHostnameError(t *testing.T) {
	s := NewWithLookups(
		func() time.Time { return time.Now() },
		func() (string, error) { return "", errors.New("lookup failed") },
	)

	info, err := s.Info()
	if err == nil {
		t.Fatal("Info() expected error, got nil")
	}
	if info != nil {
		t.Errorf("Info() = %+v, want nil on error", info)
	}
}

func TestHealth(t *testing.T) {
	s := New()

	if got := s.Health().Status; got != "up" {
		t.Errorf("Health().Status = %q, want %q", got, "up")
	}
}
