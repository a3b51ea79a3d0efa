// Package version provides build and version information for sysinfo-service.
package version

// Version is the current release version of the service.
// This can be overridden at build time using:
//
//	go build -ldflags "-X github.com/kubelab-dev/sysinfo-service/internal/version.Version=x.y.z"
var Version = "1.0.0"
