package constants

const (
	Greeting     = "You are doing great today!!!!!!!!!! :))"
	DeployTarget = "Kubernetes"

	// TimeLayout renders wall-clock time like "12:34:56PM on January 31, 2026".
	TimeLayout = "03:04:05PM on January 02, 2006"
)
