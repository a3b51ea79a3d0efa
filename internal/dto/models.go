package dto

type InfoResponse struct {
	Time       string `json:"time"`
	Hostname   string `json:"hostname"`
	Message    string `json:"message"`
	DeployedOn string `json:"deployed_on"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
