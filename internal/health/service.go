package health

import (
	"fmt"
	"net/http"
	"time"
)

// Status reports whether the upstream site is reachable
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Service probes the upstream scrape target
type Service struct {
	baseURL string
	client  *http.Client
}

// NewService creates a new health service probing baseURL
func NewService(baseURL string) *Service {
	return &Service{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Check GETs the upstream root and reports up/down
func (s *Service) Check() Status {
	resp, err := s.client.Get(s.baseURL)
	if err != nil {
		return Status{Status: "down", Message: fmt.Sprintf("Error: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return Status{Status: "up", Message: "API is up and running"}
	}
	return Status{Status: "down", Message: fmt.Sprintf("API returned status code %d", resp.StatusCode)}
}
