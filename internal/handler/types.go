package handler

import "github.com/KOFI-GYIMAH/portfolio-api/internal/github"

type HealthResponse struct {
	Status string                  `json:"status"`
	Uptime string                  `json:"uptime"`
	Quotas map[string]github.Quota `json:"quotas,omitempty"`
}
