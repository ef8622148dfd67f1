package strindex

import (
	"context"

	healthuc "github.com/kailas-cloud/strindex/internal/usecase/health"
)

// HealthStatus represents the aggregated store health.
type HealthStatus struct {
	Status  string            // "ok", "degraded"
	Checks  map[string]string // component → "ok"/"error"
	Entries int
}

// Health checks the store and reports how many strings it holds.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status:  string(report.Status),
		Checks:  checks,
		Entries: report.Entries,
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
