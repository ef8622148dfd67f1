package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status  Status
	Checks  map[string]CheckResult
	Entries int
}

// Service coordinates health checks.
type Service struct {
	store   StorePinger
	counter EntryCounter
}

// New creates a Service. counter can be nil.
func New(store StorePinger, counter EntryCounter) *Service {
	return &Service{store: store, counter: counter}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if err := s.store.Ping(ctx); err != nil {
		checks["store"] = CheckError
	} else {
		checks["store"] = CheckOK
	}

	report := Report{Status: Healthy, Checks: checks}
	if s.counter != nil {
		if n, err := s.counter.Count(ctx); err == nil {
			report.Entries = n
		}
	}

	for _, v := range checks {
		if v == CheckError {
			report.Status = Degraded
			break
		}
	}
	return report
}
