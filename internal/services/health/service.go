// Package health reports process liveness and registry readiness.
package health

import "depositready-backend/internal/jurisdictions"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status reports liveness plus the number of loaded jurisdiction rulesets.
// A zero state count means the registry failed to load and the calculators
// cannot serve anything.
func (s *Service) Status() map[string]any {
	states := len(jurisdictions.ListAll())
	return map[string]any{
		"ok":     states > 0,
		"states": states,
	}
}
