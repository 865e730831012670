package models

import "time"

// Settings is the single-row application configuration. Submissions outside
// the application period are rejected.
type Settings struct {
	ApplicationPeriodStart time.Time `json:"applicationPeriodStart"`
	ApplicationPeriodEnd   time.Time `json:"applicationPeriodEnd"`
}

// PeriodOpen reports whether t falls inside the application period.
func (s *Settings) PeriodOpen(t time.Time) bool {
	return !t.Before(s.ApplicationPeriodStart) && !t.After(s.ApplicationPeriodEnd)
}
