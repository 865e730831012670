package dto

import "time"

// SettingsResponse represents the application period configuration.
type SettingsResponse struct {
	ApplicationPeriodStart time.Time `json:"applicationPeriodStart"`
	ApplicationPeriodEnd   time.Time `json:"applicationPeriodEnd"`
	PeriodOpen             bool      `json:"periodOpen"`
}

// UpdateSettingsRequest replaces the application period.
type UpdateSettingsRequest struct {
	ApplicationPeriodStart time.Time `json:"applicationPeriodStart" binding:"required"`
	ApplicationPeriodEnd   time.Time `json:"applicationPeriodEnd" binding:"required,gtfield=ApplicationPeriodStart"`
}
