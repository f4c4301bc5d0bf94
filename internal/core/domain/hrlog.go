package domain

import "time"

// HRLog is an audit entry recorded when an HR user performs a sensitive
// payroll action (salary update, payment finalization).
type HRLog struct {
	HRLogID         string    `json:"hrLogID"` // Primary Key (UUID)
	ActorEmployeeID string    `json:"actorEmployeeID"`
	Action          string    `json:"action"`
	Details         string    `json:"details"`
	CreatedAt       time.Time `json:"createdAt"`
}
