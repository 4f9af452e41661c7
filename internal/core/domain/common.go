package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// The app is single-user, so there is no actor attribution here.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
