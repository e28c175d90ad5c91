package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// BalanceTolerance is the maximum absolute difference between debit and
// credit totals that is still treated as balanced. Amounts are exact
// decimals throughout; the tolerance exists only to absorb rounding in
// data imported from legacy systems.
const BalanceTolerance = "0.01"
