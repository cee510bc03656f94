package models

import "time"

// SavedAnalysis is a stored deal analysis together with its latest metrics.
type SavedAnalysis struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Analysis  Analysis  `json:"analysis"`
	Metrics   *Metrics  `json:"metrics,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
