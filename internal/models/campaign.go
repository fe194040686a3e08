package models

import "time"

// CampaignStatus tracks the admissions campaign lifecycle.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Campaign represents an admissions marketing campaign.
// Spent and Leads are non-negative; cost-per-lead is derived at display time.
type Campaign struct {
	ID        int64          `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Platform  string         `db:"platform" json:"platform"`
	Budget    float64        `db:"budget" json:"budget"`
	Spent     float64        `db:"spent" json:"spent"`
	Leads     int            `db:"leads" json:"leads"`
	StartDate time.Time      `db:"start_date" json:"start_date"`
	EndDate   time.Time      `db:"end_date" json:"end_date"`
	Status    CampaignStatus `db:"status" json:"status"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}
