package models

import "time"

// Milestone represents an admissions milestone. CampaignID is nullable:
// a milestone may exist independent of any campaign.
type Milestone struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	TargetDate  time.Time `db:"target_date" json:"target_date"`
	IsCompleted bool      `db:"is_completed" json:"is_completed"`
	CampaignID  *int64    `db:"campaign_id" json:"campaign_id,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
