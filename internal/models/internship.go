package models

import "time"

// InternshipStatus tracks the internship lifecycle.
type InternshipStatus string

const (
	InternshipStatusPending   InternshipStatus = "pending"
	InternshipStatusActive    InternshipStatus = "active"
	InternshipStatusCompleted InternshipStatus = "completed"
)

// Internship represents a student internship placement.
type Internship struct {
	ID         int64            `db:"id" json:"id"`
	Company    string           `db:"company" json:"company"`
	Position   string           `db:"position" json:"position"`
	Student    string           `db:"student" json:"student"`
	Supervisor string           `db:"supervisor" json:"supervisor"`
	StartDate  time.Time        `db:"start_date" json:"start_date"`
	EndDate    time.Time        `db:"end_date" json:"end_date"`
	Status     InternshipStatus `db:"status" json:"status"`
	CreatedAt  time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time        `db:"updated_at" json:"updated_at"`
}
