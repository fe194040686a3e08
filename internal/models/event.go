package models

import "time"

// Event represents an intranet event row. Date is always present; the
// owner full name is populated from a left join against staff_profiles.
type Event struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Date          time.Time `db:"date" json:"date"`
	Time          string    `db:"time" json:"time"`
	Location      string    `db:"location" json:"location"`
	Organizer     string    `db:"organizer" json:"organizer"`
	Category      string    `db:"category" json:"category"`
	Attendees     int       `db:"attendees" json:"attendees"`
	CreatedBy     *string   `db:"created_by" json:"created_by,omitempty"`
	OwnerFullName *string   `db:"owner_full_name" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
