package models

import "time"

// Todo represents a daily todo item owned by a staff member.
type Todo struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   string    `db:"description" json:"description"`
	DueDate       time.Time `db:"due_date" json:"due_date"`
	Priority      Priority  `db:"priority" json:"priority"`
	IsCompleted   bool      `db:"is_completed" json:"is_completed"`
	CreatedBy     *string   `db:"created_by" json:"created_by,omitempty"`
	OwnerFullName *string   `db:"owner_full_name" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
