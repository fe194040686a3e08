package models

import "time"

// Priority defines ordering for communications and todos.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Communication represents a published announcement.
type Communication struct {
	ID        int64     `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Author    string    `db:"author" json:"author"`
	Category  string    `db:"category" json:"category"`
	Priority  Priority  `db:"priority" json:"priority"`
	Date      time.Time `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
