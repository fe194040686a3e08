package models

import "time"

// Role represents the available roles for the RBAC system.
type Role string

const (
	RoleStaff      Role = "staff"
	RoleSuperAdmin Role = "super_admin"
)

// StaffAccount represents an auth identity stored in the staff_accounts table.
type StaffAccount struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Confirmed    bool      `db:"confirmed" json:"confirmed"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// StaffProfile represents the staff_profiles row linked to an account.
// A profile with IsApproved=false must never authenticate into the dashboard.
type StaffProfile struct {
	ID         string    `db:"id" json:"id"`
	Email      string    `db:"email" json:"email"`
	FullName   string    `db:"full_name" json:"full_name"`
	Role       Role      `db:"role" json:"role"`
	IsApproved bool      `db:"is_approved" json:"is_approved"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// PendingStatus tracks the one-directional pending user lifecycle.
type PendingStatus string

const (
	PendingStatusPending  PendingStatus = "pending"
	PendingStatusAccepted PendingStatus = "accepted"
)

// PendingUser represents a registration request awaiting super admin approval.
type PendingUser struct {
	ID           int64         `db:"id" json:"id"`
	Email        string        `db:"email" json:"email"`
	FullName     string        `db:"full_name" json:"full_name"`
	PasswordHash string        `db:"password_hash" json:"-"`
	Status       PendingStatus `db:"status" json:"status"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
}
