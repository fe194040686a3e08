package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scintranet/staff-api/internal/models"
)

// AccountRepository provides database access for auth identities and profiles.
type AccountRepository struct {
	db *sqlx.DB
}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindAccountByEmail returns an auth identity by email address.
func (r *AccountRepository) FindAccountByEmail(ctx context.Context, email string) (*models.StaffAccount, error) {
	const query = `SELECT id, email, password_hash, confirmed, created_at, updated_at FROM staff_accounts WHERE email = $1 LIMIT 1`
	var account models.StaffAccount
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}
	return &account, nil
}

// CreateAccount inserts a new auth identity.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *models.StaffAccount) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	const query = `INSERT INTO staff_accounts (id, email, password_hash, confirmed, created_at, updated_at) VALUES (:id, :email, :password_hash, :confirmed, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, account); err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

// FindProfileByID returns a staff profile by identifier.
func (r *AccountRepository) FindProfileByID(ctx context.Context, id string) (*models.StaffProfile, error) {
	const query = `SELECT id, email, full_name, role, is_approved, created_at, updated_at FROM staff_profiles WHERE id = $1 LIMIT 1`
	var profile models.StaffProfile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find profile by id: %w", err)
	}
	return &profile, nil
}

// CreateProfile inserts a staff profile linked to an auth identity.
func (r *AccountRepository) CreateProfile(ctx context.Context, profile *models.StaffProfile) error {
	now := time.Now().UTC()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	const query = `INSERT INTO staff_profiles (id, email, full_name, role, is_approved, created_at, updated_at) VALUES (:id, :email, :full_name, :role, :is_approved, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, profile); err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	return nil
}
