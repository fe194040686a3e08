package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scintranet/staff-api/internal/models"
)

func TestPendingUserRepositoryCreateDefaultsStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPendingUserRepository(db)

	mock.ExpectQuery("INSERT INTO pending_users").
		WithArgs("new.staff@scintranet.edu", "New Staff", sqlmock.AnyArg(), string(models.PendingStatusPending), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	pending := &models.PendingUser{
		Email:        "new.staff@scintranet.edu",
		FullName:     "New Staff",
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, repo.Create(context.Background(), pending))
	assert.Equal(t, int64(11), pending.ID)
	assert.Equal(t, models.PendingStatusPending, pending.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingUserRepositoryListPendingFiltersByStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPendingUserRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "password_hash", "status", "created_at"}).
		AddRow(2, "b@scintranet.edu", "B", "hash-b", "pending", now).
		AddRow(1, "a@scintranet.edu", "A", "hash-a", "pending", now.Add(-time.Hour))
	mock.ExpectQuery("SELECT (.+) FROM pending_users WHERE status = \\$1 ORDER BY created_at DESC").
		WithArgs(string(models.PendingStatusPending)).
		WillReturnRows(rows)

	pending, err := repo.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, int64(2), pending[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingUserRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPendingUserRepository(db)

	mock.ExpectExec("UPDATE pending_users SET status = \\$2 WHERE id = \\$1").
		WithArgs(int64(5), string(models.PendingStatusAccepted)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), 5, models.PendingStatusAccepted))
	assert.NoError(t, mock.ExpectationsWereMet())
}
