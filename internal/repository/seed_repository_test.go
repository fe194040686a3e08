package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRepositorySyncSequenceAdvancesPastMaxID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSeedRepository(db)

	mock.ExpectExec(`SELECT setval\(pg_get_serial_sequence\('events', 'id'\), GREATEST\(\(SELECT COALESCE\(MAX\(id\), 1\) FROM events\), 1\)\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SyncSequence(context.Background(), "events"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedRepositorySyncSequenceWrapsError(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewSeedRepository(db)

	mock.ExpectExec(`SELECT setval\(pg_get_serial_sequence\('milestones', 'id'\)`).
		WillReturnError(errors.New("permission denied"))

	err := repo.SyncSequence(context.Background(), "milestones")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync id sequence for milestones")
}
