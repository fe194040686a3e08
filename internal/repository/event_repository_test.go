package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scintranet/staff-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestEventRepositoryListJoinsOwnerProfile(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "date", "time", "location", "organizer", "category", "attendees", "created_by", "owner_full_name", "created_at", "updated_at"}).
		AddRow(2, "Open House", now, "10:00:00", "Campus Center", "Admin Office", "Student Affairs", 150, "3d6e7f4a-0000-0000-0000-000000000001", "Dana Reyes", now, now).
		AddRow(1, "Research Symposium", now.Add(-24*time.Hour), "09:00:00", "Main Auditorium", "Dr. Smith", "Academic", 45, nil, nil, now, now)
	mock.ExpectQuery("SELECT (.+) FROM events e LEFT JOIN staff_profiles p ON p.id = e.created_by ORDER BY e.date DESC, e.id DESC").
		WillReturnRows(rows)

	events, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(2), events[0].ID)
	require.NotNil(t, events[0].OwnerFullName)
	assert.Equal(t, "Dana Reyes", *events[0].OwnerFullName)
	assert.Nil(t, events[1].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectQuery("INSERT INTO events").
		WithArgs("Open House", sqlmock.AnyArg(), "10:00:00", "Campus Center", "Admin Office", "Student Affairs", 150, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	event := &models.Event{
		Title:     "Open House",
		Date:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Time:      "10:00:00",
		Location:  "Campus Center",
		Organizer: "Admin Office",
		Category:  "Student Affairs",
		Attendees: 150,
	}
	require.NoError(t, repo.Create(context.Background(), event))
	assert.Equal(t, int64(7), event.ID)
	assert.False(t, event.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEventRepository(db)

	mock.ExpectExec("DELETE FROM events WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
