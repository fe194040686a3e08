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

func TestMilestoneRepositoryListOrdersByTargetDate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMilestoneRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "target_date", "is_completed", "campaign_id", "created_at", "updated_at"}).
		AddRow(1, "Reach 1000 Applications", now, true, nil, now, now).
		AddRow(2, "Complete University Fair Tour", now.Add(48*time.Hour), false, int64(4), now, now)
	mock.ExpectQuery("SELECT (.+) FROM milestones ORDER BY target_date ASC, id ASC").
		WillReturnRows(rows)

	milestones, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, milestones, 2)
	assert.True(t, milestones[0].IsCompleted)
	assert.Nil(t, milestones[0].CampaignID)
	require.NotNil(t, milestones[1].CampaignID)
	assert.Equal(t, int64(4), *milestones[1].CampaignID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMilestoneRepositorySetCompleted(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMilestoneRepository(db)

	mock.ExpectExec("UPDATE milestones SET is_completed = \\$2, updated_at = \\$3 WHERE id = \\$1").
		WithArgs(int64(2), true, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetCompleted(context.Background(), 2, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMilestoneRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewMilestoneRepository(db)

	mock.ExpectQuery("INSERT INTO milestones").
		WithArgs("Send 400 Acceptance Letters", sqlmock.AnyArg(), false, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	milestone := &models.Milestone{
		Title:      "Send 400 Acceptance Letters",
		TargetDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Create(context.Background(), milestone))
	assert.Equal(t, int64(3), milestone.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
