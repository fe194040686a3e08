package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type mockMilestoneRepo struct {
	milestones []models.Milestone
	nextID     int64
}

func (m *mockMilestoneRepo) List(ctx context.Context) ([]models.Milestone, error) {
	return m.milestones, nil
}

func (m *mockMilestoneRepo) Create(ctx context.Context, milestone *models.Milestone) error {
	m.nextID++
	milestone.ID = m.nextID
	m.milestones = append(m.milestones, *milestone)
	return nil
}

func (m *mockMilestoneRepo) Update(ctx context.Context, milestone *models.Milestone) error {
	for i := range m.milestones {
		if m.milestones[i].ID == milestone.ID {
			m.milestones[i] = *milestone
		}
	}
	return nil
}

func (m *mockMilestoneRepo) SetCompleted(ctx context.Context, id int64, completed bool) error {
	for i := range m.milestones {
		if m.milestones[i].ID == id {
			m.milestones[i].IsCompleted = completed
		}
	}
	return nil
}

func (m *mockMilestoneRepo) Delete(ctx context.Context, id int64) error {
	kept := m.milestones[:0]
	for _, ms := range m.milestones {
		if ms.ID != id {
			kept = append(kept, ms)
		}
	}
	m.milestones = kept
	return nil
}

func TestMilestoneToggleRoundTrip(t *testing.T) {
	repo := &mockMilestoneRepo{milestones: []models.Milestone{
		{ID: 1, Title: "Reach 1000 Applications", TargetDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
	}}
	svc := NewMilestoneService(repo, nil, nil)

	view, err := svc.Toggle(context.Background(), 1, true)
	require.NoError(t, err)
	assert.True(t, view.Completed)
	assert.Equal(t, int64(1), view.ID)

	view, err = svc.Toggle(context.Background(), 1, false)
	require.NoError(t, err)
	assert.False(t, view.Completed)
}

func TestMilestoneToggleUnknownID(t *testing.T) {
	svc := NewMilestoneService(&mockMilestoneRepo{}, nil, nil)

	_, err := svc.Toggle(context.Background(), 42, true)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestMilestoneCreateDefaultsDueDate(t *testing.T) {
	repo := &mockMilestoneRepo{}
	svc := NewMilestoneService(repo, nil, nil)

	views, err := svc.Create(context.Background(), MilestoneRequest{Title: "New Goal"})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), views[0].DueDate)
	assert.Nil(t, views[0].CampaignID)
}
