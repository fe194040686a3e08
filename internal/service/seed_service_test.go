package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type mockSeedRepo struct {
	counts     map[string]int
	countErrs  map[string]error
	events     []models.Event
	comms      []models.Communication
	campaigns  []models.Campaign
	milestones []models.Milestone
	metrics    []models.AdmissionsMetric
	interns    []models.Internship
	synced     []string
	syncErr    error
}

func (m *mockSeedRepo) CountRows(ctx context.Context, table string) (int, error) {
	if err, ok := m.countErrs[table]; ok {
		return 0, err
	}
	return m.counts[table], nil
}

func (m *mockSeedRepo) UpsertEvent(ctx context.Context, e models.Event) error {
	m.events = append(m.events, e)
	return nil
}

func (m *mockSeedRepo) UpsertCommunication(ctx context.Context, c models.Communication) error {
	m.comms = append(m.comms, c)
	return nil
}

func (m *mockSeedRepo) UpsertInternship(ctx context.Context, i models.Internship) error {
	m.interns = append(m.interns, i)
	return nil
}

func (m *mockSeedRepo) UpsertCampaign(ctx context.Context, c models.Campaign) error {
	m.campaigns = append(m.campaigns, c)
	return nil
}

func (m *mockSeedRepo) UpsertMilestone(ctx context.Context, ms models.Milestone) error {
	m.milestones = append(m.milestones, ms)
	return nil
}

func (m *mockSeedRepo) UpsertAdmissionsMetric(ctx context.Context, metric models.AdmissionsMetric) error {
	m.metrics = append(m.metrics, metric)
	return nil
}

func (m *mockSeedRepo) SyncSequence(ctx context.Context, table string) error {
	if m.syncErr != nil {
		return m.syncErr
	}
	m.synced = append(m.synced, table)
	return nil
}

func TestSeedLoadsAllFixtures(t *testing.T) {
	repo := &mockSeedRepo{}
	svc := NewSeedService(repo, true, nil)

	require.NoError(t, svc.Seed(context.Background()))
	assert.Len(t, repo.events, 3)
	assert.Len(t, repo.comms, 3)
	assert.Len(t, repo.interns, 3)
	assert.Len(t, repo.campaigns, 4)
	assert.Len(t, repo.milestones, 4)
	require.Len(t, repo.metrics, 1)
	assert.Equal(t, 1247, repo.metrics[0].TotalApplicants)
}

func TestSeedAdvancesIDSequences(t *testing.T) {
	repo := &mockSeedRepo{}
	svc := NewSeedService(repo, true, nil)

	require.NoError(t, svc.Seed(context.Background()))
	assert.Equal(t, []string{"events", "communications", "internships", "campaigns", "milestones"}, repo.synced)
}

func TestSeedFailsWhenSequenceSyncFails(t *testing.T) {
	repo := &mockSeedRepo{syncErr: errors.New("setval failed")}
	svc := NewSeedService(repo, true, nil)

	err := svc.Seed(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
}

func TestSeedDisabled(t *testing.T) {
	svc := NewSeedService(&mockSeedRepo{}, false, nil)

	err := svc.Seed(context.Background())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
}

func TestStatusReportsNilForUnreachableTables(t *testing.T) {
	repo := &mockSeedRepo{
		counts:    map[string]int{"events": 3, "campaigns": 4},
		countErrs: map[string]error{"daily_todos": errors.New("relation does not exist")},
	}
	svc := NewSeedService(repo, true, nil)

	status := svc.Status(context.Background())
	require.NotNil(t, status["events"])
	assert.Equal(t, 3, *status["events"])
	assert.Nil(t, status["daily_todos"])
}
