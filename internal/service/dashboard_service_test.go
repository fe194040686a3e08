package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scintranet/staff-api/internal/models"
)

type mockCommunicationRepo struct {
	comms   []models.Communication
	listErr error
}

func (m *mockCommunicationRepo) List(ctx context.Context) ([]models.Communication, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.comms, nil
}
func (m *mockCommunicationRepo) Create(ctx context.Context, c *models.Communication) error { return nil }
func (m *mockCommunicationRepo) Update(ctx context.Context, c *models.Communication) error { return nil }
func (m *mockCommunicationRepo) Delete(ctx context.Context, id int64) error                { return nil }

type mockInternshipRepo struct {
	internships []models.Internship
}

func (m *mockInternshipRepo) List(ctx context.Context) ([]models.Internship, error) {
	return m.internships, nil
}
func (m *mockInternshipRepo) Create(ctx context.Context, i *models.Internship) error { return nil }
func (m *mockInternshipRepo) Update(ctx context.Context, i *models.Internship) error { return nil }
func (m *mockInternshipRepo) Delete(ctx context.Context, id int64) error             { return nil }

type mockTodoRepo struct {
	todos []models.Todo
}

func (m *mockTodoRepo) List(ctx context.Context) ([]models.Todo, error) { return m.todos, nil }
func (m *mockTodoRepo) Create(ctx context.Context, todo *models.Todo) error {
	m.todos = append(m.todos, *todo)
	return nil
}
func (m *mockTodoRepo) Update(ctx context.Context, todo *models.Todo) error { return nil }
func (m *mockTodoRepo) SetCompleted(ctx context.Context, id int64, completed bool) error {
	for i := range m.todos {
		if m.todos[i].ID == id {
			m.todos[i].IsCompleted = completed
		}
	}
	return nil
}
func (m *mockTodoRepo) Delete(ctx context.Context, id int64) error { return nil }

type mockAdmissionsRepo struct {
	metrics []models.AdmissionsMetric
}

func (m *mockAdmissionsRepo) List(ctx context.Context) ([]models.AdmissionsMetric, error) {
	return m.metrics, nil
}
func (m *mockAdmissionsRepo) Upsert(ctx context.Context, metric *models.AdmissionsMetric) error {
	m.metrics = []models.AdmissionsMetric{*metric}
	return nil
}

func newDashboardFixture(eventRepo *mockEventRepo, commRepo *mockCommunicationRepo) *DashboardService {
	cacheSvc := NewCacheService(nil, nil, time.Minute, nil, false)
	return NewDashboardService(
		NewEventService(eventRepo, cacheSvc, nil, nil),
		NewCommunicationService(commRepo, nil, nil),
		NewInternshipService(&mockInternshipRepo{internships: []models.Internship{{ID: 1, Company: "Tech Innovations Inc."}}}, nil, nil),
		NewCampaignService(&mockCampaignRepo{campaigns: []models.Campaign{{ID: 1, Spent: 8000, Leads: 312}}}, nil, nil, nil, nil),
		NewMilestoneService(&mockMilestoneRepo{milestones: []models.Milestone{{ID: 1}}}, nil, nil),
		NewTodoService(&mockTodoRepo{todos: []models.Todo{{ID: 1, Title: "Prepare agenda"}}}, nil, nil),
		NewAdmissionsService(&mockAdmissionsRepo{metrics: []models.AdmissionsMetric{{ID: 1, TotalApplicants: 1247}}}, nil, nil),
		nil,
	)
}

func TestDashboardLoadAssemblesAllCollections(t *testing.T) {
	eventRepo := &mockEventRepo{events: []models.Event{{ID: 1, Title: "Symposium"}}}
	commRepo := &mockCommunicationRepo{comms: []models.Communication{{ID: 1, Title: "Notice"}, {ID: 2, Title: "Update"}}}
	svc := newDashboardFixture(eventRepo, commRepo)

	state, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, state.Events, 1)
	assert.Len(t, state.Communications, 2)
	assert.Len(t, state.Internships, 1)
	assert.Len(t, state.Campaigns, 1)
	assert.Len(t, state.Milestones, 1)
	assert.Len(t, state.Todos, 1)
	require.Len(t, state.Admissions, 1)
	assert.Equal(t, 1247, state.Admissions[0].TotalApplicants)
}

func TestDashboardLoadFailsWhenAnyFetchFails(t *testing.T) {
	eventRepo := &mockEventRepo{}
	commRepo := &mockCommunicationRepo{listErr: errors.New("connection refused")}
	svc := newDashboardFixture(eventRepo, commRepo)

	_, err := svc.Load(context.Background())
	require.Error(t, err)
}
