package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
	"github.com/scintranet/staff-api/pkg/export"
)

type mockCampaignRepo struct {
	campaigns []models.Campaign
	nextID    int64
}

func (m *mockCampaignRepo) List(ctx context.Context) ([]models.Campaign, error) {
	return m.campaigns, nil
}

func (m *mockCampaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	m.nextID++
	campaign.ID = m.nextID
	m.campaigns = append(m.campaigns, *campaign)
	return nil
}

func (m *mockCampaignRepo) Update(ctx context.Context, campaign *models.Campaign) error {
	for i := range m.campaigns {
		if m.campaigns[i].ID == campaign.ID {
			m.campaigns[i] = *campaign
		}
	}
	return nil
}

func (m *mockCampaignRepo) Delete(ctx context.Context, id int64) error {
	kept := m.campaigns[:0]
	for _, c := range m.campaigns {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.campaigns = kept
	return nil
}

func newCampaignFixture() (*CampaignService, *mockCampaignRepo) {
	repo := &mockCampaignRepo{}
	svc := NewCampaignService(repo, export.NewCSVExporter(), export.NewPDFExporter(), nil, nil)
	return svc, repo
}

func TestCampaignCreateDerivesCostPerLead(t *testing.T) {
	svc, _ := newCampaignFixture()

	views, err := svc.Create(context.Background(), CampaignRequest{
		Name: "Social Media Outreach", Budget: 15000, Spent: 8500, Leads: 453,
		StartDate: "2025-11-01", EndDate: "2026-03-31",
	})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.InDelta(t, 8500.0/453.0, views[0].CostPerLead, 0.0001)
	assert.Equal(t, "active", views[0].Status)
}

func TestCampaignRejectsNegativeCounters(t *testing.T) {
	svc, _ := newCampaignFixture()

	_, err := svc.Create(context.Background(), CampaignRequest{Name: "Bad", Spent: -1})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)

	_, err = svc.Create(context.Background(), CampaignRequest{Name: "Bad", Leads: -5})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCampaignExportCSV(t *testing.T) {
	svc, repo := newCampaignFixture()
	repo.campaigns = []models.Campaign{{
		ID: 1, Name: "Webinar Series", Platform: "Online Events",
		Budget: 10000, Spent: 4200, Leads: 195,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		Status:    models.CampaignStatusActive,
	}}

	payload, contentType, err := svc.Export(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "Webinar Series")
	assert.Contains(t, string(payload), "2026-01-01")
}

func TestCampaignExportPDF(t *testing.T) {
	svc, repo := newCampaignFixture()
	repo.campaigns = []models.Campaign{{ID: 1, Name: "Webinar Series", Status: models.CampaignStatusActive}}

	payload, contentType, err := svc.Export(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}

func TestCampaignExportUnsupportedFormat(t *testing.T) {
	svc, _ := newCampaignFixture()

	_, _, err := svc.Export(context.Background(), "xlsx")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
