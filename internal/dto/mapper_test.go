package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/scintranet/staff-api/internal/models"
)

func strPtr(s string) *string { return &s }

func TestMapEventDerivesDatesAndType(t *testing.T) {
	event := models.Event{
		ID:        1,
		Title:     "Research Symposium",
		Date:      time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC),
		Time:      "09:00:00",
		Category:  "Academic",
		Attendees: 45,
	}

	view := MapEvent(event)

	assert.Equal(t, "2026-02-15", view.Date)
	assert.Equal(t, "2026-02-15", view.StartDate)
	assert.Equal(t, "2026-02-15", view.EndDate)
	assert.Equal(t, "Academic", view.EventType)
	assert.Equal(t, "System Admin", view.OwnerName)
	assert.Empty(t, view.CreatedBy)
}

func TestMapEventOwnerResolution(t *testing.T) {
	tests := []struct {
		name      string
		createdBy *string
		fullName  *string
		want      string
	}{
		{"no creator is system owned", nil, nil, "System Admin"},
		{"empty creator is system owned", strPtr(""), strPtr("Someone"), "System Admin"},
		{"creator without profile join", strPtr("uid-1"), nil, "Unknown"},
		{"creator with empty name", strPtr("uid-1"), strPtr(""), "Unknown"},
		{"creator with profile", strPtr("uid-1"), strPtr("Dana Reyes"), "Dana Reyes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := MapEvent(models.Event{CreatedBy: tt.createdBy, OwnerFullName: tt.fullName})
			assert.Equal(t, tt.want, view.OwnerName)
		})
	}
}

func TestMapEventIsIdempotent(t *testing.T) {
	event := models.Event{ID: 3, Title: "Orientation", Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}
	first := MapEvent(event)
	second := MapEvent(event)
	assert.Equal(t, first, second)
}

func TestMapEventsPreservesOrder(t *testing.T) {
	events := []models.Event{
		{ID: 9, Title: "Later"},
		{ID: 4, Title: "Earlier"},
	}
	views := MapEvents(events)
	assert.Equal(t, int64(9), views[0].ID)
	assert.Equal(t, int64(4), views[1].ID)
}

func TestMapCampaignCostPerLead(t *testing.T) {
	withLeads := MapCampaign(models.Campaign{Spent: 8500, Leads: 453})
	assert.InDelta(t, 8500.0/453.0, withLeads.CostPerLead, 0.0001)

	noLeads := MapCampaign(models.Campaign{Spent: 4200, Leads: 0})
	assert.Zero(t, noLeads.CostPerLead)
}

func TestMapMilestoneRenamesFields(t *testing.T) {
	campaignID := int64(2)
	view := MapMilestone(models.Milestone{
		ID:          1,
		Title:       "Reach 1000 Applications",
		TargetDate:  time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		IsCompleted: true,
		CampaignID:  &campaignID,
	})

	assert.Equal(t, "2025-12-31", view.DueDate)
	assert.True(t, view.Completed)
	assert.Equal(t, int64(2), *view.CampaignID)
}

func TestMapTodoOwnerAndCompletion(t *testing.T) {
	view := MapTodo(models.Todo{
		ID:            5,
		Title:         "Prepare agenda",
		DueDate:       time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		Priority:      models.PriorityHigh,
		IsCompleted:   true,
		CreatedBy:     strPtr("uid-9"),
		OwnerFullName: strPtr("Sam Ortiz"),
	})

	assert.Equal(t, "2026-01-10", view.DueDate)
	assert.Equal(t, "high", view.Priority)
	assert.True(t, view.Completed)
	assert.Equal(t, "uid-9", view.CreatedBy)
	assert.Equal(t, "Sam Ortiz", view.OwnerName)
}

func TestMapInternshipFormatsDates(t *testing.T) {
	view := MapInternship(models.Internship{
		Company:   "Tech Innovations Inc.",
		Student:   "Emma Wilson",
		StartDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
		Status:    models.InternshipStatusActive,
	})

	assert.Equal(t, "2026-01-15", view.StartDate)
	assert.Equal(t, "2026-06-15", view.EndDate)
	assert.Equal(t, "active", view.Status)
}

func TestFormatDateZeroIsEmpty(t *testing.T) {
	view := MapCommunication(models.Communication{Title: "Draft"})
	assert.Empty(t, view.Date)
}
