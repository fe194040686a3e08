// Package dto translates stored rows into their display representation.
// All mapping functions are pure, idempotent, and order-preserving: the same
// row always yields the same view, and list order from the query is kept.
package dto

import (
	"time"

	"github.com/scintranet/staff-api/internal/models"
)

// DateLayout is the wire format for all display dates.
const DateLayout = "2006-01-02"

// Owner display defaults applied when the creator join yields nothing.
const (
	ownerSystem  = "System Admin"
	ownerUnknown = "Unknown"
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// ownerName resolves the display owner from the creator reference and the
// joined profile name. No creator means the record was seeded by the system.
func ownerName(createdBy, fullName *string) string {
	if createdBy == nil || *createdBy == "" {
		return ownerSystem
	}
	if fullName == nil || *fullName == "" {
		return ownerUnknown
	}
	return *fullName
}

// MapEvent converts a stored event into its display view.
func MapEvent(e models.Event) EventView {
	view := EventView{
		ID:        e.ID,
		Title:     e.Title,
		Date:      formatDate(e.Date),
		Time:      e.Time,
		Location:  e.Location,
		Organizer: e.Organizer,
		Category:  e.Category,
		Attendees: e.Attendees,
		StartDate: formatDate(e.Date),
		EndDate:   formatDate(e.Date),
		EventType: e.Category,
		OwnerName: ownerName(e.CreatedBy, e.OwnerFullName),
	}
	if e.CreatedBy != nil {
		view.CreatedBy = *e.CreatedBy
	}
	return view
}

// MapEvents maps a slice of events preserving query order.
func MapEvents(events []models.Event) []EventView {
	views := make([]EventView, len(events))
	for i, e := range events {
		views[i] = MapEvent(e)
	}
	return views
}

// MapCommunication converts a stored communication into its display view.
func MapCommunication(c models.Communication) CommunicationView {
	return CommunicationView{
		ID:       c.ID,
		Title:    c.Title,
		Content:  c.Content,
		Author:   c.Author,
		Category: c.Category,
		Priority: string(c.Priority),
		Date:     formatDate(c.Date),
	}
}

// MapCommunications maps a slice of communications preserving query order.
func MapCommunications(comms []models.Communication) []CommunicationView {
	views := make([]CommunicationView, len(comms))
	for i, c := range comms {
		views[i] = MapCommunication(c)
	}
	return views
}

// MapInternship converts a stored internship into its display view.
func MapInternship(i models.Internship) InternshipView {
	return InternshipView{
		ID:         i.ID,
		Company:    i.Company,
		Position:   i.Position,
		Student:    i.Student,
		Supervisor: i.Supervisor,
		StartDate:  formatDate(i.StartDate),
		EndDate:    formatDate(i.EndDate),
		Status:     string(i.Status),
	}
}

// MapInternships maps a slice of internships preserving query order.
func MapInternships(internships []models.Internship) []InternshipView {
	views := make([]InternshipView, len(internships))
	for i, in := range internships {
		views[i] = MapInternship(in)
	}
	return views
}

// MapCampaign converts a stored campaign into its display view and computes
// cost-per-lead, treated as zero when the campaign has no leads.
func MapCampaign(c models.Campaign) CampaignView {
	var costPerLead float64
	if c.Leads > 0 {
		costPerLead = c.Spent / float64(c.Leads)
	}
	return CampaignView{
		ID:          c.ID,
		Name:        c.Name,
		Platform:    c.Platform,
		Budget:      c.Budget,
		Spent:       c.Spent,
		Leads:       c.Leads,
		StartDate:   formatDate(c.StartDate),
		EndDate:     formatDate(c.EndDate),
		Status:      string(c.Status),
		CostPerLead: costPerLead,
	}
}

// MapCampaigns maps a slice of campaigns preserving query order.
func MapCampaigns(campaigns []models.Campaign) []CampaignView {
	views := make([]CampaignView, len(campaigns))
	for i, c := range campaigns {
		views[i] = MapCampaign(c)
	}
	return views
}

// MapMilestone converts a stored milestone into its display view.
func MapMilestone(m models.Milestone) MilestoneView {
	return MilestoneView{
		ID:         m.ID,
		Title:      m.Title,
		DueDate:    formatDate(m.TargetDate),
		Completed:  m.IsCompleted,
		CampaignID: m.CampaignID,
	}
}

// MapMilestones maps a slice of milestones preserving query order.
func MapMilestones(milestones []models.Milestone) []MilestoneView {
	views := make([]MilestoneView, len(milestones))
	for i, m := range milestones {
		views[i] = MapMilestone(m)
	}
	return views
}

// MapTodo converts a stored todo into its display view.
func MapTodo(t models.Todo) TodoView {
	view := TodoView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		DueDate:     formatDate(t.DueDate),
		Priority:    string(t.Priority),
		Completed:   t.IsCompleted,
		OwnerName:   ownerName(t.CreatedBy, t.OwnerFullName),
	}
	if t.CreatedBy != nil {
		view.CreatedBy = *t.CreatedBy
	}
	return view
}

// MapTodos maps a slice of todos preserving query order.
func MapTodos(todos []models.Todo) []TodoView {
	views := make([]TodoView, len(todos))
	for i, t := range todos {
		views[i] = MapTodo(t)
	}
	return views
}
