package dto

import "github.com/scintranet/staff-api/internal/models"

// DashboardState is the complete mapped entity state loaded on page mount.
type DashboardState struct {
	Events         []EventView               `json:"events"`
	Communications []CommunicationView       `json:"communications"`
	Internships    []InternshipView          `json:"internships"`
	Campaigns      []CampaignView            `json:"campaigns"`
	Milestones     []MilestoneView           `json:"milestones"`
	Todos          []TodoView                `json:"todos"`
	Admissions     []models.AdmissionsMetric `json:"admissionsMetrics"`
}
