package dto

// EventView is the display shape of an event. Start/end dates and the event
// type are derived from the stored date and category.
type EventView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Location  string `json:"location,omitempty"`
	Organizer string `json:"organizer,omitempty"`
	Category  string `json:"category,omitempty"`
	Attendees int    `json:"attendees"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	EventType string `json:"eventType"`
	CreatedBy string `json:"created_by,omitempty"`
	OwnerName string `json:"owner_name"`
}

// CommunicationView is the display shape of an announcement.
type CommunicationView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author,omitempty"`
	Category string `json:"category,omitempty"`
	Priority string `json:"priority"`
	Date     string `json:"date"`
}

// InternshipView is the display shape of an internship placement.
type InternshipView struct {
	ID         int64  `json:"id"`
	Company    string `json:"company"`
	Position   string `json:"position"`
	Student    string `json:"student"`
	Supervisor string `json:"supervisor,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
}

// CampaignView is the display shape of a campaign including the derived
// cost-per-lead (zero when the campaign has no leads).
type CampaignView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Platform    string  `json:"platform"`
	Budget      float64 `json:"budget"`
	Spent       float64 `json:"spent"`
	Leads       int     `json:"leads"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Status      string  `json:"status"`
	CostPerLead float64 `json:"costPerLead"`
}

// MilestoneView is the display shape of a milestone.
type MilestoneView struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	DueDate    string `json:"dueDate"`
	Completed  bool   `json:"completed"`
	CampaignID *int64 `json:"campaignId,omitempty"`
}

// TodoView is the display shape of a daily todo.
type TodoView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
	CreatedBy   string `json:"created_by,omitempty"`
	OwnerName   string `json:"owner_name"`
}
