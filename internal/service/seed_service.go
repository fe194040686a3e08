package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/scintranet/staff-api/internal/models"
	appErrors "github.com/scintranet/staff-api/pkg/errors"
)

type seedRepository interface {
	CountRows(ctx context.Context, table string) (int, error)
	UpsertEvent(ctx context.Context, event models.Event) error
	UpsertCommunication(ctx context.Context, comm models.Communication) error
	UpsertInternship(ctx context.Context, internship models.Internship) error
	UpsertCampaign(ctx context.Context, campaign models.Campaign) error
	UpsertMilestone(ctx context.Context, milestone models.Milestone) error
	UpsertAdmissionsMetric(ctx context.Context, metric models.AdmissionsMetric) error
	SyncSequence(ctx context.Context, table string) error
}

// serialTables hold fixture rows with explicit ids in bigserial columns;
// their sequences must be advanced after seeding so later inserts do not
// reuse a seeded id.
var serialTables = []string{
	"events",
	"communications",
	"internships",
	"campaigns",
	"milestones",
}

// seedTables are the tables reported by Status, in display order.
var seedTables = []string{
	"events",
	"communications",
	"internships",
	"campaigns",
	"milestones",
	"admissions_metrics",
	"daily_todos",
	"pending_users",
	"staff_profiles",
}

// SeedService loads demo fixtures and reports table row counts. Both
// operations are restricted to super admins at the route level.
type SeedService struct {
	repo    seedRepository
	enabled bool
	logger  *zap.Logger
}

// NewSeedService constructs the service. enabled gates the fixture load so
// production deployments can turn it off.
func NewSeedService(repo seedRepository, enabled bool, logger *zap.Logger) *SeedService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SeedService{repo: repo, enabled: enabled, logger: logger}
}

// Status returns the row count per known table. Tables that cannot be
// counted (missing, permission denied) report a nil count instead of
// failing the whole call.
func (s *SeedService) Status(ctx context.Context) map[string]*int {
	status := make(map[string]*int, len(seedTables))
	for _, table := range seedTables {
		count, err := s.repo.CountRows(ctx, table)
		if err != nil {
			s.logger.Warn("failed to count table rows", zap.String("table", table), zap.Error(err))
			status[table] = nil
			continue
		}
		c := count
		status[table] = &c
	}
	return status
}

// Seed upserts the demo fixtures. Rows are keyed by fixed identifiers so the
// operation is idempotent.
func (s *SeedService) Seed(ctx context.Context) error {
	if !s.enabled {
		return appErrors.Clone(appErrors.ErrForbidden, "seeding is disabled")
	}

	for _, event := range seedEvents() {
		if err := s.repo.UpsertEvent(ctx, event); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed events")
		}
	}
	for _, comm := range seedCommunications() {
		if err := s.repo.UpsertCommunication(ctx, comm); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed communications")
		}
	}
	for _, internship := range seedInternships() {
		if err := s.repo.UpsertInternship(ctx, internship); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed internships")
		}
	}
	for _, campaign := range seedCampaigns() {
		if err := s.repo.UpsertCampaign(ctx, campaign); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed campaigns")
		}
	}
	for _, milestone := range seedMilestones() {
		if err := s.repo.UpsertMilestone(ctx, milestone); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed milestones")
		}
	}
	for _, metric := range seedAdmissionsMetrics() {
		if err := s.repo.UpsertAdmissionsMetric(ctx, metric); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to seed admissions metrics")
		}
	}

	for _, table := range serialTables {
		if err := s.repo.SyncSequence(ctx, table); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sync id sequences")
		}
	}

	s.logger.Info("demo fixtures seeded")
	return nil
}

func seedDate(value string) time.Time {
	t, _ := time.Parse(dateLayout, value)
	return t
}

func seedEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Annual Research Symposium", Date: seedDate("2026-02-15"), Time: "09:00:00", Location: "Main Auditorium", Organizer: "Dr. Smith", Attendees: 45, Category: "Academic"},
		{ID: 2, Title: "Staff Development Workshop", Date: seedDate("2026-01-20"), Time: "14:00:00", Location: "Room 301", Organizer: "HR Department", Attendees: 20, Category: "Professional Development"},
		{ID: 3, Title: "Student Orientation", Date: seedDate("2026-02-01"), Time: "10:00:00", Location: "Campus Center", Organizer: "Admin Office", Attendees: 150, Category: "Student Affairs"},
	}
}

func seedCommunications() []models.Communication {
	return []models.Communication{
		{ID: 1, Title: "New Curriculum Changes for 2026", Author: "Dean Johnson", Date: seedDate("2026-01-02"), Category: "Academic", Priority: models.PriorityHigh, Content: "Important updates to the collective intelligence curriculum..."},
		{ID: 2, Title: "Campus Facility Maintenance Schedule", Author: "Facilities Team", Date: seedDate("2025-12-28"), Category: "Operations", Priority: models.PriorityMedium, Content: "Scheduled maintenance for building renovations..."},
		{ID: 3, Title: "Research Grant Opportunities", Author: "Research Office", Date: seedDate("2026-01-03"), Category: "Research", Priority: models.PriorityHigh, Content: "New funding opportunities available for faculty..."},
	}
}

func seedInternships() []models.Internship {
	return []models.Internship{
		{ID: 1, Company: "Tech Innovations Inc.", Position: "AI Research Intern", Student: "Emma Wilson", Supervisor: "Prof. Davis", StartDate: seedDate("2026-01-15"), EndDate: seedDate("2026-06-15"), Status: models.InternshipStatusActive},
		{ID: 2, Company: "Global Consulting Group", Position: "Strategy Analyst Intern", Student: "Michael Chen", Supervisor: "Dr. Brown", StartDate: seedDate("2026-02-01"), EndDate: seedDate("2026-07-01"), Status: models.InternshipStatusPending},
		{ID: 3, Company: "Data Systems Corp", Position: "Data Science Intern", Student: "Sarah Johnson", Supervisor: "Prof. Martinez", StartDate: seedDate("2025-09-01"), EndDate: seedDate("2025-12-20"), Status: models.InternshipStatusCompleted},
	}
}

func seedCampaigns() []models.Campaign {
	return []models.Campaign{
		{ID: 1, Name: "Social Media Outreach", Platform: "Instagram/LinkedIn", Budget: 15000, Spent: 8500, Leads: 453, Status: models.CampaignStatusActive, StartDate: seedDate("2025-11-01"), EndDate: seedDate("2026-03-31")},
		{ID: 2, Name: "University Fair Tour", Platform: "In-Person Events", Budget: 25000, Spent: 18000, Leads: 287, Status: models.CampaignStatusActive, StartDate: seedDate("2025-12-01"), EndDate: seedDate("2026-02-28")},
		{ID: 3, Name: "Email Campaign - STEM Focus", Platform: "Email Marketing", Budget: 8000, Spent: 8000, Leads: 312, Status: models.CampaignStatusCompleted, StartDate: seedDate("2025-10-15"), EndDate: seedDate("2025-12-15")},
		{ID: 4, Name: "Webinar Series", Platform: "Online Events", Budget: 10000, Spent: 4200, Leads: 195, Status: models.CampaignStatusActive, StartDate: seedDate("2026-01-01"), EndDate: seedDate("2026-04-30")},
	}
}

func seedMilestones() []models.Milestone {
	return []models.Milestone{
		{ID: 1, Title: "Reach 1000 Applications", TargetDate: seedDate("2025-12-31"), IsCompleted: true},
		{ID: 2, Title: "Complete University Fair Tour", TargetDate: seedDate("2026-02-28"), IsCompleted: false},
		{ID: 3, Title: "Send 400 Acceptance Letters", TargetDate: seedDate("2026-03-15"), IsCompleted: false},
		{ID: 4, Title: "300 Confirmed Enrollments", TargetDate: seedDate("2026-05-01"), IsCompleted: false},
	}
}

func seedAdmissionsMetrics() []models.AdmissionsMetric {
	return []models.AdmissionsMetric{
		{ID: 1, TotalApplicants: 1247, TargetApplicants: 1500, AcceptedStudents: 342, TargetAcceptance: 400, ConfirmedEnrollments: 156, TargetEnrollments: 300},
	}
}
