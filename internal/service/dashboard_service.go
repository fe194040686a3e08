package service

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/scintranet/staff-api/internal/dto"
)

// DashboardService loads the complete entity state in one call. The seven
// collections are independent so they are fetched concurrently; the first
// failure cancels the rest.
type DashboardService struct {
	events         *EventService
	communications *CommunicationService
	internships    *InternshipService
	campaigns      *CampaignService
	milestones     *MilestoneService
	todos          *TodoService
	admissions     *AdmissionsService
	logger         *zap.Logger
}

// NewDashboardService constructs the service.
func NewDashboardService(
	events *EventService,
	communications *CommunicationService,
	internships *InternshipService,
	campaigns *CampaignService,
	milestones *MilestoneService,
	todos *TodoService,
	admissions *AdmissionsService,
	logger *zap.Logger,
) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		events:         events,
		communications: communications,
		internships:    internships,
		campaigns:      campaigns,
		milestones:     milestones,
		todos:          todos,
		admissions:     admissions,
		logger:         logger,
	}
}

// Load fetches every collection concurrently and assembles the dashboard
// state. Each goroutine writes a distinct field, so no locking is needed.
func (s *DashboardService) Load(ctx context.Context) (*dto.DashboardState, error) {
	state := &dto.DashboardState{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		views, err := s.events.List(ctx)
		if err != nil {
			return err
		}
		state.Events = views
		return nil
	})
	g.Go(func() error {
		views, err := s.communications.List(ctx)
		if err != nil {
			return err
		}
		state.Communications = views
		return nil
	})
	g.Go(func() error {
		views, err := s.internships.List(ctx)
		if err != nil {
			return err
		}
		state.Internships = views
		return nil
	})
	g.Go(func() error {
		views, err := s.campaigns.List(ctx)
		if err != nil {
			return err
		}
		state.Campaigns = views
		return nil
	})
	g.Go(func() error {
		views, err := s.milestones.List(ctx)
		if err != nil {
			return err
		}
		state.Milestones = views
		return nil
	})
	g.Go(func() error {
		views, err := s.todos.List(ctx)
		if err != nil {
			return err
		}
		state.Todos = views
		return nil
	})
	g.Go(func() error {
		metrics, err := s.admissions.List(ctx)
		if err != nil {
			return err
		}
		state.Admissions = metrics
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}
