package service

import (
	"context"
	"strings"

	"github.com/fieldday/api/internal/action"
	"github.com/fieldday/api/internal/model"
)

// VenueRepository defines the interface for venue storage
type VenueRepository interface {
	List(ctx context.Context) ([]*model.Venue, error)
	Create(ctx context.Context, venue *model.Venue) error
}

// VenueService implements the venue actions
type VenueService struct {
	repo     VenueRepository
	sessions action.Sessions
}

// NewVenueService creates a new venue service
func NewVenueService(repo VenueRepository, sessions action.Sessions) *VenueService {
	return &VenueService{repo: repo, sessions: sessions}
}

// List retrieves all venues ordered by name
func (s *VenueService) List(ctx context.Context) action.Result[[]*model.Venue] {
	return action.Run(func() ([]*model.Venue, error) {
		venues, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if venues == nil {
			venues = []*model.Venue{}
		}
		return venues, nil
	})
}

// Create validates the form and inserts a new venue. The caller's
// identity gates the action but is not recorded on the row.
func (s *VenueService) Create(ctx context.Context, form model.VenueFormData) action.Result[*model.Venue] {
	return action.RunWithAuth(ctx, s.sessions, func(ctx context.Context, _ string) (*model.Venue, error) {
		if strings.TrimSpace(form.Name) == "" {
			return nil, model.NewValidationError("Venue name is required", "name")
		}

		venue := &model.Venue{
			Name:     strings.TrimSpace(form.Name),
			Address:  trimmedOrNil(form.Address),
			Capacity: form.Capacity,
		}

		if err := s.repo.Create(ctx, venue); err != nil {
			return nil, model.NewDatabaseError("Failed to create venue", err)
		}
		if venue.ID == "" {
			return nil, model.NewDatabaseError("Failed to create venue", nil)
		}
		return venue, nil
	})
}
