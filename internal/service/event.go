// Package service implements the action layer: every public operation
// returns an action.Result, authentication is resolved before any
// validation or store access, and all failures are drawn from the
// model.AppError taxonomy.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fieldday/api/internal/action"
	"github.com/fieldday/api/internal/model"
)

// EventRepository defines the interface for event storage
type EventRepository interface {
	List(ctx context.Context, filters *model.EventFilters) ([]*model.EventWithVenues, error)
	Get(ctx context.Context, id string) (*model.EventWithVenues, error)
	GetCreatedBy(ctx context.Context, id string) (string, error)
	Create(ctx context.Context, event *model.Event) error
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	AddVenues(ctx context.Context, eventID string, venueIDs []string) error
	RemoveVenues(ctx context.Context, eventID string) error
}

// EventService implements the event actions
type EventService struct {
	repo     EventRepository
	sessions action.Sessions
}

// NewEventService creates a new event service
func NewEventService(repo EventRepository, sessions action.Sessions) *EventService {
	return &EventService{repo: repo, sessions: sessions}
}

// List retrieves events with their venues, ordered by start time.
// Filters are optional; no matching rows yields an empty list.
func (s *EventService) List(ctx context.Context, filters *model.EventFilters) action.Result[[]*model.EventWithVenues] {
	return action.Run(func() ([]*model.EventWithVenues, error) {
		events, err := s.repo.List(ctx, filters)
		if err != nil {
			return nil, err
		}
		if events == nil {
			events = []*model.EventWithVenues{}
		}
		return events, nil
	})
}

// Get retrieves a single event with its venues
func (s *EventService) Get(ctx context.Context, id string) action.Result[*model.EventWithVenues] {
	return action.Run(func() (*model.EventWithVenues, error) {
		if id == "" {
			return nil, model.NewValidationError("Event ID is required", "")
		}

		event, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if event == nil {
			return nil, model.NewNotFoundError("Event")
		}
		return event, nil
	})
}

// Create validates the form, inserts the event, and associates venues.
// When a venue association fails, the freshly created event is removed
// again so no half-created event survives.
func (s *EventService) Create(ctx context.Context, form model.EventFormData) action.Result[*model.EventWithVenues] {
	return action.RunWithAuth(ctx, s.sessions, func(ctx context.Context, userID string) (*model.EventWithVenues, error) {
		when, vErr := validateEventForm(form)
		if vErr != nil {
			return nil, vErr
		}

		event := &model.Event{
			Name:        strings.TrimSpace(form.Name),
			SportType:   strings.TrimSpace(form.SportType),
			DateTime:    when,
			Description: trimmedOrNil(form.Description),
			CreatedBy:   userID,
		}

		if err := s.repo.Create(ctx, event); err != nil {
			return nil, model.NewDatabaseError("Failed to create event", err)
		}
		if event.ID == "" {
			return nil, model.NewDatabaseError("Failed to create event", nil)
		}

		if len(form.VenueIDs) > 0 {
			if err := s.repo.AddVenues(ctx, event.ID, form.VenueIDs); err != nil {
				if delErr := s.repo.Delete(ctx, event.ID); delErr != nil {
					slog.Warn("failed to remove event after venue association failure",
						slog.String("event_id", event.ID),
						slog.String("error", delErr.Error()),
					)
				}
				return nil, model.NewDatabaseError("Failed to associate venues: "+err.Error(), err)
			}
		}

		full, err := s.repo.Get(ctx, event.ID)
		if err != nil || full == nil {
			// The event exists even if the re-read failed; degrade to the
			// row we just wrote rather than failing the whole action.
			return &model.EventWithVenues{Event: *event, Venues: []model.Venue{}}, nil
		}
		return full, nil
	})
}

// Update validates the form, checks ownership, writes the mutable
// fields, and replaces the venue associations wholesale.
func (s *EventService) Update(ctx context.Context, id string, form model.EventFormData) action.Result[*model.EventWithVenues] {
	return action.RunWithAuth(ctx, s.sessions, func(ctx context.Context, userID string) (*model.EventWithVenues, error) {
		if id == "" {
			return nil, model.NewValidationError("Event ID is required", "")
		}

		when, vErr := validateEventForm(form)
		if vErr != nil {
			return nil, vErr
		}

		createdBy, err := s.repo.GetCreatedBy(ctx, id)
		if err != nil {
			return nil, err
		}
		if createdBy == "" {
			return nil, model.NewNotFoundError("Event")
		}
		if createdBy != userID {
			return nil, model.NewAuthorizationError("You can only edit your own events")
		}

		updates := map[string]interface{}{
			"name":       strings.TrimSpace(form.Name),
			"sport_type": strings.TrimSpace(form.SportType),
			"date_time":  when,
		}
		if desc := trimmedOrNil(form.Description); desc != nil {
			updates["description"] = *desc
		} else {
			updates["description"] = nil
		}

		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, model.NewDatabaseError("Failed to update event", err)
		}

		// Replace venue associations: clear, then re-insert
		if err := s.repo.RemoveVenues(ctx, id); err != nil {
			return nil, model.NewDatabaseError("Failed to update venues: "+err.Error(), err)
		}
		if len(form.VenueIDs) > 0 {
			if err := s.repo.AddVenues(ctx, id, form.VenueIDs); err != nil {
				return nil, model.NewDatabaseError("Failed to associate venues: "+err.Error(), err)
			}
		}

		full, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, model.NewDatabaseError("Failed to fetch updated event", err)
		}
		if full == nil {
			return nil, model.NewNotFoundError("Event")
		}
		return full, nil
	})
}

// Delete checks ownership and removes the event together with its
// junction rows. The store has no cascading deletes, so the junction
// rows go first.
func (s *EventService) Delete(ctx context.Context, id string) action.Result[struct{}] {
	return action.RunWithAuth(ctx, s.sessions, func(ctx context.Context, userID string) (struct{}, error) {
		var none struct{}

		if id == "" {
			return none, model.NewValidationError("Event ID is required", "")
		}

		createdBy, err := s.repo.GetCreatedBy(ctx, id)
		if err != nil {
			return none, err
		}
		if createdBy == "" {
			return none, model.NewNotFoundError("Event")
		}
		if createdBy != userID {
			return none, model.NewAuthorizationError("You can only delete your own events")
		}

		if err := s.repo.RemoveVenues(ctx, id); err != nil {
			return none, model.NewDatabaseError("Failed to delete event", err)
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return none, model.NewDatabaseError("Failed to delete event", err)
		}
		return none, nil
	})
}

// validateEventForm checks the form fields in a fixed order and returns
// the parsed start time. The first failing field wins.
func validateEventForm(form model.EventFormData) (time.Time, *model.AppError) {
	if strings.TrimSpace(form.Name) == "" {
		return time.Time{}, model.NewValidationError("Event name is required", "name")
	}
	if strings.TrimSpace(form.SportType) == "" {
		return time.Time{}, model.NewValidationError("Sport type is required", "sport_type")
	}
	if form.DateTime == "" {
		return time.Time{}, model.NewValidationError("Date and time is required", "date_time")
	}
	when, err := time.Parse(time.RFC3339, form.DateTime)
	if err != nil {
		return time.Time{}, model.NewValidationError("Invalid date format", "date_time")
	}
	return when, nil
}

// trimmedOrNil trims an optional string, mapping empty to nil
func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
