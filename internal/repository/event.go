package repository

import (
	"context"
	"errors"

	"github.com/fieldday/api/internal/database"
	"github.com/fieldday/api/internal/model"
)

// EventRepository handles event and event_venue data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// List retrieves events ordered by date_time, each with its venues
// flattened from the event_venue junction rows. Filters are optional.
func (r *EventRepository) List(ctx context.Context, filters *model.EventFilters) ([]*model.EventWithVenues, error) {
	query := `SELECT * FROM event`
	vars := map[string]interface{}{}

	var conditions []string
	if filters != nil {
		if filters.Search != "" {
			conditions = append(conditions, `string::lowercase(name) CONTAINS string::lowercase($search)`)
			vars["search"] = filters.Search
		}
		if filters.SportType != "" {
			conditions = append(conditions, `sport_type = $sport_type`)
			vars["sport_type"] = filters.SportType
		}
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += ` ORDER BY date_time ASC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	events, err := r.parseEventsResult(result)
	if err != nil {
		return nil, err
	}

	out := make([]*model.EventWithVenues, 0, len(events))
	for _, event := range events {
		venues, err := r.venuesFor(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, &model.EventWithVenues{Event: *event, Venues: venues})
	}
	return out, nil
}

// Get retrieves an event with its venues. Returns (nil, nil) when the
// event does not exist.
func (r *EventRepository) Get(ctx context.Context, eventID string) (*model.EventWithVenues, error) {
	query := `SELECT * FROM type::record($event_id)`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	event, err := r.parseEventResult(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	venues, err := r.venuesFor(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return &model.EventWithVenues{Event: *event, Venues: venues}, nil
}

// GetCreatedBy retrieves the owner of an event for authorization checks.
// Returns ("", nil) when the event does not exist.
func (r *EventRepository) GetCreatedBy(ctx context.Context, eventID string) (string, error) {
	query := `SELECT created_by FROM type::record($event_id)`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return "", errUnexpectedFormat
	}
	return convertSurrealID(data["created_by"]), nil
}

// Create creates a new event and fills in the store-assigned fields
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	query := `
		CREATE event CONTENT {
			name: $name,
			sport_type: $sport_type,
			date_time: $date_time,
			description: IF $description IS NOT NULL THEN $description ELSE NONE END,
			created_by: type::record($created_by),
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":        event.Name,
		"sport_type":  event.SportType,
		"date_time":   event.DateTime,
		"description": event.Description,
		"created_by":  event.CreatedBy,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	event.ID = created.ID
	event.CreatedAt = created.CreatedAt
	event.UpdatedAt = created.UpdatedAt
	return nil
}

// Update writes the mutable fields of an event. A nil value sets the
// field to NONE (SurrealDB's absent value).
func (r *EventRepository) Update(ctx context.Context, eventID string, updates map[string]interface{}) error {
	query := `UPDATE type::record($event_id) SET updated_at = time::now()`
	vars := map[string]interface{}{"event_id": eventID}

	for key, value := range updates {
		if value == nil {
			query += ", " + key + " = NONE"
			continue
		}
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete deletes an event row. Junction rows are not cascaded; callers
// remove them with RemoveVenues first.
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	query := `DELETE type::record($event_id)`
	vars := map[string]interface{}{"event_id": eventID}

	return r.db.Execute(ctx, query, vars)
}

// AddVenues inserts one junction row per venue ID
func (r *EventRepository) AddVenues(ctx context.Context, eventID string, venueIDs []string) error {
	query := `
		CREATE event_venue CONTENT {
			event_id: type::record($event_id),
			venue_id: type::record($venue_id),
			created_at: time::now()
		}
	`

	for _, venueID := range venueIDs {
		vars := map[string]interface{}{
			"event_id": eventID,
			"venue_id": venueID,
		}
		if err := r.db.Execute(ctx, query, vars); err != nil {
			return err
		}
	}
	return nil
}

// RemoveVenues deletes all junction rows for an event
func (r *EventRepository) RemoveVenues(ctx context.Context, eventID string) error {
	query := `DELETE event_venue WHERE event_id = type::record($event_id)`
	vars := map[string]interface{}{"event_id": eventID}

	return r.db.Execute(ctx, query, vars)
}

// venuesFor resolves the venues linked to an event. The venue_id record
// link is expanded in-query, so missing venues simply drop out.
func (r *EventRepository) venuesFor(ctx context.Context, eventID string) ([]model.Venue, error) {
	query := `
		SELECT venue_id.* AS venue FROM event_venue
		WHERE event_id = type::record($event_id)
		ORDER BY created_at ASC
	`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	venues := make([]model.Venue, 0)
	rows, ok := extractQueryResults(result)
	if !ok {
		return venues, nil
	}

	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		venueData, ok := data["venue"].(map[string]interface{})
		if !ok {
			continue
		}
		venue, err := parseVenueResult(venueData)
		if err != nil {
			continue
		}
		venues = append(venues, *venue)
	}
	return venues, nil
}

func (r *EventRepository) parseEventResult(result interface{}) (*model.Event, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errUnexpectedFormat
	}

	event := &model.Event{
		ID:          convertSurrealID(data["id"]),
		Name:        getString(data, "name"),
		SportType:   getString(data, "sport_type"),
		Description: getStringPtr(data, "description"),
		CreatedBy:   convertSurrealID(data["created_by"]),
	}

	if t := getTime(data, "date_time"); t != nil {
		event.DateTime = *t
	}
	if t := getTime(data, "created_at"); t != nil {
		event.CreatedAt = *t
	}
	if t := getTime(data, "updated_at"); t != nil {
		event.UpdatedAt = *t
	}

	return event, nil
}

func (r *EventRepository) parseEventsResult(result []interface{}) ([]*model.Event, error) {
	events := make([]*model.Event, 0)

	rows, ok := extractQueryResults(result)
	if !ok {
		return events, nil
	}

	for _, row := range rows {
		event, err := r.parseEventResult(row)
		if err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
