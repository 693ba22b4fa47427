package repository

import (
	"context"

	"github.com/fieldday/api/internal/database"
	"github.com/fieldday/api/internal/model"
)

// VenueRepository handles venue data access
type VenueRepository struct {
	db database.Database
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(db database.Database) *VenueRepository {
	return &VenueRepository{db: db}
}

// List retrieves all venues ordered by name
func (r *VenueRepository) List(ctx context.Context) ([]*model.Venue, error) {
	query := `SELECT * FROM venue ORDER BY name ASC`

	result, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	venues := make([]*model.Venue, 0)
	rows, ok := extractQueryResults(result)
	if !ok {
		return venues, nil
	}

	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		venue, err := parseVenueResult(data)
		if err != nil {
			continue
		}
		venues = append(venues, venue)
	}
	return venues, nil
}

// Create creates a new venue and fills in the store-assigned fields
func (r *VenueRepository) Create(ctx context.Context, venue *model.Venue) error {
	query := `
		CREATE venue CONTENT {
			name: $name,
			address: IF $address IS NOT NULL THEN $address ELSE NONE END,
			capacity: IF $capacity IS NOT NULL THEN $capacity ELSE NONE END,
			created_at: time::now(),
			updated_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":     venue.Name,
		"address":  venue.Address,
		"capacity": venue.Capacity,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	venue.ID = created.ID
	venue.CreatedAt = created.CreatedAt
	venue.UpdatedAt = created.UpdatedAt
	return nil
}

func parseVenueResult(data map[string]interface{}) (*model.Venue, error) {
	venue := &model.Venue{
		ID:       convertSurrealID(data["id"]),
		Name:     getString(data, "name"),
		Address:  getStringPtr(data, "address"),
		Capacity: getIntPtr(data, "capacity"),
	}
	if venue.ID == "" {
		return nil, errUnexpectedFormat
	}

	if t := getTime(data, "created_at"); t != nil {
		venue.CreatedAt = *t
	}
	if t := getTime(data, "updated_at"); t != nil {
		venue.UpdatedAt = *t
	}
	return venue, nil
}
