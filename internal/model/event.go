package model

import "time"

// SportTypes is the closed catalog of sports an event can be tagged with.
// Clients populate their sport selector from this list.
var SportTypes = []string{
	"Soccer",
	"Basketball",
	"Tennis",
	"Football",
	"Baseball",
	"Hockey",
	"Volleyball",
	"Golf",
	"Swimming",
	"Track and Field",
}

// IsValidSportType reports whether s is in the sport catalog
func IsValidSportType(s string) bool {
	for _, t := range SportTypes {
		if t == s {
			return true
		}
	}
	return false
}

// Event represents a sports event
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SportType   string    `json:"sport_type"`
	DateTime    time.Time `json:"date_time"`
	Description *string   `json:"description,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventWithVenues is an event together with its associated venues,
// flattened from the event_venue junction rows. Venues is never nil.
type EventWithVenues struct {
	Event
	Venues []Venue `json:"venues"`
}

// EventFormData is the client-supplied payload for creating or updating
// an event. DateTime is the raw RFC 3339 string as submitted; it is
// validated and parsed by the event actions.
type EventFormData struct {
	Name        string   `json:"name"`
	SportType   string   `json:"sport_type"`
	DateTime    string   `json:"date_time"`
	Description *string  `json:"description,omitempty"`
	VenueIDs    []string `json:"venue_ids"`
}

// EventFilters narrows event listings. Empty fields are ignored.
// Search matches the event name case-insensitively as a substring;
// SportType matches exactly. Both combine with AND.
type EventFilters struct {
	Search    string
	SportType string
}
