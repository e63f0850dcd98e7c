package domain

import (
	"context"
	"time"
)

// Event is a listed event as stored. CategoryID and OrganizerID are references;
// see EventDetails for the populated read shape.
// swagger:model Event
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Location      *string   `json:"location,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	ImageURL      string    `json:"image_url"`
	StartDateTime time.Time `json:"start_date_time"`
	EndDateTime   time.Time `json:"end_date_time"`
	// Price is free text ("25", "25.00 EUR", "donation"), kept loosely typed on purpose.
	Price       string  `json:"price"`
	IsFree      bool    `json:"is_free"`
	URL         *string `json:"url,omitempty"`
	CategoryID  *string `json:"category_id"`
	OrganizerID string  `json:"organizer_id"`
}

// EventInput holds the caller-editable fields of an event, used for both
// create and full-document update.
type EventInput struct {
	Title         string
	Description   string
	Location      *string
	ImageURL      string
	StartDateTime time.Time
	EndDateTime   time.Time
	Price         string
	IsFree        bool
	URL           *string
	CategoryID    *string
}

// NewEvent returns a new Event for organizerID built from in. ID and CreatedAt
// are assigned by the caller before persisting.
func NewEvent(organizerID string, in EventInput) *Event {
	e := &Event{OrganizerID: organizerID}
	e.Apply(in)
	return e
}

// Apply overwrites every editable field of e with in. ID, OrganizerID and
// CreatedAt are left untouched.
func (e *Event) Apply(in EventInput) {
	e.Title = in.Title
	e.Description = in.Description
	e.Location = in.Location
	e.ImageURL = in.ImageURL
	e.StartDateTime = in.StartDateTime
	e.EndDateTime = in.EndDateTime
	e.Price = in.Price
	e.IsFree = in.IsFree
	e.URL = in.URL
	e.CategoryID = in.CategoryID
}

// EventOrganizer is the organizer projection attached to listed events.
type EventOrganizer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// EventCategory is the category projection attached to listed events.
type EventCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventDetails is an Event with organizer and category populated.
// Category is nil when the event has none or the reference dangles.
// swagger:model EventDetails
type EventDetails struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Location      *string         `json:"location,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	ImageURL      string          `json:"image_url"`
	StartDateTime time.Time       `json:"start_date_time"`
	EndDateTime   time.Time       `json:"end_date_time"`
	Price         string          `json:"price"`
	IsFree        bool            `json:"is_free"`
	URL           *string         `json:"url,omitempty"`
	Category      *EventCategory  `json:"category"`
	Organizer     *EventOrganizer `json:"organizer"`
}

// EventQuery is the storage-level condition set for listing events.
// Every non-empty field is ANDed; an empty query matches all events.
type EventQuery struct {
	TitleContains string
	CategoryID    string
	OrganizerID   string
	ExcludeID     string
	Offset        int
	Limit         int
}

// EventFilter is the visitor-facing filter for ListEvents.
type EventFilter struct {
	Query    string // case-insensitive title substring
	Category string // category name, resolved case-insensitively
	Page     int
	Limit    int
}

// EventPage is one page of populated events.
// swagger:model EventPage
type EventPage struct {
	Items      []*EventDetails `json:"items"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int             `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// EmptyEventPage returns a page with no items for the given pagination.
func EmptyEventPage(p PaginationParams) *EventPage {
	return &EventPage{Items: []*EventDetails{}, Page: p.Page, Limit: p.PageSize}
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*EventDetails, error)
	// Update replaces every editable field of the stored event and returns it.
	// A missing event is ErrNotFound.
	Update(ctx context.Context, event *Event) (*Event, error)
	// Delete removes the event and reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
	// List returns the page selected by q and the total number of matches.
	List(ctx context.Context, q EventQuery) ([]*EventDetails, int, error)
}

// EventService is the operation boundary used by the HTTP layer.
type EventService interface {
	CreateEvent(ctx context.Context, organizerID string, in EventInput, path string) (*Event, error)
	GetEventByID(ctx context.Context, eventID string) (*EventDetails, error)
	UpdateEvent(ctx context.Context, eventID string, in EventInput, path string) (*Event, error)
	DeleteEvent(ctx context.Context, eventID, path string) error
	ListEvents(ctx context.Context, filter EventFilter) (*EventPage, error)
	ListEventsByOrganizer(ctx context.Context, organizerID string, page, limit int) (*EventPage, error)
	ListRelatedEventsByCategory(ctx context.Context, categoryID, excludeEventID string, page, limit int) (*EventPage, error)
}
