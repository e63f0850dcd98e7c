package controllers

import (
	"net/http"
	"strings"
	"time"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/domain"
)

// defaultRevalidatePath is the page invalidated after a write when the caller
// names none.
const defaultRevalidatePath = "/"

// EventRequest is the request body for POST /events and PUT /events/{eventID}.
// Update is a full replacement: omitted optional fields are cleared.
type EventRequest struct {
	Title         string    `json:"title" validate:"required,min=3"`
	Description   string    `json:"description" validate:"required,min=3,max=400"`
	Location      *string   `json:"location" validate:"omitempty,max=400"`
	ImageURL      string    `json:"image_url" validate:"required,url"`
	StartDateTime time.Time `json:"start_date_time" validate:"required"`
	EndDateTime   time.Time `json:"end_date_time" validate:"required"`
	Price         string    `json:"price" validate:"max=50"`
	IsFree        bool      `json:"is_free"`
	URL           *string   `json:"url" validate:"omitempty,url"`
	CategoryID    *string   `json:"category_id" validate:"omitempty,uuid"`
	// Path is the page to revalidate after the write. Defaults to "/".
	Path          string    `json:"path" validate:"omitempty,startswith=/"`
}

// Validate implements Validator.
func (e EventRequest) Validate() []string {
	var errs []string
	if !e.IsFree && strings.TrimSpace(e.Price) == "" {
		errs = append(errs, "price is required unless is_free is set")
	}
	return errs
}

func (e EventRequest) input() domain.EventInput {
	return domain.EventInput{
		Title:         strings.TrimSpace(e.Title),
		Description:   e.Description,
		Location:      e.Location,
		ImageURL:      e.ImageURL,
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		Price:         strings.TrimSpace(e.Price),
		IsFree:        e.IsFree,
		URL:           e.URL,
		CategoryID:    e.CategoryID,
	}
}

// EventSuccessResponse is the success envelope for event writes.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventDetailsSuccessResponse is the success envelope for GET /events/{eventID}.
type EventDetailsSuccessResponse struct {
	Data  *domain.EventDetails `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// EventPageSuccessResponse is the success envelope for event listings.
type EventPageSuccessResponse struct {
	Data  *domain.EventPage `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Service domain.EventService
}

func NewEventController(svc domain.EventService) *EventController {
	return &EventController{Service: svc}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event organized by the authenticated user and revalidates the given page.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (caller not registered)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (organizer)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), userID, req.input(), revalidatePath(req.Path))
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Description Returns the event with its organizer and category populated.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventDetailsSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEventByID(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Replace an event
// @Description Replaces every editable field of the event and revalidates the given page.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Event data"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (caller not registered)"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("eventID"), req.input(), revalidatePath(req.Path))
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event. Deleting an event that does not exist succeeds.
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param path query string false "Page to revalidate (default /)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden (caller not registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserIDFromContext(r.Context()); !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	path := r.URL.Query().Get("path")
	if path != "" && !strings.HasPrefix(path, "/") {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "path must start with /")
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("eventID"), revalidatePath(path)); err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListEvents godoc
// @Summary List events
// @Description Lists events newest first, optionally filtered by a title substring and a category name.
// @Tags events
// @Produce json
// @Param query query string false "Case-insensitive title substring"
// @Param category query string false "Category name, matched case-insensitively"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 6, max 100)"
// @Success 200 {object} controllers.EventPageSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	page, limit := helpers.ParsePagination(r)
	q := r.URL.Query()
	result, err := c.Service.ListEvents(r.Context(), domain.EventFilter{
		Query:    q.Get("query"),
		Category: q.Get("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// ListEventsByOrganizer godoc
// @Summary List an organizer's events
// @Tags events
// @Produce json
// @Param userID path string true "Organizer user ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 6, max 100)"
// @Success 200 {object} controllers.EventPageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /users/{userID}/events [get]
func (c *EventController) ListEventsByOrganizer(w http.ResponseWriter, r *http.Request) {
	page, limit := helpers.ParsePagination(r)
	result, err := c.Service.ListEventsByOrganizer(r.Context(), r.PathValue("userID"), page, limit)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

// ListRelatedEvents godoc
// @Summary List related events of a category
// @Description Lists other events of the category, never including the excluded event.
// @Tags events
// @Produce json
// @Param categoryID path string true "Category ID (UUID)"
// @Param exclude query string false "Event ID to leave out"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 3, max 100)"
// @Success 200 {object} controllers.EventPageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /categories/{categoryID}/events [get]
func (c *EventController) ListRelatedEvents(w http.ResponseWriter, r *http.Request) {
	page, limit := helpers.ParsePagination(r)
	exclude := r.URL.Query().Get("exclude")
	result, err := c.Service.ListRelatedEventsByCategory(r.Context(), r.PathValue("categoryID"), exclude, page, limit)
	if err != nil {
		helpers.WriteDomainError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}

func revalidatePath(p string) string {
	if p == "" {
		return defaultRevalidatePath
	}
	return p
}
