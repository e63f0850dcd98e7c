package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"eventboard/internal/domain"

	"github.com/google/uuid"
)

const defaultContextTimeout = 10 * time.Second

type eventService struct {
	eventRepo      domain.EventRepository
	userRepo       domain.UserRepository
	categoryRepo   domain.CategoryRepository
	revalidator    domain.Revalidator
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewEventService returns the event operation boundary. Every failure is logged
// with the operation name and its inputs, then returned as a typed *domain.Error.
func NewEventService(
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	categoryRepo domain.CategoryRepository,
	revalidator domain.Revalidator,
	logger *slog.Logger,
	timeout time.Duration,
) domain.EventService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = defaultContextTimeout
	}
	return &eventService{
		eventRepo:      eventRepo,
		userRepo:       userRepo,
		categoryRepo:   categoryRepo,
		revalidator:    revalidator,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, organizerID string, in domain.EventInput, path string) (*domain.Event, error) {
	const op = "CreateEvent"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEventInput(in); err != nil {
		return nil, s.fail(ctx, op, err, "organizer_id", organizerID)
	}
	if !validID(organizerID) {
		return nil, s.fail(ctx, op, domain.NotFoundError("organizer"), "organizer_id", organizerID)
	}
	ok, err := s.userRepo.Exists(ctx, organizerID)
	if err != nil {
		return nil, s.fail(ctx, op, err, "organizer_id", organizerID)
	}
	if !ok {
		return nil, s.fail(ctx, op, domain.NotFoundError("organizer"), "organizer_id", organizerID)
	}

	event := domain.NewEvent(organizerID, in)
	event.ID = uuid.NewString()
	event.CreatedAt = s.now().UTC()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, s.fail(ctx, op, err, "organizer_id", organizerID)
	}

	s.revalidate(path)
	return event, nil
}

func (s *eventService) GetEventByID(ctx context.Context, eventID string) (*domain.EventDetails, error) {
	const op = "GetEventByID"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !validID(eventID) {
		return nil, s.fail(ctx, op, domain.ValidationError("id", "invalid id"), "event_id", eventID)
	}
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, s.fail(ctx, op, err, "event_id", eventID)
	}
	return event, nil
}

// UpdateEvent replaces every editable field of the event. The category is
// written as supplied and organizer ownership is not checked: any registered
// caller may update any event.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, in domain.EventInput, path string) (*domain.Event, error) {
	const op = "UpdateEvent"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !validID(eventID) {
		return nil, s.fail(ctx, op, domain.ValidationError("id", "invalid id"), "event_id", eventID)
	}
	if err := validateEventInput(in); err != nil {
		return nil, s.fail(ctx, op, err, "event_id", eventID)
	}

	event := &domain.Event{ID: eventID}
	event.Apply(in)
	updated, err := s.eventRepo.Update(ctx, event)
	if err != nil {
		return nil, s.fail(ctx, op, err, "event_id", eventID)
	}

	s.revalidate(path)
	return updated, nil
}

// DeleteEvent is idempotent: deleting an absent event succeeds and leaves the
// cached page alone.
func (s *eventService) DeleteEvent(ctx context.Context, eventID, path string) error {
	const op = "DeleteEvent"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !validID(eventID) {
		return s.fail(ctx, op, domain.ValidationError("id", "invalid id"), "event_id", eventID)
	}
	removed, err := s.eventRepo.Delete(ctx, eventID)
	if err != nil {
		return s.fail(ctx, op, err, "event_id", eventID)
	}
	if removed {
		s.revalidate(path)
	}
	return nil
}

// ListEvents lists events newest first. A category name that matches no
// category yields an empty page rather than being ignored.
func (s *eventService) ListEvents(ctx context.Context, filter domain.EventFilter) (*domain.EventPage, error) {
	const op = "ListEvents"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p := domain.NewPaginationParams(filter.Page, filter.Limit, domain.DefaultEventPageSize)
	q := domain.EventQuery{
		TitleContains: strings.TrimSpace(filter.Query),
		Offset:        p.Offset(),
		Limit:         p.PageSize,
	}
	logArgs := []any{"query", filter.Query, "category", filter.Category, "page", p.Page, "limit", p.PageSize}

	if name := strings.TrimSpace(filter.Category); name != "" {
		category, err := s.categoryRepo.FindByName(ctx, name)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.EmptyEventPage(p), nil
		}
		if err != nil {
			return domain.EmptyEventPage(p), s.fail(ctx, op, err, logArgs...)
		}
		q.CategoryID = category.ID
	}

	return s.list(ctx, op, p, q, logArgs...)
}

func (s *eventService) ListEventsByOrganizer(ctx context.Context, organizerID string, page, limit int) (*domain.EventPage, error) {
	const op = "ListEventsByOrganizer"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p := domain.NewPaginationParams(page, limit, domain.DefaultEventPageSize)
	logArgs := []any{"organizer_id", organizerID, "page", p.Page, "limit", p.PageSize}
	if !validID(organizerID) {
		return domain.EmptyEventPage(p), s.fail(ctx, op, domain.ValidationError("organizer_id", "invalid id"), logArgs...)
	}

	q := domain.EventQuery{OrganizerID: organizerID, Offset: p.Offset(), Limit: p.PageSize}
	return s.list(ctx, op, p, q, logArgs...)
}

// ListRelatedEventsByCategory lists other events of a category. The result never
// contains excludeEventID.
func (s *eventService) ListRelatedEventsByCategory(ctx context.Context, categoryID, excludeEventID string, page, limit int) (*domain.EventPage, error) {
	const op = "ListRelatedEventsByCategory"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	p := domain.NewPaginationParams(page, limit, domain.DefaultRelatedPageSize)
	logArgs := []any{"category_id", categoryID, "exclude_id", excludeEventID, "page", p.Page, "limit", p.PageSize}
	if !validID(categoryID) {
		return domain.EmptyEventPage(p), s.fail(ctx, op, domain.ValidationError("category_id", "invalid id"), logArgs...)
	}
	if excludeEventID != "" && !validID(excludeEventID) {
		return domain.EmptyEventPage(p), s.fail(ctx, op, domain.ValidationError("exclude_id", "invalid id"), logArgs...)
	}

	q := domain.EventQuery{CategoryID: categoryID, ExcludeID: excludeEventID, Offset: p.Offset(), Limit: p.PageSize}
	return s.list(ctx, op, p, q, logArgs...)
}

func (s *eventService) list(ctx context.Context, op string, p domain.PaginationParams, q domain.EventQuery, logArgs ...any) (*domain.EventPage, error) {
	items, total, err := s.eventRepo.List(ctx, q)
	if err != nil {
		return domain.EmptyEventPage(p), s.fail(ctx, op, err, logArgs...)
	}
	if items == nil {
		items = []*domain.EventDetails{}
	}
	return &domain.EventPage{
		Items:      items,
		Page:       p.Page,
		Limit:      p.PageSize,
		Total:      total,
		TotalPages: p.TotalPages(total),
	}, nil
}

func (s *eventService) revalidate(path string) {
	if s.revalidator == nil || path == "" {
		return
	}
	s.revalidator.Invalidate(path)
}

// fail logs err with op and args and returns it typed. Caller mistakes are
// logged at warn, everything else at error.
func (s *eventService) fail(ctx context.Context, op string, err error, args ...any) error {
	return logFailure(ctx, s.logger, op, err, args...)
}

func logFailure(ctx context.Context, logger *slog.Logger, op string, err error, args ...any) error {
	err = domain.WithOp(op, err)
	attrs := append([]any{"op", op, "err", err}, args...)
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		logger.WarnContext(ctx, "operation rejected", attrs...)
	} else {
		logger.ErrorContext(ctx, "operation failed", attrs...)
	}
	return err
}

func validateEventInput(in domain.EventInput) error {
	if in.EndDateTime.Before(in.StartDateTime) {
		return domain.ValidationError("end_date_time", "end date must not be before start date")
	}
	return nil
}

// validID reports whether id is a syntactically valid store identifier.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
