package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventboard/internal/domain"
)

const eventDetailsSelect = `
		SELECT e.id, e.title, e.description, e.location, e.created_at, e.image_url,
		       e.start_date_time, e.end_date_time, e.price, e.is_free, e.url,
		       c.id, c.name, u.id, u.first_name, u.last_name
		FROM events e
		LEFT JOIN categories c ON c.id = e.category_id
		LEFT JOIN users u ON u.id = e.organizer_id`

const eventColumns = `id, title, description, location, created_at, image_url, start_date_time, end_date_time, price, is_free, url, category_id, organizer_id`

type eventRepository struct {
	conn Connector
}

// NewEventRepository returns a domain.EventRepository implemented with Postgres.
func NewEventRepository(conn Connector) domain.EventRepository {
	return &eventRepository{conn: conn}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = db.ExecContext(ctx, query,
		e.ID, e.Title, e.Description, nullString(e.Location), e.CreatedAt, e.ImageURL,
		e.StartDateTime, e.EndDateTime, e.Price, e.IsFree, nullString(e.URL), nullString(e.CategoryID), e.OrganizerID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFoundError("organizer")
		}
		return err
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.EventDetails, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	e, err := scanEventDetails(db.QueryRowContext(ctx, eventDetailsSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError("event")
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, image_url = $5,
		    start_date_time = $6, end_date_time = $7, price = $8, is_free = $9,
		    url = $10, category_id = $11
		WHERE id = $1
		RETURNING ` + eventColumns
	updated, err := scanEvent(db.QueryRowContext(ctx, query,
		e.ID, e.Title, e.Description, nullString(e.Location), e.ImageURL,
		e.StartDateTime, e.EndDateTime, e.Price, e.IsFree, nullString(e.URL), nullString(e.CategoryID),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError("event")
		}
		return nil, err
	}
	return updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) (bool, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return false, err
	}
	result, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *eventRepository) List(ctx context.Context, q domain.EventQuery) ([]*domain.EventDetails, int, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return nil, 0, err
	}
	where, args := buildEventConditions(q)

	n := len(args)
	query := fmt.Sprintf(`%s
		%s
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $%d OFFSET $%d`, eventDetailsSelect, where, n+1, n+2)
	rows, err := db.QueryContext(ctx, query, append(args, q.Limit, q.Offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	events := make([]*domain.EventDetails, 0)
	for rows.Next() {
		e, err := scanEventDetails(rows)
		if err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM events e `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// buildEventConditions turns q into a WHERE clause (empty when q has no
// conditions) and its positional arguments. Pagination is not included.
func buildEventConditions(q domain.EventQuery) (string, []any) {
	var conds []string
	var args []any
	add := func(format string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(format, len(args)))
	}
	if q.TitleContains != "" {
		add(`e.title ILIKE '%%' || $%d || '%%'`, escapeLike(q.TitleContains))
	}
	if q.CategoryID != "" {
		add(`e.category_id = $%d`, q.CategoryID)
	}
	if q.OrganizerID != "" {
		add(`e.organizer_id = $%d`, q.OrganizerID)
	}
	if q.ExcludeID != "" {
		add(`e.id <> $%d`, q.ExcludeID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var location, url, categoryID sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &location, &e.CreatedAt, &e.ImageURL,
		&e.StartDateTime, &e.EndDateTime, &e.Price, &e.IsFree, &url, &categoryID, &e.OrganizerID,
	)
	if err != nil {
		return nil, err
	}
	e.Location = stringPtr(location)
	e.URL = stringPtr(url)
	e.CategoryID = stringPtr(categoryID)
	return e, nil
}

func scanEventDetails(row rowScanner) (*domain.EventDetails, error) {
	e := &domain.EventDetails{}
	var location, url sql.NullString
	var categoryID, categoryName sql.NullString
	var organizerID, firstName, lastName sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &location, &e.CreatedAt, &e.ImageURL,
		&e.StartDateTime, &e.EndDateTime, &e.Price, &e.IsFree, &url,
		&categoryID, &categoryName, &organizerID, &firstName, &lastName,
	)
	if err != nil {
		return nil, err
	}
	e.Location = stringPtr(location)
	e.URL = stringPtr(url)
	if categoryID.Valid {
		e.Category = &domain.EventCategory{ID: categoryID.String, Name: categoryName.String}
	}
	if organizerID.Valid {
		e.Organizer = &domain.EventOrganizer{ID: organizerID.String, FirstName: firstName.String, LastName: lastName.String}
	}
	return e, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
