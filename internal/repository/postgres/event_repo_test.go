package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventboard/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var eventDetailsColumns = []string{
	"id", "title", "description", "location", "created_at", "image_url",
	"start_date_time", "end_date_time", "price", "is_free", "url",
	"category_id", "category_name", "organizer_id", "first_name", "last_name",
}

var eventRowColumns = []string{
	"id", "title", "description", "location", "created_at", "image_url",
	"start_date_time", "end_date_time", "price", "is_free", "url", "category_id", "organizer_id",
}

func strPtr(s string) *string { return &s }

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 2, 1, 19, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 23, 0, 0, 0, time.UTC)

	newEvent := func() *domain.Event {
		return &domain.Event{
			ID:            "ev-1",
			Title:         "Jazz Night",
			Description:   "Live jazz",
			Location:      strPtr("Blue Note"),
			CreatedAt:     created,
			ImageURL:      "https://utfs.io/f/jazz.png",
			StartDateTime: start,
			EndDateTime:   end,
			Price:         "25",
			CategoryID:    strPtr("cat-1"),
			OrganizerID:   "user-1",
		}
	}

	tests := []struct {
		name         string
		mock         func(mock sqlmock.Sqlmock)
		wantErr      bool
		wantNotFound bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events \(id, title, description, location, created_at`).
					WithArgs("ev-1", "Jazz Night", "Live jazz", "Blue Note", created, "https://utfs.io/f/jazz.png",
						start, end, "25", false, nil, "cat-1", "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "organizer foreign key violation",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WillReturnError(&pq.Error{Code: "23503", Constraint: "events_organizer_id_fkey"})
			},
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)
			repo := NewEventRepository(staticConnector{db})

			err := repo.Create(ctx, newEvent())
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, tt.wantNotFound, errors.Is(err, domain.ErrNotFound))
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Create_ConnectFailure(t *testing.T) {
	connErr := domain.ConfigurationError("DATABASE_URL", "DATABASE_URL is missing")
	repo := NewEventRepository(failingConnector{err: connErr})

	err := repo.Create(context.Background(), &domain.Event{ID: "ev-1"})
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 2, 1, 19, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.EventDetails
		wantErr error
	}{
		{
			name: "populated",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT e.id, e.title, .* FROM events e\s+LEFT JOIN categories c ON c.id = e.category_id\s+LEFT JOIN users u ON u.id = e.organizer_id WHERE e.id = \$1`).
					WithArgs("ev-1").
					WillReturnRows(sqlmock.NewRows(eventDetailsColumns).
						AddRow("ev-1", "Jazz Night", "Live jazz", "Blue Note", created, "https://utfs.io/f/jazz.png",
							start, end, "25", false, nil, "cat-1", "Music", "user-1", "Ada", "Lovelace"))
			},
			want: &domain.EventDetails{
				ID:            "ev-1",
				Title:         "Jazz Night",
				Description:   "Live jazz",
				Location:      strPtr("Blue Note"),
				CreatedAt:     created,
				ImageURL:      "https://utfs.io/f/jazz.png",
				StartDateTime: start,
				EndDateTime:   end,
				Price:         "25",
				Category:      &domain.EventCategory{ID: "cat-1", Name: "Music"},
				Organizer:     &domain.EventOrganizer{ID: "user-1", FirstName: "Ada", LastName: "Lovelace"},
			},
		},
		{
			name: "no category",
			id:   "ev-2",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT e.id, e.title`).
					WithArgs("ev-2").
					WillReturnRows(sqlmock.NewRows(eventDetailsColumns).
						AddRow("ev-2", "Free Yoga", "Morning yoga", nil, created, "https://utfs.io/f/yoga.png",
							start, end, "", true, "https://yoga.example.com", nil, nil, "user-1", "Ada", "Lovelace"))
			},
			want: &domain.EventDetails{
				ID:            "ev-2",
				Title:         "Free Yoga",
				Description:   "Morning yoga",
				CreatedAt:     created,
				ImageURL:      "https://utfs.io/f/yoga.png",
				StartDateTime: start,
				EndDateTime:   end,
				IsFree:        true,
				URL:           strPtr("https://yoga.example.com"),
				Organizer:     &domain.EventOrganizer{ID: "user-1", FirstName: "Ada", LastName: "Lovelace"},
			},
		},
		{
			name: "not found",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT e.id, e.title`).
					WithArgs("ev-missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "db error",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT e.id, e.title`).
					WithArgs("ev-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)
			repo := NewEventRepository(staticConnector{db})

			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 22, 0, 0, 0, time.UTC)

	input := &domain.Event{
		ID:            "ev-1",
		Title:         "Jazz Night II",
		Description:   "More jazz",
		ImageURL:      "https://utfs.io/f/jazz2.png",
		StartDateTime: start,
		EndDateTime:   end,
		Price:         "30",
		CategoryID:    strPtr("cat-2"),
	}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE events\s+SET title = \$2, description = \$3`).
					WithArgs("ev-1", "Jazz Night II", "More jazz", nil, "https://utfs.io/f/jazz2.png",
						start, end, "30", false, nil, "cat-2").
					WillReturnRows(sqlmock.NewRows(eventRowColumns).
						AddRow("ev-1", "Jazz Night II", "More jazz", nil, created, "https://utfs.io/f/jazz2.png",
							start, end, "30", false, nil, "cat-2", "user-1"))
			},
			want: &domain.Event{
				ID:            "ev-1",
				Title:         "Jazz Night II",
				Description:   "More jazz",
				CreatedAt:     created,
				ImageURL:      "https://utfs.io/f/jazz2.png",
				StartDateTime: start,
				EndDateTime:   end,
				Price:         "30",
				CategoryID:    strPtr("cat-2"),
				OrganizerID:   "user-1",
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`UPDATE events`).WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)
			repo := NewEventRepository(staticConnector{db})

			got, err := repo.Update(ctx, input)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		id          string
		mock        func(mock sqlmock.Sqlmock)
		wantRemoved bool
		wantErr     bool
	}{
		{
			name: "removed",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantRemoved: true,
		},
		{
			name: "absent is not an error",
			id:   "ev-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantRemoved: false,
		},
		{
			name: "db error",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)
			repo := NewEventRepository(staticConnector{db})

			removed, err := repo.Delete(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantRemoved, removed)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	start := time.Date(2025, 2, 1, 19, 0, 0, 0, time.UTC)
	end := time.Date(2025, 2, 1, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		query     domain.EventQuery
		mock      func(mock sqlmock.Sqlmock)
		wantIDs   []string
		wantTotal int
		wantErr   bool
	}{
		{
			name:  "title and category",
			query: domain.EventQuery{TitleContains: "jazz", CategoryID: "cat-1", Limit: 6, Offset: 0},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE e.title ILIKE '%' \|\| \$1 \|\| '%' AND e.category_id = \$2\s+ORDER BY e.created_at DESC, e.id DESC\s+LIMIT \$3 OFFSET \$4`).
					WithArgs("jazz", "cat-1", 6, 0).
					WillReturnRows(sqlmock.NewRows(eventDetailsColumns).
						AddRow("ev-1", "Jazz Night", "Live jazz", nil, created, "https://utfs.io/f/jazz.png",
							start, end, "25", false, nil, "cat-1", "Music", "user-1", "Ada", "Lovelace"))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events e WHERE e.title ILIKE '%' \|\| \$1 \|\| '%' AND e.category_id = \$2`).
					WithArgs("jazz", "cat-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantIDs:   []string{"ev-1"},
			wantTotal: 1,
		},
		{
			name:  "related excludes event",
			query: domain.EventQuery{CategoryID: "cat-1", ExcludeID: "ev-1", Limit: 3, Offset: 3},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE e.category_id = \$1 AND e.id <> \$2\s+ORDER BY e.created_at DESC, e.id DESC\s+LIMIT \$3 OFFSET \$4`).
					WithArgs("cat-1", "ev-1", 3, 3).
					WillReturnRows(sqlmock.NewRows(eventDetailsColumns).
						AddRow("ev-4", "Blues Night", "Live blues", nil, created, "https://utfs.io/f/blues.png",
							start, end, "10", false, nil, "cat-1", "Music", "user-2", "Grace", "Hopper"))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events e WHERE e.category_id = \$1 AND e.id <> \$2`).
					WithArgs("cat-1", "ev-1").
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
			},
			wantIDs:   []string{"ev-4"},
			wantTotal: 4,
		},
		{
			name:  "no conditions",
			query: domain.EventQuery{Limit: 6, Offset: 6},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`LEFT JOIN users u ON u.id = e.organizer_id\s+ORDER BY e.created_at DESC, e.id DESC\s+LIMIT \$1 OFFSET \$2`).
					WithArgs(6, 6).
					WillReturnRows(sqlmock.NewRows(eventDetailsColumns))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM events e$`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
			},
			wantIDs:   []string{},
			wantTotal: 3,
		},
		{
			name:  "db error",
			query: domain.EventQuery{OrganizerID: "user-1", Limit: 6},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE e.organizer_id = \$1`).
					WithArgs("user-1", 6, 0).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)
			repo := NewEventRepository(staticConnector{db})

			got, total, err := repo.List(ctx, tt.query)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantTotal, total)
			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			require.Equal(t, tt.wantIDs, ids)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBuildEventConditions(t *testing.T) {
	tests := []struct {
		name      string
		query     domain.EventQuery
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "empty",
			query:     domain.EventQuery{Limit: 6},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "like metacharacters are escaped",
			query:     domain.EventQuery{TitleContains: `50%_off\`},
			wantWhere: `WHERE e.title ILIKE '%' || $1 || '%'`,
			wantArgs:  []any{`50\%\_off\\`},
		},
		{
			name:      "organizer only",
			query:     domain.EventQuery{OrganizerID: "user-1"},
			wantWhere: `WHERE e.organizer_id = $1`,
			wantArgs:  []any{"user-1"},
		},
		{
			name:      "all conditions",
			query:     domain.EventQuery{TitleContains: "a", CategoryID: "c", OrganizerID: "o", ExcludeID: "x"},
			wantWhere: `WHERE e.title ILIKE '%' || $1 || '%' AND e.category_id = $2 AND e.organizer_id = $3 AND e.id <> $4`,
			wantArgs:  []any{"a", "c", "o", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildEventConditions(tt.query)
			require.Equal(t, tt.wantWhere, where)
			require.Equal(t, tt.wantArgs, args)
		})
	}
}
