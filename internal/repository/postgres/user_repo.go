package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventboard/internal/domain"
)

const userColumns = `id, external_auth_id, email, username, first_name, last_name, photo_url, created_at`

type userRepository struct {
	conn Connector
}

func NewUserRepository(conn Connector) domain.UserRepository {
	return &userRepository{conn: conn}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = db.ExecContext(ctx, query, u.ID, u.ExternalAuthID, u.Email, u.Username, u.FirstName, u.LastName, u.PhotoURL, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ValidationError("user", "external auth id, email or username already in use")
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByExternalAuthID(ctx context.Context, externalAuthID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE external_auth_id = $1`, externalAuthID)
}

func (r *userRepository) Exists(ctx context.Context, id string) (bool, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return false, err
	}
	var exists bool
	err = db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *userRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	u := &domain.User{}
	err = db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.ExternalAuthID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.PhotoURL, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError("user")
		}
		return nil, err
	}
	return u, nil
}
