package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventboard/internal/domain"
)

type categoryRepository struct {
	conn Connector
}

// NewCategoryRepository returns a domain.CategoryRepository implemented with Postgres.
func NewCategoryRepository(conn Connector) domain.CategoryRepository {
	return &categoryRepository{conn: conn}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `INSERT INTO categories (id, name, created_at) VALUES ($1, $2, $3)`, c.ID, c.Name, c.CreatedAt)
	return err
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	var c domain.Category
	err = db.QueryRowContext(ctx, `SELECT id, name, created_at FROM categories WHERE id = $1`, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError("category")
		}
		return nil, err
	}
	return &c, nil
}

// FindByName matches name as a case-insensitive substring, oldest category first.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*domain.Category, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	var c domain.Category
	err = db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM categories
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY created_at, id
		 LIMIT 1`, escapeLike(name)).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError("category")
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	db, err := r.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `SELECT id, name, created_at FROM categories ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return categories, nil
}
