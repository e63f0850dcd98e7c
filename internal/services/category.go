package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"eventboard/internal/domain"

	"github.com/google/uuid"
)

const maxCategoryNameLength = 100

type categoryService struct {
	categoryRepo   domain.CategoryRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewCategoryService returns the category service used by the filter UI and the admin flow.
func NewCategoryService(categoryRepo domain.CategoryRepository, logger *slog.Logger, timeout time.Duration) domain.CategoryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = defaultContextTimeout
	}
	return &categoryService{categoryRepo: categoryRepo, logger: logger, contextTimeout: timeout}
}

func (s *categoryService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	const op = "CreateCategory"
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, logFailure(ctx, s.logger, op, domain.ValidationError("name", "name is required"))
	}
	if len(name) > maxCategoryNameLength {
		return nil, logFailure(ctx, s.logger, op, domain.ValidationError("name", "name is too long"), "name", name)
	}

	category := &domain.Category{ID: uuid.NewString(), Name: name, CreatedAt: time.Now().UTC()}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, logFailure(ctx, s.logger, op, err, "name", name)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return []*domain.Category{}, logFailure(ctx, s.logger, "ListCategories", err)
	}
	if categories == nil {
		categories = []*domain.Category{}
	}
	return categories, nil
}
