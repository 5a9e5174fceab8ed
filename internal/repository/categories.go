package repository

import (
	"context"
	"log/slog"

	"github.com/eventsnap/eventsnap/gen/ent"
	"github.com/eventsnap/eventsnap/gen/ent/category"
	"github.com/eventsnap/eventsnap/internal/entity"
	"github.com/eventsnap/eventsnap/internal/utils"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	EnsureByName(ctx context.Context, name string) (*entity.Category, error)
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := r.client.Category.
		Query().
		Order(category.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.Category, len(categories))
	for i, cat := range categories {
		result[i] = utils.ToCategory(cat)
	}
	return result, nil
}

func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	cat, err := r.client.Category.Query().
		Where(category.Name(name)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToCategory(cat), nil
}

// EnsureByName returns the row for a coarse label, creating it on first use.
func (r *categoryRepository) EnsureByName(ctx context.Context, name string) (*entity.Category, error) {
	if cat, err := r.FindByName(ctx, name); err == nil {
		return cat, nil
	}
	row, err := r.client.Category.Create().SetName(name).Save(ctx)
	if err != nil {
		// lost a race with another writer; read it back
		if cat, ferr := r.FindByName(ctx, name); ferr == nil {
			return cat, nil
		}
		r.logger.Error("failed to ensure category", "name", name, "error", err)
		return nil, err
	}
	return utils.ToCategory(row), nil
}
