package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/gen/ent/category"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/utils"
)

type CategoryRepository interface {
	// GetOrCreate resolves a category name to a row, inserting on first
	// sight. Insert failures trigger one re-lookup and one fresh insert
	// before giving up; duplicate names from races are tolerated.
	GetOrCreate(ctx context.Context, orgID uuid.UUID, name string) (*entity.Category, error)
	List(ctx context.Context, orgID uuid.UUID) ([]*entity.Category, error)
}

type categoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCategoryRepository(client *ent.Client, logger *slog.Logger) CategoryRepository {
	return &categoryRepository{client: client, logger: logger}
}

func (r *categoryRepository) GetOrCreate(ctx context.Context, orgID uuid.UUID, name string) (*entity.Category, error) {
	c, err := r.client.Category.Query().
		Where(category.OrganizationID(orgID), category.Name(name)).
		First(ctx)
	if err == nil {
		return utils.ToCategory(c), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	created, err := r.client.Category.Create().
		SetOrganizationID(orgID).
		SetName(name).
		Save(ctx)
	if err == nil {
		r.logger.Info("created category", "organization_id", orgID, "category_id", created.ID, "name", name)
		return utils.ToCategory(created), nil
	}

	// Possibly lost a race; prefer the row that beat us.
	if c, qerr := r.client.Category.Query().
		Where(category.OrganizationID(orgID), category.Name(name)).
		First(ctx); qerr == nil {
		r.logger.Info("category already existed", "organization_id", orgID, "category_id", c.ID, "name", name)
		return utils.ToCategory(c), nil
	}

	// Transient failure: one more insert with a fresh id.
	retried, rerr := r.client.Category.Create().
		SetID(uuid.New()).
		SetOrganizationID(orgID).
		SetName(name).
		Save(ctx)
	if rerr != nil {
		r.logger.Error("failed to create category", "organization_id", orgID, "name", name, "error", rerr)
		return nil, rerr
	}
	r.logger.Info("created category after retry", "organization_id", orgID, "category_id", retried.ID, "name", name)
	return utils.ToCategory(retried), nil
}

func (r *categoryRepository) List(ctx context.Context, orgID uuid.UUID) ([]*entity.Category, error) {
	cs, err := r.client.Category.Query().
		Where(category.OrganizationID(orgID)).
		Order(category.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Category, len(cs))
	for i, c := range cs {
		result[i] = utils.ToCategory(c)
	}
	return result, nil
}
