package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/utils"
)

type OrganizationRepository interface {
	Create(ctx context.Context, name string) (*entity.Organization, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
}

type organizationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOrganizationRepository(client *ent.Client, logger *slog.Logger) OrganizationRepository {
	return &organizationRepository{client: client, logger: logger}
}

func (r *organizationRepository) Create(ctx context.Context, name string) (*entity.Organization, error) {
	org, err := r.client.Organization.Create().
		SetName(name).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create organization", "name", name, "error", err)
		return nil, err
	}
	return utils.ToOrganization(org), nil
}

func (r *organizationRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	org, err := r.client.Organization.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToOrganization(org), nil
}
