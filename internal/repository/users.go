package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/gen/ent/user"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/utils"
)

type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// EnsureSystemUser returns the organization's placeholder principal,
	// creating it on first use. Anonymous ingestions are attributed to it.
	EnsureSystemUser(ctx context.Context, orgID uuid.UUID) (*entity.User, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{client: client, logger: logger}
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) EnsureSystemUser(ctx context.Context, orgID uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Query().
		Where(user.OrganizationID(orgID), user.IsSystem(true)).
		First(ctx)
	if err == nil {
		return utils.ToUser(u), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	created, err := r.client.User.Create().
		SetOrganizationID(orgID).
		SetName("System").
		SetEmail(fmt.Sprintf("system@%s.local", orgID)).
		SetIsSystem(true).
		Save(ctx)
	if err != nil {
		// Lost a race to another ingestion; take theirs.
		if u, qerr := r.client.User.Query().
			Where(user.OrganizationID(orgID), user.IsSystem(true)).
			First(ctx); qerr == nil {
			return utils.ToUser(u), nil
		}
		r.logger.Error("failed to create system user", "organization_id", orgID, "error", err)
		return nil, err
	}
	r.logger.Info("created system user", "organization_id", orgID, "user_id", created.ID)
	return utils.ToUser(created), nil
}
