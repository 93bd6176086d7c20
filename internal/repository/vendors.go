package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/gen/ent/vendor"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/utils"
)

type VendorRepository interface {
	// GetOrCreate returns the org's vendor with this exact name, inserting
	// it when absent. Uniqueness is advisory: a concurrent insert of the
	// same name is tolerated and resolved by a second lookup.
	GetOrCreate(ctx context.Context, orgID uuid.UUID, name string) (*entity.Vendor, error)
	List(ctx context.Context, orgID uuid.UUID) ([]*entity.Vendor, error)
}

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorRepository(client *ent.Client, logger *slog.Logger) VendorRepository {
	return &vendorRepository{client: client, logger: logger}
}

func (r *vendorRepository) GetOrCreate(ctx context.Context, orgID uuid.UUID, name string) (*entity.Vendor, error) {
	v, err := r.client.Vendor.Query().
		Where(vendor.OrganizationID(orgID), vendor.Name(name)).
		First(ctx)
	if err == nil {
		return utils.ToVendor(v), nil
	}
	if !ent.IsNotFound(err) {
		return nil, err
	}

	created, err := r.client.Vendor.Create().
		SetOrganizationID(orgID).
		SetName(name).
		Save(ctx)
	if err != nil {
		if v, qerr := r.client.Vendor.Query().
			Where(vendor.OrganizationID(orgID), vendor.Name(name)).
			First(ctx); qerr == nil {
			return utils.ToVendor(v), nil
		}
		r.logger.Error("failed to create vendor", "organization_id", orgID, "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("created vendor", "organization_id", orgID, "vendor_id", created.ID, "name", name)
	return utils.ToVendor(created), nil
}

func (r *vendorRepository) List(ctx context.Context, orgID uuid.UUID) ([]*entity.Vendor, error) {
	vs, err := r.client.Vendor.Query().
		Where(vendor.OrganizationID(orgID)).
		Order(vendor.ByName()).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.Vendor, len(vs))
	for i, v := range vs {
		result[i] = utils.ToVendor(v)
	}
	return result, nil
}
