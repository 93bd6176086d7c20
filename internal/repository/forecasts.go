package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/gen/ent/forecast"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/utils"
)

type ForecastRepository interface {
	// Latest returns the newest forecast computed within maxAge, or nil
	// when the cache is cold or stale.
	Latest(ctx context.Context, orgID uuid.UUID, maxAge time.Duration) (*entity.Forecast, error)
	Save(ctx context.Context, f *entity.Forecast) (*entity.Forecast, error)
}

type forecastRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewForecastRepository(client *ent.Client, logger *slog.Logger) ForecastRepository {
	return &forecastRepository{client: client, logger: logger}
}

func (r *forecastRepository) Latest(ctx context.Context, orgID uuid.UUID, maxAge time.Duration) (*entity.Forecast, error) {
	cutoff := time.Now().Add(-maxAge)
	f, err := r.client.Forecast.Query().
		Where(forecast.OrganizationID(orgID), forecast.ComputedAtGT(cutoff)).
		Order(forecast.ByComputedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return utils.ToForecast(f), nil
}

func (r *forecastRepository) Save(ctx context.Context, f *entity.Forecast) (*entity.Forecast, error) {
	saved, err := r.client.Forecast.Create().
		SetOrganizationID(f.OrganizationID).
		SetHorizon(f.Horizon).
		SetGranularity(f.Granularity).
		SetSeries(f.Series).
		SetComputedAt(f.ComputedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save forecast", "organization_id", f.OrganizationID, "error", err)
		return nil, err
	}
	r.logger.Info("saved forecast",
		"organization_id", f.OrganizationID,
		"forecast_id", saved.ID,
		"horizon", saved.Horizon,
	)
	return utils.ToForecast(saved), nil
}
