package server

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	expensev1 "github.com/hackybara/expense-tracker/gen/proto/expense/v1"
	"github.com/hackybara/expense-tracker/internal/common"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/forecast"
	"github.com/hackybara/expense-tracker/internal/llm"
	"github.com/hackybara/expense-tracker/internal/report"
	"github.com/hackybara/expense-tracker/internal/repository"
)

// recentWeeksForInsights bounds the cash flow history sent to the model.
const recentWeeksForInsights = 4

type ForecastServer struct {
	expensev1.UnimplementedForecastServiceServer
	txs       repository.TransactionRepository
	forecasts repository.ForecastRepository
	insights  llm.InsightGenerator
	cfg       common.ForecastConfig
	logger    *slog.Logger
	now       func() time.Time
}

func NewForecastServer(
	txs repository.TransactionRepository,
	forecasts repository.ForecastRepository,
	insights llm.InsightGenerator,
	cfg common.ForecastConfig,
	logger *slog.Logger,
) *ForecastServer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Horizon <= 0 {
		cfg.Horizon = forecast.DefaultHorizon
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return &ForecastServer{
		txs:       txs,
		forecasts: forecasts,
		insights:  insights,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *ForecastServer) GetForecast(ctx context.Context, req *expensev1.GetForecastRequest) (*expensev1.GetForecastResponse, error) {
	orgID, err := parseOrgID(req.GetOrganizationId())
	if err != nil {
		return nil, err
	}

	if !req.GetRefresh() {
		cached, err := s.forecasts.Latest(ctx, orgID, s.cfg.CacheTTL)
		if err != nil {
			s.logger.Warn("forecast cache lookup failed", "organization_id", orgID, "error", err)
		} else if cached != nil {
			s.logger.Info("forecast.cache_hit", "organization_id", orgID, "computed_at", cached.ComputedAt)
			return forecastResponse(cached.Series, forecast.StatusOK, cached.ComputedAt, true), nil
		}
	}

	txs, err := s.txs.ListAllForOrg(ctx, orgID)
	if err != nil {
		s.logger.Error("forecast history query failed", "organization_id", orgID, "error", err)
		return nil, status.Error(codes.Internal, "forecast failed")
	}

	history := report.WeeklyCashFlow(txs)
	series, st := forecast.Project(history, s.cfg.Horizon)
	computedAt := s.now().UTC()

	if st == forecast.StatusOK {
		if _, err := s.forecasts.Save(ctx, &entity.Forecast{
			OrganizationID: orgID,
			Horizon:        s.cfg.Horizon,
			Granularity:    "week",
			Series:         series,
			ComputedAt:     computedAt,
		}); err != nil {
			s.logger.Warn("forecast cache save failed", "organization_id", orgID, "error", err)
		}
	}

	s.logger.Info("forecast.computed",
		"organization_id", orgID,
		"history_weeks", len(history),
		"status", string(st))
	return forecastResponse(series, st, computedAt, false), nil
}

func forecastResponse(series []entity.ForecastPoint, st forecast.Status, computedAt time.Time, fromCache bool) *expensev1.GetForecastResponse {
	out := make([]*expensev1.ForecastPoint, 0, len(series))
	for _, p := range series {
		out = append(out, toPBForecastPoint(p))
	}
	return &expensev1.GetForecastResponse{
		Series:     out,
		Status:     string(st),
		ComputedAt: computedAt.UTC().Format(time.RFC3339),
		FromCache:  fromCache,
	}
}

func (s *ForecastServer) GenerateInsights(ctx context.Context, req *expensev1.GenerateInsightsRequest) (*expensev1.GenerateInsightsResponse, error) {
	orgID, err := parseOrgID(req.GetOrganizationId())
	if err != nil {
		return nil, err
	}
	if s.insights == nil {
		return nil, status.Error(codes.Unavailable, "insights are not configured")
	}

	txs, err := s.txs.ListAllForOrg(ctx, orgID)
	if err != nil {
		s.logger.Error("insights query failed", "organization_id", orgID, "error", err)
		return nil, status.Error(codes.Internal, "insights failed")
	}

	now := s.now()
	summary := report.BuildSummary(txs, now)
	weekly := report.WeeklyCashFlow(txs)
	if len(weekly) > recentWeeksForInsights {
		weekly = weekly[len(weekly)-recentWeeksForInsights:]
	}

	insight, err := s.insights.GenerateInsights(ctx, llm.InsightContext{
		KPIs:           summary.KPIs,
		ByCategory90d:  summary.ByCategory90d,
		TopVendors90d:  report.TopVendors(txs, now, 5),
		RecentCashFlow: weekly,
		Question:       req.GetQuestion(),
	})
	if err != nil {
		s.logger.Error("insights generation failed", "organization_id", orgID, "error", err)
		return nil, status.Error(codes.Internal, "insights failed")
	}

	resp := &expensev1.GenerateInsightsResponse{
		Summary:               insight.Summary,
		ModelUsed:             insight.ModelUsed,
		BudgetRecommendations: make([]*expensev1.BudgetRecommendation, 0, len(insight.Actions.BudgetRecommendations)),
		TaxPreparation:        make([]*expensev1.TaxPreparationItem, 0, len(insight.Actions.TaxPreparation)),
		Risks:                 make([]*expensev1.RiskItem, 0, len(insight.Actions.Risks)),
	}
	for _, b := range insight.Actions.BudgetRecommendations {
		resp.BudgetRecommendations = append(resp.BudgetRecommendations, &expensev1.BudgetRecommendation{
			Category:          b.Category,
			Suggestion:        b.Suggestion,
			EstMonthlySavings: b.EstMonthlySavings,
		})
	}
	for _, t := range insight.Actions.TaxPreparation {
		resp.TaxPreparation = append(resp.TaxPreparation, &expensev1.TaxPreparationItem{
			Item:         t.Item,
			WhyItMatters: t.WhyItMatters,
		})
	}
	for _, r := range insight.Actions.Risks {
		resp.Risks = append(resp.Risks, &expensev1.RiskItem{
			Risk:        r.Risk,
			WatchMetric: r.WatchMetric,
		})
	}
	return resp, nil
}
