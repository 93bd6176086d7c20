package llm

import "context"

// Classifier is the AI classification collaborator. Implementations bound the
// text sample themselves and must return either one of the allowed category
// labels or "" for "no answer"; they never block past ctx.
type Classifier interface {
	ClassifyReceipt(ctx context.Context, text string) (string, error)
}

// InsightContext is the grounded financial context handed to the insight
// generator. Payload fields are marshalled as-is into the prompt.
type InsightContext struct {
	KPIs           any    `json:"kpis"`
	ByCategory90d  any    `json:"spending_by_category_90d"`
	TopVendors90d  any    `json:"top_vendors_90d"`
	RecentCashFlow any    `json:"recent_cash_flow"`
	Question       string `json:"question,omitempty"`
}

type BudgetRecommendation struct {
	Category          string  `json:"category"`
	Suggestion        string  `json:"suggestion"`
	EstMonthlySavings float64 `json:"est_monthly_savings"`
}

type TaxPreparationItem struct {
	Item         string `json:"item"`
	WhyItMatters string `json:"why_it_matters"`
}

type RiskItem struct {
	Risk        string `json:"risk"`
	WatchMetric string `json:"watch_metric"`
}

type InsightActions struct {
	BudgetRecommendations []BudgetRecommendation `json:"budget_recommendations"`
	TaxPreparation        []TaxPreparationItem   `json:"tax_preparation"`
	Risks                 []RiskItem             `json:"risks"`
}

// Insight is the structured advisor output. A degraded Insight (empty actions,
// apologetic summary) is still a valid result; insight generation never fails
// the request.
type Insight struct {
	Summary   string         `json:"summary"`
	Actions   InsightActions `json:"actions"`
	ModelUsed string         `json:"model_used,omitempty"`
}

// InsightGenerator is the AI insight collaborator.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, ic InsightContext) (Insight, error)
}
