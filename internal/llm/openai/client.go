package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/internal/llm"
)

// classifySampleLimit bounds how much receipt text is sent to the model.
const classifySampleLimit = 2000

var reJSONObject = regexp.MustCompile(`(?s)\{.*\}`)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float32       `json:"temperature"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) chat(ctx context.Context, messages []chatMessage, jsonMode bool) (string, error) {
	req := chatRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
	}
	if jsonMode {
		req.ResponseFormat = &struct {
			Type string `json:"type"`
		}{Type: "json_object"}
	}

	headers := map[string]string{}
	if c.cfg.APIKey != "" {
		headers["Authorization"] = "Bearer " + c.cfg.APIKey
	}

	var content string
	err := retry.Do(
		func() error {
			raw, _, err := llm.SendJSON(ctx, c.http, c.cfg.BaseURL+"/chat/completions", req, headers, c.logger)
			if err != nil {
				return err
			}
			var cr chatResponse
			if err := json.Unmarshal(raw, &cr); err != nil {
				return fmt.Errorf("decode chat response: %w", err)
			}
			if len(cr.Choices) == 0 {
				return fmt.Errorf("chat response has no choices")
			}
			content = cr.Choices[0].Message.Content
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.cfg.MaxRetries),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", err
	}
	return content, nil
}

// ClassifyReceipt asks the model to pick one category for the receipt text.
// It returns "" (no error) when the model answers but the answer is not one
// of the allowed labels; transport failures return an error. Either way the
// caller falls back to keyword matching.
func (c *Client) ClassifyReceipt(ctx context.Context, text string) (string, error) {
	sample := truncateRunes(text, classifySampleLimit)
	allowed := constants.AsStringSlice()

	start := time.Now()
	c.logger.Info("llm.classify.start", "model", c.cfg.Model, "sample_len", len(sample))

	sys := fmt.Sprintf(
		"You are a strict receipt categorizer. Categorize the receipt into exactly one of: %s. "+
			"Respond ONLY with a JSON object of the form {\"category\": \"<label>\"}. No other keys, no prose.",
		strings.Join(allowed, ", "),
	)
	content, err := c.chat(ctx, []chatMessage{
		{Role: "system", Content: sys},
		{Role: "user", Content: "Receipt text:\n" + sample},
	}, true)
	if err != nil {
		c.logger.Warn("llm.classify.error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", err
	}

	obj := reJSONObject.FindString(content)
	if obj == "" {
		c.logger.Warn("llm.classify.no_json", "elapsed_ms", time.Since(start).Milliseconds())
		return "", nil
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildCategorySchema(allowed), []byte(obj)); err != nil {
		c.logger.Warn("llm.classify.invalid_answer", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return "", nil
	}
	var answer struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(obj), &answer); err != nil {
		return "", nil
	}

	c.logger.Info("llm.classify.done", "category", answer.Category, "elapsed_ms", time.Since(start).Milliseconds())
	return answer.Category, nil
}

// truncateRunes cuts on a rune boundary so multi-byte text survives intact.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

const insightFallbackSummary = "I could not generate a full analysis right now. " +
	"Your recent spending data is available in the dashboard; please try again shortly."

// GenerateInsights asks the model for a financial summary plus structured
// actions, grounded strictly in the supplied context. It degrades to an
// empty-actions fallback instead of failing; insight generation must never
// block a caller on model availability.
func (c *Client) GenerateInsights(ctx context.Context, ic llm.InsightContext) (llm.Insight, error) {
	fallback := llm.Insight{
		Summary: insightFallbackSummary,
		Actions: llm.InsightActions{
			BudgetRecommendations: []llm.BudgetRecommendation{},
			TaxPreparation:        []llm.TaxPreparationItem{},
			Risks:                 []llm.RiskItem{},
		},
		ModelUsed: c.cfg.Model,
	}

	ctxJSON, err := json.Marshal(ic)
	if err != nil {
		c.logger.Error("llm.insight.encode_context_error", "error", err)
		return fallback, nil
	}

	start := time.Now()
	c.logger.Info("llm.insight.start", "model", c.cfg.Model, "context_bytes", len(ctxJSON))

	sys := "You are a small-business financial advisor. Use ONLY the data in the provided context; " +
		"never invent numbers. Reply in two sections separated by markers:\n" +
		"---SUMMARY---\n<a short plain-text analysis>\n" +
		"---JSON---\n<a JSON object with keys budget_recommendations, tax_preparation, risks>"
	content, err := c.chat(ctx, []chatMessage{
		{Role: "system", Content: sys},
		{Role: "user", Content: "Context:\n" + string(ctxJSON)},
	}, false)
	if err != nil {
		c.logger.Warn("llm.insight.error", "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return fallback, nil
	}

	summary, actions, ok := parseInsightSections(content)
	if !ok {
		c.logger.Warn("llm.insight.unparseable", "elapsed_ms", time.Since(start).Milliseconds())
		return fallback, nil
	}

	c.logger.Info("llm.insight.done",
		"summary_len", len(summary),
		"recommendations", len(actions.BudgetRecommendations),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return llm.Insight{Summary: summary, Actions: actions, ModelUsed: c.cfg.Model}, nil
}

// parseInsightSections splits the ---SUMMARY---/---JSON--- reply. A reply
// with a usable summary but broken JSON still counts; the actions fall back
// to empty lists.
func parseInsightSections(content string) (string, llm.InsightActions, bool) {
	empty := llm.InsightActions{
		BudgetRecommendations: []llm.BudgetRecommendation{},
		TaxPreparation:        []llm.TaxPreparationItem{},
		Risks:                 []llm.RiskItem{},
	}

	_, rest, found := strings.Cut(content, "---SUMMARY---")
	if !found {
		return "", empty, false
	}
	summaryPart, jsonPart, _ := strings.Cut(rest, "---JSON---")
	summary := strings.TrimSpace(summaryPart)
	if summary == "" {
		return "", empty, false
	}

	obj := reJSONObject.FindString(jsonPart)
	if obj == "" {
		return summary, empty, true
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildInsightActionsSchema(), []byte(obj)); err != nil {
		return summary, empty, true
	}
	var actions llm.InsightActions
	if err := json.Unmarshal([]byte(obj), &actions); err != nil {
		return summary, empty, true
	}
	if actions.BudgetRecommendations == nil {
		actions.BudgetRecommendations = []llm.BudgetRecommendation{}
	}
	if actions.TaxPreparation == nil {
		actions.TaxPreparation = []llm.TaxPreparationItem{}
	}
	if actions.Risks == nil {
		actions.Risks = []llm.RiskItem{}
	}
	return summary, actions, true
}
