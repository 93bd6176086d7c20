// Package classify assigns a spending category to receipt text using a
// two-tier strategy: an AI model first, keyword matching as the fallback.
package classify

import (
	"context"
	"log/slog"
	"time"

	"github.com/hackybara/expense-tracker/constants"
)

// AITier is the model-backed first tier. Implementations return "" when the
// model gave no usable answer.
type AITier interface {
	ClassifyReceipt(ctx context.Context, text string) (string, error)
}

// Classifier runs the AI tier under a deadline and falls back to keyword
// scoring whenever the model is unavailable, errors, times out, or answers
// outside the allowed label set. It always produces a category.
type Classifier struct {
	ai      AITier
	timeout time.Duration
	logger  *slog.Logger
}

func New(ai AITier, timeout time.Duration, logger *slog.Logger) *Classifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{ai: ai, timeout: timeout, logger: logger}
}

func (c *Classifier) Classify(ctx context.Context, text string) constants.Category {
	if c.ai != nil {
		aiCtx, cancel := context.WithTimeout(ctx, c.timeout)
		label, err := c.ai.ClassifyReceipt(aiCtx, text)
		cancel()

		switch {
		case err != nil:
			c.logger.Warn("classify.ai_tier_failed", "error", err)
		case label == "":
			c.logger.Info("classify.ai_no_answer")
		default:
			if cat, ok := constants.Canonicalize(label); ok {
				c.logger.Info("classify.ai_answer", "category", string(cat))
				return cat
			}
			c.logger.Warn("classify.ai_unknown_label", "label", label)
		}
	}

	cat := KeywordGuess(text)
	c.logger.Info("classify.keyword_answer", "category", string(cat))
	return cat
}
