package engine

import (
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/deckhand/internal/budget"
	"github.com/MikeSquared-Agency/deckhand/internal/extractor"
	"github.com/MikeSquared-Agency/deckhand/internal/industry"
	"github.com/MikeSquared-Agency/deckhand/internal/knowledge"
	"github.com/MikeSquared-Agency/deckhand/internal/scoring"
	"github.com/MikeSquared-Agency/deckhand/internal/slides"
	"github.com/MikeSquared-Agency/deckhand/internal/tactics"
)

// Variant selects between the notes-only basic pipeline and the enhanced
// pipeline that also reads AI flags.
type Variant string

const (
	VariantBasic    Variant = "basic"
	VariantEnhanced Variant = "enhanced"
)

// ParseVariant accepts "basic" or "enhanced".
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantBasic, VariantEnhanced:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("unknown variant %q (want basic or enhanced)", s)
	}
}

// Engine runs the slide selection pipeline. It holds no per-call state and is
// safe for concurrent use.
type Engine struct {
	kb       *knowledge.Base
	basic    *slides.Selector
	enhanced *slides.Selector
	logger   *slog.Logger
}

// New creates an engine over the given knowledge base.
func New(kb *knowledge.Base, logger *slog.Logger) *Engine {
	return &Engine{
		kb:       kb,
		basic:    slides.NewSelector(kb, true),
		enhanced: slides.NewSelector(kb, false),
		logger:   logger,
	}
}

// Run computes the selection for one input mapping.
func (e *Engine) Run(raw extractor.RawInput, v Variant) *Result {
	campaign := extractor.Extract(raw)
	amount := budget.ParseAmount(campaign.Budget)
	notes := tactics.DetectNotes(e.kb, campaign.Notes)

	r := &Result{
		Variant:  v,
		Campaign: campaign,
	}

	if v == VariantBasic {
		r.Tactics = tactics.Basic(notes)
		r.Detected = r.Tactics.Detected()
		r.Slides = e.basic.Select(r.Tactics, amount)
		r.Confidence = scoring.BasicConfidence(len(r.Detected))
		r.Reasoning = scoring.Reasoning(scoring.BasicLead, r.Detected, 0, campaign.Budget)
	} else {
		r.Tactics = tactics.Merge(notes, campaign.Flags)
		r.Detected = r.Tactics.Detected()
		r.AIFields = campaign.Flags.Names()
		r.Slides = e.enhanced.Select(r.Tactics, amount)
		r.Context = industry.Build(campaign.Brand, campaign.Notes, r.Tactics, amount)
		r.SearchTerms = industry.SearchTerms(r.Tactics, r.Context)
		r.Complexity = scoring.Complexity(len(r.Detected))
		r.Confidence = scoring.EnhancedConfidence(len(r.Detected), len(r.AIFields) > 0)
		r.Reasoning = scoring.Reasoning(scoring.EnhancedLead, r.Detected, len(r.AIFields), campaign.Budget)
	}

	e.logger.Debug("slide selection computed",
		"variant", v,
		"campaign", campaign.CampaignName,
		"notes", preview(campaign.Notes, 100),
		"budget", campaign.Budget,
		"ai_fields", len(r.AIFields),
		"tactics", r.Detected,
		"slides", len(r.Slides),
	)

	return r
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
