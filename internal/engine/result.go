package engine

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/MikeSquared-Agency/deckhand/internal/extractor"
	"github.com/MikeSquared-Agency/deckhand/internal/industry"
	"github.com/MikeSquared-Agency/deckhand/internal/tactics"
)

// PremiumSlideThreshold is the slide count above which a deck needs premium content.
const PremiumSlideThreshold = 30

// Result is everything one pipeline run computed.
type Result struct {
	Variant    Variant
	Campaign   extractor.Campaign
	Tactics    tactics.Set
	Detected   []tactics.Tactic
	Slides     []int
	Confidence int
	Reasoning  string

	// Enhanced variant only.
	Context     industry.Context
	SearchTerms []string
	Complexity  string
	AIFields    []string
}

// SlideIndices joins the slides with commas, e.g. "0,1,2,3".
func (r *Result) SlideIndices() string {
	parts := make([]string, len(r.Slides))
	for i, s := range r.Slides {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// Output shapes the result into the flat mapping returned to the caller.
func (r *Result) Output() map[string]any {
	out := map[string]any{
		"slide_indices":    r.SlideIndices(),
		"tactics_detected": len(r.Detected),
		"confidence":       r.Confidence,
		"reasoning":        r.Reasoning,
		"total_slides":     len(r.Slides),
	}
	if r.Variant == VariantBasic {
		return out
	}

	out["industry_context"] = encodeJSON(r.Context)
	out["glean_search_terms"] = encodeJSON(r.SearchTerms)
	out["campaign_complexity"] = r.Complexity
	out["ai_fields_used"] = len(r.AIFields)
	out["ai_enhanced"] = len(r.AIFields) > 0
	out["glean_ready"] = true
	out["requires_premium_content"] = len(r.Slides) > PremiumSlideThreshold
	return out
}

// encodeJSON serializes nested values embedded as strings in the output.
// HTML escaping is off so "Media & Entertainment" stays readable.
func encodeJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		// Only strings and string slices reach here.
		panic("engine: encode output field: " + err.Error())
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
