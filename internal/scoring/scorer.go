package scoring

import (
	"fmt"
	"strings"

	"github.com/MikeSquared-Agency/deckhand/internal/budget"
	"github.com/MikeSquared-Agency/deckhand/internal/tactics"
)

const (
	baseConfidence = 70

	// Enhanced: +4 per tactic, +15 when any AI flag was used, +5 at six or
	// more tactics, capped at 97.
	enhancedPerTactic = 4
	aiBonus           = 15
	breadthBonus      = 5
	breadthBonusMin   = 6
	enhancedCeiling   = 97

	// Basic: +5 per tactic, capped at 95.
	basicPerTactic = 5
	basicCeiling   = 95
)

// Lead phrases open the reasoning string.
const (
	EnhancedLead = "AI-enhanced slide selection"
	BasicLead    = "Intelligent slide selection"
)

// EnhancedConfidence scores a selection made with AI flags available.
func EnhancedConfidence(tacticCount int, aiUsed bool) int {
	score := baseConfidence + tacticCount*enhancedPerTactic
	if aiUsed {
		score += aiBonus
	}
	if tacticCount >= breadthBonusMin {
		score += breadthBonus
	}
	return min(score, enhancedCeiling)
}

// BasicConfidence scores a notes-only selection.
func BasicConfidence(tacticCount int) int {
	return min(baseConfidence+tacticCount*basicPerTactic, basicCeiling)
}

// Complexity labels a campaign by how many tactics it uses.
func Complexity(tacticCount int) string {
	switch {
	case tacticCount >= 8:
		return "High"
	case tacticCount >= 5:
		return "Medium"
	default:
		return "Low"
	}
}

// Reasoning explains which rules fired, in the order they were evaluated:
// the lead phrase, one clause per detected tactic, the AI clause and the
// budget clause.
func Reasoning(lead string, detected []tactics.Tactic, aiFields int, rawBudget string) string {
	parts := []string{lead}
	for _, t := range detected {
		parts = append(parts, strings.ToUpper(string(t))+" detected")
	}
	if aiFields > 0 {
		parts = append(parts, fmt.Sprintf("%d AI insights integrated", aiFields))
	}
	if rawBudget != "" {
		if label := budget.OptimizationLabel(budget.ParseAmount(rawBudget)); label != "" {
			parts = append(parts, label)
		}
	}
	return strings.Join(parts, ", ")
}
