package slides

import (
	"slices"

	"github.com/MikeSquared-Agency/deckhand/internal/budget"
	"github.com/MikeSquared-Agency/deckhand/internal/knowledge"
	"github.com/MikeSquared-Agency/deckhand/internal/tactics"
)

// Selector turns detected tactics and a budget into slide indices.
type Selector struct {
	kb    *knowledge.Base
	basic bool
}

// NewSelector creates a selector over kb. basic selects the narrower basic
// slide map.
func NewSelector(kb *knowledge.Base, basic bool) *Selector {
	return &Selector{kb: kb, basic: basic}
}

// Select returns the core slides, every true tactic's slides and the budget
// slides as one ascending list without duplicates.
func (s *Selector) Select(set tactics.Set, amount int64) []int {
	seen := make(map[int]struct{})
	add := func(indices []int) {
		for _, i := range indices {
			seen[i] = struct{}{}
		}
	}

	add(s.kb.Core())
	for _, t := range set.Detected() {
		add(s.kb.Slides(string(t), s.basic))
	}
	add(BudgetSlides(amount))

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// BudgetSlides returns the added-value slides a budget unlocks.
func BudgetSlides(amount int64) []int {
	switch {
	case amount >= budget.EnterpriseMin:
		return []int{200, 201, 202, 203}
	case amount >= budget.StandardMin:
		return []int{200, 201, 202}
	case amount >= budget.GrowthMin:
		return []int{200, 201}
	default:
		return nil
	}
}
