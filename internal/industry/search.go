package industry

import (
	"fmt"

	"github.com/MikeSquared-Agency/deckhand/internal/budget"
	"github.com/MikeSquared-Agency/deckhand/internal/tactics"
)

// MaxSearchTerms caps the generated search terms.
const MaxSearchTerms = 6

// searchTactics are the tactics that earn a search term, in emission order.
var searchTactics = []tactics.Tactic{
	tactics.DOOH, tactics.RetailMedia, tactics.TV, tactics.Social, tactics.Commerce,
}

// SearchTerms builds knowledge-search queries for the campaign. Terms are
// generated in a fixed order and the list is cut at MaxSearchTerms, so late
// terms are dropped rather than re-ranked.
func SearchTerms(set tactics.Set, ctx Context) []string {
	terms := []string{
		fmt.Sprintf("%s %s campaign case study results KPI", ctx.Industry, ctx.SubIndustry),
		fmt.Sprintf("%s marketing best practices benchmarks", ctx.Industry),
	}

	for _, t := range searchTactics {
		if set[t] {
			terms = append(terms, fmt.Sprintf("%s %s campaign performance metrics ROI", t, ctx.Industry))
		}
	}

	if ctx.ComplexityTier == "Complex" {
		terms = append(terms,
			fmt.Sprintf("%s omnichannel campaign attribution measurement", ctx.Industry),
			"multi-channel campaign optimization strategies",
		)
	}

	if ctx.ClientTier == string(budget.TierEnterprise) {
		terms = append(terms, fmt.Sprintf("%s enterprise client success stories premium campaigns", ctx.Industry))
	}

	if len(terms) > MaxSearchTerms {
		terms = terms[:MaxSearchTerms]
	}
	return terms
}
