package industry

import (
	"strings"

	"github.com/MikeSquared-Agency/deckhand/internal/budget"
	"github.com/MikeSquared-Agency/deckhand/internal/tactics"
)

// ComplexThreshold is the tactic count above which a campaign is Complex.
const ComplexThreshold = 6

// Context describes the campaign for downstream content retrieval. Field
// order is the serialized order.
type Context struct {
	Industry       string `json:"industry"`
	SubIndustry    string `json:"sub_industry"`
	BrandType      string `json:"brand_type"`
	CampaignType   string `json:"campaign_type"`
	ComplexityTier string `json:"complexity_tier"`
	ClientTier     string `json:"client_tier"`
}

// Build classifies the campaign. The industry checks run in a fixed order
// and the first match wins.
func Build(brand, notes string, set tactics.Set, amount int64) Context {
	brand = strings.ToLower(brand)
	notes = strings.ToLower(notes)

	ctx := Context{
		BrandType:      "Consumer",
		CampaignType:   "B2C",
		ComplexityTier: "Standard",
		ClientTier:     string(budget.ClientTier(amount)),
	}
	ctx.Industry, ctx.SubIndustry = classify(brand, notes, set)

	if strings.Contains(brand, "enterprise") || set[tactics.B2B] {
		ctx.BrandType = "Enterprise"
	}
	if set[tactics.B2B] {
		ctx.CampaignType = "B2B"
	}
	if set.Count() > ComplexThreshold {
		ctx.ComplexityTier = "Complex"
	}
	return ctx
}

func classify(brand, notes string, set tactics.Set) (industry, sub string) {
	switch {
	case set[tactics.Healthcare]:
		return "Healthcare", "Pharmaceutical"
	case set[tactics.Gaming]:
		return "Gaming", "Digital Entertainment"
	case set[tactics.Entertainment]:
		return "Entertainment", "Media & Entertainment"
	case strings.Contains(brand, "bank") || strings.Contains(brand, "finance") ||
		strings.Contains(notes, "financial"):
		return "Financial Services", "Banking"
	case strings.Contains(brand, "auto") || strings.Contains(brand, "car") ||
		strings.Contains(notes, "automotive"):
		return "Automotive", "Vehicle Manufacturers"
	case set[tactics.RetailMedia] || set[tactics.Commerce]:
		return "Retail", "E-commerce"
	case strings.Contains(notes, "spirits") || strings.Contains(notes, "alcohol") ||
		strings.Contains(notes, "beverage"):
		return "Consumer Goods", "Spirits & Beverages"
	default:
		return "Consumer Goods", "General"
	}
}
