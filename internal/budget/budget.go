package budget

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Tier thresholds shared by every budget classification.
const (
	EnterpriseMin int64 = 1_000_000
	StandardMin   int64 = 500_000
	GrowthMin     int64 = 100_000
)

// Tier is the client tier label derived from a budget.
type Tier string

const (
	TierEnterprise Tier = "Enterprise"
	TierStandard   Tier = "Standard"
	TierGrowth     Tier = "Growth"
	TierStarter    Tier = "Starter"
)

// ParseAmount keeps only the ASCII digits of s and parses them. "$1,250,000"
// is 1250000, "" and digit-free strings are 0. Digit runs too long for an
// int64 saturate at math.MaxInt64.
func ParseAmount(s string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt64
		}
		return 0
	}
	return n
}

// ClientTier labels the client by budget for the industry context.
func ClientTier(amount int64) Tier {
	switch {
	case amount >= EnterpriseMin:
		return TierEnterprise
	case amount >= StandardMin:
		return TierStandard
	case amount >= GrowthMin:
		return TierGrowth
	default:
		return TierStarter
	}
}

// OptimizationLabel is the reasoning clause for a budget, empty below the
// growth threshold.
func OptimizationLabel(amount int64) string {
	switch {
	case amount >= EnterpriseMin:
		return "Premium tier optimization"
	case amount >= StandardMin:
		return "Standard tier optimization"
	case amount >= GrowthMin:
		return "Growth tier optimization"
	default:
		return ""
	}
}
