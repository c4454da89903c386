package tactics

// Tactic is a marketing channel or approach whose presence is inferred from
// campaign notes or from AI classification.
type Tactic string

const (
	DOOH                 Tactic = "dooh"
	Audio                Tactic = "audio"
	TV                   Tactic = "tv"
	Social               Tactic = "social"
	Commerce             Tactic = "commerce"
	YouTube              Tactic = "youtube"
	Healthcare           Tactic = "healthcare"
	Gaming               Tactic = "gaming"
	Entertainment        Tactic = "entertainment"
	DCO                  Tactic = "dco"
	Competitor           Tactic = "competitor"
	RetailMedia          Tactic = "retail_media"
	Location             Tactic = "location"
	Experian             Tactic = "experian"
	B2B                  Tactic = "b2b"
	Programmatic         Tactic = "programmatic"
	Measurement          Tactic = "measurement"
	CreativeOptimization Tactic = "creative_optimization"
	AdvancedAnalytics    Tactic = "advanced_analytics"
)

// Order is the merged tactic order. Reasoning clauses are emitted in it.
var Order = []Tactic{
	DOOH, Audio, TV, Social, Commerce, YouTube,
	Healthcare, Gaming, Entertainment, DCO, Competitor,
	RetailMedia,
	Location, Experian, B2B, Programmatic,
	Measurement, CreativeOptimization, AdvancedAnalytics,
}

// NotesTactics are the tactics with a notes keyword family, in detection order.
var NotesTactics = []Tactic{
	DOOH, Audio, Location, TV, Social, Programmatic, Commerce, Experian, YouTube, B2B,
}

// Set maps each tactic to whether it was detected. A missing key reads false.
type Set map[Tactic]bool

// Detected returns the true tactics in Order.
func (s Set) Detected() []Tactic {
	var out []Tactic
	for _, t := range Order {
		if s[t] {
			out = append(out, t)
		}
	}
	return out
}

// Count returns the number of true tactics.
func (s Set) Count() int {
	n := 0
	for _, t := range Order {
		if s[t] {
			n++
		}
	}
	return n
}
