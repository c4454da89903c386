package extractor

// RawInput is the flat field mapping supplied by the upstream automation step.
type RawInput map[string]string

// Campaign holds the fields the selection pipeline reads from a RawInput.
type Campaign struct {
	Notes        string
	Budget       string
	CampaignName string
	Brand        string
	Flags        AIFlags
}

// AIFlags are the categories pre-classified by the upstream AI step.
type AIFlags struct {
	// Core media channels
	DOOH       bool `json:"dooh"`
	Audio      bool `json:"audio"`
	PaidSocial bool `json:"paid_social"`
	YouTube    bool `json:"youtube"`
	TV         bool `json:"tv"`

	// Commerce and retail media networks
	Commerce      bool `json:"commerce"`
	Amazon        bool `json:"amazon"`
	Albertsons    bool `json:"albertsons"`
	Kroger        bool `json:"kroger"`
	Roundel       bool `json:"roundel"`
	Instacart     bool `json:"instacart"`
	Walmart       bool `json:"walmart"`
	CVS           bool `json:"cvs"`
	DollarGeneral bool `json:"dollar_general"`
	HomeDepot     bool `json:"home_depot"`
	Kinective     bool `json:"kinective"`
	Macys         bool `json:"macys"`
	Meijer        bool `json:"meijer"`
	Shipt         bool `json:"shipt"`
	Walgreens     bool `json:"walgreens"`

	// Targeting and data
	Experian          bool `json:"experian"`
	B2B               bool `json:"b2b"`
	Footfall          bool `json:"footfall"`
	CompetitorDensity bool `json:"competitor_density"`

	// Industries
	Healthcare    bool `json:"healthcare"`
	Gaming        bool `json:"gaming"`
	Entertainment bool `json:"entertainment"`

	// Creative and optimization
	DCO             bool `json:"dco"`
	DOOHCreative    bool `json:"dooh_creative"`
	YouTubeCreative bool `json:"youtube_creative"`

	// Measurement and analytics
	Dynata            bool `json:"dynata"`
	BasketAnalysis    bool `json:"basket_analysis"`
	OfflineSalesLift  bool `json:"offline_sales_lift"`
	QualitySiteVisits bool `json:"quality_site_visits"`
	LucidBrandStudy   bool `json:"lucid_brand_study"`

	GeoTargeting bool `json:"geo_targeting"`

	// Social platforms
	HasMeta      bool `json:"hasMeta"`
	HasLinkedin  bool `json:"hasLinkedin"`
	HasPinterest bool `json:"hasPinterest"`
	HasReddit    bool `json:"hasReddit"`
	HasSnapchat  bool `json:"hasSnapchat"`
	HasTiktok    bool `json:"hasTiktok"`
	HasX         bool `json:"hasX"`
}

// flagField binds an input key to the AIFlags field it populates. Keys are
// matched exactly, casing included.
type flagField struct {
	key   string
	field func(*AIFlags) *bool
}

var flagFields = []flagField{
	{"DOOH", func(f *AIFlags) *bool { return &f.DOOH }},
	{"audio", func(f *AIFlags) *bool { return &f.Audio }},
	{"paid_social", func(f *AIFlags) *bool { return &f.PaidSocial }},
	{"youtube", func(f *AIFlags) *bool { return &f.YouTube }},
	{"tv", func(f *AIFlags) *bool { return &f.TV }},
	{"commerce", func(f *AIFlags) *bool { return &f.Commerce }},
	{"amazon", func(f *AIFlags) *bool { return &f.Amazon }},
	{"albertsons", func(f *AIFlags) *bool { return &f.Albertsons }},
	{"kroger", func(f *AIFlags) *bool { return &f.Kroger }},
	{"roundel", func(f *AIFlags) *bool { return &f.Roundel }},
	{"instacart", func(f *AIFlags) *bool { return &f.Instacart }},
	{"walmart", func(f *AIFlags) *bool { return &f.Walmart }},
	{"CVS", func(f *AIFlags) *bool { return &f.CVS }},
	{"dollar_general", func(f *AIFlags) *bool { return &f.DollarGeneral }},
	{"home_depot", func(f *AIFlags) *bool { return &f.HomeDepot }},
	{"kinective", func(f *AIFlags) *bool { return &f.Kinective }},
	{"macys", func(f *AIFlags) *bool { return &f.Macys }},
	{"meijer", func(f *AIFlags) *bool { return &f.Meijer }},
	{"shipt", func(f *AIFlags) *bool { return &f.Shipt }},
	{"walgreens", func(f *AIFlags) *bool { return &f.Walgreens }},
	{"experian", func(f *AIFlags) *bool { return &f.Experian }},
	{"B2B", func(f *AIFlags) *bool { return &f.B2B }},
	{"footfall", func(f *AIFlags) *bool { return &f.Footfall }},
	{"competitor_density", func(f *AIFlags) *bool { return &f.CompetitorDensity }},
	{"healthcare", func(f *AIFlags) *bool { return &f.Healthcare }},
	{"gaming", func(f *AIFlags) *bool { return &f.Gaming }},
	{"entertainment", func(f *AIFlags) *bool { return &f.Entertainment }},
	{"DCO", func(f *AIFlags) *bool { return &f.DCO }},
	{"dooh_creative", func(f *AIFlags) *bool { return &f.DOOHCreative }},
	{"youtube_creative", func(f *AIFlags) *bool { return &f.YouTubeCreative }},
	{"dynata", func(f *AIFlags) *bool { return &f.Dynata }},
	{"basket_analysis", func(f *AIFlags) *bool { return &f.BasketAnalysis }},
	{"offline_sales_lift", func(f *AIFlags) *bool { return &f.OfflineSalesLift }},
	{"quality_site_visits", func(f *AIFlags) *bool { return &f.QualitySiteVisits }},
	{"lucid_brand_study", func(f *AIFlags) *bool { return &f.LucidBrandStudy }},
	{"geo_targeting", func(f *AIFlags) *bool { return &f.GeoTargeting }},
	{"hasMeta", func(f *AIFlags) *bool { return &f.HasMeta }},
	{"hasLinkedin", func(f *AIFlags) *bool { return &f.HasLinkedin }},
	{"hasPinterest", func(f *AIFlags) *bool { return &f.HasPinterest }},
	{"hasReddit", func(f *AIFlags) *bool { return &f.HasReddit }},
	{"hasSnapchat", func(f *AIFlags) *bool { return &f.HasSnapchat }},
	{"hasTiktok", func(f *AIFlags) *bool { return &f.HasTiktok }},
	{"hasX", func(f *AIFlags) *bool { return &f.HasX }},
}

// FlagKeys returns the input keys read as AI flags, in field order.
func FlagKeys() []string {
	keys := make([]string, len(flagFields))
	for i, ff := range flagFields {
		keys[i] = ff.key
	}
	return keys
}

// Names returns the input keys of every flag that is set, in field order.
func (f AIFlags) Names() []string {
	var names []string
	for _, ff := range flagFields {
		if *ff.field(&f) {
			names = append(names, ff.key)
		}
	}
	return names
}

// Count returns how many flags are set.
func (f AIFlags) Count() int {
	return len(f.Names())
}

// Any reports whether at least one flag is set.
func (f AIFlags) Any() bool {
	return f != AIFlags{}
}
