package tactics

import "github.com/MikeSquared-Agency/deckhand/internal/extractor"

// Merge combines notes detections with AI flags. Every formula is an OR, so an
// AI flag can add a tactic the notes missed but never clears one they found.
func Merge(notes Set, ai extractor.AIFlags) Set {
	return Set{
		DOOH:     ai.DOOH || notes[DOOH],
		Audio:    ai.Audio || notes[Audio],
		TV:       ai.TV || notes[TV],
		Social:   ai.PaidSocial || ai.HasMeta || ai.HasTiktok || ai.HasX || notes[Social],
		Commerce: ai.Commerce || notes[Commerce],
		YouTube:  ai.YouTube || notes[YouTube],

		// No notes keywords exist for these.
		Healthcare:    ai.Healthcare,
		Gaming:        ai.Gaming,
		Entertainment: ai.Entertainment,
		DCO:           ai.DCO,
		Competitor:    ai.CompetitorDensity,

		RetailMedia: ai.Amazon || ai.Albertsons || ai.Kroger || ai.Walmart ||
			ai.Instacart || ai.CVS || ai.DollarGeneral || ai.HomeDepot,

		Location:     notes[Location] || ai.Footfall || ai.GeoTargeting,
		Experian:     ai.Experian || notes[Experian],
		B2B:          ai.B2B || notes[B2B],
		Programmatic: notes[Programmatic],

		Measurement: ai.BasketAnalysis || ai.OfflineSalesLift ||
			ai.QualitySiteVisits || ai.LucidBrandStudy,
		CreativeOptimization: ai.DCO || ai.DOOHCreative || ai.YouTubeCreative,
		AdvancedAnalytics:    ai.Dynata || ai.BasketAnalysis,
	}
}

// Basic is the merge used by the basic variant: notes only, every AI flag false.
func Basic(notes Set) Set {
	return Merge(notes, extractor.AIFlags{})
}
