package hermes

import "time"

const (
	// SubjectCampaignIntake carries campaign field mappings awaiting selection.
	SubjectCampaignIntake = "deckhand.campaign.intake"
	// SubjectSelectionCompleted carries every computed selection.
	SubjectSelectionCompleted = "deckhand.selection.completed"
	// SubjectRegistered announces the service on startup.
	SubjectRegistered = "deckhand.registered"
)

// IntakeEvent is the payload expected on SubjectCampaignIntake. Fields is the
// same flat mapping the HTTP webhook accepts.
type IntakeEvent struct {
	RequestID string         `json:"request_id"`
	Variant   string         `json:"variant,omitempty"`
	Fields    map[string]any `json:"fields"`
}

// SelectionEvent is published on SubjectSelectionCompleted.
type SelectionEvent struct {
	SelectionID  string         `json:"selection_id"`
	RequestID    string         `json:"request_id,omitempty"`
	Variant      string         `json:"variant"`
	CampaignName string         `json:"campaign_name,omitempty"`
	Brand        string         `json:"brand,omitempty"`
	Source       string         `json:"source"`
	Output       map[string]any `json:"output"`
	Timestamp    time.Time      `json:"timestamp"`
}

// RegisteredEvent is published on SubjectRegistered when the service starts.
type RegisteredEvent struct {
	Port      int       `json:"port"`
	Variant   string    `json:"variant"`
	Timestamp time.Time `json:"timestamp"`
}
