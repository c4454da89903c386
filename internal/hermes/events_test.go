package hermes

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
)

func TestIntakeEventParsing(t *testing.T) {
	raw := `{
		"request_id": "zap-0042",
		"variant": "basic",
		"fields": {
			"notes": "DOOH near stores",
			"budget_1": "$250,000",
			"DOOH": "true"
		}
	}`

	var evt IntakeEvent
	if err := json.Unmarshal([]byte(raw), &evt); err != nil {
		t.Fatalf("failed to parse IntakeEvent: %v", err)
	}

	if evt.RequestID != "zap-0042" {
		t.Errorf("expected request_id 'zap-0042', got '%s'", evt.RequestID)
	}
	if evt.Variant != "basic" {
		t.Errorf("expected variant 'basic', got '%s'", evt.Variant)
	}
	if evt.Fields["notes"] != "DOOH near stores" {
		t.Errorf("expected notes field, got %v", evt.Fields["notes"])
	}
	if evt.Fields["DOOH"] != "true" {
		t.Errorf("expected DOOH field, got %v", evt.Fields["DOOH"])
	}
}

func TestSelectionEventEncoding(t *testing.T) {
	evt := SelectionEvent{
		SelectionID: "sel-1",
		Variant:     "enhanced",
		Source:      "nats",
		Output:      map[string]any{"slide_indices": "0,1,2"},
		Timestamp:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := decoded["request_id"]; ok {
		t.Error("empty request_id should be omitted")
	}
	if decoded["timestamp"] != "2026-03-01T12:00:00Z" {
		t.Errorf("unexpected timestamp %v", decoded["timestamp"])
	}
	output, ok := decoded["output"].(map[string]any)
	if !ok || output["slide_indices"] != "0,1,2" {
		t.Errorf("unexpected output %v", decoded["output"])
	}
}

func TestSubjectConstants(t *testing.T) {
	if SubjectCampaignIntake != "deckhand.campaign.intake" {
		t.Errorf("unexpected intake subject %q", SubjectCampaignIntake)
	}
	if SubjectSelectionCompleted != "deckhand.selection.completed" {
		t.Errorf("unexpected completed subject %q", SubjectSelectionCompleted)
	}
}

func TestRegisteredEventEncoding(t *testing.T) {
	data, err := json.Marshal(RegisteredEvent{
		Port:      8760,
		Variant:   "enhanced",
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}
	want := `{"port":8760,"variant":"enhanced","timestamp":"2026-03-01T12:00:00Z"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestConnectOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	apply := func(opts []nats.Option) nats.Options {
		o := nats.GetDefaultOptions()
		for _, opt := range opts {
			if err := opt(&o); err != nil {
				t.Fatalf("apply option: %v", err)
			}
		}
		return o
	}

	o := apply(connectOptions("", logger))
	if o.Name != "deckhand" || !o.RetryOnFailedConnect || o.MaxReconnect != 60 {
		t.Errorf("unexpected options %+v", o)
	}
	if o.Token != "" {
		t.Error("expected no token")
	}

	if o := apply(connectOptions("s3cr3t", logger)); o.Token != "s3cr3t" {
		t.Errorf("expected token, got %q", o.Token)
	}
}
