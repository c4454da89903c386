package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/deckhand/internal/engine"
	"github.com/MikeSquared-Agency/deckhand/internal/extractor"
	"github.com/MikeSquared-Agency/deckhand/internal/hermes"
	"github.com/MikeSquared-Agency/deckhand/internal/metrics"
	"github.com/MikeSquared-Agency/deckhand/internal/store"
)

// Entry points a selection can arrive through.
const (
	SourceHTTP = "http"
	SourceNATS = "nats"
	SourceCLI  = "cli"
)

// Recorder appends selections to an audit log.
type Recorder interface {
	RecordSelection(ctx context.Context, rec store.SelectionRecord) error
}

// Publisher emits selection events. Satisfied by *hermes.Client.
type Publisher interface {
	PublishSelection(evt hermes.SelectionEvent) error
}

// Processor wraps the selection engine with identity, audit and events.
type Processor struct {
	engine         *engine.Engine
	recorder       Recorder
	publisher      Publisher
	defaultVariant engine.Variant
	logger         *slog.Logger
}

// Request is one selection to compute.
type Request struct {
	RequestID string
	Variant   engine.Variant // empty means the processor default
	Source    string
	Fields    extractor.RawInput
}

// Selection is a computed, identified selection.
type Selection struct {
	ID        uuid.UUID
	RequestID string
	Variant   engine.Variant
	Source    string
	Result    *engine.Result
	Output    map[string]any
}

// New creates a processor. rec and pub may be nil, in which case selections
// are neither recorded nor published.
func New(eng *engine.Engine, rec Recorder, pub Publisher, defaultVariant engine.Variant, logger *slog.Logger) *Processor {
	return &Processor{
		engine:         eng,
		recorder:       rec,
		publisher:      pub,
		defaultVariant: defaultVariant,
		logger:         logger,
	}
}

// Select runs the engine and fans the result out to the recorder and
// publisher. Their failures are logged; the selection itself cannot fail.
func (p *Processor) Select(ctx context.Context, req Request) *Selection {
	variant := req.Variant
	if variant == "" {
		variant = p.defaultVariant
	}

	result := p.engine.Run(req.Fields, variant)
	sel := &Selection{
		ID:        uuid.New(),
		RequestID: req.RequestID,
		Variant:   variant,
		Source:    req.Source,
		Result:    result,
		Output:    result.Output(),
	}

	metrics.ObserveSelection(string(variant), req.Source, len(result.Slides), result.Detected)

	if p.recorder != nil {
		if err := p.recorder.RecordSelection(ctx, sel.record()); err != nil {
			p.logger.Error("failed to record selection", "selection_id", sel.ID, "error", err)
		}
	}

	if p.publisher != nil {
		if err := p.publisher.PublishSelection(sel.event()); err != nil {
			p.logger.Error("failed to publish selection", "selection_id", sel.ID, "error", err)
		}
	}

	p.logger.Info("selection completed",
		"selection_id", sel.ID,
		"request_id", req.RequestID,
		"source", req.Source,
		"variant", variant,
		"tactics", len(result.Detected),
		"slides", len(result.Slides),
		"confidence", result.Confidence,
	)

	return sel
}

// HandleCampaignIntake is the NATS handler for deckhand.campaign.intake.
// Malformed payloads are logged and dropped.
func (p *Processor) HandleCampaignIntake(subject string, data []byte) {
	req, err := ParseIntake(data)
	if err != nil {
		metrics.ObserveRejected(SourceNATS)
		p.logger.Warn("dropping campaign intake", "subject", subject, "error", err)
		return
	}
	p.Select(context.Background(), req)
}

// ParseIntake decodes and validates an intake event.
func ParseIntake(data []byte) (Request, error) {
	var evt hermes.IntakeEvent
	if err := json.Unmarshal(data, &evt); err != nil {
		return Request{}, fmt.Errorf("parse intake event: %w", err)
	}
	if evt.Fields == nil {
		return Request{}, fmt.Errorf("%w: intake event has no fields", extractor.ErrMalformedInput)
	}

	fields, err := extractor.FromMap(evt.Fields)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		RequestID: evt.RequestID,
		Source:    SourceNATS,
		Fields:    fields,
	}
	if evt.Variant != "" {
		v, err := engine.ParseVariant(evt.Variant)
		if err != nil {
			return Request{}, err
		}
		req.Variant = v
	}
	return req, nil
}

func (s *Selection) record() store.SelectionRecord {
	detected := make([]string, len(s.Result.Detected))
	for i, t := range s.Result.Detected {
		detected[i] = string(t)
	}
	return store.SelectionRecord{
		ID:           s.ID,
		RequestID:    s.RequestID,
		Source:       s.Source,
		Variant:      string(s.Variant),
		CampaignName: s.Result.Campaign.CampaignName,
		Brand:        s.Result.Campaign.Brand,
		SlideIndices: s.Result.Slides,
		Tactics:      detected,
		Confidence:   s.Result.Confidence,
		Output:       s.Output,
	}
}

func (s *Selection) event() hermes.SelectionEvent {
	return hermes.SelectionEvent{
		SelectionID:  s.ID.String(),
		RequestID:    s.RequestID,
		Variant:      string(s.Variant),
		CampaignName: s.Result.Campaign.CampaignName,
		Brand:        s.Result.Campaign.Brand,
		Source:       s.Source,
		Output:       s.Output,
		Timestamp:    time.Now().UTC(),
	}
}
