package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SelectionRecord is one row of the audit log.
type SelectionRecord struct {
	ID           uuid.UUID
	RequestID    string
	Source       string
	Variant      string
	CampaignName string
	Brand        string
	SlideIndices []int
	Tactics      []string
	Confidence   int
	Output       map[string]any
}

// RecordSelection appends a computed selection to the audit log.
func (s *Store) RecordSelection(ctx context.Context, rec SelectionRecord) error {
	if rec.ID == uuid.Nil {
		return fmt.Errorf("record selection: missing id")
	}

	slides := make([]int32, len(rec.SlideIndices))
	for i, v := range rec.SlideIndices {
		slides[i] = int32(v)
	}
	tactics := rec.Tactics
	if tactics == nil {
		tactics = []string{}
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO slide_selections (id, request_id, source, variant, campaign_name, brand, slide_indices, tactics, confidence, output, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())`,
		rec.ID, rec.RequestID, rec.Source, rec.Variant, rec.CampaignName, rec.Brand, slides, tactics, rec.Confidence, rec.Output,
	)
	if err != nil {
		return fmt.Errorf("insert selection: %w", err)
	}
	return nil
}
