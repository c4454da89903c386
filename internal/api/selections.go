package api

import (
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/deckhand/internal/engine"
	"github.com/MikeSquared-Agency/deckhand/internal/extractor"
	"github.com/MikeSquared-Agency/deckhand/internal/metrics"
	"github.com/MikeSquared-Agency/deckhand/internal/processor"
)

const maxBodyBytes = 1 << 20

type selectionQuery struct {
	Variant string `validate:"omitempty,oneof=basic enhanced"`
}

// SelectionResponse is the body returned by POST /api/v1/selections.
type SelectionResponse struct {
	SelectionID uuid.UUID      `json:"selection_id"`
	Variant     engine.Variant `json:"variant"`
	Output      map[string]any `json:"output"`
}

// createSelection handles POST /api/v1/selections. The body is the flat
// field mapping produced by the upstream form step.
func (s *Server) createSelection(w http.ResponseWriter, r *http.Request) {
	q := selectionQuery{Variant: r.URL.Query().Get("variant")}
	if err := s.validate.Struct(q); err != nil {
		metrics.ObserveRejected(processor.SourceHTTP)
		writeError(w, http.StatusBadRequest, "variant must be basic or enhanced")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		metrics.ObserveRejected(processor.SourceHTTP)
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}

	fields, err := extractor.ParseRawInput(body)
	if err != nil {
		metrics.ObserveRejected(processor.SourceHTTP)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sel := s.selector.Select(r.Context(), processor.Request{
		RequestID: r.Header.Get("X-Request-Id"),
		Variant:   engine.Variant(q.Variant),
		Source:    processor.SourceHTTP,
		Fields:    fields,
	})

	writeJSON(w, http.StatusOK, SelectionResponse{
		SelectionID: sel.ID,
		Variant:     sel.Variant,
		Output:      sel.Output,
	})
}
