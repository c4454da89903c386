package tactics

import (
	"strings"

	"github.com/MikeSquared-Agency/deckhand/internal/knowledge"
)

// DetectNotes scans free-text notes for each tactic's keyword family. Matching
// is plain case-insensitive substring containment, so "geo" also fires on
// "geology" and "ott" on "bottle".
func DetectNotes(kb *knowledge.Base, notes string) Set {
	lower := strings.ToLower(notes)

	s := make(Set, len(NotesTactics))
	for _, t := range NotesTactics {
		s[t] = containsAny(lower, kb.Keywords(string(t)))
	}
	return s
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
