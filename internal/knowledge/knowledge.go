package knowledge

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed knowledge.yaml
var embeddedYAML []byte

// Rule is one tactic's entry in the knowledge base.
type Rule struct {
	Name        string   `yaml:"name"`
	Keywords    []string `yaml:"keywords"`
	Slides      []int    `yaml:"slides"`
	BasicSlides []int    `yaml:"basic_slides"`
}

// Base is the static slide deck knowledge base: the core slides, every
// tactic's keyword family and its slide lists.
type Base struct {
	CoreSlides []int  `yaml:"core_slides"`
	Tactics    []Rule `yaml:"tactics"`

	byName map[string]int
}

// KnownTactics are the tactic names a knowledge base may define, in merged
// tactic order.
var KnownTactics = []string{
	"dooh", "audio", "tv", "social", "commerce", "youtube",
	"healthcare", "gaming", "entertainment", "dco", "competitor",
	"retail_media",
	"location", "experian", "b2b", "programmatic",
	"measurement", "creative_optimization", "advanced_analytics",
}

// NotesTactics must be present in every knowledge base since notes detection
// reads their keyword families.
var NotesTactics = []string{
	"dooh", "audio", "location", "tv", "social", "programmatic", "commerce", "experian", "youtube", "b2b",
}

var (
	embeddedOnce sync.Once
	embeddedBase *Base
	embeddedErr  error
)

// Embedded returns the knowledge base compiled into the binary. It panics if
// the embedded document is invalid, which the package tests rule out.
func Embedded() *Base {
	embeddedOnce.Do(func() {
		embeddedBase, embeddedErr = Load(embeddedYAML)
	})
	if embeddedErr != nil {
		panic(fmt.Sprintf("embedded knowledge base: %v", embeddedErr))
	}
	return embeddedBase
}

// LoadFile reads an alternate knowledge base from disk.
func LoadFile(path string) (*Base, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	return Load(data)
}

// Load parses and validates a YAML knowledge base.
func Load(data []byte) (*Base, error) {
	var b Base
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse knowledge base: %w", err)
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Base) validate() error {
	if len(b.CoreSlides) == 0 {
		return fmt.Errorf("knowledge base: core_slides is empty")
	}
	if err := checkSlides("core_slides", b.CoreSlides); err != nil {
		return err
	}

	b.byName = make(map[string]int, len(b.Tactics))
	for i, r := range b.Tactics {
		if r.Name == "" {
			return fmt.Errorf("knowledge base: tactic %d has no name", i)
		}
		if !slices.Contains(KnownTactics, r.Name) {
			return fmt.Errorf("knowledge base: unknown tactic %q", r.Name)
		}
		if _, dup := b.byName[r.Name]; dup {
			return fmt.Errorf("knowledge base: duplicate tactic %q", r.Name)
		}
		for j, kw := range r.Keywords {
			if kw == "" {
				return fmt.Errorf("knowledge base: tactic %q keyword %d is empty", r.Name, j)
			}
			// Notes are lowercased before matching, so an uppercase keyword can never fire.
			if kw != strings.ToLower(kw) {
				return fmt.Errorf("knowledge base: tactic %q keyword %q is not lowercase", r.Name, kw)
			}
		}
		if err := checkSlides(r.Name+".slides", r.Slides); err != nil {
			return err
		}
		if err := checkSlides(r.Name+".basic_slides", r.BasicSlides); err != nil {
			return err
		}
		b.byName[r.Name] = i
	}
	for _, name := range NotesTactics {
		if _, ok := b.byName[name]; !ok {
			return fmt.Errorf("knowledge base: missing notes tactic %q", name)
		}
	}
	return nil
}

func checkSlides(field string, slides []int) error {
	for _, s := range slides {
		if s < 0 {
			return fmt.Errorf("knowledge base: %s has negative slide index %d", field, s)
		}
	}
	return nil
}

// Has reports whether the knowledge base defines a tactic.
func (b *Base) Has(tactic string) bool {
	_, ok := b.byName[tactic]
	return ok
}

// Keywords returns the notes keyword family for a tactic.
func (b *Base) Keywords(tactic string) []string {
	i, ok := b.byName[tactic]
	if !ok {
		return nil
	}
	return clone(b.Tactics[i].Keywords)
}

// Slides returns the slide list for a tactic, using the narrower basic map
// when basic is set.
func (b *Base) Slides(tactic string, basic bool) []int {
	i, ok := b.byName[tactic]
	if !ok {
		return nil
	}
	if basic {
		return clone(b.Tactics[i].BasicSlides)
	}
	return clone(b.Tactics[i].Slides)
}

// Core returns the slides every selection starts from.
func (b *Base) Core() []int {
	return clone(b.CoreSlides)
}

// clone returns a copy so callers cannot modify the base.
func clone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
