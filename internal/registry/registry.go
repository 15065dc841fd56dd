// Package registry is the static, versioned question bank. It is loaded
// once at process start and read-only afterwards; construction fails on
// duplicate codes or malformed interpretation ranges.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/steadypath/backend/internal/domain/questionnaire"
)

// ErrUnknownTest is returned by Lookup for codes not in the bank.
var ErrUnknownTest = errors.New("unknown test code")

type Registry struct {
	byCode  map[string]*questionnaire.Definition
	byLevel map[questionnaire.Level][]*questionnaire.Definition
}

// New builds and validates the full catalog.
func New() (*Registry, error) {
	r := &Registry{
		byCode:  make(map[string]*questionnaire.Definition),
		byLevel: make(map[questionnaire.Level][]*questionnaire.Definition),
	}

	var defs []*questionnaire.Definition
	defs = append(defs, onboardingTests()...)
	defs = append(defs, dailyTests()...)
	defs = append(defs, weeklyTests()...)
	defs = append(defs, eventTests()...)

	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		if _, dup := r.byCode[d.Code]; dup {
			return nil, fmt.Errorf("registry: duplicate test code %s", d.Code)
		}
		r.byCode[d.Code] = d
		r.byLevel[d.Level] = append(r.byLevel[d.Level], d)
	}
	return r, nil
}

// Lookup resolves a test by code across all levels.
func (r *Registry) Lookup(code string) (*questionnaire.Definition, error) {
	d, ok := r.byCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTest, code)
	}
	return d, nil
}

// ListByLevel returns definitions of one level in registration order.
func (r *Registry) ListByLevel(level questionnaire.Level) []*questionnaire.Definition {
	return r.byLevel[level]
}

// Len returns the number of registered definitions.
func (r *Registry) Len() int {
	return len(r.byCode)
}

// ContainsCrisisLanguage reports whether a free-text note matches any
// configured crisis keyword (case-insensitive substring match).
func ContainsCrisisLanguage(note string) bool {
	if note == "" {
		return false
	}
	lower := strings.ToLower(note)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
