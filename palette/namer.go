package palette

import (
	"errors"

	"github.com/mmuldo/colorpick/colorspace"
)

// Fallback decides what a Namer does when it has no reference data.
type Fallback int

const (
	// FallbackNone reports ErrNoReferenceData.
	FallbackNone Fallback = iota
	// FallbackHeuristic answers with colorspace.Classify.
	FallbackHeuristic
)

// Source tells where a name came from.
type Source string

const (
	SourcePalette   Source = "palette"
	SourceHeuristic Source = "heuristic"
)

// Name is a color name together with its origin. Distance is only set for
// palette names.
type Name struct {
	Text     string  `json:"name"`
	Source   Source  `json:"source"`
	Distance float64 `json:"distance,omitempty"`
}

// Namer names samples with a Matcher and an explicit fallback policy.
type Namer struct {
	matcher  *Matcher
	fallback Fallback
}

// NewNamer returns a Namer. The matcher may be nil, in which case only the
// heuristic can answer and only if fallback allows it.
func NewNamer(m *Matcher, fallback Fallback) *Namer {
	return &Namer{matcher: m, fallback: fallback}
}

// Name returns the best name for c.
func (n *Namer) Name(c colorspace.RGB) (Name, error) {
	if n.matcher != nil {
		match, err := n.matcher.Closest(c)
		if err == nil {
			return Name{Text: match.Entry.Name, Source: SourcePalette, Distance: match.Distance}, nil
		}
		if !errors.Is(err, ErrNoReferenceData) {
			return Name{}, err
		}
	}

	if n.fallback == FallbackHeuristic {
		return Name{Text: c.Classify(), Source: SourceHeuristic}, nil
	}
	return Name{}, ErrNoReferenceData
}
