package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jkl1337/go-chromath"

	"github.com/mmuldo/colorpick/colorspace"
)

// ErrNoReferenceData is returned when matching against an empty palette.
var ErrNoReferenceData = errors.New("palette: no reference data")

// Metric selects the color difference formula.
type Metric int

const (
	// MetricCIE76 is Euclidean distance in Lab.
	MetricCIE76 Metric = iota
	// MetricCIEDE2000 is the CIEDE2000 difference.
	MetricCIEDE2000
)

func (m Metric) String() string {
	switch m {
	case MetricCIE76:
		return "cie76"
	case MetricCIEDE2000:
		return "ciede2000"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric accepts "cie76" or "ciede2000" in any case.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "cie76", "de76":
		return MetricCIE76, nil
	case "ciede2000", "cie2000", "de2000":
		return MetricCIEDE2000, nil
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// Match is the result of a nearest-entry search.
type Match struct {
	Entry    Entry
	Index    int
	Distance float64
}

// Matcher finds the nearest palette entry to a sample.
type Matcher struct {
	palette   *Palette
	metric    Metric
	reference bool
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithMetric sets the difference formula. The default is MetricCIE76.
func WithMetric(m Metric) MatcherOption {
	return func(mt *Matcher) { mt.metric = m }
}

// WithReferenceLab compares colors using colorspace.RGB.ReferenceLab
// instead of the default approximation.
func WithReferenceLab() MatcherOption {
	return func(mt *Matcher) { mt.reference = true }
}

// NewMatcher returns a Matcher over p. A nil palette behaves as empty.
func NewMatcher(p *Palette, opts ...MatcherOption) *Matcher {
	if p == nil {
		p = New(nil)
	}
	m := &Matcher{palette: p}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Palette returns the palette being searched.
func (m *Matcher) Palette() *Palette {
	return m.palette
}

// Closest scans every entry and returns the one with the smallest distance
// to c. Ties go to the entry loaded first.
func (m *Matcher) Closest(c colorspace.RGB) (Match, error) {
	if m.palette.Len() == 0 {
		return Match{}, ErrNoReferenceData
	}

	labs := m.palette.labs
	query := c.Lab()
	if m.reference {
		labs = m.palette.refLabs
		query = c.ReferenceLab()
	}

	best := Match{Index: -1}
	for i, lab := range labs {
		d := m.distance(query, lab)
		if best.Index < 0 || d < best.Distance {
			best = Match{Entry: m.palette.entries[i], Index: i, Distance: d}
		}
	}
	return best, nil
}

// ClosestName returns the name of the entry nearest to (r, g, b).
func (m *Matcher) ClosestName(r, g, b int) (string, error) {
	match, err := m.Closest(colorspace.NewRGB(r, g, b))
	if err != nil {
		return "", err
	}
	return match.Entry.Name, nil
}

func (m *Matcher) distance(a, b chromath.Lab) float64 {
	if m.metric == MetricCIEDE2000 {
		return colorspace.DeltaE2000(a, b)
	}
	return colorspace.DeltaE76(a, b)
}
