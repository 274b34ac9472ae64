// Package palette holds reference tables of named colors and finds the
// entry closest to a sample under a Delta-E metric.
//
// A Palette never changes after construction and can be shared between
// goroutines without locking. Build a fresh one with New, Load or LoadFile
// for every independent use.
package palette

import (
	"sort"

	"github.com/jkl1337/go-chromath"
	"golang.org/x/image/colornames"

	"github.com/mmuldo/colorpick/colorspace"
)

// Entry is one named reference color.
type Entry struct {
	Name string         `json:"name"`
	RGB  colorspace.RGB `json:"rgb"`
}

// Palette is an ordered, read-only set of entries with their Lab values
// precomputed.
type Palette struct {
	entries []Entry
	labs    []chromath.Lab
	refLabs []chromath.Lab
}

// New copies entries into a Palette, keeping their order.
func New(entries []Entry) *Palette {
	p := &Palette{
		entries: make([]Entry, len(entries)),
		labs:    make([]chromath.Lab, len(entries)),
		refLabs: make([]chromath.Lab, len(entries)),
	}
	copy(p.entries, entries)
	for i, e := range p.entries {
		p.labs[i] = e.RGB.Lab()
		p.refLabs[i] = e.RGB.ReferenceLab()
	}
	return p
}

// Builtin returns the SVG 1.1 named colors sorted by name.
func Builtin() *Palette {
	names := make([]string, 0, len(colornames.Map))
	for name := range colornames.Map {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]Entry, len(names))
	for i, name := range names {
		c := colornames.Map[name]
		entries[i] = Entry{Name: name, RGB: colorspace.RGB{R: c.R, G: c.G, B: c.B}}
	}
	return New(entries)
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Entry returns the i-th entry in load order.
func (p *Palette) Entry(i int) Entry {
	return p.entries[i]
}

// Entries returns a copy of all entries in load order.
func (p *Palette) Entries() []Entry {
	if p == nil {
		return nil
	}
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}
