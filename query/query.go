// Package query answers "what is this color" for a single RGB sample,
// computing only the representations a caller asks for.
package query

import (
	"fmt"
	"strings"

	"github.com/mmuldo/colorpick/colorspace"
	"github.com/mmuldo/colorpick/palette"
)

// Field selects a representation.
type Field uint

const (
	FieldHex Field = 1 << iota
	FieldHSV
	FieldCMYK
	FieldName
	FieldLab

	FieldAll = FieldHex | FieldHSV | FieldCMYK | FieldName | FieldLab
)

var fieldNames = map[string]Field{
	"hex":  FieldHex,
	"hsv":  FieldHSV,
	"cmyk": FieldCMYK,
	"name": FieldName,
	"lab":  FieldLab,
	"all":  FieldAll,
}

// ParseFields reads a comma separated list such as "hex,hsv". An empty
// string selects every field.
func ParseFields(s string) (Field, error) {
	if strings.TrimSpace(s) == "" {
		return FieldAll, nil
	}

	var f Field
	for _, part := range strings.Split(s, ",") {
		v, ok := fieldNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return 0, fmt.Errorf("unknown field %q", part)
		}
		f |= v
	}
	return f, nil
}

// Result holds the requested representations of one sample. Fields that
// were not requested are nil or empty.
type Result struct {
	RGB  colorspace.RGB   `json:"rgb"`
	Hex  string           `json:"hex,omitempty"`
	HSV  *colorspace.HSV  `json:"hsv,omitempty"`
	CMYK *colorspace.CMYK `json:"cmyk,omitempty"`
	Lab  []float64        `json:"lab,omitempty"`
	Name *palette.Name    `json:"name,omitempty"`
}

// Describer computes Results. Its Namer is only consulted for FieldName.
type Describer struct {
	namer *palette.Namer
}

// NewDescriber returns a Describer naming colors with n. n may be nil if
// names are never requested.
func NewDescriber(n *palette.Namer) *Describer {
	return &Describer{namer: n}
}

// Describe clamps (r, g, b) and fills in the fields selected by f. Naming
// errors, including palette.ErrNoReferenceData, are returned as is.
func (d *Describer) Describe(r, g, b int, f Field) (*Result, error) {
	return d.DescribeRGB(colorspace.NewRGB(r, g, b), f)
}

// DescribeRGB is Describe for an already built sample.
func (d *Describer) DescribeRGB(c colorspace.RGB, f Field) (*Result, error) {
	res := &Result{RGB: c}

	if f&FieldHex != 0 {
		res.Hex = c.Hex()
	}
	if f&FieldHSV != 0 {
		hsv := c.HSV()
		res.HSV = &hsv
	}
	if f&FieldCMYK != 0 {
		cmyk := c.CMYK()
		res.CMYK = &cmyk
	}
	if f&FieldLab != 0 {
		lab := c.Lab()
		res.Lab = []float64{lab[0], lab[1], lab[2]}
	}
	if f&FieldName != 0 {
		if d.namer == nil {
			return nil, palette.ErrNoReferenceData
		}
		name, err := d.namer.Name(c)
		if err != nil {
			return nil, fmt.Errorf("naming %s: %w", c.Hex(), err)
		}
		res.Name = &name
	}

	return res, nil
}
