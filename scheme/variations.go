// Package scheme derives related colors from a sample: a complementary
// color, two analogous colors and simulations of color vision deficiencies.
package scheme

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mmuldo/colorpick/colorspace"
)

// Hue offsets in degrees.
const (
	complementaryShift = 180
	analogousShift     = 60
)

// Variations holds a base color and the colors derived from it.
type Variations struct {
	Base          colorspace.RGB `json:"base"`
	Complementary colorspace.RGB `json:"complementary"`
	Analogous1    colorspace.RGB `json:"analogous1"`
	Analogous2    colorspace.RGB `json:"analogous2"`
}

// Generate rotates the hue of c, keeping saturation and value.
func Generate(c colorspace.RGB) Variations {
	hsv := c.HSV()
	return Variations{
		Base:          c,
		Complementary: rotate(hsv, complementaryShift),
		Analogous1:    rotate(hsv, analogousShift),
		Analogous2:    rotate(hsv, -analogousShift),
	}
}

func rotate(hsv colorspace.HSV, deg float64) colorspace.RGB {
	h := math.Mod(hsv.H+deg, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, hsv.S, hsv.V).RGB255()
	return colorspace.RGB{R: r, G: g, B: b}
}

// Deficiency is a kind of dichromatic color vision.
type Deficiency int

const (
	Protanopia Deficiency = iota
	Deuteranopia
	Tritanopia
)

// Deficiencies lists every supported Deficiency.
var Deficiencies = []Deficiency{Protanopia, Deuteranopia, Tritanopia}

func (d Deficiency) String() string {
	switch d {
	case Protanopia:
		return "protanopia"
	case Deuteranopia:
		return "deuteranopia"
	case Tritanopia:
		return "tritanopia"
	default:
		return fmt.Sprintf("Deficiency(%d)", int(d))
	}
}

// ParseDeficiency accepts the lowercase names returned by String.
func ParseDeficiency(s string) (Deficiency, error) {
	for _, d := range Deficiencies {
		if strings.EqualFold(strings.TrimSpace(s), d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown color vision deficiency %q", s)
}

// Simulate approximates how c looks with deficiency d. The blend weights
// are empirical; channels a deficiency does not mix are passed through.
func Simulate(c colorspace.RGB, d Deficiency) colorspace.RGB {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)

	switch d {
	case Protanopia:
		r, g = 0.567*r+0.433*g, 0.558*r+0.442*g
	case Deuteranopia:
		r, g = 0.625*r+0.375*g, 0.7*r+0.3*g
	case Tritanopia:
		g, b = 0.95*g+0.05*b, 0.433*g+0.567*b
	}

	return colorspace.NewRGB(round(r), round(g), round(b))
}

func round(f float64) int {
	return int(math.Round(f))
}
