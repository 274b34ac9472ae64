// Package colorspace converts a single 8-bit RGB sample into the other
// representations colorpick reports (hex, HSV, CMYK and CIE LAB) and names
// it with a palette-free heuristic.
//
// Every function here is a pure function of its arguments. Channel values
// outside [0,255] are clamped, never rejected.
package colorspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned by Parse for text that is neither hex nor an r,g,b triple.
var ErrBadColor = errors.New("colorspace: unrecognized color")

// RGB is an 8-bit sRGB sample.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Clamp limits v to a valid channel value.
func Clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// NewRGB builds a sample from integer channels, clamping each into [0,255].
func NewRGB(r, g, b int) RGB {
	return RGB{Clamp(r), Clamp(g), Clamp(b)}
}

// Hex formats the sample as "#rrggbb" with lowercase digits.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// normalized returns the channels scaled to [0,1].
func (c RGB) normalized() (r, g, b float64) {
	return float64(c.R) / 255.0, float64(c.G) / 255.0, float64(c.B) / 255.0
}

// ToHex is NewRGB(r, g, b).Hex().
func ToHex(r, g, b int) string {
	return NewRGB(r, g, b).Hex()
}

// Parse reads a color given as "#rrggbb", "#rgb" (the leading '#' is
// optional) or as a comma separated "r,g,b" triple. Triple channels are
// clamped like NewRGB.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, ErrBadColor
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return RGB{}, fmt.Errorf("%w: %q needs three channels", ErrBadColor, s)
		}
		var ch [3]int
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return RGB{}, fmt.Errorf("%w: channel %q: %v", ErrBadColor, p, err)
			}
			ch[i] = v
		}
		return NewRGB(ch[0], ch[1], ch[2]), nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %v", ErrBadColor, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}
