package colorspace

import "math"

// HSV holds hue in degrees [0,360) and saturation and value in [0,1].
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSV decomposes the sample using max/min/chroma on normalized floats.
// Achromatic samples get hue 0; black gets saturation 0.
func (c RGB) HSV() HSV {
	r, g, b := c.normalized()

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	chroma := max - min

	var h float64
	switch {
	case chroma == 0:
		h = 0
	case max == r:
		h = math.Mod(60*((g-b)/chroma)+360, 360)
	case max == g:
		h = math.Mod(60*((b-r)/chroma)+120, 360)
	default:
		h = math.Mod(60*((r-g)/chroma)+240, 360)
	}

	var s float64
	if max != 0 {
		s = chroma / max
	}

	return HSV{H: h, S: s, V: max}
}

// ToHSV is NewRGB(r, g, b).HSV().
func ToHSV(r, g, b int) HSV {
	return NewRGB(r, g, b).HSV()
}

// Display rounds to whole degrees and percentages. A hue that rounds up to
// 360 is reported as 0.
func (hsv HSV) Display() (h, s, v int) {
	h = int(math.Round(hsv.H)) % 360
	s = int(math.Round(hsv.S * 100))
	v = int(math.Round(hsv.V * 100))
	return h, s, v
}
