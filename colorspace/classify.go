package colorspace

// Names returned by Classify.
const (
	Black   = "Black"
	White   = "White"
	Gray    = "Gray"
	Red     = "Red"
	Orange  = "Orange"
	Yellow  = "Yellow"
	Lime    = "Lime"
	Green   = "Green"
	Teal    = "Teal"
	Cyan    = "Cyan"
	SkyBlue = "Sky Blue"
	Blue    = "Blue"
	Purple  = "Purple"
	Magenta = "Magenta"
	Pink    = "Pink"
)

// hue bands, upper bound exclusive, in degrees
var hueBands = []struct {
	limit float64
	name  string
}{
	{15, Red},
	{45, Orange},
	{70, Yellow},
	{100, Lime},
	{150, Green},
	{170, Teal},
	{195, Cyan},
	{220, SkyBlue},
	{255, Blue},
	{285, Purple},
	{320, Magenta},
	{345, Pink},
}

// Classify returns a coarse color name without consulting a palette.
// Saturation and value are compared on a 0-255 scale.
func (c RGB) Classify() string {
	hsv := c.HSV()
	s, v := hsv.S*255, hsv.V*255

	switch {
	case v < 20:
		return Black
	case v > 230 && s < 30:
		return White
	case s < 30 && v > 100:
		return Gray
	}

	for _, band := range hueBands {
		if hsv.H < band.limit {
			return band.name
		}
	}
	return Red
}

// Classify is NewRGB(r, g, b).Classify().
func Classify(r, g, b int) string {
	return NewRGB(r, g, b).Classify()
}
