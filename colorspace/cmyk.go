package colorspace

import "math"

// CMYK is a subtractive decomposition with every component in [0,1].
type CMYK struct {
	C float64 `json:"c"`
	M float64 `json:"m"`
	Y float64 `json:"y"`
	K float64 `json:"k"`
}

// CMYK computes k = 1-max(r,g,b) and the remaining inks relative to 1-k.
// Pure black has no ink besides k.
func (c RGB) CMYK() CMYK {
	r, g, b := c.normalized()

	k := 1 - math.Max(r, math.Max(g, b))
	if 1-k == 0 {
		return CMYK{K: k}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k),
		M: (1 - g - k) / (1 - k),
		Y: (1 - b - k) / (1 - k),
		K: k,
	}
}

// ToCMYK is NewRGB(r, g, b).CMYK().
func ToCMYK(r, g, b int) CMYK {
	return NewRGB(r, g, b).CMYK()
}

// Percent rounds each component to the nearest whole percentage.
func (cmyk CMYK) Percent() (c, m, y, k int) {
	return pct(cmyk.C), pct(cmyk.M), pct(cmyk.Y), pct(cmyk.K)
}

func pct(f float64) int {
	return int(math.Round(f * 100))
}
