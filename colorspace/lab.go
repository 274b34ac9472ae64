package colorspace

import (
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

// D65 white point used to normalize XYZ before the Lab transform.
const (
	whiteX = 0.95047
	whiteZ = 1.08883
)

var (
	// for ReferenceLab
	rgb2Xyz = chromath.NewRGBTransformer(&chromath.SpaceSRGB, nil, nil, &chromath.Scaler8bClamping, 1.0, nil)
	lab2Xyz = chromath.NewLabTransformer(&chromath.IlluminantRefD65)
	klch    = &deltae.KLChDefault
)

// Lab converts the sample to CIE L*a*b* relative to D65.
//
// Channels are linearized with a power of 2.2 above 0.04045 and a slope of
// 1/12.92 below it. This is an approximation of the sRGB curve and is kept
// as is so distances stay reproducible; ReferenceLab uses the exact curve.
// The two segments do not meet, so L dips once on the gray axis between
// channel values 10 and 11.
func (c RGB) Lab() chromath.Lab {
	r, g, b := c.normalized()
	r, g, b = linearize(r), linearize(g), linearize(b)

	x := r*0.4124 + g*0.3576 + b*0.1805
	y := r*0.2126 + g*0.7152 + b*0.0722
	z := r*0.0193 + g*0.1192 + b*0.9505

	fx := labF(x / whiteX)
	fy := labF(y)
	fz := labF(z / whiteZ)

	return chromath.Lab{
		math.Max(0, 116*fy-16),
		500 * (fx - fy),
		200 * (fy - fz),
	}
}

// ToLAB is NewRGB(r, g, b).Lab().
func ToLAB(r, g, b int) chromath.Lab {
	return NewRGB(r, g, b).Lab()
}

// ReferenceLab converts the sample with go-chromath's sRGB companding and
// D65 Lab transform.
func (c RGB) ReferenceLab() chromath.Lab {
	rgb := chromath.RGB{float64(c.R), float64(c.G), float64(c.B)}
	xyz := rgb2Xyz.Convert(rgb)
	return lab2Xyz.Invert(xyz)
}

// DeltaE76 is the Euclidean distance between two Lab colors.
func DeltaE76(a, b chromath.Lab) float64 {
	dl := a[0] - b[0]
	da := a[1] - b[1]
	db := a[2] - b[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE2000 is the CIEDE2000 difference with default weighting.
func DeltaE2000(a, b chromath.Lab) float64 {
	return deltae.CIE2000(a, b, klch)
}

func linearize(v float64) float64 {
	if v > 0.04045 {
		return math.Pow(v, 2.2)
	}
	return v / 12.92
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}
