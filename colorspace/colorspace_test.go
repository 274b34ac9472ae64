package colorspace

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestHex(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{255, 165, 0, "#ffa500"},
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#ffffff"},
		{1, 2, 3, "#010203"},
		{-10, 300, 128, "#00ff80"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ToHex(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("ToHex(%d,%d,%d) = %s, want %s", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestHex_RoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 5 {
		for g := 0; g < 256; g += 7 {
			for b := 0; b < 256; b += 11 {
				hex := ToHex(r, g, b)
				var pr, pg, pb int
				if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &pr, &pg, &pb); err != nil {
					t.Fatalf("Sscanf(%s): %v", hex, err)
				}
				if pr != r || pg != g || pb != b {
					t.Fatalf("%s parsed to (%d,%d,%d), want (%d,%d,%d)", hex, pr, pg, pb, r, g, b)
				}
				c, err := Parse(hex)
				if err != nil {
					t.Fatalf("Parse(%s): %v", hex, err)
				}
				if c != NewRGB(r, g, b) {
					t.Fatalf("Parse(%s) = %+v", hex, c)
				}
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#ffa500", RGB{255, 165, 0}, false},
		{"FFA500", RGB{255, 165, 0}, false},
		{"#fff", RGB{255, 255, 255}, false},
		{"220, 20, 60", RGB{220, 20, 60}, false},
		{"300,-4,12", RGB{255, 0, 12}, false},
		{"", RGB{}, true},
		{"1,2", RGB{}, true},
		{"a,b,c", RGB{}, true},
		{"#12345", RGB{}, true},
		{"#gggggg", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrBadColor) {
					t.Errorf("Parse(%q) error = %v, want ErrBadColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    HSV
	}{
		{"black", 0, 0, 0, HSV{0, 0, 0}},
		{"white", 255, 255, 255, HSV{0, 0, 1}},
		{"red", 255, 0, 0, HSV{0, 1, 1}},
		{"green", 0, 255, 0, HSV{120, 1, 1}},
		{"blue", 0, 0, 255, HSV{240, 1, 1}},
		{"magenta", 255, 0, 255, HSV{300, 1, 1}},
		{"orange", 255, 165, 0, HSV{38.8235, 1, 1}},
		{"gray", 128, 128, 128, HSV{0, 0, 128.0 / 255.0}},
		{"near gray", 130, 128, 128, HSV{0, 2.0 / 130.0, 130.0 / 255.0}},
		{"rose", 255, 0, 128, HSV{329.8824, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToHSV(tt.r, tt.g, tt.b)
			if !near(got.H, tt.want.H, 0.001) || !near(got.S, tt.want.S, 1e-9) || !near(got.V, tt.want.V, 1e-9) {
				t.Errorf("ToHSV(%d,%d,%d) = %+v, want %+v", tt.r, tt.g, tt.b, got, tt.want)
			}
			if got.H < 0 || got.H >= 360 {
				t.Errorf("hue %f outside [0,360)", got.H)
			}
		})
	}
}

func TestHSV_Display(t *testing.T) {
	h, s, v := ToHSV(255, 165, 0).Display()
	if h != 39 || s != 100 || v != 100 {
		t.Errorf("Display() = (%d,%d,%d), want (39,100,100)", h, s, v)
	}

	h, _, _ = HSV{H: 359.7, S: 1, V: 1}.Display()
	if h != 0 {
		t.Errorf("hue 359.7 displayed as %d, want 0", h)
	}
}

func TestCMYK(t *testing.T) {
	tests := []struct {
		name       string
		r, g, b    int
		c, m, y, k int
	}{
		{"black", 0, 0, 0, 0, 0, 0, 100},
		{"white", 255, 255, 255, 0, 0, 0, 0},
		{"red", 255, 0, 0, 0, 100, 100, 0},
		{"orange", 255, 165, 0, 0, 35, 100, 0},
		{"crimson", 220, 20, 60, 0, 91, 73, 14},
		{"gray", 128, 128, 128, 0, 0, 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m, y, k := ToCMYK(tt.r, tt.g, tt.b).Percent()
			if c != tt.c || m != tt.m || y != tt.y || k != tt.k {
				t.Errorf("ToCMYK(%d,%d,%d) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					tt.r, tt.g, tt.b, c, m, y, k, tt.c, tt.m, tt.y, tt.k)
			}
		})
	}
}

func TestCMYK_Black(t *testing.T) {
	got := ToCMYK(0, 0, 0)
	if got != (CMYK{K: 1}) {
		t.Errorf("ToCMYK(0,0,0) = %+v, want {0 0 0 1}", got)
	}
}

func TestLab_KnownColors(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  int
		l, a, bb float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 100, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lab := ToLAB(tt.r, tt.g, tt.b)
			// the approximate matrix rows do not sum exactly to the white point
			if !near(lab.L(), tt.l, 0.1) || !near(lab[1], tt.a, 0.5) || !near(lab[2], tt.bb, 0.5) {
				t.Errorf("ToLAB(%d,%d,%d) = %v, want (%.1f,%.1f,%.1f)", tt.r, tt.g, tt.b, lab, tt.l, tt.a, tt.bb)
			}
		})
	}
}

func TestLab_Red(t *testing.T) {
	lab := ToLAB(255, 0, 0)
	if !near(lab.L(), 53.24, 0.05) {
		t.Errorf("L = %f, want ~53.24", lab.L())
	}
	if lab[1] <= 70 || lab[2] <= 60 {
		t.Errorf("red should be strongly positive in a and b, got %v", lab)
	}
}

func TestLab_GrayAxisMonotonic(t *testing.T) {
	// the linear and power segments meet between channel values 10 and 11
	segments := [][2]int{{0, 10}, {11, 255}}
	for _, seg := range segments {
		prev := -1.0
		for v := seg[0]; v <= seg[1]; v++ {
			l := ToLAB(v, v, v).L()
			if l < 0 {
				t.Fatalf("L(%d) = %f is negative", v, l)
			}
			if l <= prev {
				t.Fatalf("L not increasing at %d: %f <= %f", v, l, prev)
			}
			prev = l
		}
	}

	black, mid, white := ToLAB(0, 0, 0).L(), ToLAB(128, 128, 128).L(), ToLAB(255, 255, 255).L()
	if !(black < mid && mid < white) {
		t.Errorf("L(black)=%f L(gray)=%f L(white)=%f not ordered", black, mid, white)
	}
}

func TestReferenceLab_GrayAxisMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for v := 0; v <= 255; v += 15 {
		l := NewRGB(v, v, v).ReferenceLab().L()
		if l <= prev {
			t.Fatalf("reference L not increasing at %d: %f <= %f", v, l, prev)
		}
		prev = l
	}
}

func TestDeltaE76(t *testing.T) {
	samples := []RGB{
		{220, 20, 60},
		{34, 139, 34},
		{0, 0, 0},
		{255, 255, 255},
		{12, 200, 180},
	}

	for _, a := range samples {
		la := a.Lab()
		if d := DeltaE76(la, la); d != 0 {
			t.Errorf("distance(%v,%v) = %f, want 0", a, a, d)
		}
		for _, b := range samples {
			lb := b.Lab()
			if DeltaE76(la, lb) != DeltaE76(lb, la) {
				t.Errorf("distance not symmetric for %v and %v", a, b)
			}
		}
	}

	if d := DeltaE76(ToLAB(0, 0, 0), ToLAB(255, 255, 255)); !near(d, 100, 1) {
		t.Errorf("black-white distance = %f, want ~100", d)
	}
}

func TestDeltaE2000_Identity(t *testing.T) {
	lab := ToLAB(220, 20, 60)
	if d := DeltaE2000(lab, lab); !near(d, 0, 1e-9) {
		t.Errorf("DeltaE2000(x,x) = %f, want 0", d)
	}
	if d := DeltaE2000(lab, ToLAB(34, 139, 34)); d <= 0 {
		t.Errorf("DeltaE2000 of different colors = %f, want > 0", d)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{0, 0, 0, Black},
		{10, 15, 12, Black},
		{255, 255, 255, White},
		{240, 238, 236, White},
		{128, 128, 128, Gray},
		{255, 0, 0, Red},
		{255, 120, 0, Orange},
		{255, 255, 0, Yellow},
		{128, 255, 0, Lime},
		{0, 255, 0, Green},
		{0, 255, 170, Teal},
		{0, 255, 255, Cyan},
		{0, 170, 255, SkyBlue},
		{0, 0, 255, Blue},
		{128, 0, 255, Purple},
		{230, 0, 255, Magenta},
		{255, 0, 170, Pink},
		{255, 0, 40, Red},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Classify(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("Classify(%d,%d,%d) = %s, want %s (hsv %+v)",
					tt.r, tt.g, tt.b, got, tt.want, ToHSV(tt.r, tt.g, tt.b))
			}
		})
	}
}
