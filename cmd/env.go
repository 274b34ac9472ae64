package cmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/mmuldo/colorpick/colorspace"
	"github.com/mmuldo/colorpick/palette"
)

// loadPalette builds the palette selected by the "palette" setting. An
// unreadable table is logged and replaced by an empty palette.
func loadPalette() (*palette.Palette, *palette.Report) {
	path := viper.GetString("palette")

	switch path {
	case "":
		p := palette.Builtin()
		return p, &palette.Report{Source: "builtin", Loaded: p.Len()}
	case "none":
		return palette.New(nil), &palette.Report{Source: "none"}
	}

	p, report, err := palette.LoadFile(path)
	if err != nil {
		log.Printf("palette unavailable: %v", err)
	}
	if viper.GetBool("verbose") {
		for _, rowErr := range report.Skipped {
			log.Printf("%s: skipped %v", path, rowErr)
		}
		log.Printf("%s: loaded %d colors", path, report.Loaded)
	}
	return p, report
}

func newMatcher(p *palette.Palette) (*palette.Matcher, error) {
	metric, err := palette.ParseMetric(viper.GetString("metric"))
	if err != nil {
		return nil, err
	}

	opts := []palette.MatcherOption{palette.WithMetric(metric)}
	switch mode := strings.ToLower(viper.GetString("lab")); mode {
	case "", "approx":
	case "reference":
		opts = append(opts, palette.WithReferenceLab())
	default:
		return nil, fmt.Errorf("unknown lab conversion %q", mode)
	}

	return palette.NewMatcher(p, opts...), nil
}

func newNamer() (*palette.Namer, error) {
	p, _ := loadPalette()
	m, err := newMatcher(p)
	if err != nil {
		return nil, err
	}

	fallback := palette.FallbackNone
	if viper.GetBool("fallback") {
		fallback = palette.FallbackHeuristic
	}
	return palette.NewNamer(m, fallback), nil
}

// parsePair reads "a<sep>b" as two integers.
func parsePair(s, sep string) (int, int, error) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%q: want two numbers separated by %q", s, sep)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %v", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %v", s, err)
	}
	return a, b, nil
}

func colorArg(args []string) (colorspace.RGB, error) {
	if len(args) == 0 {
		return colorspace.RGB{}, fmt.Errorf("missing color argument")
	}
	return colorspace.Parse(args[0])
}
