package scheme

import (
	"fmt"
	"io/ioutil"
	"sort"
	"strconv"

	"github.com/flosch/pongo2"

	"github.com/mmuldo/colorpick/colorspace"
)

// Theme maps template variables (color0, background, ...) to values.
type Theme map[string]interface{}

// Create builds a theme from v. Colors are numbered in the order base,
// complementary, analogous1, analogous2. Entries in opts override or extend
// the result.
func Create(v Variations, opts map[string]interface{}) Theme {
	t := make(Theme)

	for i, c := range []colorspace.RGB{v.Base, v.Complementary, v.Analogous1, v.Analogous2} {
		t["color"+strconv.Itoa(i)] = c.Hex()
	}

	for k, val := range opts {
		t[k] = val
	}

	setDefaults(t)

	return t
}

// Keys returns the theme's keys in sorted order.
func (t Theme) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render executes the pongo2 template at tplPath with the theme as its
// context and writes the result to outPath.
func Render(t Theme, tplPath, outPath string) error {
	tpl, e := pongo2.FromFile(tplPath)
	if e != nil {
		return fmt.Errorf("loading template: %w", e)
	}

	o, e := tpl.Execute(pongo2.Context(t))
	if e != nil {
		return fmt.Errorf("rendering %s: %w", tplPath, e)
	}

	e = ioutil.WriteFile(outPath, []byte(o), 0644)
	if e != nil {
		return e
	}

	return nil
}

func setDefaults(t Theme) {
	if _, ok := t["background"]; !ok {
		t["background"] = t["color0"]
	}

	if _, ok := t["transparency"]; !ok {
		t["transparency"] = 1.0
	}

	if _, ok := t["foreground"]; !ok {
		t["foreground"] = t["color1"]
	}
}
