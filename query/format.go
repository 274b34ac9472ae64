package query

import (
	"fmt"

	"github.com/flosch/pongo2"
)

// DefaultTemplate prints one line per available representation.
const DefaultTemplate = `{% if name %}Color: {{ name }}
{% endif %}RGB: {{ rgb }}
{% if hex %}HEX: {{ hex }}
{% endif %}{% if hsv %}HSV: {{ hsv.h }}°, {{ hsv.s }}%, {{ hsv.v }}%
{% endif %}{% if cmyk %}CMYK: {{ cmyk.c }}%, {{ cmyk.m }}%, {{ cmyk.y }}%, {{ cmyk.k }}%
{% endif %}{% if lab %}LAB: {{ lab.l }}, {{ lab.a }}, {{ lab.b }}
{% endif %}`

// Context flattens res into template variables: name, source, distance,
// rgb, r, g, b, hex, hsv.{h,s,v}, cmyk.{c,m,y,k} and lab.{l,a,b}. Numbers
// are rounded for display.
func Context(res *Result) pongo2.Context {
	ctx := pongo2.Context{
		"rgb": res.RGB.String(),
		"r":   int(res.RGB.R),
		"g":   int(res.RGB.G),
		"b":   int(res.RGB.B),
		"hex": res.Hex,
	}

	if res.Name != nil {
		ctx["name"] = res.Name.Text
		ctx["source"] = string(res.Name.Source)
		ctx["distance"] = fmt.Sprintf("%.2f", res.Name.Distance)
	}
	if res.HSV != nil {
		h, s, v := res.HSV.Display()
		ctx["hsv"] = map[string]interface{}{"h": h, "s": s, "v": v}
	}
	if res.CMYK != nil {
		c, m, y, k := res.CMYK.Percent()
		ctx["cmyk"] = map[string]interface{}{"c": c, "m": m, "y": y, "k": k}
	}
	if res.Lab != nil {
		ctx["lab"] = map[string]interface{}{
			"l": fmt.Sprintf("%.2f", res.Lab[0]),
			"a": fmt.Sprintf("%.2f", res.Lab[1]),
			"b": fmt.Sprintf("%.2f", res.Lab[2]),
		}
	}

	return ctx
}

// Format renders res with a pongo2 template string. An empty tpl uses
// DefaultTemplate. Output is plain text, so autoescaping is off.
func Format(res *Result, tpl string) (string, error) {
	if tpl == "" {
		tpl = DefaultTemplate
	}

	t, e := pongo2.FromString("{% autoescape off %}" + tpl + "{% endautoescape %}")
	if e != nil {
		return "", fmt.Errorf("parsing template: %w", e)
	}

	return t.Execute(Context(res))
}
