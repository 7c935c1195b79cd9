// Package highlight provides syntax highlighting via Chroma, decoupled from any
// specific TUI component. It hands out token spans over the raw text rather
// than escape sequences, so painters can layer selection and cursor styles on
// top.
package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the chrome colour set of a Chroma theme: a grey ramp blended
// from background to foreground, plus two token colours. Values are #rrggbb.
type Palette struct {
	Bg, Fg string

	Border string // 10% toward Fg
	Dim    string // 25%: placeholder
	SelBg  string // 30%: selection background
	Muted  string // 45%: labels, status line

	Accent string // most saturated token colour
	Error  string // Error token, or Muted
}

var (
	defaultBg = colorful.Color{}
	defaultFg = colorful.Color{R: 0.784, G: 0.784, B: 0.784}
)

// ThemePalette derives the palette of a Chroma theme. The same theme always
// yields the same palette.
func ThemePalette(theme string) Palette {
	bg, fg := defaultBg, defaultFg
	sty := styles.Get(theme)
	if sty != nil {
		e := sty.Get(chroma.Background)
		bg = colourOr(e.Background, bg)
		fg = colourOr(e.Colour, fg)
	}
	mix := func(t float64) string { return bg.BlendRgb(fg, t).Clamped().Hex() }

	p := Palette{
		Bg:     bg.Hex(),
		Fg:     fg.Hex(),
		Border: mix(0.10),
		Dim:    mix(0.25),
		SelBg:  mix(0.30),
		Muted:  mix(0.45),
		Accent: fg.Hex(),
	}
	p.Error = p.Muted
	if sty == nil {
		return p
	}
	p.Accent = mostSaturated(sty, fg).Hex()
	if e := sty.Get(chroma.Error); e.Colour.IsSet() {
		p.Error = colour(e.Colour).Hex()
	}
	return p
}

// mostSaturated picks the most saturated token colour; ties go to the lower
// token type so the choice does not depend on map order.
func mostSaturated(sty *chroma.Style, def colorful.Color) colorful.Color {
	best, bestSat, bestType := def, 0.0, chroma.TokenType(0)
	for tt := range chroma.StandardTypes {
		e := sty.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		c := colour(e.Colour)
		_, sat, v := c.Hsv()
		if v == 0 || sat < bestSat || (sat == bestSat && (sat == 0 || tt > bestType)) {
			continue
		}
		best, bestSat, bestType = c, sat, tt
	}
	return best
}

func colour(c chroma.Colour) colorful.Color {
	col, _ := colorful.Hex(c.String())
	return col
}

func colourOr(c chroma.Colour, def colorful.Color) colorful.Color {
	if !c.IsSet() {
		return def
	}
	return colour(c)
}
