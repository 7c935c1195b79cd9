package highlight

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Span styles the byte range [Start, End) of the highlighted text.
type Span struct {
	Start, End int
	Fg         string // "#rrggbb", empty for the default colour
	Bold       bool
	Italic     bool
	Underline  bool
}

// ---------------------------------------------------------------------------
// Span cache (global, shared across fields)
// ---------------------------------------------------------------------------

var (
	spanCache   = make(map[string][]Span)
	spanCacheMu sync.RWMutex
)

// Spans tokenises text with the Chroma lexer for language and returns one
// span per token, styled from theme. Spans are clamped to len(text) and
// cover it in order. Unknown languages yield nil.
func Spans(text, language, theme string) []Span {
	if language == "" || text == "" {
		return nil
	}
	key := language + ":" + theme + ":" + text
	spanCacheMu.RLock()
	if v, ok := spanCache[key]; ok {
		spanCacheMu.RUnlock()
		return v
	}
	spanCacheMu.RUnlock()

	spans := tokenise(text, language, theme)

	spanCacheMu.Lock()
	if len(spanCache) > 2000 {
		spanCache = make(map[string][]Span)
	}
	spanCache[key] = spans
	spanCacheMu.Unlock()
	return spans
}

func tokenise(text, language, theme string) []Span {
	lex := lexers.Get(language)
	if lex == nil {
		return nil
	}
	lex = chroma.Coalesce(lex)
	sty := styles.Get(theme)
	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return nil
	}

	var spans []Span
	pos := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		if pos >= len(text) {
			break
		}
		end := min(pos+len(tok.Value), len(text))
		e := sty.Get(tok.Type)
		sp := Span{
			Start:     pos,
			End:       end,
			Bold:      e.Bold == chroma.Yes,
			Italic:    e.Italic == chroma.Yes,
			Underline: e.Underline == chroma.Yes,
		}
		if e.Colour.IsSet() {
			sp.Fg = e.Colour.String()
		}
		spans = append(spans, sp)
		pos = end
	}
	return spans
}

// At returns the span covering offset, using a hint index to make in-order
// scans cheap. It returns the span and the index to pass as the next hint.
func At(spans []Span, offset, hint int) (Span, int, bool) {
	if hint < 0 || hint >= len(spans) || spans[hint].Start > offset {
		hint = 0
	}
	for i := hint; i < len(spans); i++ {
		if offset >= spans[i].Start && offset < spans[i].End {
			return spans[i], i, true
		}
		if spans[i].Start > offset {
			break
		}
	}
	return Span{}, hint, false
}
