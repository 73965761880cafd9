// Package script classifies text that mixes the Latin and Shavian spellings
// of English. It maps runes to a script, finds word boundaries by grapheme
// cluster, and tags each word span with the script whose dictionary should
// check it.
package script

import "github.com/rivo/uniseg"

// Script identifies which writing system a rune or word belongs to.
type Script int

const (
	// Neutral runes neither start a word nor pick a dictionary.
	Neutral Script = iota
	// Latin covers the ASCII letter ranges.
	Latin
	// Shavian covers the Shavian Unicode block.
	Shavian
)

func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Shavian:
		return "shavian"
	}
	return "neutral"
}

// The Shavian block sits outside the BMP, so every letter is a surrogate
// pair in UTF-16 hosts and four bytes in UTF-8.
const (
	shavianFirst = rune(0x10450)
	shavianLast  = rune(0x1047F)

	// namerDot is U+00B7 MIDDLE DOT, the Shavian proper-noun marker.
	namerDot = '·'
)

// Classify maps a single rune to its script.
func Classify(r rune) Script {
	switch {
	case r >= shavianFirst && r <= shavianLast:
		return Shavian
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return Latin
	}
	return Neutral
}

// IsJoiner reports whether r may start or extend a word without determining
// its script: the hyphen in compounds and the namer dot prefixed to proper
// nouns. Joiner membership is independent of Classify.
func IsJoiner(r rune) bool {
	return r == '-' || r == namerDot
}

// Of returns the script of a whole word. A word containing any Shavian rune
// is Shavian even when the rest of it is Latin; hybrid tokens route to the
// Shavian dictionary rather than being split.
func Of(word string) Script {
	for _, r := range word {
		if Classify(r) == Shavian {
			return Shavian
		}
	}
	return Latin
}

// Span is one word found in a buffer: a half-open byte-offset range, the
// substring it covers, and the script whose dictionary should check it.
type Span struct {
	Start  int
	End    int
	Text   string
	Script Script
}

// None is the span returned when no word is found.
var None = Span{Start: -1, End: -1}

// NextWord scans buf from byte offset from and returns the next word span.
// The scan walks grapheme clusters, not runes, so combining marks never
// split a word. A cluster starts or extends a word when its leading rune is
// a Latin or Shavian letter or a joiner; anything else ends the word.
// Calling NextWord again with the returned End enumerates every word in the
// buffer exactly once.
func NextWord(buf string, from int) (Span, bool) {
	if from < 0 {
		from = 0
	}
	if from >= len(buf) {
		return None, false
	}
	gr := uniseg.NewGraphemes(buf[from:])
	start := -1
	end := from
	for gr.Next() {
		a, b := gr.Positions()
		lead := gr.Runes()[0]
		forming := Classify(lead) != Neutral || IsJoiner(lead)
		if start < 0 {
			if !forming {
				continue
			}
			start = from + a
			end = from + b
			continue
		}
		if !forming {
			break
		}
		end = from + b
	}
	if start < 0 {
		return None, false
	}
	text := buf[start:end]
	return Span{Start: start, End: end, Text: text, Script: Of(text)}, true
}

// Words returns every word span in buf, in buffer order.
func Words(buf string) []Span {
	var spans []Span
	for from := 0; ; {
		w, ok := NextWord(buf, from)
		if !ok {
			return spans
		}
		spans = append(spans, w)
		from = w.End
	}
}
