package script

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Script
	}{
		{'a', Latin},
		{'z', Latin},
		{'A', Latin},
		{'Z', Latin},
		{'𐑐', Shavian}, // U+10450, first letter of the block
		{'𐑿', Shavian}, // U+1047F, last letter of the block
		{'𐑖', Shavian},
		{' ', Neutral},
		{'3', Neutral},
		{',', Neutral},
		{'-', Neutral},
		{'·', Neutral},
		{'é', Neutral},
		{rune(0x1044F), Neutral}, // one below the Shavian block
		{rune(0x10480), Neutral}, // one above the Shavian block
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.r), "Classify(%q)", tt.r)
	}
}

func TestIsJoiner(t *testing.T) {
	assert.True(t, IsJoiner('-'))
	assert.True(t, IsJoiner('·'))
	assert.False(t, IsJoiner('a'))
	assert.False(t, IsJoiner('𐑖'))
	assert.False(t, IsJoiner(' '))
}

func TestOf(t *testing.T) {
	assert.Equal(t, Latin, Of("hello"))
	assert.Equal(t, Shavian, Of("𐑣𐑩𐑤𐑴"))
	// A single Shavian rune makes the whole word Shavian.
	assert.Equal(t, Shavian, Of("hel𐑤o"))
	assert.Equal(t, Shavian, Of("·𐑖𐑱𐑝"))
	assert.Equal(t, Latin, Of("·-"))
	assert.Equal(t, Latin, Of(""))
}

func TestNextWordLatin(t *testing.T) {
	w, ok := NextWord("  hello, world", 0)
	assert.True(t, ok)
	assert.Equal(t, Span{Start: 2, End: 7, Text: "hello", Script: Latin}, w)

	w, ok = NextWord("  hello, world", w.End)
	assert.True(t, ok)
	assert.Equal(t, "world", w.Text)
	assert.Equal(t, Latin, w.Script)

	_, ok = NextWord("  hello, world", w.End)
	assert.False(t, ok)
}

func TestNextWordShavianOffsets(t *testing.T) {
	// Each Shavian letter is four bytes in UTF-8; spans are byte offsets.
	buf := "𐑣𐑩𐑤𐑴 𐑢𐑻𐑤𐑛"
	w, ok := NextWord(buf, 0)
	assert.True(t, ok)
	assert.Equal(t, "𐑣𐑩𐑤𐑴", w.Text)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 16, w.End)
	assert.Equal(t, Shavian, w.Script)

	w, ok = NextWord(buf, w.End)
	assert.True(t, ok)
	assert.Equal(t, "𐑢𐑻𐑤𐑛", w.Text)
	assert.Equal(t, buf[w.Start:w.End], w.Text)
}

func TestNextWordEmptyAndNeutral(t *testing.T) {
	_, ok := NextWord("", 0)
	assert.False(t, ok)

	_, ok = NextWord("  ,;! 42 \t\n", 0)
	assert.False(t, ok)

	_, ok = NextWord("word", 99)
	assert.False(t, ok)
}

func TestNextWordHyphenCompound(t *testing.T) {
	// A hyphenated compound is one word span, not two.
	w, ok := NextWord("𐑢𐑧𐑤-𐑥𐑱𐑛 stuff", 0)
	assert.True(t, ok)
	assert.Equal(t, "𐑢𐑧𐑤-𐑥𐑱𐑛", w.Text)
	assert.Equal(t, Shavian, w.Script)

	w, ok = NextWord("well-made stuff", 0)
	assert.True(t, ok)
	assert.Equal(t, "well-made", w.Text)
	assert.Equal(t, Latin, w.Script)
}

func TestNextWordNamerDot(t *testing.T) {
	// The namer dot prefixes proper nouns and must start the word, so the
	// dictionary sees the dotted form it stores.
	w, ok := NextWord("𐑕𐑰 ·𐑖𐑱𐑝 𐑯𐑬", 0)
	assert.True(t, ok)
	assert.Equal(t, "𐑕𐑰", w.Text)

	w, ok = NextWord("𐑕𐑰 ·𐑖𐑱𐑝 𐑯𐑬", w.End)
	assert.True(t, ok)
	assert.Equal(t, "·𐑖𐑱𐑝", w.Text)
	assert.Equal(t, Shavian, w.Script)
}

func TestNextWordMixedScript(t *testing.T) {
	// A hybrid token containing even one Shavian letter routes to the
	// Shavian dictionary rather than splitting into two words.
	w, ok := NextWord("NASA𐑟 rocks", 0)
	assert.True(t, ok)
	assert.Equal(t, "NASA𐑟", w.Text)
	assert.Equal(t, Shavian, w.Script)
}

func TestWordsPartition(t *testing.T) {
	buf := "·𐑖𐑱𐑝 wrote: 𐑞 𐑐𐑤𐑱-𐑮𐑲𐑑𐑼'𐑟 work, 1950!"
	spans := Words(buf)
	var got []string
	for i, w := range spans {
		got = append(got, w.Text)
		assert.Equal(t, buf[w.Start:w.End], w.Text)
		if i > 0 {
			assert.GreaterOrEqual(t, w.Start, spans[i-1].End, "spans must not overlap")
		}
	}
	// The apostrophe is neutral and not a joiner, so it splits the word.
	want := []string{"·𐑖𐑱𐑝", "wrote", "𐑞", "𐑐𐑤𐑱-𐑮𐑲𐑑𐑼", "𐑟", "work"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Words mismatch (-want +got):\n%s", diff)
	}

	// Resuming from each End re-derives the same partition.
	from, i := 0, 0
	for {
		w, ok := NextWord(buf, from)
		if !ok {
			break
		}
		assert.Equal(t, spans[i], w)
		from = w.End
		i++
	}
	assert.Equal(t, len(spans), i)
}

func TestWordsCombiningMark(t *testing.T) {
	// A combining mark rides along with its base letter's cluster instead
	// of ending the word.
	buf := "café bar"
	spans := Words(buf)
	if assert.Len(t, spans, 2) {
		assert.Equal(t, "café", spans[0].Text)
		assert.Equal(t, "bar", spans[1].Text)
	}
}
