package spell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joro/shawspell/script"
)

// fakeDict is an in-memory stand-in for the hunspell binding.
type fakeDict struct {
	words    map[string]bool
	suggests map[string][]string
	closed   bool
}

func newFakeDict(words ...string) *fakeDict {
	d := &fakeDict{words: map[string]bool{}, suggests: map[string][]string{}}
	for _, w := range words {
		d.words[w] = true
	}
	return d
}

func (d *fakeDict) Spell(word string) bool { return d.words[word] }
func (d *fakeDict) Add(word string)        { d.words[word] = true }
func (d *fakeDict) Remove(word string)     { delete(d.words, word) }
func (d *fakeDict) Close()                 { d.closed = true }

func (d *fakeDict) Suggest(word string) []string {
	return d.suggests[word]
}

func newTestChecker(latin, shavian Dictionary) *Checker {
	c := &Checker{}
	c.latin.dict = latin
	c.shavian.dict = shavian
	return c
}

func span(text string) script.Span {
	return script.Span{Start: 0, End: len(text), Text: text, Script: script.Of(text)}
}

func TestCheckRoutesByScript(t *testing.T) {
	latin := newFakeDict("hello")
	shavian := newFakeDict("𐑣𐑩𐑤𐑴")
	c := newTestChecker(latin, shavian)

	assert.True(t, c.Check(span("hello")))
	assert.False(t, c.Check(span("helo")))
	assert.True(t, c.Check(span("𐑣𐑩𐑤𐑴")))
	assert.False(t, c.Check(span("𐑣𐑩𐑤")))
}

func TestCheckFailsOpenWithoutDictionary(t *testing.T) {
	c := newTestChecker(nil, nil)
	assert.True(t, c.Check(span("zzzzqq")))
	assert.True(t, c.Check(span("𐑣𐑩𐑤")))
	assert.Equal(t, []string{}, c.Suggest(span("𐑣𐑩𐑤")))
}

func TestSuggest(t *testing.T) {
	latin := newFakeDict()
	latin.suggests["helo"] = []string{"hello", "halo", "help"}
	c := newTestChecker(latin, nil)

	assert.Equal(t, []string{"hello", "halo", "help"}, c.Suggest(span("helo")))
	assert.Equal(t, []string{}, c.Suggest(span("")))
}

func TestSuggestTruncatesToTen(t *testing.T) {
	latin := newFakeDict()
	var many []string
	for i := 0; i < 25; i++ {
		many = append(many, fmt.Sprintf("word%d", i))
	}
	latin.suggests["wrd"] = many
	c := newTestChecker(latin, nil)

	got := c.Suggest(span("wrd"))
	require.Len(t, got, MaxSuggestions)
	// Order is the checker's order, untouched.
	assert.Equal(t, many[:MaxSuggestions], got)
}

func TestLearnForgetRoundTrip(t *testing.T) {
	shavian := newFakeDict()
	c := newTestChecker(newFakeDict(), shavian)

	w := span("𐑯𐑿𐑢𐑻𐑛")
	assert.False(t, c.Check(w))
	c.Learn(w.Text)
	assert.True(t, c.Check(w))
	c.Forget(w.Text)
	assert.False(t, c.Check(w))
}

func TestLearnForgetIdempotent(t *testing.T) {
	latin := newFakeDict("known")
	c := newTestChecker(latin, nil)

	c.Learn("known")
	c.Learn("known")
	assert.True(t, c.Check(span("known")))

	c.Forget("absent")
	c.Forget("absent")
	assert.False(t, c.Check(span("absent")))
}

func TestMutateUnloadedScriptIsNoop(t *testing.T) {
	c := newTestChecker(nil, nil)
	c.Learn("𐑯𐑿")
	c.Forget("𐑯𐑿")
	c.Learn("")
	assert.True(t, c.Check(span("𐑯𐑿")))
}

func TestFindMisspelledWordCleanBuffer(t *testing.T) {
	latin := newFakeDict("the", "cat", "sat")
	c := newTestChecker(latin, nil)

	w, n := c.FindMisspelledWord("the cat sat", false)
	assert.Equal(t, script.None, w)
	assert.Equal(t, 3, n)
}

func TestFindMisspelledWordFirstFailureWins(t *testing.T) {
	latin := newFakeDict("the", "cat", "sat")
	c := newTestChecker(latin, nil)

	text := "the ct sat xx"
	w, n := c.FindMisspelledWord(text, false)
	assert.Equal(t, "ct", w.Text)
	assert.Equal(t, "ct", text[w.Start:w.End])
	assert.Equal(t, 2, n, "count is the misspelling's 1-based position")
}

func TestFindMisspelledWordCountOnly(t *testing.T) {
	// No dictionary calls happen at all in count mode.
	c := newTestChecker(nil, nil)
	w, n := c.FindMisspelledWord("one two 𐑔𐑮𐑰, four!", true)
	assert.Equal(t, script.None, w)
	assert.Equal(t, 4, n)

	_, n = c.FindMisspelledWord("", true)
	assert.Equal(t, 0, n)
}

func TestFindMisspelledWordRoutesMixedBuffer(t *testing.T) {
	latin := newFakeDict("and")
	shavian := newFakeDict("𐑞", "·𐑖𐑱𐑝")
	c := newTestChecker(latin, shavian)

	// The hybrid token has a Shavian letter, so the Shavian dictionary gets
	// it and reports the miss.
	w, n := c.FindMisspelledWord("𐑞 and NASA𐑟", false)
	assert.Equal(t, "NASA𐑟", w.Text)
	assert.Equal(t, 3, n)

	w, _ = c.FindMisspelledWord("·𐑖𐑱𐑝 and 𐑞", false)
	assert.Equal(t, script.None, w)
}

func TestCloseReleasesDictionaries(t *testing.T) {
	latin := newFakeDict()
	shavian := newFakeDict()
	c := newTestChecker(latin, shavian)
	c.Close()
	assert.True(t, latin.closed)
	assert.True(t, shavian.closed)
	assert.True(t, c.Check(span("anything")), "closed checker fails open")
}
