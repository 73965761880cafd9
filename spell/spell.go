// Package spell is the spell-checking engine: it owns one optional dictionary
// per script, routes each word to the right one, and answers the check,
// suggest, learn and forget questions a host editor asks. A script whose
// dictionary never loaded fails open: every word is correct and there are no
// suggestions, because flagging an entire script as misspelled is strictly
// worse than staying quiet.
package spell

import (
	"sync"

	"go.uber.org/zap"

	"github.com/joro/shawspell/script"
)

// Dictionary is the affix-checker capability backing one script. The hunspell
// binding satisfies it; tests substitute fakes.
type Dictionary interface {
	Spell(word string) bool
	Suggest(word string) []string
	Add(word string)
	Remove(word string)
	Close()
}

// MaxSuggestions caps how many corrections a single query returns.
const MaxSuggestions = 10

// handle is one script's dictionary slot. The host's concurrency guarantees
// are undocumented, so each handle carries its own reader-writer lock:
// lookups are frequent, learn/forget and reload swaps are rare.
type handle struct {
	mu   sync.RWMutex
	dict Dictionary // nil when no file pair loaded for this script
}

func (h *handle) spell(word string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.dict == nil {
		return true
	}
	return h.dict.Spell(word)
}

func (h *handle) suggest(word string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.dict == nil {
		return []string{}
	}
	s := h.dict.Suggest(word)
	if len(s) > MaxSuggestions {
		s = s[:MaxSuggestions]
	}
	return s
}

func (h *handle) add(word string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dict != nil {
		h.dict.Add(word)
	}
}

func (h *handle) remove(word string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dict != nil {
		h.dict.Remove(word)
	}
}

// swap installs a new dictionary and closes the old one.
func (h *handle) swap(d Dictionary) {
	h.mu.Lock()
	old := h.dict
	h.dict = d
	h.mu.Unlock()
	if old != nil {
		old.Close()
	}
}

func (h *handle) loaded() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dict != nil
}

// Checker is the engine: the pair of per-script handles plus the options the
// handles were loaded from. Either handle may be empty for the whole run.
type Checker struct {
	latin   handle
	shavian handle
	opts    Options
	log     *zap.Logger
}

func (c *Checker) handleFor(s script.Script) *handle {
	if s == script.Shavian {
		return &c.shavian
	}
	return &c.latin
}

// Check reports whether the word span is correctly spelled. An empty handle
// reports correct.
func (c *Checker) Check(w script.Span) bool {
	return c.handleFor(w.Script).spell(w.Text)
}

// Suggest returns up to MaxSuggestions corrections for the word span, in the
// order the underlying checker ranked them. An empty word or an empty handle
// yields an empty list.
func (c *Checker) Suggest(w script.Span) []string {
	if w.Text == "" {
		return []string{}
	}
	return c.handleFor(w.Script).suggest(w.Text)
}

// Learn adds word to the runtime vocabulary of its script's dictionary.
// No-op when that dictionary is not loaded; learning a known word is
// harmless.
func (c *Checker) Learn(word string) {
	if word == "" {
		return
	}
	c.handleFor(script.Of(word)).add(word)
}

// Forget removes word from the runtime vocabulary of its script's
// dictionary. No-op when that dictionary is not loaded; forgetting an absent
// word is harmless.
func (c *Checker) Forget(word string) {
	if word == "" {
		return
	}
	c.handleFor(script.Of(word)).remove(word)
}

// FindMisspelledWord walks text from the start and returns the span of the
// first misspelled word plus the number of words seen up to and including
// it. When countOnly is set no spelling is checked and every word is
// counted. A buffer with no misspelling returns script.None and the total
// word count. Words are always evaluated strictly in buffer order.
func (c *Checker) FindMisspelledWord(text string, countOnly bool) (script.Span, int) {
	count := 0
	for from := 0; ; {
		w, ok := script.NextWord(text, from)
		if !ok {
			break
		}
		count++
		from = w.End
		if countOnly {
			continue
		}
		if !c.Check(w) {
			return w, count
		}
	}
	return script.None, count
}

// Loaded reports which scripts have a dictionary, for start-up logging and
// the status command.
func (c *Checker) Loaded() (latin, shavian bool) {
	return c.latin.loaded(), c.shavian.loaded()
}

// Close releases both handles.
func (c *Checker) Close() {
	c.latin.swap(nil)
	c.shavian.swap(nil)
}
