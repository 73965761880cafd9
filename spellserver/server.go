// Package spellserver implements the host side of the spell-checking
// protocol: a registry of language tags to checking delegates, and a
// Content-Length framed JSON request loop a host editor drives over a pipe.
// The engine behind each delegate is constructed once and then answers many
// synchronous calls; the server never calls a delegate concurrently for a
// single connection.
package spellserver

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Range is a half-open byte range into the checked buffer, reported back to
// the host in buffer coordinates.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NotFoundRange is returned when a buffer has no misspelling.
var NotFoundRange = Range{Start: -1, End: -1}

// Delegate answers the four spell-checking questions for the languages it
// registered under.
type Delegate interface {
	// FindMisspelledWord returns the range of the first misspelled word in
	// text and the number of words seen up to and including it. When
	// countOnly is set every word is counted and none is checked.
	FindMisspelledWord(text, language string, countOnly bool) (Range, int)

	// SuggestGuesses returns ordered corrections for a single word.
	SuggestGuesses(word, language string) []string

	// WordLearned and WordForgotten report that the user accepted or
	// rejected a word; the delegate updates its active vocabulary.
	WordLearned(word, language string)
	WordForgotten(word, language string)
}

// Server routes requests to the delegate registered for their language tag.
type Server struct {
	log *zap.Logger

	mu    sync.RWMutex
	langs map[string]Delegate
}

// New returns an empty server. A nil logger is replaced with a no-op one.
func New(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{log: log, langs: make(map[string]Delegate)}
}

// Register binds a language tag to a delegate. An empty tag, a nil delegate,
// or a tag that is already taken is an error; callers registering several
// variants treat partial success as a warning and total failure as fatal.
func (s *Server) Register(language string, d Delegate) error {
	if language == "" {
		return fmt.Errorf("spellserver: empty language tag")
	}
	if d == nil {
		return fmt.Errorf("spellserver: nil delegate for %q", language)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.langs[language]; taken {
		return fmt.Errorf("spellserver: language %q already registered", language)
	}
	s.langs[language] = d
	return nil
}

// Languages returns the registered tags, sorted.
func (s *Server) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tags := make([]string, 0, len(s.langs))
	for tag := range s.langs {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (s *Server) delegate(language string) (Delegate, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.langs[language]
	return d, ok
}
