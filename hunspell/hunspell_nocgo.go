//go:build !cgo || windows

package hunspell

// Stub used when libhunspell is unavailable. New always fails, so the engine
// runs with empty handles and fails open; the method set still satisfies the
// dictionary capability in case a Checker leaks into such a build.

type Checker struct{}

func New(affpath, dicpath string) (*Checker, error) {
	return nil, ErrUnavailable
}

func (c *Checker) Spell(word string) bool { return true }

func (c *Checker) Suggest(word string) []string { return []string{} }

func (c *Checker) Add(word string) {}

func (c *Checker) Remove(word string) {}

func (c *Checker) Close() {}
