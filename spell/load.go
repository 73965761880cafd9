package spell

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/joro/shawspell/hunspell"
)

// DefaultDialect is used when neither the environment override nor the
// stored preference names one.
const DefaultDialect = "gb"

// Base names of the per-script file pairs under the dictionary directory.
const (
	latinBase   = "latin"
	shavianBase = "shavian"
)

// OpenFunc loads one affix/word-list pair. The default opens it with the
// hunspell binding; tests inject fakes so the suite runs without the C
// library.
type OpenFunc func(affpath, dicpath string) (Dictionary, error)

func openHunspell(affpath, dicpath string) (Dictionary, error) {
	return hunspell.New(affpath, dicpath)
}

// Options configures a load. Dialect must already be resolved by the caller
// using the documented precedence (environment override, stored preference,
// DefaultDialect); the loader never reads ambient state itself.
type Options struct {
	Dir     string
	Dialect string
	Open    OpenFunc
	Log     *zap.Logger
}

// Load builds a Checker from the file pairs under opts.Dir. For each script
// it tries "<script>-<dialect>.aff/.dic" first and falls back to the
// dialect-less "<script>" pair. A script with neither pair, or whose files
// fail to open, is left empty; that is a warning, never an error, and the
// engine runs with whatever loaded. Loading happens once; there is no retry.
func Load(opts Options) *Checker {
	if opts.Open == nil {
		opts.Open = openHunspell
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.Dialect == "" {
		opts.Dialect = DefaultDialect
	}
	c := &Checker{opts: opts, log: opts.Log}
	c.latin.dict = loadScript(opts, latinBase)
	c.shavian.dict = loadScript(opts, shavianBase)
	return c
}

func loadScript(opts Options, base string) Dictionary {
	for _, name := range []string{base + "-" + opts.Dialect, base} {
		aff := filepath.Join(opts.Dir, name+".aff")
		dic := filepath.Join(opts.Dir, name+".dic")
		if !pairExists(aff, dic) {
			continue
		}
		d, err := opts.Open(aff, dic)
		if err != nil {
			opts.Log.Warn("dictionary failed to open",
				zap.String("script", base),
				zap.String("dic", dic),
				zap.Error(err))
			continue
		}
		opts.Log.Info("dictionary loaded",
			zap.String("script", base),
			zap.String("dic", dic))
		return d
	}
	opts.Log.Warn("no dictionary for script, spelling fails open",
		zap.String("script", base),
		zap.String("dialect", opts.Dialect),
		zap.String("dir", opts.Dir))
	return nil
}

// pairExists requires both files: an affix file without its word list (or
// the reverse) falls through to the generic pair.
func pairExists(aff, dic string) bool {
	if _, err := os.Stat(aff); err != nil {
		return false
	}
	_, err := os.Stat(dic)
	return err == nil
}

// Reload re-runs the load procedure with the original options and swaps the
// new dictionaries in atomically, releasing the replaced ones. Used by the
// directory watcher; in-flight calls finish against the handle they locked.
func (c *Checker) Reload() {
	c.latin.swap(loadScript(c.opts, latinBase))
	c.shavian.swap(loadScript(c.opts, shavianBase))
	c.log.Info("dictionaries reloaded", zap.String("dir", c.opts.Dir))
}
