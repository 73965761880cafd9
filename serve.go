package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joro/shawspell/script"
	"github.com/joro/shawspell/spell"
	"github.com/joro/shawspell/spellserver"
)

// languageTags are the variants the engine registers for at start-up.
var languageTags = []string{"en-Shaw", "en-Shaw-GB", "en-Shaw-US"}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the host spell-checking protocol on stdin/stdout",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

// delegate adapts the engine to the host protocol. The language tag picked
// the engine instance at registration time, so the per-call tag is unused.
type delegate struct {
	checker *spell.Checker
}

func (d *delegate) FindMisspelledWord(text, language string, countOnly bool) (spellserver.Range, int) {
	w, n := d.checker.FindMisspelledWord(text, countOnly)
	if w.Start < 0 {
		return spellserver.NotFoundRange, n
	}
	return spellserver.Range{Start: w.Start, End: w.End}, n
}

func (d *delegate) SuggestGuesses(word, language string) []string {
	return d.checker.Suggest(script.Span{Text: word, Script: script.Of(word)})
}

func (d *delegate) WordLearned(word, language string) {
	d.checker.Learn(word)
}

func (d *delegate) WordForgotten(word, language string) {
	d.checker.Forget(word)
}

func runServe(cmd *cobra.Command, args []string) error {
	checker, s := loadChecker()
	defer checker.Close()

	latin, shavian := checker.Loaded()
	logger.Info("engine ready",
		zap.Bool("latin", latin),
		zap.Bool("shavian", shavian),
		zap.String("dialect", s.dialect),
		zap.String("dictdir", s.dictDir))

	srv := spellserver.New(logger)
	d := &delegate{checker: checker}
	registered := 0
	for _, tag := range languageTags {
		if err := srv.Register(tag, d); err != nil {
			logger.Warn("language registration failed",
				zap.String("language", tag), zap.Error(err))
			continue
		}
		registered++
	}
	if registered == 0 {
		// Nothing to serve: fatal, unlike every dictionary problem.
		return fmt.Errorf("no language variants registered")
	}
	if registered < len(languageTags) {
		logger.Warn("partial registration, continuing",
			zap.Int("registered", registered),
			zap.Int("requested", len(languageTags)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if s.watch {
		go watchDictionaries(ctx, s.dictDir, checker)
	}

	err := srv.Run(ctx, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchDictionaries reloads the engine when a dictionary pair under dir
// changes, debounced so a pair being copied in triggers one reload, not two.
func watchDictionaries(ctx context.Context, dir string, checker *spell.Checker) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("dictionary watch unavailable", zap.Error(err))
		return
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		logger.Warn("dictionary watch unavailable",
			zap.String("dir", dir), zap.Error(err))
		return
	}

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			ext := filepath.Ext(ev.Name)
			if ext != ".aff" && ext != ".dic" {
				continue
			}
			logger.Debug("dictionary change", zap.String("file", ev.Name))
			debounce.Reset(500 * time.Millisecond)
		case <-debounce.C:
			checker.Reload()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("dictionary watch error", zap.Error(err))
		}
	}
}
