package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/joro/shawspell/script"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report every misspelled word in a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var countCmd = &cobra.Command{
	Use:   "count [file]",
	Short: "Count the words in a file or stdin without checking them",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCount,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <word>",
	Short: "Print ordered corrections for one word",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

// openInput returns the file named by args, or stdin for no argument / "-".
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}

func lineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return sc
}

func runCheck(cmd *cobra.Command, args []string) error {
	checker, _ := loadChecker()
	defer checker.Close()

	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	misses := 0
	lineno := 0
	sc := lineScanner(in)
	for sc.Scan() {
		lineno++
		line := sc.Text()
		for from := 0; ; {
			w, ok := script.NextWord(line, from)
			if !ok {
				break
			}
			from = w.End
			if checker.Check(w) {
				continue
			}
			misses++
			col := utf8.RuneCountInString(line[:w.Start]) + 1
			if guesses := checker.Suggest(w); len(guesses) > 0 {
				fmt.Printf("%s:%d:%d: %s (%s)\n", name, lineno, col, w.Text, strings.Join(guesses, ", "))
			} else {
				fmt.Printf("%s:%d:%d: %s\n", name, lineno, col, w.Text)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if misses > 0 {
		return fmt.Errorf("%d misspelled word(s)", misses)
	}
	return nil
}

func runCount(cmd *cobra.Command, args []string) error {
	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	total := 0
	sc := lineScanner(in)
	for sc.Scan() {
		total += len(script.Words(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	fmt.Println(total)
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	checker, _ := loadChecker()
	defer checker.Close()

	word := args[0]
	for _, g := range checker.Suggest(script.Span{Text: word, Script: script.Of(word)}) {
		fmt.Println(g)
	}
	return nil
}
