// gendict builds the Shavian hunspell dictionary pairs from a ReadLex JSON
// export. It writes shavian-gb and shavian-us pairs: GB keeps RRP and
// dialect-neutral entries, US keeps everything for maximum coverage. Proper
// nouns are also emitted with the namer dot prefix so the dotted form the
// segmenter produces is in the word list.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// entry is one ReadLex pronunciation record. Keys we do not use are dropped
// by the decoder.
type entry struct {
	Shaw string `json:"Shaw"`
	Var  string `json:"var"`
	Pos  string `json:"pos"`
}

const namerDot = "·"

// shavianLetters is every letter of the block, used for TRY and WORDCHARS.
func shavianLetters() string {
	var b strings.Builder
	for r := rune(0x10450); r <= 0x1047F; r++ {
		b.WriteRune(r)
	}
	return b.String()
}

func isProperNoun(pos string) bool {
	return strings.HasPrefix(pos, "NNP") || pos == "PROPN"
}

// includeWord applies the dialect filter: the GB list excludes GenAm-only
// entries, the US list keeps RRP entries as fallbacks.
func includeWord(e entry, dialect string) bool {
	if dialect == "gb" {
		return e.Var != "GenAm"
	}
	return true
}

// collectWords gathers the sorted unique word list for one dialect.
func collectWords(readlex map[string][]entry, dialect string) []string {
	seen := make(map[string]struct{})
	for _, entries := range readlex {
		for _, e := range entries {
			if e.Shaw == "" || !includeWord(e, dialect) {
				continue
			}
			seen[e.Shaw] = struct{}{}
			if isProperNoun(e.Pos) && !strings.HasPrefix(e.Shaw, namerDot) {
				seen[namerDot+e.Shaw] = struct{}{}
			}
		}
	}
	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// writeDic writes the word-list file: the count line, then one word per line.
func writeDic(path string, words []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", len(words))
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// writeAff writes the affix file: UTF-8, the TRY alphabet, WORDCHARS
// covering the Shavian letters plus hyphen and namer dot, and any REP rules
// passed through from the replacements file.
func writeAff(path, dialect, replacements string) error {
	letters := shavianLetters()
	var b strings.Builder
	fmt.Fprintf(&b, "# Hunspell affix file for Shavian script (%s)\n\n", dialect)
	b.WriteString("SET UTF-8\n")
	fmt.Fprintf(&b, "TRY %s\n\n", letters)
	fmt.Fprintf(&b, "WORDCHARS %s-%s\n\n", letters, namerDot)
	if replacements != "" {
		b.WriteString(replacements)
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func main() {
	readlexPath := flag.String("readlex", "external/readlex/readlex.json", "ReadLex JSON export")
	outDir := flag.String("out", "build", "output directory")
	dialect := flag.String("dialect", "both", "gb, us, or both")
	repsPath := flag.String("replacements", "", "optional REP rules to embed in the .aff")
	flag.Parse()

	var dialects []string
	switch *dialect {
	case "both":
		dialects = []string{"gb", "us"}
	case "gb", "us":
		dialects = []string{*dialect}
	default:
		log.Fatalf("unknown dialect %q (want gb, us, or both)", *dialect)
	}

	b, err := os.ReadFile(*readlexPath)
	if err != nil {
		log.Fatalf("read readlex: %v", err)
	}
	var readlex map[string][]entry
	if err := json.Unmarshal(b, &readlex); err != nil {
		log.Fatalf("parse readlex: %v", err)
	}
	log.Printf("loaded %d readlex entries", len(readlex))

	replacements := ""
	if *repsPath != "" {
		r, err := os.ReadFile(*repsPath)
		if err != nil {
			log.Fatalf("read replacements: %v", err)
		}
		replacements = strings.TrimSpace(string(r))
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("create %s: %v", *outDir, err)
	}
	for _, d := range dialects {
		words := collectWords(readlex, d)
		dic := filepath.Join(*outDir, "shavian-"+d+".dic")
		aff := filepath.Join(*outDir, "shavian-"+d+".aff")
		if err := writeDic(dic, words); err != nil {
			log.Fatalf("write %s: %v", dic, err)
		}
		if err := writeAff(aff, d, replacements); err != nil {
			log.Fatalf("write %s: %v", aff, err)
		}
		log.Printf("%s: %d words", dic, len(words))
	}
}
