// Command wordregex compiles a word list into a single regular expression.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"unicode/utf16"

	"wordregex"
	"wordregex/internal/dafsa"
)

func main() {
	wordsFile := flag.String("words", "", "file with one word per line (# comments and blank lines skipped); \"-\" reads stdin")
	dotFile := flag.String("dot", "", "write a Graphviz DOT rendering of the minimized DAFSA to this file")
	flag.Parse()

	words, err := collectWords(*wordsFile, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordregex:", err)
		os.Exit(1)
	}
	if len(words) == 0 {
		fmt.Fprintln(os.Stderr, "usage: wordregex [-words file] [-dot file] word...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if *dotFile != "" {
		if err := writeDOT(words, *dotFile); err != nil {
			fmt.Fprintln(os.Stderr, "wordregex:", err)
			os.Exit(1)
		}
	}

	pattern, err := wordregex.Compile(words)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordregex:", err)
		os.Exit(1)
	}
	fmt.Println(pattern)
}

// collectWords gathers words from the trailing CLI args plus, if given, a
// file (or stdin for "-") with one word per line; "#"-prefixed and blank
// lines are skipped.
func collectWords(path string, args []string) ([]string, error) {
	words := append([]string(nil), args...)
	if path == "" {
		return words, nil
	}

	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return words, nil
}

func writeDOT(words []string, path string) error {
	units := make([]dafsa.Word, 0, len(words))
	for _, w := range words {
		units = append(units, dafsa.Word(utf16.Encode([]rune(w))))
	}
	g := dafsa.FromWordsMinimized(units)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", path, err)
	}
	defer f.Close()
	dafsa.ExportDOT(f, g)
	fmt.Printf("DOT written to %s\n", path)
	return nil
}
