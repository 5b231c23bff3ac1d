// Package wordregex compiles a finite set of literal words into a single
// regular expression matching exactly that set, optimized for size (shared
// prefix/suffix factoring, character-class fusion) and for longest-match-
// first alternation order.
package wordregex

import (
	"unicode/utf16"

	"wordregex/internal/dafsa"
)

// Compile builds the minimal-ish regex matching exactly words. Input
// strings are encoded to UTF-16 code units via unicode/utf16.Encode, so
// astral runes split into surrogate pairs the same way the external JSON/
// JS-string contract this compiler feeds does.
func Compile(words []string) (string, error) {
	units := make([]dafsa.Word, len(words))
	for i, w := range words {
		units[i] = utf16.Encode([]rune(w))
	}
	return CompileUnits(units)
}

// CompileUnits is Compile for callers that already have exact UTF-16
// code-unit sequences — including ones containing an unpaired surrogate
// half a Go string cannot represent. An empty word list is legal and
// compiles to the empty regex: a zero-word DAFSA has no root-to-leaf path
// at all, so it's handled directly rather than run through elimination,
// which requires that path to exist.
func CompileUnits(words []dafsa.Word) (string, error) {
	if len(words) == 0 {
		return "", nil
	}

	g := dafsa.FromWordsMinimized(words)
	label := dafsa.Eliminate(g)
	return label.Optimize().Regex(), nil
}

// MustCompile panics instead of returning an error; for call sites
// compiling a fixed, known-nonempty word list (e.g. package-level
// var initialization).
func MustCompile(words []string) string {
	re, err := Compile(words)
	if err != nil {
		panic(err)
	}
	return re
}
