// Package refregex is a small regex engine used only to verify the strings
// internal/regexelem renders: it parses the narrow dialect compile.go
// produces (literals, character classes, "?", "|", and non-capturing
// "(?:...)" groups — no anchors, no backreferences, no {m,n}, no "*"/"+")
// and exposes DFA construction and set operations so tests can check
// language equivalence instead of trusting the renderer by inspection.
package refregex

type nodeType int

const (
	nEmpty nodeType = iota // ε, the Nothing element
	nChar
	nConcat
	nUnion
	nQMark
	nSet // character class
)

type astNode struct {
	typ   nodeType
	left  *astNode
	right *astNode

	ch      rune   // for nChar
	charset []rune // for nSet
}

func charNode(r rune) *astNode { return &astNode{typ: nChar, ch: r} }
