// Package regexelem implements the algebraic regex representation: a closed
// five-variant (plus Nothing) sum type with canonical construction, rendering
// to concrete regex syntax, and a rewrite-based optimizer.
package regexelem

import "sort"

// Kind is the tag of the closed RegexElement sum type.
type Kind int

const (
	Nothing Kind = iota
	SingleCharacter
	CharacterSet
	Sequence
	Maybe
	Or
)

// Element is a node of the algebraic regex representation. Once built it is
// logically immutable; the regex/length caches below are interior-mutability
// hot-path memoization only (to_regex is called repeatedly by the Or
// optimizer while sorting and grouping options) and never change the value
// a caller observes.
type Element struct {
	kind Kind

	char uint16   // SingleCharacter
	set  []uint16 // CharacterSet, unordered (sorted/deduped at render time)
	seq  []*Element // Sequence children, or Or options
	elem *Element   // Maybe child

	optimized bool

	hasRegex bool
	regex    string

	hasMaxLen bool
	maxLen    int
}

// NewNothing returns the element matching only the empty string.
func NewNothing() *Element {
	return &Element{kind: Nothing, optimized: true}
}

// NewChar returns the element matching exactly the code unit c.
func NewChar(c uint16) *Element {
	return &Element{kind: SingleCharacter, char: c, optimized: true}
}

// NewCharSet returns the element matching any one of chars. The set is
// unordered; duplicates are tolerated (rendering/optimizing dedupes).
func NewCharSet(chars []uint16) *Element {
	cp := append([]uint16(nil), chars...)
	return &Element{kind: CharacterSet, set: cp}
}

// NewSequence returns the concatenation of children, in order.
func NewSequence(children []*Element) *Element {
	cp := append([]*Element(nil), children...)
	return &Element{kind: Sequence, seq: cp}
}

// NewMaybe returns the zero-or-one repetition of child.
func NewMaybe(child *Element) *Element {
	return &Element{kind: Maybe, elem: child}
}

// NewOr returns the alternation over options. Options are an unordered set;
// Optimize dedupes by rendered form.
func NewOr(options []*Element) *Element {
	cp := append([]*Element(nil), options...)
	return &Element{kind: Or, seq: cp}
}

// Kind reports the variant tag.
func (e *Element) Kind() Kind { return e.kind }

// Char returns the SingleCharacter payload.
func (e *Element) Char() uint16 { return e.char }

// Set returns the CharacterSet payload (not copied; callers must not mutate).
func (e *Element) Set() []uint16 { return e.set }

// Children returns the Sequence children, or the Or options.
func (e *Element) Children() []*Element { return e.seq }

// Inner returns the Maybe child.
func (e *Element) Inner() *Element { return e.elem }

// isAtom reports whether e renders without needing grouping as a Sequence
// child or Maybe body (Nothing, SingleCharacter, CharacterSet).
func isAtom(k Kind) bool {
	return k == Nothing || k == SingleCharacter || k == CharacterSet
}

// AsSequence returns e as a Sequence view: e itself if it already is one,
// otherwise the singleton Sequence [e]. Used by the Or optimizer to reason
// uniformly about shared prefixes and suffixes.
func AsSequence(e *Element) []*Element {
	if e.kind == Sequence {
		return e.seq
	}
	return []*Element{e}
}

// MaxPossibleLength returns the longest string e can match.
func (e *Element) MaxPossibleLength() int {
	if e.hasMaxLen {
		return e.maxLen
	}
	var n int
	switch e.kind {
	case Nothing:
		n = 0
	case SingleCharacter, CharacterSet:
		n = 1
	case Sequence:
		for _, c := range e.seq {
			n += c.MaxPossibleLength()
		}
	case Maybe:
		n = e.elem.MaxPossibleLength()
	case Or:
		for _, o := range e.seq {
			if l := o.MaxPossibleLength(); l > n {
				n = l
			}
		}
	}
	e.maxLen = n
	e.hasMaxLen = true
	return n
}

// IsOptimized reports whether Optimize has already run on this value;
// re-optimizing is idempotent regardless.
func (e *Element) IsOptimized() bool { return e.optimized }

// Equal reports structural equality: equality of rendered regex strings.
func Equal(a, b *Element) bool { return a.Regex() == b.Regex() }

// Less orders two elements lexicographically by rendered regex string, the
// tiebreaker the Or renderer uses after -MaxPossibleLength.
func Less(a, b *Element) bool { return a.Regex() < b.Regex() }

func sortedUniqueUint16(in []uint16) []uint16 {
	cp := append([]uint16(nil), in...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}
