package regexelem

import (
	"fmt"
	"sort"
	"strings"
)

// Regex renders e to concrete regex syntax. Nothing renders as the empty
// string; Sequence children that are Or get wrapped in a non-capturing
// group; Or options are ordered longest-match-first.
func (e *Element) Regex() string {
	if e.hasRegex {
		return e.regex
	}
	var s string
	switch e.kind {
	case Nothing:
		s = ""
	case SingleCharacter:
		s = renderChar(e.char)
	case CharacterSet:
		s = renderCharSet(e.set)
	case Sequence:
		s = renderSequence(e.seq)
	case Maybe:
		s = renderMaybe(e.elem)
	case Or:
		s = renderOr(e.seq)
	}
	e.regex = s
	e.hasRegex = true
	return s
}

func renderSequence(children []*Element) string {
	var b strings.Builder
	for _, c := range children {
		if c.kind == Or {
			b.WriteString("(?:")
			b.WriteString(c.Regex())
			b.WriteString(")")
		} else {
			b.WriteString(c.Regex())
		}
	}
	return b.String()
}

func renderMaybe(inner *Element) string {
	if isAtom(inner.kind) {
		return inner.Regex() + "?"
	}
	return "(?:" + inner.Regex() + ")?"
}

// renderOr orders options by (-max_possible_length, regex) — longer matches
// first, so a left-to-right engine tries the longest alternative before a
// shorter prefix of it.
func renderOr(options []*Element) string {
	sorted := append([]*Element(nil), options...)
	sort.Slice(sorted, func(i, j int) bool {
		li, lj := sorted[i].MaxPossibleLength(), sorted[j].MaxPossibleLength()
		if li != lj {
			return li > lj
		}
		return sorted[i].Regex() < sorted[j].Regex()
	})
	parts := make([]string, len(sorted))
	for i, o := range sorted {
		parts[i] = o.Regex()
	}
	return strings.Join(parts, "|")
}

var regexMeta = map[rune]bool{
	'\\': true, '^': true, '$': true, '.': true, '|': true, '?': true,
	'*': true, '+': true, '(': true, ')': true, '[': true, ']': true,
	'{': true, '}': true, '-': true,
}

// renderChar renders a single code unit: ASCII metacharacters are escaped,
// other ASCII is literal, anything >= 128 is a four-uppercase-hex-digit
// \uXXXX escape (code units above 128 never collide with regex syntax, so
// they never need backslash-escaping on top of the \u prefix).
func renderChar(c uint16) string {
	if c < 128 {
		r := rune(c)
		if regexMeta[r] {
			return "\\" + string(r)
		}
		return string(r)
	}
	return fmt.Sprintf("\\u%04X", c)
}

// renderCharSet sorts chars ascending, dedupes, and coalesces maximal runs
// of consecutive code units into ranges: a run of length 1 emits one
// rendered char, length 2 emits two back-to-back rendered chars (no
// hyphen), length >= 3 emits "from-to".
func renderCharSet(chars []uint16) string {
	uniq := sortedUniqueUint16(chars)
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < len(uniq); {
		j := i
		for j+1 < len(uniq) && uniq[j+1] == uniq[j]+1 {
			j++
		}
		switch j - i + 1 {
		case 1:
			b.WriteString(renderChar(uniq[i]))
		case 2:
			b.WriteString(renderChar(uniq[i]))
			b.WriteString(renderChar(uniq[j]))
		default:
			b.WriteString(renderChar(uniq[i]))
			b.WriteByte('-')
			b.WriteString(renderChar(uniq[j]))
		}
		i = j + 1
	}
	b.WriteByte(']')
	return b.String()
}
