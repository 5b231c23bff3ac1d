package refregex

// Regex is a compiled pattern in the dialect internal/regexelem.Element
// renders: literals, "\uXXXX" escapes, character classes, "?", "|", and
// non-capturing "(?:...)" groups.
type Regex struct {
	pattern string
	ast     *astNode
	dfa     *DFA
}

// Compile parses pattern and builds its minimal DFA. The empty string is a
// valid pattern (the rendering of the Nothing element) and matches only the
// empty word.
func Compile(pattern string) (*Regex, error) {
	var ast *astNode
	if pattern == "" {
		ast = &astNode{typ: nEmpty}
	} else {
		p, err := newParser(pattern)
		if err != nil {
			return nil, err
		}
		n, err := p.parse()
		if err != nil {
			return nil, err
		}
		ast = n
	}

	alphaSet := map[rune]struct{}{}
	var walk func(*astNode)
	walk = func(n *astNode) {
		if n == nil {
			return
		}
		switch n.typ {
		case nChar:
			alphaSet[n.ch] = struct{}{}
		case nSet:
			for _, r := range n.charset {
				alphaSet[r] = struct{}{}
			}
		}
		walk(n.left)
		walk(n.right)
	}
	walk(ast)
	alphabet := make([]rune, 0, len(alphaSet))
	for r := range alphaSet {
		alphabet = append(alphabet, r)
	}

	start, _ := compileASTtoNFA(ast)
	raw := nfaToDFA(start, alphabet)
	raw.Alpha = alphabet
	min := Minimize(raw)
	min.Alpha = alphabet

	return &Regex{pattern: pattern, ast: ast, dfa: min}, nil
}

// MustCompile panics if pattern doesn't parse; reserved for call sites
// compiling a fixed, known-good pattern (e.g. test fixtures).
func MustCompile(pattern string) *Regex {
	r, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// MatchRunes reports whether rs, taken as a whole, is in the language r
// accepts. Runes outside r's alphabet never match; they aren't an error,
// just never present in any transition.
func (r *Regex) MatchRunes(rs []rune) bool {
	s := r.dfa.Start
	for _, c := range rs {
		t, ok := s.trans[c]
		if !ok {
			return false
		}
		s = t
	}
	return s.accept
}

// MatchUTF16 is MatchRunes over UTF-16 code units, the unit the compiler
// under test actually operates on.
func (r *Regex) MatchUTF16(units []uint16) bool {
	rs := make([]rune, len(units))
	for i, u := range units {
		rs[i] = rune(u)
	}
	return r.MatchRunes(rs)
}

// ToRegexp delegates to the underlying DFA's ToRegexp.
func (r *Regex) ToRegexp() string {
	return r.dfa.ToRegexp()
}
