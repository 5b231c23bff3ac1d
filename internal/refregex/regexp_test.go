package refregex

import "testing"

func newRE(t *testing.T, pat string) *Regex {
	re, err := Compile(pat)
	if err != nil {
		t.Fatalf("compile %q: %v", pat, err)
	}
	return re
}

func TestParserUnionAndConcat(t *testing.T) {
	re := newRE(t, "a|bc")
	if !re.MatchRunes([]rune("a")) {
		t.Fatalf("expected match on a")
	}
	if !re.MatchRunes([]rune("bc")) {
		t.Fatalf("expected match on bc")
	}
	if re.MatchRunes([]rune("ab")) {
		t.Fatalf("unexpected match on ab")
	}
}

func TestParserQMark(t *testing.T) {
	re := newRE(t, "a?bc?")
	for _, w := range []string{"bc", "abc", "ab", "b"} {
		if !re.MatchRunes([]rune(w)) {
			t.Fatalf("expected match on %q", w)
		}
	}
	for _, w := range []string{"", "c", "abcc"} {
		if re.MatchRunes([]rune(w)) {
			t.Fatalf("unexpected match on %q", w)
		}
	}
}

func TestParserCharClass(t *testing.T) {
	re := newRE(t, "[a-c]")
	for _, w := range []string{"a", "b", "c"} {
		if !re.MatchRunes([]rune(w)) {
			t.Fatalf("expected match on %q", w)
		}
	}
	if re.MatchRunes([]rune("d")) {
		t.Fatalf("unexpected match on d")
	}
}

func TestParserNonCapturingGroup(t *testing.T) {
	re := newRE(t, "a(?:bc?)?d")
	for _, w := range []string{"ad", "abd", "abcd"} {
		if !re.MatchRunes([]rune(w)) {
			t.Fatalf("expected match on %q", w)
		}
	}
	if re.MatchRunes([]rune("acd")) {
		t.Fatalf("unexpected match on acd")
	}
}

func TestEmptyPatternMatchesOnlyEmptyWord(t *testing.T) {
	re := newRE(t, "")
	if !re.MatchRunes(nil) {
		t.Fatalf("expected empty pattern to match the empty word")
	}
	if re.MatchRunes([]rune("a")) {
		t.Fatalf("empty pattern should not match a")
	}
}

func TestUnicodeEscape(t *testing.T) {
	re := newRE(t, `é`)
	if !re.MatchRunes([]rune{0x00E9}) {
		t.Fatalf("expected match on U+00E9")
	}
	if re.MatchRunes([]rune{'e'}) {
		t.Fatalf("unexpected match on plain e")
	}

	escaped := newRE(t, `\u00E9`)
	if !escaped.MatchRunes([]rune{0x00E9}) {
		t.Fatalf("expected \\u00E9 escape to match U+00E9")
	}
}

func TestMinimizeReducesStates(t *testing.T) {
	re := newRE(t, "ab|cb")
	start, _ := compileASTtoNFA(re.ast)
	raw := nfaToDFA(start, re.dfa.Alpha)
	before := len(raw.States)
	min := Minimize(raw)
	after := len(min.States)
	if after >= before {
		t.Fatalf("expected fewer states, got %d from %d", after, before)
	}
}

func TestEquivalentAcceptsEqualLanguages(t *testing.T) {
	a := newRE(t, "a?bc?")
	b := newRE(t, "bc|ab|abc|b")
	if !Equivalent(a, b) {
		t.Fatalf("expected %q and %q to be equivalent", a.pattern, b.pattern)
	}
}

func TestEquivalentRejectsDifferentLanguages(t *testing.T) {
	a := newRE(t, "a?bc?")
	b := newRE(t, "bc|ab|abc")
	if Equivalent(a, b) {
		t.Fatalf("expected %q and %q to differ (missing bare b)", a.pattern, b.pattern)
	}
}

func TestToRegexpRoundTrips(t *testing.T) {
	re := newRE(t, "a(?:bc?)?d")
	restored := newRE(t, re.ToRegexp())
	if !Equivalent(re, restored) {
		t.Fatalf("round trip through ToRegexp changed the language: %q -> %q", re.pattern, restored.pattern)
	}
}
