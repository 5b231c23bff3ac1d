package dafsa

import (
	"fmt"
	"testing"
)

func word(s string) Word {
	w := make(Word, len(s))
	for i, r := range s {
		w[i] = uint16(r)
	}
	return w
}

func words(ss ...string) []Word {
	w := make([]Word, len(ss))
	for i, s := range ss {
		w[i] = word(s)
	}
	return w
}

func TestPseudoPrefixTreeIsMatch(t *testing.T) {
	ws := words("ab", "bc", "b", "abc")
	g := FromPseudoPrefixTree(ws)

	for _, w := range ws {
		if !g.IsMatch(w) {
			t.Fatalf("expected match for %q", string(runesOf(w)))
		}
	}
	for _, bad := range words("a", "c", "", "abcd") {
		if g.IsMatch(bad) {
			t.Fatalf("unexpected match for %q", string(runesOf(bad)))
		}
	}
}

func runesOf(w Word) []rune {
	rs := make([]rune, len(w))
	for i, c := range w {
		rs[i] = rune(c)
	}
	return rs
}

func TestMinimizePreservesLanguage(t *testing.T) {
	ws := words("1aa", "1bb", "aa", "bb", "aa2", "bb2", "1aa2", "1bb2")
	g := FromWordsMinimized(ws)
	for _, w := range ws {
		if !g.IsMatch(w) {
			t.Fatalf("minimized DAFSA lost word %q", string(runesOf(w)))
		}
	}
	for _, bad := range words("1aa3", "cc", "aab") {
		if g.IsMatch(bad) {
			t.Fatalf("minimized DAFSA accepted extra word %q", string(runesOf(bad)))
		}
	}
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	// "ab" and "cb" share a common one-char tail ("b" then accept) after
	// their respective first letters; the two nodes reached after "ab" and
	// after "cb" both have the exact same outgoing edge set (a single
	// Nothing edge to leaf) and so should be merged into one object
	// reachable through both root-children's 'b' edges.
	g := FromPseudoPrefixTree(words("ab", "cb"))
	Minimize(g)

	childAfterA := findChild(g.root, word("a")[0])
	childAfterC := findChild(g.root, word("c")[0])
	if childAfterA == nil || childAfterC == nil {
		t.Fatalf("expected edges for both 'a' and 'c' out of root")
	}
	tailAfterA := findChild(childAfterA, word("b")[0])
	tailAfterC := findChild(childAfterC, word("b")[0])
	if tailAfterA == nil || tailAfterC == nil {
		t.Fatalf("expected 'b' edges out of both branches")
	}
	if tailAfterA != tailAfterC {
		t.Fatalf("expected the equivalent 'b'-tail nodes to be merged into one")
	}

	for _, w := range words("ab", "cb") {
		if !g.IsMatch(w) {
			t.Fatalf("lost word %q after minimize", string(runesOf(w)))
		}
	}
	if g.IsMatch(word("a")) || g.IsMatch(word("c")) || g.IsMatch(word("b")) {
		t.Fatalf("minimize introduced spurious matches")
	}
}

// BenchmarkEliminate measures state elimination in isolation. Eliminate
// consumes its graph argument — after it returns, g's root has a single
// child edge and can't be fed back in — so each iteration rebuilds a fresh
// minimized graph outside the timed portion.
func BenchmarkEliminate(b *testing.B) {
	ws := make([]Word, 200)
	for i := range ws {
		ws[i] = word(fmt.Sprintf("word%04d", i))
	}
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := FromWordsMinimized(ws)
		b.StartTimer()
		_ = Eliminate(g)
	}
}

func TestEliminateSimpleAlternation(t *testing.T) {
	g := FromWordsMinimized(words("a", "b", "c"))
	label := Eliminate(g)
	got := label.Optimize().Regex()
	if got != "[a-c]" {
		t.Fatalf("got %q want [a-c]", got)
	}
}

func TestEliminatePrefixSuffixFactoring(t *testing.T) {
	g := FromWordsMinimized(words("ab", "bc", "b", "abc"))
	label := Eliminate(g)
	got := label.Optimize().Regex()
	if got != "a?bc?" {
		t.Fatalf("got %q want a?bc?", got)
	}
}

func TestEliminateTerminatesWithSingleRootEdge(t *testing.T) {
	g := FromWordsMinimized(words("1a", "1b", "2a", "2b"))
	label := Eliminate(g)
	if len(g.root.children) != 1 {
		t.Fatalf("root should have exactly one child edge after elimination, got %d", len(g.root.children))
	}
	got := label.Optimize().Regex()
	if got != "[12][ab]" {
		t.Fatalf("got %q want [12][ab]", got)
	}
}
