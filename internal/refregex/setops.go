package refregex

import "sort"

// complete returns d with every state given a transition for every symbol
// in alpha, routing anything missing to a single dead (non-accepting,
// self-looping) state. Complement and Product need a total function; d as
// produced by nfaToDFA usually isn't one, since unreachable symbols are
// simply omitted rather than wired to a sink.
func complete(d *DFA, alpha []rune) *DFA {
	states := make([]*dfaState, len(d.States))
	for i, s := range d.States {
		states[i] = &dfaState{id: s.id, accept: s.accept, trans: map[rune]*dfaState{}}
	}
	dead := &dfaState{id: len(states), accept: false, trans: map[rune]*dfaState{}}
	for _, c := range alpha {
		dead.trans[c] = dead
	}
	for i, s := range d.States {
		for _, c := range alpha {
			if t, ok := s.trans[c]; ok {
				states[i].trans[c] = states[t.id]
			} else {
				states[i].trans[c] = dead
			}
		}
	}
	return &DFA{Start: states[d.Start.id], States: append(states, dead), Alpha: alpha}
}

// Complement assumes d is total over d.Alpha (call complete first if not).
func Complement(d *DFA) *DFA {
	states := make([]*dfaState, len(d.States))
	for i, s := range d.States {
		states[i] = &dfaState{id: i, accept: !s.accept, trans: map[rune]*dfaState{}}
	}
	for i, s := range d.States {
		for c, t := range s.trans {
			states[i].trans[c] = states[t.id]
		}
	}
	return &DFA{Start: states[d.Start.id], States: states, Alpha: d.Alpha}
}

// Product builds the synchronized product of a and b over their combined,
// completed alphabet, labeling each pair state's acceptance with op. Both
// inputs must be total over the combined alphabet.
func Product(a, b *DFA, op func(x, y bool) bool) *DFA {
	type pair struct{ i, j int }
	mp := map[pair]*dfaState{}
	startPair := pair{a.Start.id, b.Start.id}
	start := &dfaState{id: 0, accept: op(a.Start.accept, b.Start.accept), trans: map[rune]*dfaState{}}
	mp[startPair] = start

	queue := []pair{startPair}
	states := []*dfaState{start}
	alpha := unionRunes(a.Alpha, b.Alpha)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		cur := mp[p]
		for _, c := range alpha {
			ta, oka := a.States[p.i].trans[c]
			tb, okb := b.States[p.j].trans[c]
			if !oka || !okb {
				continue
			}
			np := pair{ta.id, tb.id}
			ns, exists := mp[np]
			if !exists {
				ns = &dfaState{id: len(states), accept: op(ta.accept, tb.accept), trans: map[rune]*dfaState{}}
				mp[np] = ns
				states = append(states, ns)
				queue = append(queue, np)
			}
			cur.trans[c] = ns
		}
	}
	return &DFA{Start: start, States: states, Alpha: alpha}
}

func unionRunes(a, b []rune) []rune {
	m := map[rune]struct{}{}
	for _, r := range a {
		m[r] = struct{}{}
	}
	for _, r := range b {
		m[r] = struct{}{}
	}
	out := make([]rune, 0, len(m))
	for r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// hasReachableAccept reports whether any accepting state of d is reachable
// from its start state.
func hasReachableAccept(d *DFA) bool {
	if d == nil || d.Start == nil {
		return false
	}
	seen := map[*dfaState]bool{d.Start: true}
	queue := []*dfaState{d.Start}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.accept {
			return true
		}
		for _, t := range s.trans {
			if !seen[t] {
				seen[t] = true
				queue = append(queue, t)
			}
		}
	}
	return false
}

// Equivalent reports whether a and b accept exactly the same language, by
// completing both over their combined alphabet and checking that their
// symmetric difference has no reachable accepting state.
func Equivalent(a, b *Regex) bool {
	alpha := unionRunes(a.dfa.Alpha, b.dfa.Alpha)
	ca, cb := complete(a.dfa, alpha), complete(b.dfa, alpha)
	diff := Product(ca, cb, func(x, y bool) bool { return x != y })
	return !hasReachableAccept(diff)
}
