package refregex

import (
	"container/list"
	"fmt"
	"sort"
)

type dfaState struct {
	id     int
	accept bool
	trans  map[rune]*dfaState
}

// DFA is a (possibly partial) deterministic automaton: a missing entry in
// trans means no transition, not a transition to a dead state. Consumers
// that need a total function (Complement, Product) call complete first.
type DFA struct {
	Start  *dfaState
	States []*dfaState
	Alpha  []rune
}

func epsilonClosure(set map[*nfaState]struct{}) map[*nfaState]struct{} {
	stack := list.New()
	for s := range set {
		stack.PushBack(s)
	}
	for stack.Len() > 0 {
		elem := stack.Remove(stack.Back()).(*nfaState)
		for _, e := range elem.edges {
			if e.symbol == 0 {
				if _, ok := set[e.to]; !ok {
					set[e.to] = struct{}{}
					stack.PushBack(e.to)
				}
			}
		}
	}
	return set
}

func moveNFA(set map[*nfaState]struct{}, sym rune) map[*nfaState]struct{} {
	res := make(map[*nfaState]struct{})
	for s := range set {
		for _, e := range s.edges {
			switch {
			case e.symbol == sym:
				res[e.to] = struct{}{}
			case e.symbol == -1:
				for _, r := range e.set {
					if r == sym {
						res[e.to] = struct{}{}
						break
					}
				}
			}
		}
	}
	return res
}

func hasAccept(set map[*nfaState]struct{}) bool {
	for s := range set {
		if s.accept {
			return true
		}
	}
	return false
}

// nfaToDFA is the standard subset construction.
func nfaToDFA(start *nfaState, alpha []rune) *DFA {
	initSet := epsilonClosure(map[*nfaState]struct{}{start: {}})
	key := func(set map[*nfaState]struct{}) string {
		ids := make([]int, 0, len(set))
		for s := range set {
			ids = append(ids, s.id)
		}
		sort.Ints(ids)
		return fmt.Sprint(ids)
	}

	mp := map[string]*dfaState{}
	dStart := &dfaState{id: 0, trans: map[rune]*dfaState{}, accept: hasAccept(initSet)}
	mp[key(initSet)] = dStart

	queue := []map[*nfaState]struct{}{initSet}
	states := []*dfaState{dStart}
	for len(queue) > 0 {
		curSet := queue[0]
		queue = queue[1:]
		curD := mp[key(curSet)]
		for _, sym := range alpha {
			moveSet := moveNFA(curSet, sym)
			if len(moveSet) == 0 {
				continue
			}
			clo := epsilonClosure(moveSet)
			k := key(clo)
			d, exists := mp[k]
			if !exists {
				d = &dfaState{id: len(states), trans: map[rune]*dfaState{}, accept: hasAccept(clo)}
				mp[k] = d
				states = append(states, d)
				queue = append(queue, clo)
			}
			curD.trans[sym] = d
		}
	}
	return &DFA{Start: dStart, States: states, Alpha: alpha}
}
