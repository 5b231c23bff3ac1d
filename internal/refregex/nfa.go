package refregex

var stateID int

func nextStateID() int { stateID++; return stateID - 1 }

type nfaState struct {
	id     int
	edges  []*nfaEdge
	accept bool
}

type nfaEdge struct {
	symbol rune // -1 means "character class", ignored for plain chars
	set    []rune
	to     *nfaState
}

type nfaFrag struct {
	start *nfaState
	outs  []*nfaState
}

func newState() *nfaState { return &nfaState{id: nextStateID()} }

func patchOuts(outs []*nfaState, to *nfaState) {
	for _, s := range outs {
		s.edges = append(s.edges, &nfaEdge{symbol: 0, to: to})
	}
}

// buildNFA is Thompson's construction restricted to the node types this
// dialect's grammar produces.
func buildNFA(node *astNode) nfaFrag {
	switch node.typ {
	case nEmpty:
		s := newState()
		return nfaFrag{start: s, outs: []*nfaState{s}}
	case nChar:
		s1, s2 := newState(), newState()
		s1.edges = append(s1.edges, &nfaEdge{symbol: node.ch, to: s2})
		return nfaFrag{start: s1, outs: []*nfaState{s2}}
	case nSet:
		s1, s2 := newState(), newState()
		s1.edges = append(s1.edges, &nfaEdge{symbol: -1, set: node.charset, to: s2})
		return nfaFrag{start: s1, outs: []*nfaState{s2}}
	case nConcat:
		f1 := buildNFA(node.left)
		f2 := buildNFA(node.right)
		patchOuts(f1.outs, f2.start)
		return nfaFrag{start: f1.start, outs: f2.outs}
	case nUnion:
		s := newState()
		f1 := buildNFA(node.left)
		f2 := buildNFA(node.right)
		s.edges = append(s.edges, &nfaEdge{symbol: 0, to: f1.start}, &nfaEdge{symbol: 0, to: f2.start})
		outs := append(append([]*nfaState(nil), f1.outs...), f2.outs...)
		return nfaFrag{start: s, outs: outs}
	case nQMark:
		s := newState()
		f := buildNFA(node.left)
		s.edges = append(s.edges, &nfaEdge{symbol: 0, to: f.start})
		outs := append(append([]*nfaState(nil), f.outs...), s)
		return nfaFrag{start: s, outs: outs}
	default:
		panic("refregex: unknown ast node")
	}
}

func compileASTtoNFA(root *astNode) (start, accept *nfaState) {
	frag := buildNFA(root)
	accept = newState()
	accept.accept = true
	patchOuts(frag.outs, accept)
	return frag.start, accept
}
