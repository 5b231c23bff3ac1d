package dafsa

import (
	"sort"

	"wordregex/internal/regexelem"
)

// Eliminate converts g to a single regex by iteratively bypassing every
// non-leaf node reachable from root, top-down and breadth-first: the next
// node eliminated is always the destination of the lexicographically
// smallest (by label) child-edge of root whose destination isn't the leaf.
// This order is required, not a style choice — eliminating root-adjacent
// nodes first aligns prefix factoring with the top of the resulting regex,
// which gives the Or optimizer its best chance at a longest-match-first
// alternation. g is consumed: after Eliminate returns, g's root has exactly
// one child edge (to leaf) and must not be reused.
func Eliminate(g *Graph) *regexelem.Element {
	for {
		v := nextToEliminate(g)
		if v == nil {
			break
		}
		eliminateNode(g, v)
	}

	if len(g.root.children) != 1 || g.root.children[0].other != g.leaf {
		panic("dafsa: state elimination did not terminate with a single root->leaf edge")
	}
	return g.root.children[0].label
}

func nextToEliminate(g *Graph) *node {
	children := append([]edge(nil), g.root.children...)
	sort.Slice(children, func(i, j int) bool {
		return children[i].label.Regex() < children[j].label.Regex()
	})
	for _, e := range children {
		if e.other != g.leaf {
			return e.other
		}
	}
	return nil
}

type bridgedPair struct{ parent, child *node }

func eliminateNode(g *Graph, v *node) {
	pEdges := append([]edge(nil), v.parents...)
	sort.Slice(pEdges, func(i, j int) bool { return pEdges[i].label.Regex() < pEdges[j].label.Regex() })
	cEdges := append([]edge(nil), v.children...)
	sort.Slice(cEdges, func(i, j int) bool { return cEdges[i].label.Regex() < cEdges[j].label.Regex() })

	var bridged []bridgedPair
	seen := map[bridgedPair]bool{}
	for _, pe := range pEdges {
		for _, ce := range cEdges {
			// Optimized immediately, not left raw: a later mergeParallelEdges
			// may feed this label into optimizeOr, whose prefix/suffix
			// factoring reads AsSequence(label) without recursively
			// flattening nested Sequences itself.
			label := regexelem.NewSequence([]*regexelem.Element{pe.label, ce.label}).Optimize()
			addEdge(pe.other, ce.other, label)
			pair := bridgedPair{pe.other, ce.other}
			if !seen[pair] {
				seen[pair] = true
				bridged = append(bridged, pair)
			}
		}
	}

	for _, pe := range pEdges {
		removeEdgeByLabel(&pe.other.children, v, pe.label)
	}
	for _, ce := range cEdges {
		removeEdgeByLabel(&ce.other.parents, v, ce.label)
	}
	v.parents = nil
	v.children = nil

	for _, pr := range bridged {
		mergeParallelEdges(pr.parent, pr.child)
	}
}

// mergeParallelEdges collapses every direct parent->child edge into a
// single Or-labeled edge, once more than one exists.
func mergeParallelEdges(parent, child *node) {
	var matching []edge
	for _, e := range parent.children {
		if e.other == child {
			matching = append(matching, e)
		}
	}
	if len(matching) < 2 {
		return
	}
	labels := make([]*regexelem.Element, len(matching))
	for i, e := range matching {
		labels[i] = e.label
	}
	for _, e := range matching {
		removeEdgeByLabel(&parent.children, child, e.label)
		removeEdgeByLabel(&child.parents, parent, e.label)
	}
	merged := regexelem.NewOr(labels).Optimize()
	addEdge(parent, child, merged)
}
