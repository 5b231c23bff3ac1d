package dafsa

import (
	"sort"
	"strconv"
)

// Minimize merges nodes whose outgoing edge sets are equal (label equality
// AND destination identity), recursing bottom-up from the leaf. This does
// not claim to produce a strictly minimal DAFSA in all cases; it only
// guarantees the post-minimization graph accepts the same language.
func Minimize(g *Graph) {
	var walk func(v *node)
	walk = func(v *node) {
		var parents []*node
		seen := map[*node]bool{}
		for _, e := range v.parents {
			if !seen[e.other] {
				seen[e.other] = true
				parents = append(parents, e.other)
			}
		}

		groups := map[string][]*node{}
		var order []string
		for _, p := range parents {
			sig := childrenSignature(p)
			if _, ok := groups[sig]; !ok {
				order = append(order, sig)
			}
			groups[sig] = append(groups[sig], p)
		}

		survivors := make([]*node, 0, len(order))
		for _, sig := range order {
			members := groups[sig]
			survivor := members[0]
			survivors = append(survivors, survivor)
			for _, redundant := range members[1:] {
				mergeNode(survivor, redundant)
			}
		}

		for _, p := range survivors {
			walk(p)
		}
	}
	walk(g.leaf)
}

// childrenSignature is a canonical string for a node's outgoing edge set,
// used as the equivalence-class key.
func childrenSignature(n *node) string {
	keys := make([]string, len(n.children))
	for i, e := range n.children {
		keys[i] = e.label.Regex() + "\x00" + strconv.Itoa(e.other.id)
	}
	sort.Strings(keys)
	var out string
	for _, k := range keys {
		out += k + "\x01"
	}
	return out
}

// mergeNode folds redundant into survivor: every edge that pointed at
// redundant is rewritten to point at survivor, and every edge redundant
// itself carried is rewritten to originate from survivor. redundant is left
// with no edges and is unreachable afterward.
func mergeNode(survivor, redundant *node) {
	for _, e := range redundant.children {
		removeEdgeByLabel(&e.other.parents, redundant, e.label)
		addEdgeUnique(survivor, e.other, e.label)
	}
	redundant.children = nil

	for _, e := range redundant.parents {
		from := e.other
		removeEdgeByLabel(&from.children, redundant, e.label)
		addEdgeUnique(from, survivor, e.label)
	}
	redundant.parents = nil
}
