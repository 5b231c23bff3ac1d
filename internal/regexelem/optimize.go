package regexelem

// Optimize returns a semantically equivalent canonical form. Re-optimizing
// an already-optimized element is a no-op (idempotent).
func (e *Element) Optimize() *Element {
	if e.optimized {
		return e
	}
	switch e.kind {
	case Nothing, SingleCharacter:
		e.optimized = true
		return e
	case CharacterSet:
		return optimizeCharSet(e.set)
	case Sequence:
		return optimizeSequence(e.seq)
	case Maybe:
		return optimizeMaybe(e.elem)
	case Or:
		return optimizeOr(e.seq)
	default:
		panic("regexelem: unknown kind in Optimize")
	}
}

func optimizeCharSet(chars []uint16) *Element {
	uniq := sortedUniqueUint16(chars)
	switch len(uniq) {
	case 0:
		return NewNothing()
	case 1:
		return NewChar(uniq[0])
	default:
		e := &Element{kind: CharacterSet, set: uniq, optimized: true}
		return e
	}
}

// optimizeSequence flattens nested Sequence children and drops Nothing
// children, repeating until fixpoint, then collapses 0 children to Nothing
// and 1 child to that child.
func optimizeSequence(children []*Element) *Element {
	cur := children
	for {
		next := make([]*Element, 0, len(cur))
		changed := false
		for _, c := range cur {
			oc := c.Optimize()
			switch {
			case oc.kind == Sequence:
				next = append(next, oc.seq...)
				changed = true
			case oc.kind == Nothing:
				changed = true
			default:
				next = append(next, oc)
			}
		}
		cur = next
		if !changed {
			break
		}
	}
	switch len(cur) {
	case 0:
		return NewNothing()
	case 1:
		return cur[0]
	default:
		return &Element{kind: Sequence, seq: cur, optimized: true}
	}
}

// optimizeMaybe optimizes the child; Nothing collapses the whole Maybe to
// Nothing, and a child that is already Maybe is returned unchanged — ??
// collapses to ? idempotently rather than nesting further.
func optimizeMaybe(child *Element) *Element {
	inner := child.Optimize()
	if inner.kind == Nothing {
		return NewNothing()
	}
	if inner.kind == Maybe {
		return inner
	}
	return &Element{kind: Maybe, elem: inner, optimized: true}
}

// optimizeOr is the central algorithm: strip outer optionality, flatten
// nested Or/CharacterSet options, factor common prefixes/suffixes, fuse
// single-character options into one CharacterSet, then finalize.
func optimizeOr(rawOptions []*Element) *Element {
	isOptional := false

	// Step 1 — strip outer optionality.
	options := make([]*Element, 0, len(rawOptions))
	for _, o := range rawOptions {
		opt := o.Optimize()
		if opt.kind == Maybe {
			options = append(options, opt.elem)
			isOptional = true
		} else {
			options = append(options, opt)
		}
	}

	// Step 2 — flatten: expand nested Or options and CharacterSet options
	// into their constituent SingleCharacters, looping to a fixpoint.
	for {
		changed := false
		next := make([]*Element, 0, len(options))
		for _, o := range options {
			switch o.kind {
			case Or:
				next = append(next, o.seq...)
				changed = true
			case CharacterSet:
				for _, c := range o.set {
					next = append(next, NewChar(c).Optimize())
				}
				changed = true
			default:
				next = append(next, o)
			}
		}
		options = next
		if !changed {
			break
		}
	}

	// Step 3 — prefix/suffix factoring.
	options = factorPrefixesAndSuffixes(options)

	// Step 4 — character-set fusion.
	options = fuseCharacterOptions(options)

	// Step 5 — finalize.
	remaining := make([]*Element, 0, len(options))
	for _, o := range options {
		if o.kind == Nothing {
			isOptional = true
			continue
		}
		remaining = append(remaining, o)
	}

	var result *Element
	switch len(remaining) {
	case 0:
		return NewNothing()
	case 1:
		result = remaining[0]
	default:
		result = &Element{kind: Or, seq: remaining, optimized: true}
	}
	if isOptional {
		return optimizeMaybe(result)
	}
	return result
}

func maxSeqLen(options []*Element) int {
	max := 0
	for _, o := range options {
		if l := len(AsSequence(o)); l > max {
			max = l
		}
	}
	return max
}

func factorPrefixesAndSuffixes(options []*Element) []*Element {
	for xfixLen := 1; xfixLen < maxSeqLen(options); {
		next, prefixChanged := prefixPass(options, xfixLen)
		next, suffixChanged := suffixPass(next, xfixLen)
		options = next
		if !prefixChanged && !suffixChanged {
			xfixLen++
		}
	}
	return options
}

type xfixGroup struct {
	key     *Element
	members []*Element
}

// prefixPass groups options by the optimized Sequence of their first
// xfixLen elements. Options shorter than xfixLen, and singleton groups, are
// kept unchanged; groups of >= 2 become Sequence(prefix, Or(remainders)).
func prefixPass(options []*Element, xfixLen int) ([]*Element, bool) {
	var tooShort []*Element
	var order []string
	groups := map[string]*xfixGroup{}

	for _, o := range options {
		seq := AsSequence(o)
		if len(seq) < xfixLen {
			tooShort = append(tooShort, o)
			continue
		}
		key := NewSequence(seq[:xfixLen]).Optimize()
		k := key.Regex()
		g, ok := groups[k]
		if !ok {
			g = &xfixGroup{key: key}
			groups[k] = g
			order = append(order, k)
		}
		g.members = append(g.members, o)
	}

	changed := false
	out := make([]*Element, 0, len(options))
	for _, k := range order {
		g := groups[k]
		if len(g.members) < 2 {
			out = append(out, g.members...)
			continue
		}
		remainders := make([]*Element, len(g.members))
		for i, o := range g.members {
			seq := AsSequence(o)
			remainders[i] = NewSequence(seq[xfixLen:]).Optimize()
		}
		combined := NewSequence([]*Element{g.key, NewOr(remainders).Optimize()}).Optimize()
		out = append(out, combined)
		changed = true
	}
	out = append(out, tooShort...)
	return out, changed
}

// suffixPass mirrors prefixPass, keying on the last xfixLen elements and
// emitting Sequence(Or(remainders), suffix).
func suffixPass(options []*Element, xfixLen int) ([]*Element, bool) {
	var tooShort []*Element
	var order []string
	groups := map[string]*xfixGroup{}

	for _, o := range options {
		seq := AsSequence(o)
		if len(seq) < xfixLen {
			tooShort = append(tooShort, o)
			continue
		}
		key := NewSequence(seq[len(seq)-xfixLen:]).Optimize()
		k := key.Regex()
		g, ok := groups[k]
		if !ok {
			g = &xfixGroup{key: key}
			groups[k] = g
			order = append(order, k)
		}
		g.members = append(g.members, o)
	}

	changed := false
	out := make([]*Element, 0, len(options))
	for _, k := range order {
		g := groups[k]
		if len(g.members) < 2 {
			out = append(out, g.members...)
			continue
		}
		remainders := make([]*Element, len(g.members))
		for i, o := range g.members {
			seq := AsSequence(o)
			remainders[i] = NewSequence(seq[:len(seq)-xfixLen]).Optimize()
		}
		combined := NewSequence([]*Element{NewOr(remainders).Optimize(), g.key}).Optimize()
		out = append(out, combined)
		changed = true
	}
	out = append(out, tooShort...)
	return out, changed
}

// fuseCharacterOptions collects all SingleCharacter/CharacterSet options
// into one CharacterSet, replacing them with the fused result (dropped
// entirely if it optimizes to Nothing, i.e. there were none).
func fuseCharacterOptions(options []*Element) []*Element {
	var units []uint16
	out := make([]*Element, 0, len(options))
	for _, o := range options {
		switch o.kind {
		case SingleCharacter:
			units = append(units, o.char)
		case CharacterSet:
			units = append(units, o.set...)
		default:
			out = append(out, o)
		}
	}
	if len(units) == 0 {
		return out
	}
	fused := optimizeCharSet(units)
	if fused.kind == Nothing {
		return out
	}
	return append(out, fused)
}
