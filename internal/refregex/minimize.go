package refregex

// Minimize runs Hopcroft-style partition refinement over d and returns the
// quotient automaton. d is a partial automaton (see DFA); refinement treats
// a missing transition as leading nowhere, never as a merge condition.
func Minimize(d *DFA) *DFA {
	if d == nil || d.Start == nil {
		return d
	}

	acc, non := map[*dfaState]struct{}{}, map[*dfaState]struct{}{}
	for _, s := range d.States {
		if s.accept {
			acc[s] = struct{}{}
		} else {
			non[s] = struct{}{}
		}
	}

	var partitions []map[*dfaState]struct{}
	if len(acc) != 0 {
		partitions = append(partitions, acc)
	}
	if len(non) != 0 {
		partitions = append(partitions, non)
	}

	work := make([]int, len(partitions))
	for i := range work {
		work[i] = i
	}

	contains := func(set map[*dfaState]struct{}, s *dfaState) bool {
		_, ok := set[s]
		return ok
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		A := partitions[idx]

		for _, c := range d.Alpha {
			X := map[*dfaState]struct{}{}
			for _, s := range d.States {
				if t, ok := s.trans[c]; ok && contains(A, t) {
					X[s] = struct{}{}
				}
			}

			for pIdx := 0; pIdx < len(partitions); pIdx++ {
				Y := partitions[pIdx]
				inter, diff := map[*dfaState]struct{}{}, map[*dfaState]struct{}{}
				for s := range Y {
					if contains(X, s) {
						inter[s] = struct{}{}
					} else {
						diff[s] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				partitions[pIdx] = inter
				partitions = append(partitions, diff)

				work = append(work, pIdx, len(partitions)-1)
			}
		}
	}

	representative := map[*dfaState]*dfaState{}
	reps := make([]*dfaState, len(partitions))
	for i, P := range partitions {
		var first *dfaState
		for s := range P {
			first = s
			break
		}
		rep := &dfaState{id: i, accept: first.accept, trans: map[rune]*dfaState{}}
		reps[i] = rep
		for s := range P {
			representative[s] = rep
		}
	}

	for old, rep := range representative {
		for c, to := range old.trans {
			rep.trans[c] = representative[to]
		}
	}

	return &DFA{Start: representative[d.Start], States: reps, Alpha: d.Alpha}
}
