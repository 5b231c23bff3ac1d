package refregex

import "strings"

// ToRegexp recovers a regex for d by the McNaughton-Yamada state-elimination
// construction. Only this package's own round-trip test uses it; the
// compiler under test builds its output a different way and this is never
// compared character-for-character against it.
func (d *DFA) ToRegexp() string {
	if d == nil || len(d.States) == 0 {
		return "∅"
	}

	n := len(d.States)
	R := make([][]string, n)
	for i := range R {
		R[i] = make([]string, n)
	}
	for _, s := range d.States {
		for c, t := range s.trans {
			lex := escapeRune(c)
			if R[s.id][t.id] == "" {
				R[s.id][t.id] = lex
			} else {
				R[s.id][t.id] += "|" + lex
			}
		}
	}

	start := d.Start.id
	var finals []int
	for _, s := range d.States {
		if s.accept {
			finals = append(finals, s.id)
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if j == k {
					continue
				}
				rik, rkk, rkj := R[i][k], R[k][k], R[k][j]
				if rik == "" || rkj == "" {
					continue
				}
				var middle string
				if rkk != "" {
					middle = "(" + rkk + ")*"
				}
				expr := regexAlt(rik) + middle + regexAlt(rkj)
				if R[i][j] == "" {
					R[i][j] = expr
				} else {
					R[i][j] += "|" + expr
				}
			}
		}
	}

	var parts []string
	for _, f := range finals {
		if part := R[start][f]; part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "∅"
	}
	return strings.Join(parts, "|")
}

func escapeRune(r rune) string {
	switch r {
	case '?', '|', '(', ')', '[', ']', '-':
		return "\\" + string(r)
	default:
		return string(r)
	}
}

func regexAlt(s string) string {
	if strings.ContainsRune(s, '|') {
		return "(" + s + ")"
	}
	return s
}
