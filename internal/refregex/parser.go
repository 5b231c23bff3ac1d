package refregex

import "fmt"

type parser struct {
	lex  *lexer
	look token
}

func newParser(pat string) (*parser, error) {
	p := &parser{lex: newLexer(pat)}
	tok, err := p.lex.next()
	if err != nil {
		return nil, err
	}
	p.look = tok
	return p, nil
}

func (p *parser) scan() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.look = tok
	return nil
}

// parse is a Pratt parser over three precedence levels: union binds
// loosest, implicit concatenation next, and "?" binds tightest.
func (p *parser) parse() (*astNode, error) {
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.look.typ != tEOF {
		return nil, fmt.Errorf("refregex: unexpected trailing input at token %v", p.look.typ)
	}
	return n, nil
}

func startsAtom(t tokenType) bool {
	switch t {
	case tChar, tNonCap, tLBracket:
		return true
	default:
		return false
	}
}

func (p *parser) parseUnion() (*astNode, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.look.typ == tUnion {
		if err := p.scan(); err != nil {
			return nil, err
		}
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = &astNode{typ: nUnion, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseConcat() (*astNode, error) {
	left, err := p.parseSuffixed()
	if err != nil {
		return nil, err
	}
	for startsAtom(p.look.typ) {
		right, err := p.parseSuffixed()
		if err != nil {
			return nil, err
		}
		left = &astNode{typ: nConcat, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseSuffixed() (*astNode, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.look.typ == tQMark {
		if err := p.scan(); err != nil {
			return nil, err
		}
		return &astNode{typ: nQMark, left: atom}, nil
	}
	return atom, nil
}

func (p *parser) parseAtom() (*astNode, error) {
	switch p.look.typ {
	case tChar:
		n := charNode(p.look.ch)
		return n, p.scan()
	case tNonCap:
		if err := p.scan(); err != nil {
			return nil, err
		}
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if p.look.typ != tRParen {
			return nil, fmt.Errorf("refregex: expected ')'")
		}
		return inner, p.scan()
	case tLBracket:
		if err := p.scan(); err != nil {
			return nil, err
		}
		set, err := p.parseCharClass()
		if err != nil {
			return nil, err
		}
		return &astNode{typ: nSet, charset: set}, nil
	case tLParen:
		return nil, fmt.Errorf("refregex: capturing groups are not part of this dialect")
	default:
		return nil, fmt.Errorf("refregex: unexpected token %v", p.look.typ)
	}
}

// parseCharClass reads chars and hyphen-joined ranges up to the closing
// ']'. render.go never emits negation or an unescaped literal hyphen, so
// this dialect doesn't need to support them.
func (p *parser) parseCharClass() ([]rune, error) {
	set := map[rune]struct{}{}
	for p.look.typ != tRBracket {
		if p.look.typ != tChar {
			return nil, fmt.Errorf("refregex: invalid character class token %v", p.look.typ)
		}
		start := p.look.ch
		if err := p.scan(); err != nil {
			return nil, err
		}
		if p.look.typ == tDash {
			if err := p.scan(); err != nil {
				return nil, err
			}
			if p.look.typ != tChar {
				return nil, fmt.Errorf("refregex: incomplete range")
			}
			end := p.look.ch
			if err := p.scan(); err != nil {
				return nil, err
			}
			for r := start; r <= end; r++ {
				set[r] = struct{}{}
			}
			continue
		}
		set[start] = struct{}{}
	}
	if err := p.scan(); err != nil { // consume ']'
		return nil, err
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	return out, nil
}
