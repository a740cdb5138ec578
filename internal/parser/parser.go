package parser

import "fmt"

// Parse parses pattern source into its syntax tree.
//
// Whitespace-separated terms concatenate. [...] groups; bare words at
// the start of a group name operators applied to the rest of it. |
// separates alternatives. '...' quotes a literal. #name references a
// macro and #name=term defines one. a..z is a character range.
func Parse(src string) (Node, error) {
	p := &parser{lex: &lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.tok.kind == tokenEOF {
		return Nothing{}, nil
	}
	node, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, fmt.Errorf("remex: unexpected %s at offset %d", p.tok.describe(), p.tok.pos)
	}
	return node, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// alternation := sequence ('|' sequence)*
func (p *parser) alternation() (Node, error) {
	first, err := p.sequence()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenPipe {
		return first, nil
	}
	items := []Node{first}
	for p.tok.kind == tokenPipe {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.sequence()
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	return Either{Items: items}, nil
}

// sequence := term* — stops at '|', ']' or end of input.
func (p *parser) sequence() (Node, error) {
	var items []Node
	for {
		switch p.tok.kind {
		case tokenEOF, tokenPipe, tokenClose:
			return Concat{Items: items}, nil
		}
		item, err := p.term()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *parser) term() (Node, error) {
	tok := p.tok
	switch tok.kind {
	case tokenOpen:
		return p.group()
	case tokenLiteral:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return Literal{String: tok.text}, nil
	case tokenMacro:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.kind != tokenEquals {
			return Macro{Name: tok.text}, nil
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		sub, err := p.term()
		if err != nil {
			return nil, err
		}
		return Def{Name: tok.text, Subregex: sub}, nil
	case tokenRange:
		if err := p.advance(); err != nil {
			return nil, err
		}
		lo, hi, _ := splitRange(tok.text)
		return Range{Start: lo, End: hi}, nil
	case tokenWord:
		return nil, fmt.Errorf("remex: operator %q must lead a [...] group (offset %d)", tok.text, tok.pos)
	}
	return nil, fmt.Errorf("remex: unexpected %s at offset %d", tok.describe(), tok.pos)
}

// group := '[' word* alternation ']' — leading bare words are operator
// applications over the rest of the group, innermost last.
func (p *parser) group() (Node, error) {
	open := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	var operators []string
	for p.tok.kind == tokenWord {
		operators = append(operators, p.tok.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	body, err := p.alternation()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenClose {
		return nil, fmt.Errorf("remex: unclosed group at offset %d", open.pos)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	for i := len(operators) - 1; i >= 0; i-- {
		body = Operator{Name: operators[i], Subregex: body}
	}
	return body, nil
}
