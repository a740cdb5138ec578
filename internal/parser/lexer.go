package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenOpen
	tokenClose
	tokenPipe
	tokenEquals
	tokenLiteral // quoted text, unescaped
	tokenMacro   // #name
	tokenRange   // a..z
	tokenWord    // bare word, used for operator names
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) describe() string {
	switch t.kind {
	case tokenEOF:
		return "end of pattern"
	case tokenLiteral:
		return fmt.Sprintf("literal %q", t.text)
	default:
		return fmt.Sprintf("%q", t.text)
	}
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		l.pos += size
	}
	if l.pos >= len(l.src) {
		return token{kind: tokenEOF, pos: l.pos}, nil
	}
	start := l.pos
	r, size := utf8.DecodeRuneInString(l.src[l.pos:])
	switch r {
	case '[':
		l.pos += size
		return token{kind: tokenOpen, text: "[", pos: start}, nil
	case ']':
		l.pos += size
		return token{kind: tokenClose, text: "]", pos: start}, nil
	case '|':
		l.pos += size
		return token{kind: tokenPipe, text: "|", pos: start}, nil
	case '=':
		l.pos += size
		return token{kind: tokenEquals, text: "=", pos: start}, nil
	case '\'':
		return l.quoted()
	case '#':
		l.pos += size
		name := l.word()
		if name == "" {
			return token{}, fmt.Errorf("remex: empty macro name at offset %d", start)
		}
		return token{kind: tokenMacro, text: "#" + name, pos: start}, nil
	}
	text := l.word()
	if _, _, ok := splitRange(text); ok {
		return token{kind: tokenRange, text: text, pos: start}, nil
	}
	return token{kind: tokenWord, text: text, pos: start}, nil
}

// word consumes a run of characters up to whitespace or a structural
// character.
func (l *lexer) word() string {
	begin := l.pos
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if unicode.IsSpace(r) || strings.ContainsRune("[]|='#", r) {
			break
		}
		l.pos += size
	}
	return l.src[begin:l.pos]
}

func (l *lexer) quoted() (token, error) {
	start := l.pos
	l.pos++ // opening quote
	var b strings.Builder
	for l.pos < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
		switch r {
		case '\'':
			return token{kind: tokenLiteral, text: b.String(), pos: start}, nil
		case '\\':
			if l.pos >= len(l.src) {
				return token{}, fmt.Errorf("remex: unterminated escape at offset %d", l.pos)
			}
			e, esize := utf8.DecodeRuneInString(l.src[l.pos:])
			l.pos += esize
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '\'':
				b.WriteRune(e)
			default:
				return token{}, fmt.Errorf("remex: unknown escape \\%c at offset %d", e, l.pos-esize)
			}
		default:
			b.WriteRune(r)
		}
	}
	return token{}, fmt.Errorf("remex: unterminated literal at offset %d", start)
}

// splitRange recognizes range tokens of the form a..z.
func splitRange(s string) (lo, hi rune, ok bool) {
	rs := []rune(s)
	if len(rs) == 4 && rs[1] == '.' && rs[2] == '.' && rs[0] != '.' && rs[3] != '.' {
		return rs[0], rs[3], true
	}
	return 0, 0, false
}
