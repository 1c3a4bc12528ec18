package conf

import "strings"

// tokenKind classifies a token produced by the lexer.
type tokenKind int

const (
	tokIdent tokenKind = iota
	tokInt
	tokFloat
	tokTrue
	tokFalse
	tokString
	tokEqual
	tokNewline
	tokLeftSquare
	tokRightSquare
	tokComma
	tokEnd
	tokUnterminated
	tokInvalidChar
)

// token is a classified, positioned substring of the source text.
type token struct {
	kind tokenKind
	text string
	pos  int // byte offset of the first character
}

// lexer produces tokens from configuration source text on demand. It is a
// cursor over the input; tokens are requested lazily by the parser.
type lexer struct {
	src   string
	start int
	cur   int
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

func (l *lexer) atEnd() bool {
	return l.cur >= len(l.src)
}

func (l *lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *lexer) advance() byte {
	c := l.src[l.cur]
	l.cur++
	return c
}

func (l *lexer) make(kind tokenKind) token {
	return token{
		kind: kind,
		text: l.src[l.start:l.cur],
		pos:  l.start,
	}
}

// position computes the 1-based line and column of a token by counting
// newlines up to its offset.
func (l *lexer) position(t token) (line, col int) {
	before := l.src[:t.pos]
	line = strings.Count(before, "\n") + 1
	col = t.pos - strings.LastIndexByte(before, '\n')
	return line, col
}

// skip discards whitespace (except newlines, which are significant) and
// line comments.
func (l *lexer) skip() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.cur++
		case '#':
			for !l.atEnd() && l.peek() != '\n' {
				l.cur++
			}
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' || c == '-'
}

// number lexes a maximal run of digits, continuing past a '.' into a
// float. There is no exponent notation and no sign prefix.
func (l *lexer) number() token {
	for isDigit(l.peek()) {
		l.cur++
	}
	if l.peek() != '.' {
		return l.make(tokInt)
	}
	l.cur++
	for isDigit(l.peek()) {
		l.cur++
	}
	return l.make(tokFloat)
}

// ident lexes an identifier, reclassifying the spellings true and false
// as boolean literals.
func (l *lexer) ident() token {
	for isIdentChar(l.peek()) || isDigit(l.peek()) {
		l.cur++
	}
	switch l.src[l.start:l.cur] {
	case "true":
		return l.make(tokTrue)
	case "false":
		return l.make(tokFalse)
	default:
		return l.make(tokIdent)
	}
}

// stringToken lexes to the next '"'. There are no escape sequences.
// End-of-input before the closing quote yields an Unterminated token.
func (l *lexer) stringToken() token {
	for !l.atEnd() && l.peek() != '"' {
		l.cur++
	}
	if l.atEnd() {
		return l.make(tokUnterminated)
	}
	l.cur++
	return l.make(tokString)
}

// next returns the next token, or an End token once the input is
// exhausted. Lexical faults come back as error-kind tokens, never as
// panics.
func (l *lexer) next() token {
	l.skip()
	l.start = l.cur
	if l.atEnd() {
		return l.make(tokEnd)
	}
	c := l.advance()
	switch {
	case c == '=':
		return l.make(tokEqual)
	case c == '\n':
		return l.make(tokNewline)
	case c == '[':
		return l.make(tokLeftSquare)
	case c == ']':
		return l.make(tokRightSquare)
	case c == ',':
		return l.make(tokComma)
	case c == '"':
		return l.stringToken()
	case isDigit(c):
		return l.number()
	case isIdentChar(c):
		return l.ident()
	default:
		return l.make(tokInvalidChar)
	}
}
