package conf

import "strconv"

// parser is a recursive-descent parser over the token stream, with
// one-token lookahead. A fault in one statement is recorded and recovered
// from at the next statement boundary, so a single malformed line never
// aborts the whole file.
type parser struct {
	lex  *lexer
	cur  token
	prev token
	errs []ParseError
}

// Parse parses configuration source text into a Data map. Parsing always
// terminates and reports every independently-diagnosable fault in one
// pass. The returned Data is best-effort: statements that parsed cleanly
// are present even when the error list is non-empty. Callers that need
// strict semantics should discard the Data whenever errors were reported.
func Parse(text string) (Data, []ParseError) {
	p := &parser{lex: newLexer(text)}
	return p.parse()
}

// errorAt builds a ParseError positioned at the given token.
func (p *parser) errorAt(t token, kind ErrorKind) ParseError {
	line, col := p.lex.position(t)
	text := t.text
	if t.kind == tokEnd {
		text = "end"
	}
	return ParseError{
		Kind: kind,
		Line: line,
		Col:  col,
		Prev: p.prev.text,
		Cur:  text,
	}
}

// advance refills the lookahead. Lexical error tokens surface as parse
// errors through the normal return path.
func (p *parser) advance() error {
	p.prev = p.cur
	p.cur = p.lex.next()
	switch p.cur.kind {
	case tokUnterminated:
		return p.errorAt(p.cur, ErrUnterminatedString)
	case tokInvalidChar:
		return p.errorAt(p.cur, ErrUnexpectedCharacter)
	}
	return nil
}

// consume advances past a token of the expected kind, or fails with the
// given error kind anchored at the previous token.
func (p *parser) consume(kind tokenKind, errKind ErrorKind) error {
	if p.cur.kind != kind {
		return p.errorAt(p.prev, errKind)
	}
	return p.advance()
}

func (p *parser) match(kind tokenKind) (bool, error) {
	if p.cur.kind != kind {
		return false, nil
	}
	return true, p.advance()
}

func (p *parser) parse() (Data, []ParseError) {
	data := Data{}
	if err := p.advance(); err != nil {
		p.recover(err)
	}
	for p.cur.kind != tokEnd {
		if err := p.statement(data); err != nil {
			p.recover(err)
		}
	}
	return data, p.errs
}

// recover records the fault and resynchronizes to the next statement
// boundary, discarding tokens up to and including the next newline.
// Lexical faults inside the discarded run are dropped: one error per
// statement.
func (p *parser) recover(err error) {
	if pe, ok := err.(ParseError); ok {
		p.errs = append(p.errs, pe)
	}
	for p.cur.kind != tokEnd && p.cur.kind != tokNewline {
		_ = p.advance()
	}
	if p.cur.kind == tokNewline {
		_ = p.advance()
	}
}

// statement parses one line: a blank line, or ident '=' value newline.
// Later duplicate keys overwrite earlier ones.
func (p *parser) statement(data Data) error {
	if ok, err := p.match(tokNewline); ok || err != nil {
		return err
	}
	if err := p.consume(tokIdent, ErrNoIdent); err != nil {
		return err
	}
	key := p.prev.text
	if err := p.consume(tokEqual, ErrNoEqualAfterIdent); err != nil {
		return err
	}
	v, err := p.value()
	if err != nil {
		return err
	}
	if err := p.consume(tokNewline, ErrNoNewlineAfterValue); err != nil {
		return err
	}
	data[key] = v
	return nil
}

// value parses a scalar literal or a list. A missing value reports
// ErrNoValueAfterEqual; the kind enumeration is closed, so the same kind
// covers a missing list element after a comma.
func (p *parser) value() (Value, error) {
	switch p.cur.kind {
	case tokInt:
		text := p.cur.text
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		// The lexer only emits digit runs, so this cannot fail except on
		// range, where ParseInt returns the clamped extreme.
		n, _ := strconv.ParseInt(text, 10, 64)
		return Int(n), nil
	case tokFloat:
		text := p.cur.text
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		f, _ := strconv.ParseFloat(text, 64)
		return Float(f), nil
	case tokString:
		text := p.cur.text
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		// Strip the quote delimiters; the format has no escape sequences.
		return String(text[1 : len(text)-1]), nil
	case tokTrue, tokFalse:
		kind := p.cur.kind
		if err := p.advance(); err != nil {
			return Value{}, err
		}
		return Bool(kind == tokTrue), nil
	case tokLeftSquare:
		return p.list()
	default:
		return Value{}, p.errorAt(p.prev, ErrNoValueAfterEqual)
	}
}

// list parses '[' (value (',' value)*)? ']'. An empty list is the one
// place where the value production may be absent, signalled by an
// immediate closing bracket.
func (p *parser) list() (Value, error) {
	if err := p.advance(); err != nil { // consume '['
		return Value{}, err
	}
	var elems []Value
	if p.cur.kind != tokRightSquare {
		for {
			v, err := p.value()
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
			ok, err := p.match(tokComma)
			if err != nil {
				return Value{}, err
			}
			if !ok {
				break
			}
		}
	}
	if err := p.consume(tokRightSquare, ErrExpectedRightSquareOrComma); err != nil {
		return Value{}, err
	}
	return List(elems...), nil
}
