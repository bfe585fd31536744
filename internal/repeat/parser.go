// Package repeat parses the repetition-expansion grammar
//
//	<var> in <start>..<end> { <body> }
//	<var> in <start>..=<end> { <body> }
//
// into a structured value. Only parsing and validation live here:
// expansion of the parsed range into repeated, variable-substituted
// bodies is an extension point this snapshot does not implement.
//
// TODO: implement Expand (substitute Var across the range and
// concatenate the bodies) once the substitution semantics are settled.
package repeat

import (
	"fmt"
	"strconv"
)

// Seq is a parsed repetition expression.
type Seq struct {
	Var       string
	Start     int64
	End       int64
	Inclusive bool   // true for ..=, false for ..
	Body      string // raw text between the braces, formatting preserved
}

// SyntaxError reports the first token that did not match the grammar.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Parser transforms a repetition token stream into a Seq
type Parser struct {
	source  []rune
	tokens  []Token
	current int
}

// Parse parses one repetition expression.
func Parse(input string) (*Seq, error) {
	scanner := NewScanner(input)
	p := &Parser{
		source: []rune(input),
		tokens: scanner.ScanTokens(),
	}
	return p.parseSeq()
}

func (p *Parser) parseSeq() (*Seq, error) {
	seq := &Seq{}

	name, err := p.consume(TOKEN_IDENTIFIER, "expected loop variable name")
	if err != nil {
		return nil, err
	}
	seq.Var = name.Lexeme

	if _, err := p.consume(TOKEN_IN, "expected 'in' after loop variable"); err != nil {
		return nil, err
	}

	if seq.Start, err = p.parseInt("expected range start"); err != nil {
		return nil, err
	}

	switch {
	case p.check(TOKEN_DOTDOT):
		p.advance()
	case p.check(TOKEN_DOTDOTEQ):
		p.advance()
		seq.Inclusive = true
	default:
		return nil, p.errorAt(p.peek(), "expected '..' or '..=' after range start")
	}

	if seq.End, err = p.parseInt("expected range end"); err != nil {
		return nil, err
	}

	open, err := p.consume(TOKEN_LBRACE, "expected '{' to open the body")
	if err != nil {
		return nil, err
	}

	closing, err := p.matchBrace()
	if err != nil {
		return nil, err
	}
	seq.Body = string(p.source[open.End:closing.Start])

	if !p.check(TOKEN_EOF) {
		return nil, p.errorAt(p.peek(), "unexpected input after body")
	}
	return seq, nil
}

// matchBrace consumes tokens until the brace opened just before the
// call is balanced, returning the closing token.
func (p *Parser) matchBrace() (Token, error) {
	depth := 1
	for !p.check(TOKEN_EOF) {
		tok := p.advance()
		switch tok.Type {
		case TOKEN_LBRACE:
			depth++
		case TOKEN_RBRACE:
			depth--
			if depth == 0 {
				return tok, nil
			}
		}
	}
	return Token{}, p.errorAt(p.peek(), "unterminated body: expected '}'")
}

func (p *Parser) parseInt(message string) (int64, error) {
	tok, err := p.consume(TOKEN_INT_LITERAL, message)
	if err != nil {
		return 0, err
	}
	v, perr := strconv.ParseInt(tok.Lexeme, 10, 64)
	if perr != nil {
		return 0, p.errorAt(tok, fmt.Sprintf("integer literal %q out of range", tok.Lexeme))
	}
	return v, nil
}

func (p *Parser) consume(tokenType TokenType, message string) (Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	tok := p.peek()
	return Token{}, p.errorAt(tok, fmt.Sprintf("%s, got %s", message, tok.Type))
}

func (p *Parser) check(tokenType TokenType) bool {
	return p.peek().Type == tokenType
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return tok
}

func (p *Parser) errorAt(tok Token, message string) error {
	return &SyntaxError{Message: message, Line: tok.Line, Column: tok.Column}
}
