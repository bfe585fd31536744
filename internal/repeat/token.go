package repeat

import "fmt"

// TokenType represents the type of token in a repetition expression
type TokenType int

const (
	TOKEN_EOF TokenType = iota
	TOKEN_IDENTIFIER
	TOKEN_IN
	TOKEN_INT_LITERAL
	TOKEN_DOTDOT   // ..
	TOKEN_DOTDOTEQ // ..=
	TOKEN_LBRACE
	TOKEN_RBRACE
	TOKEN_CHUNK // any other run of body text
)

// String returns a human-readable name for the token type
func (t TokenType) String() string {
	switch t {
	case TOKEN_EOF:
		return "end of input"
	case TOKEN_IDENTIFIER:
		return "identifier"
	case TOKEN_IN:
		return "'in'"
	case TOKEN_INT_LITERAL:
		return "integer literal"
	case TOKEN_DOTDOT:
		return "'..'"
	case TOKEN_DOTDOTEQ:
		return "'..='"
	case TOKEN_LBRACE:
		return "'{'"
	case TOKEN_RBRACE:
		return "'}'"
	case TOKEN_CHUNK:
		return "text"
	default:
		return "unknown"
	}
}

// Token is a single lexeme with its position in the input.
// Start and End are rune offsets into the source, used to slice the
// raw body text back out without losing formatting.
type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
	Start  int
	End    int
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %d:%d", t.Type, t.Lexeme, t.Line, t.Column)
}
