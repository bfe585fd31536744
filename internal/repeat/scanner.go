package repeat

import "unicode"

// Scanner tokenizes a repetition expression
type Scanner struct {
	source      []rune
	start       int
	current     int
	line        int
	column      int
	startColumn int
	tokens      []Token
}

// NewScanner creates a new Scanner for the given input
func NewScanner(input string) *Scanner {
	return &Scanner{
		source:      []rune(input),
		line:        1,
		column:      1,
		startColumn: 1,
	}
}

// ScanTokens scans the whole input and returns the token stream.
// Unrecognized text is emitted as chunk tokens; deciding whether a
// chunk is legal at its position is the parser's job.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startColumn = s.column
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{
		Type:   TOKEN_EOF,
		Line:   s.line,
		Column: s.column,
		Start:  s.current,
		End:    s.current,
	})
	return s.tokens
}

func (s *Scanner) scanToken() {
	r := s.advance()

	switch {
	case r == ' ' || r == '\t' || r == '\r':
		// skip
	case r == '\n':
		s.line++
		s.column = 1
	case r == '{':
		s.addToken(TOKEN_LBRACE)
	case r == '}':
		s.addToken(TOKEN_RBRACE)
	case r == '.':
		if s.match('.') {
			if s.match('=') {
				s.addToken(TOKEN_DOTDOTEQ)
			} else {
				s.addToken(TOKEN_DOTDOT)
			}
		} else {
			s.addToken(TOKEN_CHUNK)
		}
	case unicode.IsDigit(r):
		for unicode.IsDigit(s.peek()) {
			s.advance()
		}
		s.addToken(TOKEN_INT_LITERAL)
	case r == '_' || unicode.IsLetter(r):
		for s.peek() == '_' || unicode.IsLetter(s.peek()) || unicode.IsDigit(s.peek()) {
			s.advance()
		}
		if string(s.source[s.start:s.current]) == "in" {
			s.addToken(TOKEN_IN)
		} else {
			s.addToken(TOKEN_IDENTIFIER)
		}
	default:
		// Body text: consume up to the next character the grammar
		// could care about.
		for !s.isAtEnd() && !isDelimiter(s.peek()) {
			s.advance()
		}
		s.addToken(TOKEN_CHUNK)
	}
}

func isDelimiter(r rune) bool {
	return r == '{' || r == '}' || r == '.' || r == ' ' || r == '\t' ||
		r == '\r' || r == '\n' || r == '_' ||
		unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) advance() rune {
	r := s.source[s.current]
	s.current++
	s.column++
	return r
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	s.column++
	return true
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: string(s.source[s.start:s.current]),
		Line:   s.line,
		Column: s.startColumn,
		Start:  s.start,
		End:    s.current,
	})
}
