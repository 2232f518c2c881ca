package translator

import (
	"math"
	"strconv"
	"unicode"
)

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"int":      INT,
	"float":    FLOAT,
	"double":   DOUBLE,
	"char":     CHAR,
	"bool":     BOOL,
	"string":   STRING,
	"void":     VOID,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"return":   RETURN,
	"break":    BREAK,
	"continue": CONTINUE,
	"cin":      CIN,
	"cout":     COUT,
	"endl":     ENDL,
	"class":    CLASS,
	"true":     TRUE,
	"false":    FALSE,
}

// Lexer holds all mutable state for a single scanning pass over src.
// Scanning never aborts: anything the lexer cannot make sense of becomes an
// advisory Diagnostic, exactly one character is skipped, and scanning resumes.
type Lexer struct {
	src   []rune
	pos   int // index of the next rune to consume
	line  int // current 1-based source line
	diags []Diagnostic
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// report records an advisory diagnostic against a source line.
func (l *Lexer) report(line int, msg string) {
	l.diags = append(l.diags, Diagnostic{Stage: "lex", Line: line, Message: msg})
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// runeAt returns the rune at an absolute index, or 0 past the end.
func (l *Lexer) runeAt(i int) rune {
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// skipLineComment discards everything from the current position to end-of-line.
// The opening "//" must already have been consumed.
func (l *Lexer) skipLineComment() {
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
}

// skipBlockComment discards everything up to and including the closing "*/".
// The opening "/*" must already have been consumed. A comment left open at
// end of input is reported against its opening line and the rest of the
// input is consumed.
func (l *Lexer) skipBlockComment() {
	startLine := l.line
	for l.pos < len(l.src) {
		if l.peek() == '*' && l.peek2() == '/' {
			l.advance() // *
			l.advance() // /
			return
		}
		l.advance()
	}
	l.report(startLine, "unterminated block comment")
}

// scanIdent collects a full identifier or keyword token.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line := l.line
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line}
}

// scanNumber collects an integer or float literal. A literal is a float when
// it contains a decimal point or an exponent part; otherwise it is an
// integer. The first digit (or the '.' of a leading-dot float) must still be
// at l.peek().
func (l *Lexer) scanNumber() Token {
	line := l.line
	start := l.pos
	isFloat := false

	for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' {
		isFloat = true
		l.advance()
		for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		next := l.peek2()
		signed := next == '+' || next == '-'
		digitPos := l.pos + 1
		if signed {
			digitPos++
		}
		if unicode.IsDigit(l.runeAt(digitPos)) {
			isFloat = true
			l.advance() // e
			if signed {
				l.advance()
			}
			for l.pos < len(l.src) && unicode.IsDigit(l.peek()) {
				l.advance()
			}
		}
	}

	lexeme := string(l.src[start:l.pos])
	if isFloat {
		val, err := strconv.ParseFloat(lexeme, 64)
		if err != nil || math.IsInf(val, 0) {
			l.report(line, "float literal "+lexeme+" out of range")
			val = 0
		}
		return Token{Type: FLOAT_LIT, Lexeme: lexeme, Line: line, Float: val}
	}
	val, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		l.report(line, "integer literal "+lexeme+" out of range")
		val = math.MaxInt64
	}
	return Token{Type: INT_LIT, Lexeme: lexeme, Line: line, Int: val}
}

// scanString collects a string literal "..." keeping the quotes and any
// escape sequences exactly as written. On a malformed literal (newline or
// end of input before the closing quote) it reports, rewinds to just past
// the opening quote, and signals failure so scanning resumes there.
func (l *Lexer) scanString() (Token, bool) {
	line := l.line
	start := l.pos
	l.advance() // consume opening "

	for l.pos < len(l.src) {
		r := l.peek()
		if r == '"' {
			l.advance()
			return Token{Type: STRING_LIT, Lexeme: string(l.src[start:l.pos]), Line: line}, true
		}
		if r == '\n' {
			break
		}
		if r == '\\' {
			l.advance()
			if l.peek() == '\n' || l.pos >= len(l.src) {
				break
			}
		}
		l.advance()
	}

	l.report(line, "unterminated string literal")
	l.pos = start + 1
	l.line = line
	return Token{}, false
}

// scanChar collects a character literal 'c' or '\c', quotes kept and the
// escape untouched. Malformed literals report and rewind like scanString.
func (l *Lexer) scanChar() (Token, bool) {
	line := l.line
	start := l.pos
	l.advance() // consume opening '

	ok := false
	switch r := l.peek(); {
	case r == '\\':
		l.advance()
		if l.peek() != '\n' && l.pos < len(l.src) {
			l.advance()
			ok = true
		}
	case r != '\'' && r != '\n' && r != 0:
		l.advance()
		ok = true
	}
	if ok && l.peek() == '\'' {
		l.advance()
		return Token{Type: CHAR_LIT, Lexeme: string(l.src[start:l.pos]), Line: line}, true
	}

	l.report(line, "malformed character literal")
	l.pos = start + 1
	l.line = line
	return Token{}, false
}

// nextToken skips whitespace, comments, and discarded units, then returns
// the next Token. It always produces a token; malformed input is reported
// and skipped.
func (l *Lexer) nextToken() Token {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.src) {
			return Token{Type: EOF, Lexeme: "", Line: l.line}
		}
		if l.peek() == '/' && l.peek2() == '/' {
			l.advance()
			l.advance()
			l.skipLineComment()
			continue
		}
		if l.peek() == '/' && l.peek2() == '*' {
			l.advance()
			l.advance()
			l.skipBlockComment()
			continue
		}
		if l.peek() == '#' {
			if l.skipDirective() {
				continue
			}
			line := l.line
			l.advance() // skip exactly the '#'
			l.report(line, "unexpected character '#'")
			continue
		}

		ch := l.peek()
		line := l.line

		if unicode.IsLetter(ch) || ch == '_' {
			tok := l.scanIdent()
			if tok.Lexeme == "using" && l.skipNamespaceImport() {
				continue
			}
			return tok
		}
		if unicode.IsDigit(ch) || (ch == '.' && unicode.IsDigit(l.peek2())) {
			return l.scanNumber()
		}
		if ch == '"' {
			if tok, ok := l.scanString(); ok {
				return tok
			}
			continue
		}
		if ch == '\'' {
			if tok, ok := l.scanChar(); ok {
				return tok
			}
			continue
		}

		l.advance() // consume the character before the switch
		switch ch {
		case '{':
			return Token{Type: LBRACE, Lexeme: "{", Line: line}
		case '}':
			return Token{Type: RBRACE, Lexeme: "}", Line: line}
		case '(':
			return Token{Type: LPAREN, Lexeme: "(", Line: line}
		case ')':
			return Token{Type: RPAREN, Lexeme: ")", Line: line}
		case '[':
			return Token{Type: LBRACKET, Lexeme: "[", Line: line}
		case ']':
			return Token{Type: RBRACKET, Lexeme: "]", Line: line}
		case ';':
			return Token{Type: SEMICOLON, Lexeme: ";", Line: line}
		case ',':
			return Token{Type: COMMA, Lexeme: ",", Line: line}
		case '?':
			return Token{Type: QUESTION, Lexeme: "?", Line: line}
		case ':':
			return Token{Type: COLON, Lexeme: ":", Line: line}

		case '+':
			if l.peek() == '+' {
				l.advance()
				return Token{Type: PLUS_PLUS, Lexeme: "++", Line: line}
			}
			if l.peek() == '=' {
				l.advance()
				return Token{Type: PLUS_ASSIGN, Lexeme: "+=", Line: line}
			}
			return Token{Type: PLUS, Lexeme: "+", Line: line}
		case '-':
			if l.peek() == '-' {
				l.advance()
				return Token{Type: MINUS_MINUS, Lexeme: "--", Line: line}
			}
			if l.peek() == '=' {
				l.advance()
				return Token{Type: MINUS_ASSIGN, Lexeme: "-=", Line: line}
			}
			return Token{Type: MINUS, Lexeme: "-", Line: line}
		case '*':
			if l.peek() == '=' {
				l.advance()
				return Token{Type: STAR_ASSIGN, Lexeme: "*=", Line: line}
			}
			return Token{Type: STAR, Lexeme: "*", Line: line}
		case '/':
			if l.peek() == '=' {
				l.advance()
				return Token{Type: SLASH_ASSIGN, Lexeme: "/=", Line: line}
			}
			return Token{Type: SLASH, Lexeme: "/", Line: line}
		case '%':
			return Token{Type: PERCENT, Lexeme: "%", Line: line}
		case '&':
			if l.peek() == '&' {
				l.advance()
				return Token{Type: AND_LOGICAL, Lexeme: "&&", Line: line}
			}
			l.report(line, "unexpected character '&'")
		case '|':
			if l.peek() == '|' {
				l.advance()
				return Token{Type: OR_LOGICAL, Lexeme: "||", Line: line}
			}
			l.report(line, "unexpected character '|'")
		case '!':
			if l.peek() == '=' {
				l.advance()
				return Token{Type: NOT_EQ, Lexeme: "!=", Line: line}
			}
			return Token{Type: NOT, Lexeme: "!", Line: line}
		case '<':
			if l.peek() == '=' {
				l.advance()
				return Token{Type: LESS_EQ, Lexeme: "<=", Line: line}
			}
			if l.peek() == '<' {
				l.advance()
				return Token{Type: SHL_OP, Lexeme: "<<", Line: line}
			}
			return Token{Type: LESS, Lexeme: "<", Line: line}
		case '>':
			if l.peek() == '=' {
				l.advance()
				return Token{Type: GREATER_EQ, Lexeme: ">=", Line: line}
			}
			if l.peek() == '>' {
				l.advance()
				return Token{Type: SHR_OP, Lexeme: ">>", Line: line}
			}
			return Token{Type: GREATER, Lexeme: ">", Line: line}
		case '=':
			if l.peek() == '=' { // lookahead: distinguish = vs ==
				l.advance()
				return Token{Type: EQUALS, Lexeme: "==", Line: line}
			}
			return Token{Type: ASSIGN, Lexeme: "=", Line: line}
		default:
			l.report(line, "unexpected character "+strconv.QuoteRune(ch))
		}
	}
}

// Lex tokenises src and returns all tokens including the final EOF token,
// together with any advisory diagnostics. Lexing never fails; unrecognized
// input costs one diagnostic and one skipped character per occurrence.
func Lex(src string) ([]Token, []Diagnostic) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok := l.nextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, l.diags
		}
	}
}
