package translator

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	IDENTIFIER // variable / function name
	INT_LIT    // decimal integer literal
	FLOAT_LIT  // literal with a decimal point or exponent
	STRING_LIT // string literal "..." (quotes kept, escapes untouched)
	CHAR_LIT   // char literal '...' (quotes kept, escapes untouched)

	// Type keywords
	INT    // "int"
	FLOAT  // "float"
	DOUBLE // "double"
	CHAR   // "char"
	BOOL   // "bool"
	STRING // "string"
	VOID   // "void"

	// Statement keywords
	IF       // "if"
	ELSE     // "else"
	WHILE    // "while"
	FOR      // "for"
	RETURN   // "return"
	BREAK    // "break"
	CONTINUE // "continue"
	CIN      // "cin"
	COUT     // "cout"
	ENDL     // "endl"
	CLASS    // "class"
	TRUE     // "true"
	FALSE    // "false"

	// Paired delimiters
	LBRACE   // {
	RBRACE   // }
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]

	// Punctuation
	SEMICOLON // ;
	COMMA     // ,
	QUESTION  // ?
	COLON     // :

	// Arithmetic operators
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %

	// Stream operators (chain separators only, never expression operators)
	SHL_OP // <<
	SHR_OP // >>

	// Logical operators
	AND_LOGICAL // &&
	OR_LOGICAL  // ||
	NOT         // !

	PLUS_PLUS   // ++
	MINUS_MINUS // --

	// Assignment / comparison  (order matters: ASSIGN before EQUALS)
	ASSIGN       // =
	PLUS_ASSIGN  // +=
	MINUS_ASSIGN // -=
	STAR_ASSIGN  // *=
	SLASH_ASSIGN // /=

	EQUALS  // ==
	NOT_EQ  // !=
	LESS    // <
	GREATER // >

	LESS_EQ    // <=
	GREATER_EQ // >=
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:          "EOF",
	IDENTIFIER:   "IDENTIFIER",
	INT_LIT:      "INT_LIT",
	FLOAT_LIT:    "FLOAT_LIT",
	STRING_LIT:   "STRING_LIT",
	CHAR_LIT:     "CHAR_LIT",
	INT:          "INT",
	FLOAT:        "FLOAT",
	DOUBLE:       "DOUBLE",
	CHAR:         "CHAR",
	BOOL:         "BOOL",
	STRING:       "STRING",
	VOID:         "VOID",
	IF:           "IF",
	ELSE:         "ELSE",
	WHILE:        "WHILE",
	FOR:          "FOR",
	RETURN:       "RETURN",
	BREAK:        "BREAK",
	CONTINUE:     "CONTINUE",
	CIN:          "CIN",
	COUT:         "COUT",
	ENDL:         "ENDL",
	CLASS:        "CLASS",
	TRUE:         "TRUE",
	FALSE:        "FALSE",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACKET:     "LBRACKET",
	RBRACKET:     "RBRACKET",
	SEMICOLON:    "SEMICOLON",
	COMMA:        "COMMA",
	QUESTION:     "QUESTION",
	COLON:        "COLON",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	STAR:         "STAR",
	SLASH:        "SLASH",
	PERCENT:      "PERCENT",
	SHL_OP:       "SHL_OP",
	SHR_OP:       "SHR_OP",
	AND_LOGICAL:  "AND_LOGICAL",
	OR_LOGICAL:   "OR_LOGICAL",
	NOT:          "NOT",
	PLUS_PLUS:    "PLUS_PLUS",
	MINUS_MINUS:  "MINUS_MINUS",
	ASSIGN:       "ASSIGN",
	PLUS_ASSIGN:  "PLUS_ASSIGN",
	MINUS_ASSIGN: "MINUS_ASSIGN",
	STAR_ASSIGN:  "STAR_ASSIGN",
	SLASH_ASSIGN: "SLASH_ASSIGN",
	EQUALS:       "EQUALS",
	NOT_EQ:       "NOT_EQ",
	LESS:         "LESS",
	GREATER:      "GREATER",
	LESS_EQ:      "LESS_EQ",
	GREATER_EQ:   "GREATER_EQ",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
//
// String and char literals keep their raw source text in Lexeme, quotes
// included; escape sequences pass through to the output uninterpreted.
// Numeric literals additionally carry their parsed value in Int or Float.
type Token struct {
	Type   TokenType
	Lexeme string // the exact source text that was matched
	Line   int    // 1-based source line

	Int   int64   // value when Type == INT_LIT
	Float float64 // value when Type == FLOAT_LIT
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}
