package translator

import (
	"math"
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
		diags    []Diagnostic
	}{
		{
			name:  "Empty",
			input: "",
			expected: []Token{
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Arithmetic and Comparison Operators",
			input: "+ - * / % = == != < > <= >=",
			expected: []Token{
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: MINUS, Lexeme: "-", Line: 1},
				{Type: STAR, Lexeme: "*", Line: 1},
				{Type: SLASH, Lexeme: "/", Line: 1},
				{Type: PERCENT, Lexeme: "%", Line: 1},
				{Type: ASSIGN, Lexeme: "=", Line: 1},
				{Type: EQUALS, Lexeme: "==", Line: 1},
				{Type: NOT_EQ, Lexeme: "!=", Line: 1},
				{Type: LESS, Lexeme: "<", Line: 1},
				{Type: GREATER, Lexeme: ">", Line: 1},
				{Type: LESS_EQ, Lexeme: "<=", Line: 1},
				{Type: GREATER_EQ, Lexeme: ">=", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Logical Operators",
			input: "&& || !",
			expected: []Token{
				{Type: AND_LOGICAL, Lexeme: "&&", Line: 1},
				{Type: OR_LOGICAL, Lexeme: "||", Line: 1},
				{Type: NOT, Lexeme: "!", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Compound Assignment and Step Operators",
			input: "+= -= *= /= ++ --",
			expected: []Token{
				{Type: PLUS_ASSIGN, Lexeme: "+=", Line: 1},
				{Type: MINUS_ASSIGN, Lexeme: "-=", Line: 1},
				{Type: STAR_ASSIGN, Lexeme: "*=", Line: 1},
				{Type: SLASH_ASSIGN, Lexeme: "/=", Line: 1},
				{Type: PLUS_PLUS, Lexeme: "++", Line: 1},
				{Type: MINUS_MINUS, Lexeme: "--", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Delimiters and Punctuation",
			input: "{ } ( ) [ ] ; , ? :",
			expected: []Token{
				{Type: LBRACE, Lexeme: "{", Line: 1},
				{Type: RBRACE, Lexeme: "}", Line: 1},
				{Type: LPAREN, Lexeme: "(", Line: 1},
				{Type: RPAREN, Lexeme: ")", Line: 1},
				{Type: LBRACKET, Lexeme: "[", Line: 1},
				{Type: RBRACKET, Lexeme: "]", Line: 1},
				{Type: SEMICOLON, Lexeme: ";", Line: 1},
				{Type: COMMA, Lexeme: ",", Line: 1},
				{Type: QUESTION, Lexeme: "?", Line: 1},
				{Type: COLON, Lexeme: ":", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Stream Operators",
			input: "cin >> x; cout << y << endl;",
			expected: []Token{
				{Type: CIN, Lexeme: "cin", Line: 1},
				{Type: SHR_OP, Lexeme: ">>", Line: 1},
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: SEMICOLON, Lexeme: ";", Line: 1},
				{Type: COUT, Lexeme: "cout", Line: 1},
				{Type: SHL_OP, Lexeme: "<<", Line: 1},
				{Type: IDENTIFIER, Lexeme: "y", Line: 1},
				{Type: SHL_OP, Lexeme: "<<", Line: 1},
				{Type: ENDL, Lexeme: "endl", Line: 1},
				{Type: SEMICOLON, Lexeme: ";", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Type Keywords",
			input: "int float double char bool string void",
			expected: []Token{
				{Type: INT, Lexeme: "int", Line: 1},
				{Type: FLOAT, Lexeme: "float", Line: 1},
				{Type: DOUBLE, Lexeme: "double", Line: 1},
				{Type: CHAR, Lexeme: "char", Line: 1},
				{Type: BOOL, Lexeme: "bool", Line: 1},
				{Type: STRING, Lexeme: "string", Line: 1},
				{Type: VOID, Lexeme: "void", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Statement Keywords",
			input: "if else while for return break continue class true false",
			expected: []Token{
				{Type: IF, Lexeme: "if", Line: 1},
				{Type: ELSE, Lexeme: "else", Line: 1},
				{Type: WHILE, Lexeme: "while", Line: 1},
				{Type: FOR, Lexeme: "for", Line: 1},
				{Type: RETURN, Lexeme: "return", Line: 1},
				{Type: BREAK, Lexeme: "break", Line: 1},
				{Type: CONTINUE, Lexeme: "continue", Line: 1},
				{Type: CLASS, Lexeme: "class", Line: 1},
				{Type: TRUE, Lexeme: "true", Line: 1},
				{Type: FALSE, Lexeme: "false", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Identifiers",
			input: "variableName _under_score x2",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "variableName", Line: 1},
				{Type: IDENTIFIER, Lexeme: "_under_score", Line: 1},
				{Type: IDENTIFIER, Lexeme: "x2", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Integers and Floats",
			input: "123 0 2.5 .5 5e3 1e-2 7.",
			expected: []Token{
				{Type: INT_LIT, Lexeme: "123", Line: 1, Int: 123},
				{Type: INT_LIT, Lexeme: "0", Line: 1, Int: 0},
				{Type: FLOAT_LIT, Lexeme: "2.5", Line: 1, Float: 2.5},
				{Type: FLOAT_LIT, Lexeme: ".5", Line: 1, Float: 0.5},
				{Type: FLOAT_LIT, Lexeme: "5e3", Line: 1, Float: 5000},
				{Type: FLOAT_LIT, Lexeme: "1e-2", Line: 1, Float: 0.01},
				{Type: FLOAT_LIT, Lexeme: "7.", Line: 1, Float: 7},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Exponent Needs a Digit",
			input: "3e",
			expected: []Token{
				{Type: INT_LIT, Lexeme: "3", Line: 1, Int: 3},
				{Type: IDENTIFIER, Lexeme: "e", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Integer Overflow Clamps",
			input: "99999999999999999999",
			expected: []Token{
				{Type: INT_LIT, Lexeme: "99999999999999999999", Line: 1, Int: math.MaxInt64},
				{Type: EOF, Lexeme: "", Line: 1},
			},
			diags: []Diagnostic{
				{Stage: "lex", Line: 1, Message: "integer literal 99999999999999999999 out of range"},
			},
		},
		{
			name:  "String Literal Keeps Quotes",
			input: `"hello"`,
			expected: []Token{
				{Type: STRING_LIT, Lexeme: `"hello"`, Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "String Escapes Pass Through",
			input: `"a\nb\t\"quoted\""`,
			expected: []Token{
				{Type: STRING_LIT, Lexeme: `"a\nb\t\"quoted\""`, Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Char Literals",
			input: `'a' '\n'`,
			expected: []Token{
				{Type: CHAR_LIT, Lexeme: `'a'`, Line: 1},
				{Type: CHAR_LIT, Lexeme: `'\n'`, Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Unterminated String Resumes After Quote",
			input: `"abc`,
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "abc", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
			diags: []Diagnostic{
				{Stage: "lex", Line: 1, Message: "unterminated string literal"},
			},
		},
		{
			name:  "Malformed Char Literal",
			input: `'ab'`,
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "ab", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
			diags: []Diagnostic{
				{Stage: "lex", Line: 1, Message: "malformed character literal"},
				{Stage: "lex", Line: 1, Message: "malformed character literal"},
			},
		},
		{
			name:  "Comments",
			input: "x // note\ny /* multi\nline */ z",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: IDENTIFIER, Lexeme: "y", Line: 2},
				{Type: IDENTIFIER, Lexeme: "z", Line: 3},
				{Type: EOF, Lexeme: "", Line: 3},
			},
		},
		{
			name:  "Unterminated Block Comment",
			input: "/* open",
			expected: []Token{
				{Type: EOF, Lexeme: "", Line: 1},
			},
			diags: []Diagnostic{
				{Stage: "lex", Line: 1, Message: "unterminated block comment"},
			},
		},
		{
			name:  "Directives Skipped",
			input: "#include <iostream>\n# pragma once\nint x;",
			expected: []Token{
				{Type: INT, Lexeme: "int", Line: 3},
				{Type: IDENTIFIER, Lexeme: "x", Line: 3},
				{Type: SEMICOLON, Lexeme: ";", Line: 3},
				{Type: EOF, Lexeme: "", Line: 3},
			},
		},
		{
			name:  "Unknown Directive Reports the Hash",
			input: "#whoknows\nx",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "whoknows", Line: 1},
				{Type: IDENTIFIER, Lexeme: "x", Line: 2},
				{Type: EOF, Lexeme: "", Line: 2},
			},
			diags: []Diagnostic{
				{Stage: "lex", Line: 1, Message: "unexpected character '#'"},
			},
		},
		{
			name:  "Using Namespace Skipped",
			input: "using namespace std;\nint x;",
			expected: []Token{
				{Type: INT, Lexeme: "int", Line: 2},
				{Type: IDENTIFIER, Lexeme: "x", Line: 2},
				{Type: SEMICOLON, Lexeme: ";", Line: 2},
				{Type: EOF, Lexeme: "", Line: 2},
			},
		},
		{
			name:  "Using Alone Stays an Identifier",
			input: "using x;",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "using", Line: 1},
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: SEMICOLON, Lexeme: ";", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Single Ampersand and Pipe Report",
			input: "a & b | c",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "a", Line: 1},
				{Type: IDENTIFIER, Lexeme: "b", Line: 1},
				{Type: IDENTIFIER, Lexeme: "c", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
			diags: []Diagnostic{
				{Stage: "lex", Line: 1, Message: "unexpected character '&'"},
				{Stage: "lex", Line: 1, Message: "unexpected character '|'"},
			},
		},
		{
			name:  "Unexpected Character",
			input: "int @ x;",
			expected: []Token{
				{Type: INT, Lexeme: "int", Line: 1},
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: SEMICOLON, Lexeme: ";", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
			diags: []Diagnostic{
				{Stage: "lex", Line: 1, Message: "unexpected character '@'"},
			},
		},
		{
			name:  "Adjacent Tokens",
			input: "x+y",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: PLUS, Lexeme: "+", Line: 1},
				{Type: IDENTIFIER, Lexeme: "y", Line: 1},
				{Type: EOF, Lexeme: "", Line: 1},
			},
		},
		{
			name:  "Line Numbers Across Blank Lines",
			input: "x\n\ny",
			expected: []Token{
				{Type: IDENTIFIER, Lexeme: "x", Line: 1},
				{Type: IDENTIFIER, Lexeme: "y", Line: 3},
				{Type: EOF, Lexeme: "", Line: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags := Lex(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Lex() tokens = %v, want %v", got, tt.expected)
			}
			if !reflect.DeepEqual(diags, tt.diags) {
				t.Errorf("Lex() diags = %v, want %v", diags, tt.diags)
			}
		})
	}
}
