package translator

import "unicode"

// Preprocessor directives and namespace imports are recognized only so they
// can be discarded; nothing is ever expanded or resolved. An #include'd
// header contributes nothing to the translation, and a #define'd macro is
// simply absent from the token stream.

// directiveWords lists the directive names the lexer discards to end of line.
var directiveWords = map[string]bool{
	"include": true,
	"define":  true,
	"ifdef":   true,
	"ifndef":  true,
	"endif":   true,
	"pragma":  true,
	"error":   true,
}

// skipDirective handles a '#' at the current position. When the word after
// the '#' names a known directive, the rest of the line is discarded and
// true is returned. Otherwise the lexer is rewound so the '#' receives the
// usual unrecognized-character treatment.
func (l *Lexer) skipDirective() bool {
	savePos, saveLine := l.pos, l.line
	l.advance() // '#'
	for l.peek() == ' ' || l.peek() == '\t' {
		l.advance()
	}
	start := l.pos
	for l.pos < len(l.src) && unicode.IsLetter(l.peek()) {
		l.advance()
	}
	if !directiveWords[string(l.src[start:l.pos])] {
		l.pos, l.line = savePos, saveLine
		return false
	}
	for l.pos < len(l.src) && l.peek() != '\n' {
		l.advance()
	}
	return true
}

// skipNamespaceImport is called once the word "using" has been scanned. It
// discards a trivial namespace import (`using namespace name ;`) and reports
// whether it consumed one. On any shape mismatch the lexer is rewound and
// "using" stands as an ordinary identifier.
func (l *Lexer) skipNamespaceImport() bool {
	savePos, saveLine := l.pos, l.line

	l.skipWhitespace()
	if !unicode.IsLetter(l.peek()) && l.peek() != '_' {
		l.pos, l.line = savePos, saveLine
		return false
	}
	if l.scanIdent().Lexeme != "namespace" {
		l.pos, l.line = savePos, saveLine
		return false
	}
	l.skipWhitespace()
	if !unicode.IsLetter(l.peek()) && l.peek() != '_' {
		l.pos, l.line = savePos, saveLine
		return false
	}
	l.scanIdent() // the namespace name; which one does not matter
	l.skipWhitespace()
	if l.peek() != ';' {
		l.pos, l.line = savePos, saveLine
		return false
	}
	l.advance()
	return true
}
