package translator

import (
	"fmt"
	"strings"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program     = (funcDef | classDef | statement)* EOF
//	statement   = varDecl | assignment | incDecStmt | ifStmt | whileStmt
//	            | forStmt | breakStmt | continueStmt | returnStmt
//	            | outputStmt | inputStmt | block | exprStmt
//	varDecl     = type IDENTIFIER ("=" expression)? ";"
//	            | type IDENTIFIER "[" INT_LIT "]" ("=" "{" args "}")? ";"
//	assignment  = target ("=" | "+=" | "-=" | "*=" | "/=") expression ";"
//	target      = IDENTIFIER | IDENTIFIER "[" expression "]"
//	incDecStmt  = ("++" | "--") IDENTIFIER ";" | IDENTIFIER ("++" | "--") ";"
//	outputStmt  = "cout" ("<<" (expression | "endl"))+ ";"
//	inputStmt   = "cin" (">>" target)+ ";"
//	funcDef     = type IDENTIFIER "(" (type IDENTIFIER ("," type IDENTIFIER)*)? ")" block
//	classDef    = "class" IDENTIFIER "{" (varDecl | funcDef)* "}" ";"
//	expression  = ternary
//	ternary     = logical_or ("?" expression ":" expression)?
//	logical_or  = logical_and ("||" logical_and)*
//	logical_and = equality ("&&" equality)*
//	equality    = relational (("==" | "!=") relational)*
//	relational  = additive (("<" | ">" | "<=" | ">=") additive)*
//	additive    = multiplicative (("+" | "-") multiplicative)*
//	multiplicative = unary (("*" | "/" | "%") unary)*
//	unary       = ("-" | "!") unary | primary
//	primary     = literal | IDENTIFIER ("(" args ")" | "[" expression "]")?
//	            | "(" expression ")"
//
// "<<" and ">>" never appear inside expressions; they only separate chain
// items. "++" and "--" are built by the statement and for-part parsers and
// are not general expression operators. The first syntax error abandons the
// parse; Parse then hands back an empty Program alongside the error.
type Parser struct {
	tokens      []Token
	pos         int
	sourceLines []string
}

func NewParser(tokens []Token, rawSource string) *Parser {
	return &Parser{tokens: tokens, sourceLines: strings.Split(rawSource, "\n")}
}

// fmtError wraps an error message with the source line where the token appears.
func (p *Parser) fmtError(tok Token, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	lineIdx := tok.Line - 1 // Lines are 1-based

	snippet := "<source unavailable>"
	if lineIdx >= 0 && lineIdx < len(p.sourceLines) {
		snippet = strings.TrimSpace(p.sourceLines[lineIdx])
	}

	return fmt.Errorf("line %d: %s\n  |> %s", tok.Line, msg, snippet)
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// peekAt returns the token at the given offset from the current position.
func (p *Parser) peekAt(offset int) Token {
	if p.pos+offset >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos+offset]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns an error.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.advance()
	if tok.Type != tt {
		return tok, p.fmtError(tok, "expected %s, got %s (%q)", tt, tok.Type, tok.Lexeme)
	}
	return tok, nil
}

// isTypeToken reports whether tt is a declared-type keyword.
func isTypeToken(tt TokenType) bool {
	switch tt {
	case INT, FLOAT, DOUBLE, CHAR, BOOL, STRING, VOID:
		return true
	}
	return false
}

// isAssignOp reports whether tt is a plain or compound assignment operator.
func isAssignOp(tt TokenType) bool {
	switch tt {
	case ASSIGN, PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN:
		return true
	}
	return false
}

// compoundOp maps a compound assignment operator to its arithmetic operator.
func compoundOp(tt TokenType) TokenType {
	switch tt {
	case PLUS_ASSIGN:
		return PLUS
	case MINUS_ASSIGN:
		return MINUS
	case STAR_ASSIGN:
		return STAR
	case SLASH_ASSIGN:
		return SLASH
	}
	return tt
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseTernary()
}

// parseTernary handles cond ? then : else (lowest precedence).
func (p *Parser) parseTernary() (Expr, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != QUESTION {
		return cond, nil
	}
	p.advance() // ?
	thenExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Ternary{Cond: cond, Then: thenExpr, Else: elseExpr}, nil
}

// parseLogicalOr handles ||
func (p *Parser) parseLogicalOr() (Expr, error) {
	expr, err := p.parseLogicalAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == OR_LOGICAL {
		op := p.advance().Type
		right, err := p.parseLogicalAnd()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseLogicalAnd handles &&
func (p *Parser) parseLogicalAnd() (Expr, error) {
	expr, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == AND_LOGICAL {
		op := p.advance().Type
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op, Left: expr, Right: right}
	}
	return expr, nil
}

// parseEquality handles == and !=
func (p *Parser) parseEquality() (Expr, error) {
	expr, err := p.parseRelational()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == EQUALS || p.peek().Type == NOT_EQ {
		op := p.advance().Type
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op, Left: expr, Right: right}
	}

	return expr, nil
}

// parseRelational handles <, >, <=, and >=
func (p *Parser) parseRelational() (Expr, error) {
	expr, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == LESS || p.peek().Type == GREATER ||
		p.peek().Type == LESS_EQ || p.peek().Type == GREATER_EQ {
		op := p.advance().Type
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op, Left: expr, Right: right}
	}

	return expr, nil
}

// parseAdditive handles + and -
func (p *Parser) parseAdditive() (Expr, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}

	for {
		tt := p.peek().Type
		if tt != PLUS && tt != MINUS {
			break
		}
		op := p.advance().Type
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op, Left: expr, Right: right}
	}

	return expr, nil
}

// parseMultiplicative handles *, /, and %
func (p *Parser) parseMultiplicative() (Expr, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tt := p.peek().Type
		if tt != STAR && tt != SLASH && tt != PERCENT {
			break
		}
		op := p.advance().Type
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryOp{Op: op, Left: expr, Right: right}
	}

	return expr, nil
}

// parseUnary handles prefix - and !
func (p *Parser) parseUnary() (Expr, error) {
	if p.peek().Type == MINUS || p.peek().Type == NOT {
		op := p.advance().Type
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Op: op, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parsePrimary handles literals, variables, calls, indexing, and
// parenthesised expressions. The subset's postfix forms always bind to a
// name, so calls and indexes are resolved here rather than in a separate
// postfix level.
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case INT_LIT:
		p.advance()
		return &Literal{Kind: LitInt, Int: tok.Int, Text: tok.Lexeme}, nil

	case FLOAT_LIT:
		p.advance()
		return &Literal{Kind: LitFloat, Float: tok.Float, Text: tok.Lexeme}, nil

	case STRING_LIT:
		p.advance()
		return &Literal{Kind: LitString, Text: tok.Lexeme}, nil

	case CHAR_LIT:
		p.advance()
		return &Literal{Kind: LitChar, Text: tok.Lexeme}, nil

	case TRUE:
		p.advance()
		return &Literal{Kind: LitBool, Bool: true, Text: tok.Lexeme}, nil

	case FALSE:
		p.advance()
		return &Literal{Kind: LitBool, Bool: false, Text: tok.Lexeme}, nil

	case IDENTIFIER:
		p.advance()
		if p.peek().Type == LPAREN {
			p.advance()
			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			return &Call{Name: tok.Lexeme, Args: args}, nil
		}
		if p.peek().Type == LBRACKET {
			p.advance()
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(RBRACKET); err != nil {
				return nil, err
			}
			return &ArrayIndex{Name: tok.Lexeme, Index: index}, nil
		}
		return &Var{Name: tok.Lexeme}, nil

	case LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, p.fmtError(tok, "expected expression, got %s (%q)", tok.Type, tok.Lexeme)
	}
}

func (p *Parser) parseCallArgs() ([]Expr, error) {
	var args []Expr
	if p.peek().Type != RPAREN {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.peek().Type != COMMA {
				break
			}
			p.advance()
		}
	}

	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseBraceList parses { expr, expr, ... } for array initializers.
func (p *Parser) parseBraceList() ([]Expr, error) {
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}

	elements := []Expr{}
	if p.peek().Type != RBRACE {
		for {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elements = append(elements, expr)

			if p.peek().Type != COMMA {
				break
			}
			p.advance()
		}
	}

	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return elements, nil
}

// parseVarDecl handles scalar and array declarations. The leading type
// keyword must still be at p.peek().
func (p *Parser) parseVarDecl() (Stmt, error) {
	typeTok := p.advance()
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}

	if p.peek().Type == LBRACKET {
		p.advance()
		sizeTok, err := p.expect(INT_LIT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RBRACKET); err != nil {
			return nil, err
		}

		var init []Expr
		if p.peek().Type == ASSIGN {
			p.advance()
			init, err = p.parseBraceList()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &ArrayDecl{Type: typeTok.Lexeme, Name: nameTok.Lexeme, Size: sizeTok.Int, Init: init}, nil
	}

	var init Expr
	if p.peek().Type == ASSIGN {
		p.advance()
		init, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &VarDecl{Type: typeTok.Lexeme, Name: nameTok.Lexeme, Init: init}, nil
}

// buildAssign validates the target and lowers compound operators. Compound
// forms rebuild the target as a fresh copy on the right-hand side; only
// plain variables may take them, so the copy never aliases a subtree.
func (p *Parser) buildAssign(left Expr, op Token, val Expr) (Stmt, error) {
	switch target := left.(type) {
	case *Var:
		if op.Type == ASSIGN {
			return &Assign{Target: target, Value: val}, nil
		}
		lowered := &BinaryOp{Op: compoundOp(op.Type), Left: &Var{Name: target.Name}, Right: val}
		return &Assign{Target: target, Value: lowered}, nil

	case *ArrayIndex:
		if op.Type == ASSIGN {
			return &Assign{Target: target, Value: val}, nil
		}
		return nil, p.fmtError(op, "compound assignment needs a plain variable target")

	default:
		return nil, p.fmtError(op, "cannot assign to %s", left)
	}
}

// parseAssignment parses  target op expression ;
// The already-parsed left-hand side is passed in.
func (p *Parser) parseAssignment(left Expr) (Stmt, error) {
	op := p.advance()
	val, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return p.buildAssign(left, op, val)
}

// parseIncDec builds the ExprStmt form of `++x` / `x--`. Prefix form: the
// operator has been seen but not consumed. Postfix form: pass the parsed
// variable in base.
func (p *Parser) parseIncDec(base *Var) (Stmt, error) {
	op := p.advance()
	if base != nil {
		return &ExprStmt{Expr: &UnaryOp{Op: op.Type, Operand: base}}, nil
	}
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	return &ExprStmt{Expr: &UnaryOp{Op: op.Type, Operand: &Var{Name: nameTok.Lexeme}}}, nil
}

// parseReturn parses  return [expr] ;
// The leading RETURN token has already been consumed by parseStatement.
func (p *Parser) parseReturn() (Stmt, error) {
	if p.peek().Type == SEMICOLON {
		p.advance()
		return &Return{}, nil
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &Return{Value: expr}, nil
}

// parseBlock parses { stmt1; stmt2; ... }
// The leading LBRACE token has already been consumed.
func (p *Parser) parseBlock() (*Block, error) {
	var stmts []Stmt
	for p.peek().Type != RBRACE && p.peek().Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	return &Block{Stmts: stmts}, nil
}

// parseBody parses a control-construct body: either a braced block or a
// single statement, which is normalized to a one-statement Block.
func (p *Parser) parseBody() (*Block, error) {
	if p.peek().Type == LBRACE {
		p.advance()
		return p.parseBlock()
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	return &Block{Stmts: []Stmt{stmt}}, nil
}

// parseIf parses if ( cond ) body [ else elseBody ]
// The leading IF token has already been consumed.
func (p *Parser) parseIf() (Stmt, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	var elseBody *Block
	if p.peek().Type == ELSE {
		p.advance()
		elseBody, err = p.parseBody() // `else if` nests the next If here
		if err != nil {
			return nil, err
		}
	}

	return &If{Cond: cond, Body: body, Else: elseBody}, nil
}

// parseWhile parses while ( cond ) body
// The leading WHILE token has already been consumed.
func (p *Parser) parseWhile() (Stmt, error) {
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return &While{Cond: cond, Body: body}, nil
}

// parseForPart parses a for-loop initializer or iterator: an assignment or
// an increment/decrement, without a trailing separator. Declarations in the
// initializer are handled by the caller.
func (p *Parser) parseForPart(what string) (Stmt, error) {
	if p.peek().Type == PLUS_PLUS || p.peek().Type == MINUS_MINUS {
		return p.parseIncDec(nil)
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if isAssignOp(p.peek().Type) {
		op := p.advance()
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return p.buildAssign(expr, op, val)
	}
	if p.peek().Type == PLUS_PLUS || p.peek().Type == MINUS_MINUS {
		v, ok := expr.(*Var)
		if !ok {
			return nil, p.fmtError(p.peek(), "%s needs a plain variable", p.peek().Lexeme)
		}
		return p.parseIncDec(v)
	}
	return nil, p.fmtError(p.peek(), "expected assignment or increment in for-%s", what)
}

// parseForStmt parses for ( init; cond; post ) body with each of the three
// parts independently optional.
func (p *Parser) parseForStmt() (Stmt, error) {
	if _, err := p.expect(FOR); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	var init Stmt
	if p.peek().Type != SEMICOLON {
		var err error
		if isTypeToken(p.peek().Type) {
			init, err = p.parseVarDecl() // consumes the first ';'
		} else {
			init, err = p.parseForPart("initializer")
			if err == nil {
				_, err = p.expect(SEMICOLON)
			}
		}
		if err != nil {
			return nil, err
		}
	} else {
		p.advance() // consume ;
	}

	var cond Expr
	if p.peek().Type != SEMICOLON {
		var err error
		cond, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}

	var post Stmt
	if p.peek().Type != RPAREN {
		var err error
		post, err = p.parseForPart("iterator")
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}

	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}

	return &For{Init: init, Cond: cond, Post: post, Body: body}, nil
}

// parseOutput parses cout << item << item ... ;
// The leading COUT token has already been consumed.
func (p *Parser) parseOutput() (Stmt, error) {
	if _, err := p.expect(SHL_OP); err != nil {
		return nil, err
	}

	var items []Expr
	for {
		if p.peek().Type == ENDL {
			p.advance()
			items = append(items, &Endl{})
		} else {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			items = append(items, expr)
		}
		if p.peek().Type != SHL_OP {
			break
		}
		p.advance()
	}

	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &OutputStmt{Items: items}, nil
}

// parseInputTarget parses a cin target: a variable or an indexed element.
func (p *Parser) parseInputTarget() (Expr, error) {
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if p.peek().Type == LBRACKET {
		p.advance()
		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RBRACKET); err != nil {
			return nil, err
		}
		return &ArrayIndex{Name: nameTok.Lexeme, Index: index}, nil
	}
	return &Var{Name: nameTok.Lexeme}, nil
}

// parseInput parses cin >> target >> target ... ;
// The leading CIN token has already been consumed.
func (p *Parser) parseInput() (Stmt, error) {
	if _, err := p.expect(SHR_OP); err != nil {
		return nil, err
	}

	var targets []Expr
	for {
		target, err := p.parseInputTarget()
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
		if p.peek().Type != SHR_OP {
			break
		}
		p.advance()
	}

	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &InputStmt{Targets: targets}, nil
}

// parseStatement dispatches to the correct sub-parser based on the leading token.
func (p *Parser) parseStatement() (Stmt, error) {
	tok := p.peek()
	switch tok.Type {

	case LBRACE:
		p.advance()
		return p.parseBlock()

	case IF:
		p.advance()
		return p.parseIf()

	case WHILE:
		p.advance()
		return p.parseWhile()

	case FOR:
		return p.parseForStmt()

	case BREAK:
		p.advance()
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &Break{}, nil

	case CONTINUE:
		p.advance()
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &Continue{}, nil

	case RETURN:
		p.advance()
		return p.parseReturn()

	case COUT:
		p.advance()
		return p.parseOutput()

	case CIN:
		p.advance()
		return p.parseInput()

	case INT, FLOAT, DOUBLE, CHAR, BOOL, STRING, VOID:
		return p.parseVarDecl()

	case PLUS_PLUS, MINUS_MINUS:
		stmt, err := p.parseIncDec(nil)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return stmt, nil

	case IDENTIFIER, LPAREN:
		// Expression statement, assignment, or postfix increment
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if isAssignOp(p.peek().Type) {
			return p.parseAssignment(expr)
		}
		if p.peek().Type == PLUS_PLUS || p.peek().Type == MINUS_MINUS {
			v, ok := expr.(*Var)
			if !ok {
				return nil, p.fmtError(p.peek(), "%s needs a plain variable", p.peek().Lexeme)
			}
			stmt, err := p.parseIncDec(v)
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(SEMICOLON); err != nil {
				return nil, err
			}
			return stmt, nil
		}
		if _, err := p.expect(SEMICOLON); err != nil {
			return nil, err
		}
		return &ExprStmt{Expr: expr}, nil

	default:
		p.advance()
		return nil, p.fmtError(tok, "unexpected token %s (%q)", tok.Type, tok.Lexeme)
	}
}

// parseFuncDef parses type name(params) { body }. The return type and the
// parameter types are consumed and discarded; only names survive.
func (p *Parser) parseFuncDef() (*FuncDef, error) {
	p.advance() // return type keyword
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN); err != nil {
		return nil, err
	}

	var params []string
	if p.peek().Type != RPAREN {
		for {
			if !isTypeToken(p.peek().Type) {
				return nil, p.fmtError(p.peek(), "expected parameter type, got %s (%q)",
					p.peek().Type, p.peek().Lexeme)
			}
			p.advance() // parameter type, discarded
			paramTok, err := p.expect(IDENTIFIER)
			if err != nil {
				return nil, err
			}
			params = append(params, paramTok.Lexeme)

			if p.peek().Type != COMMA {
				break
			}
			p.advance()
		}
	}

	if _, err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	return &FuncDef{Name: nameTok.Lexeme, Params: params, Body: body}, nil
}

// parseClassDef parses class Name { fields... methods... } ;
// The members of the restricted class form are scalar field declarations and
// method definitions; anything else is rejected.
func (p *Parser) parseClassDef() (Stmt, error) {
	if _, err := p.expect(CLASS); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(LBRACE); err != nil {
		return nil, err
	}

	var fields []*VarDecl
	var methods []*FuncDef
	for p.peek().Type != RBRACE && p.peek().Type != EOF {
		if !isTypeToken(p.peek().Type) {
			return nil, p.fmtError(p.peek(), "expected field or method declaration, got %s (%q)",
				p.peek().Type, p.peek().Lexeme)
		}
		if p.peekAt(1).Type == IDENTIFIER && p.peekAt(2).Type == LPAREN {
			method, err := p.parseFuncDef()
			if err != nil {
				return nil, err
			}
			methods = append(methods, method)
			continue
		}
		decl, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		field, ok := decl.(*VarDecl)
		if !ok {
			return nil, p.fmtError(nameTok, "array fields are not supported in class %s", nameTok.Lexeme)
		}
		fields = append(fields, field)
	}

	if _, err := p.expect(RBRACE); err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}

	return &ClassDef{Name: nameTok.Lexeme, Fields: fields, Methods: methods}, nil
}

// Parse builds the Program for a token slice. On the first syntax error it
// abandons the parse and returns an empty (never nil, never partial) Program
// together with the error. A function named main is flattened: its body
// statements splice into the program at its position, and the surviving
// top-level return renders to nothing later.
func Parse(tokens []Token, rawSource string) (*Program, error) {
	p := NewParser(tokens, rawSource)
	prog := &Program{}
	for p.peek().Type != EOF {
		var stmt Stmt
		var err error

		switch {
		case p.peek().Type == CLASS:
			stmt, err = p.parseClassDef()
		case isTypeToken(p.peek().Type) && p.peekAt(1).Type == IDENTIFIER && p.peekAt(2).Type == LPAREN:
			stmt, err = p.parseFuncDef()
		default:
			stmt, err = p.parseStatement()
		}
		if err != nil {
			return &Program{}, err
		}

		if fn, ok := stmt.(*FuncDef); ok && fn.Name == "main" {
			prog.Stmts = append(prog.Stmts, fn.Body.Stmts...)
			continue
		}
		prog.Stmts = append(prog.Stmts, stmt)
	}
	return prog, nil
}
