package translator

import (
	"fmt"
	"strings"
)

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// LitKind discriminates the payload of a Literal.
type LitKind int

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
)

// Literal is a source-level constant.
//
//	int x = 10;
//	        ^^  Literal{Kind: LitInt, Int: 10}
//
// String and char literals keep their raw quoted text in Text; the quoted
// forms are themselves valid Python literals and re-enter the output
// unchanged.
type Literal struct {
	Kind  LitKind
	Int   int64   // Kind == LitInt
	Float float64 // Kind == LitFloat
	Text  string  // raw lexeme; quotes included for LitString / LitChar
	Bool  bool    // Kind == LitBool
}

func (*Literal) exprNode() {}
func (l *Literal) String() string {
	switch l.Kind {
	case LitInt:
		return fmt.Sprintf("%d", l.Int)
	case LitFloat:
		return l.Text
	case LitBool:
		return fmt.Sprintf("%t", l.Bool)
	default:
		return l.Text
	}
}

// Var is a read of a named variable.
//
//	return x;
//	       ^  Var{Name: "x"}
type Var struct {
	Name string
}

func (*Var) exprNode()        {}
func (v *Var) String() string { return v.Name }

// BinaryOp represents a binary operation: Left Op Right.
type BinaryOp struct {
	Op    TokenType
	Left  Expr
	Right Expr
}

func (*BinaryOp) exprNode() {}
func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// UnaryOp represents Op Operand (e.g. -x, !done). PLUS_PLUS and MINUS_MINUS
// appear here only when built by the statement parser for `x++;` forms and
// for-loop iterators; they are not general expression operators.
type UnaryOp struct {
	Op      TokenType
	Operand Expr
}

func (*UnaryOp) exprNode()        {}
func (u *UnaryOp) String() string { return fmt.Sprintf("(%s %s)", u.Op, u.Operand) }

// Ternary represents Cond ? Then : Else.
type Ternary struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (*Ternary) exprNode() {}
func (t *Ternary) String() string {
	return fmt.Sprintf("(%s ? %s : %s)", t.Cond, t.Then, t.Else)
}

// Call represents name(args).
type Call struct {
	Name string
	Args []Expr
}

func (*Call) exprNode() {}
func (c *Call) String() string {
	return fmt.Sprintf("Call(%s, args=%v)", c.Name, c.Args)
}

// ArrayIndex represents name[index].
type ArrayIndex struct {
	Name  string
	Index Expr
}

func (*ArrayIndex) exprNode()        {}
func (a *ArrayIndex) String() string { return fmt.Sprintf("%s[%s]", a.Name, a.Index) }

// Endl is the end-of-line marker of an output chain. It is not a value and
// is valid only among OutputStmt items.
type Endl struct{}

func (*Endl) exprNode()      {}
func (*Endl) String() string { return "endl" }

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	stmtNode()
	String() string
}

// Program is the root of a parse. A Program with no statements paired with a
// non-nil parse error is the translation-failure signal; callers never see a
// nil or partial tree.
type Program struct {
	Stmts []Stmt
}

func (p *Program) String() string {
	parts := make([]string, len(p.Stmts))
	for i, s := range p.Stmts {
		parts[i] = s.String()
	}
	return fmt.Sprintf("Program(%s)", strings.Join(parts, "; "))
}

// Block represents { statement; ... }. Single-statement bodies of control
// constructs are normalized to one-statement Blocks at parse time.
type Block struct {
	Stmts []Stmt
}

func (*Block) stmtNode() {}
func (b *Block) String() string {
	return fmt.Sprintf("Block(len=%d)", len(b.Stmts))
}

// VarDecl represents  type name;  or  type name = expr;
//
//	int x = 10;
//	^^^ ^   ^^
//	|   |   Init
//	|   Name
//	Type tag "int"
type VarDecl struct {
	Type string // declared type tag: "int", "float", "double", "char", "bool", "string", "void"
	Name string
	Init Expr // may be nil
}

func (*VarDecl) stmtNode() {}
func (d *VarDecl) String() string {
	if d.Init != nil {
		return fmt.Sprintf("VarDecl(%s %s = %s)", d.Type, d.Name, d.Init)
	}
	return fmt.Sprintf("VarDecl(%s %s)", d.Type, d.Name)
}

// ArrayDecl represents  type name[size];  with an optional {...} initializer.
type ArrayDecl struct {
	Type string // element type tag
	Name string
	Size int64
	Init []Expr // nil when no brace initializer was written
}

func (*ArrayDecl) stmtNode() {}
func (d *ArrayDecl) String() string {
	if d.Init != nil {
		return fmt.Sprintf("ArrayDecl(%s %s[%d] = %v)", d.Type, d.Name, d.Size, d.Init)
	}
	return fmt.Sprintf("ArrayDecl(%s %s[%d])", d.Type, d.Name, d.Size)
}

// Assign represents  Target = Value;  Compound forms (+=, -=, *=, /=) are
// lowered at parse time into a plain assignment whose Value is an explicit
// BinaryOp on a fresh copy of the target, so no Op field survives here.
type Assign struct {
	Target Expr // *Var or *ArrayIndex
	Value  Expr
}

func (*Assign) stmtNode() {}
func (a *Assign) String() string {
	return fmt.Sprintf("Assign(%s = %s)", a.Target, a.Value)
}

// If represents if (cond) body [else elseBody].
type If struct {
	Cond Expr
	Body *Block
	Else *Block // may be nil; else-if chains nest an If inside
}

func (*If) stmtNode() {}
func (i *If) String() string {
	if i.Else != nil {
		return fmt.Sprintf("If(%s then %s else %s)", i.Cond, i.Body, i.Else)
	}
	return fmt.Sprintf("If(%s then %s)", i.Cond, i.Body)
}

// While represents while (cond) body.
type While struct {
	Cond Expr
	Body *Block
}

func (*While) stmtNode() {}
func (w *While) String() string {
	return fmt.Sprintf("While(%s do %s)", w.Cond, w.Body)
}

// For represents for (init; cond; post) body. Each of the three parts is
// independently optional and nil when absent.
type For struct {
	Init Stmt // *VarDecl, *Assign, or *ExprStmt over ++/--
	Cond Expr
	Post Stmt // *Assign or *ExprStmt over ++/--
	Body *Block
}

func (*For) stmtNode() {}
func (f *For) String() string {
	return fmt.Sprintf("For(init=%v, cond=%v, post=%v, body=%s)", f.Init, f.Cond, f.Post, f.Body)
}

// Break represents break;
type Break struct{}

func (*Break) stmtNode()      {}
func (*Break) String() string { return "Break" }

// Continue represents continue;
type Continue struct{}

func (*Continue) stmtNode()      {}
func (*Continue) String() string { return "Continue" }

// Return represents return; or return expr;
type Return struct {
	Value Expr // may be nil
}

func (*Return) stmtNode() {}
func (r *Return) String() string {
	if r.Value != nil {
		return fmt.Sprintf("Return(%s)", r.Value)
	}
	return "Return"
}

// OutputStmt represents cout << item << item ... ; in chain order. Items are
// value expressions and/or Endl markers.
type OutputStmt struct {
	Items []Expr
}

func (*OutputStmt) stmtNode() {}
func (o *OutputStmt) String() string {
	return fmt.Sprintf("OutputStmt(items=%v)", o.Items)
}

// InputStmt represents cin >> target >> target ... ; in chain order.
// Targets are variables or index expressions.
type InputStmt struct {
	Targets []Expr
}

func (*InputStmt) stmtNode() {}
func (i *InputStmt) String() string {
	return fmt.Sprintf("InputStmt(targets=%v)", i.Targets)
}

// FuncDef represents type name(params) { body }. Parameter declared types
// are discarded at parse time; only the names survive, in order.
type FuncDef struct {
	Name   string
	Params []string
	Body   *Block
}

func (*FuncDef) stmtNode() {}
func (f *FuncDef) String() string {
	return fmt.Sprintf("FuncDef(%s, params=%v, body=%s)", f.Name, f.Params, f.Body)
}

// ClassDef represents class Name { fields... methods... };
type ClassDef struct {
	Name    string
	Fields  []*VarDecl
	Methods []*FuncDef
}

func (*ClassDef) stmtNode() {}
func (c *ClassDef) String() string {
	return fmt.Sprintf("ClassDef(%s, fields=%d, methods=%d)", c.Name, len(c.Fields), len(c.Methods))
}

// ExprStmt represents an expression evaluated for its side effects, such as
// a bare function call or an increment/decrement statement.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}
func (e *ExprStmt) String() string {
	return fmt.Sprintf("ExprStmt(%s)", e.Expr)
}
