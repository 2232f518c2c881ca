package translator

import (
	"fmt"
	"strconv"
	"strings"
)

// Options configures generation.
type Options struct {
	// Strict promotes the silent defaults of permissive generation
	// (unrecognized declared types, input reads of unrecorded names) to an
	// error once the walk completes. Off by default: permissive generation
	// is total and never fails.
	Strict bool
}

const indentUnit = "    " // one Python nesting level

// Generator walks a Program and renders Python source text. Every Generate
// call builds its own Generator and Environment, so concurrent translations
// never share state.
type Generator struct {
	env        *Environment
	diags      []Diagnostic
	strict     bool
	inFunction bool
}

func newGenerator(opts Options) *Generator {
	return &Generator{env: NewEnvironment(), strict: opts.Strict}
}

// report records an advisory generation diagnostic.
func (g *Generator) report(format string, args ...any) {
	g.diags = append(g.diags, Diagnostic{Stage: "gen", Message: fmt.Sprintf(format, args...)})
}

func pad(indent int) string {
	return strings.Repeat(indentUnit, indent)
}

// zeroValue returns the Python default for a declared type tag.
func zeroValue(typeTag string) string {
	switch typeTag {
	case "int":
		return "0"
	case "float", "double":
		return "0.0"
	case "char", "string":
		return "''"
	case "bool":
		return "False"
	default:
		return "None"
	}
}

// readExpr returns the input-conversion expression for a declared type tag.
func readExpr(typeTag string) string {
	switch typeTag {
	case "int":
		return "int(input())"
	case "float", "double":
		return "float(input())"
	case "char":
		return "input()[0]"
	case "string":
		return "input()"
	case "bool":
		return "input().lower() in ('1', 'true', 'yes')"
	default:
		return "input()"
	}
}

// knownType reports whether tag is one of the subset's declarable types.
func knownType(tag string) bool {
	switch tag {
	case "int", "float", "double", "char", "bool", "string", "void":
		return true
	}
	return false
}

// pyFloat renders a float the way Python writes one back, always keeping a
// decimal point or exponent so the literal stays a float.
func pyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// opText maps an operator token to its Python spelling.
func opText(tt TokenType) string {
	switch tt {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case EQUALS:
		return "=="
	case NOT_EQ:
		return "!="
	case LESS:
		return "<"
	case GREATER:
		return ">"
	case LESS_EQ:
		return "<="
	case GREATER_EQ:
		return ">="
	case AND_LOGICAL:
		return "and"
	case OR_LOGICAL:
		return "or"
	}
	return tt.String()
}

// expr renders an expression node to Python text.
func (g *Generator) expr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		switch n.Kind {
		case LitInt:
			return strconv.FormatInt(n.Int, 10)
		case LitFloat:
			return pyFloat(n.Float)
		case LitBool:
			if n.Bool {
				return "True"
			}
			return "False"
		default: // LitString, LitChar: the quoted source text is valid Python
			return n.Text
		}

	case *Var:
		return n.Name

	case *BinaryOp:
		return fmt.Sprintf("(%s %s %s)", g.expr(n.Left), opText(n.Op), g.expr(n.Right))

	case *UnaryOp:
		switch n.Op {
		case MINUS:
			return "-" + g.expr(n.Operand)
		case NOT:
			return fmt.Sprintf("(not %s)", g.expr(n.Operand))
		case PLUS_PLUS:
			return fmt.Sprintf("(%s + 1)", g.expr(n.Operand))
		case MINUS_MINUS:
			return fmt.Sprintf("(%s - 1)", g.expr(n.Operand))
		}
		return g.expr(n.Operand)

	case *Ternary:
		return fmt.Sprintf("(%s if %s else %s)", g.expr(n.Then), g.expr(n.Cond), g.expr(n.Else))

	case *Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = g.expr(a)
		}
		return fmt.Sprintf("%s(%s)", n.Name, strings.Join(args, ", "))

	case *ArrayIndex:
		return fmt.Sprintf("%s[%s]", n.Name, g.expr(n.Index))

	case *Endl:
		return "" // folded away by the output-chain rendering

	default:
		g.report("unrenderable expression %T", e)
		return ""
	}
}

// stmt renders a statement node at the given indent depth. An empty string
// means the statement contributes no output line.
func (g *Generator) stmt(s Stmt, indent int) string {
	switch n := s.(type) {
	case *Block:
		return g.body(n, indent)

	case *VarDecl:
		g.env.Record(n.Name, n.Type)
		if !knownType(n.Type) {
			g.report("unrecognized type %q for %q defaults to None", n.Type, n.Name)
		}
		if n.Init != nil {
			return fmt.Sprintf("%s%s = %s", pad(indent), n.Name, g.expr(n.Init))
		}
		return fmt.Sprintf("%s%s = %s", pad(indent), n.Name, zeroValue(n.Type))

	case *ArrayDecl:
		g.env.Record(n.Name, n.Type)
		if n.Init != nil {
			elems := make([]string, len(n.Init))
			for i, e := range n.Init {
				elems[i] = g.expr(e)
			}
			return fmt.Sprintf("%s%s = [%s]", pad(indent), n.Name, strings.Join(elems, ", "))
		}
		return fmt.Sprintf("%s%s = [%s] * %d", pad(indent), n.Name, zeroValue(n.Type), n.Size)

	case *Assign:
		return fmt.Sprintf("%s%s = %s", pad(indent), g.expr(n.Target), g.expr(n.Value))

	case *ExprStmt:
		if inc, ok := n.Expr.(*UnaryOp); ok && (inc.Op == PLUS_PLUS || inc.Op == MINUS_MINUS) {
			name := g.expr(inc.Operand)
			op := "+"
			if inc.Op == MINUS_MINUS {
				op = "-"
			}
			return fmt.Sprintf("%s%s = %s %s 1", pad(indent), name, name, op)
		}
		return pad(indent) + g.expr(n.Expr)

	case *If:
		text := fmt.Sprintf("%sif %s:\n%s", pad(indent), g.expr(n.Cond), g.body(n.Body, indent+1))
		if n.Else != nil {
			text += fmt.Sprintf("\n%selse:\n%s", pad(indent), g.body(n.Else, indent+1))
		}
		return text

	case *While:
		return fmt.Sprintf("%swhile %s:\n%s", pad(indent), g.expr(n.Cond), g.body(n.Body, indent+1))

	case *For:
		return g.forStmt(n, indent)

	case *Break:
		return pad(indent) + "break"

	case *Continue:
		return pad(indent) + "continue"

	case *Return:
		if !g.inFunction {
			return "" // main's return has no meaning at module level
		}
		if n.Value != nil {
			return fmt.Sprintf("%sreturn %s", pad(indent), g.expr(n.Value))
		}
		return pad(indent) + "return"

	case *OutputStmt:
		var args []string
		for _, item := range n.Items {
			if _, isEndl := item.(*Endl); isEndl {
				continue
			}
			args = append(args, g.expr(item))
		}
		return fmt.Sprintf("%sprint(%s)", pad(indent), strings.Join(args, ", "))

	case *InputStmt:
		lines := make([]string, len(n.Targets))
		for i, target := range n.Targets {
			lines[i] = pad(indent) + g.inputLine(target)
		}
		return strings.Join(lines, "\n")

	case *FuncDef:
		return g.funcDef(n, indent, false)

	case *ClassDef:
		return g.classDef(n, indent)

	default:
		g.report("unrenderable statement %T", s)
		return ""
	}
}

// inputLine renders one cin target as an assignment from input(), converted
// per the target's recorded type. Unrecorded names read raw text.
func (g *Generator) inputLine(target Expr) string {
	var name, targetText string
	switch t := target.(type) {
	case *Var:
		name, targetText = t.Name, t.Name
	case *ArrayIndex:
		name, targetText = t.Name, g.expr(t)
	default:
		g.report("unrenderable input target %T", target)
		return ""
	}

	tag, ok := g.env.Lookup(name)
	if !ok {
		g.report("input into undeclared name %q reads raw text", name)
		return fmt.Sprintf("%s = input()", targetText)
	}
	return fmt.Sprintf("%s = %s", targetText, readExpr(tag))
}

// funcDef renders def name(params): with the body one level deeper. Methods
// get the receiver parameter prepended.
func (g *Generator) funcDef(fn *FuncDef, indent int, method bool) string {
	params := fn.Params
	if method {
		params = append([]string{"self"}, params...)
	}

	wasInFunction := g.inFunction
	g.inFunction = true
	body := g.body(fn.Body, indent+1)
	g.inFunction = wasInFunction

	return fmt.Sprintf("%sdef %s(%s):\n%s", pad(indent), fn.Name, strings.Join(params, ", "), body)
}

// classDef lowers a class to a Python class: fields become per-instance
// assignments in a generated constructor, methods become instance methods.
func (g *Generator) classDef(c *ClassDef, indent int) string {
	var parts []string

	if len(c.Fields) > 0 {
		lines := []string{fmt.Sprintf("%sdef __init__(self):", pad(indent+1))}
		for _, field := range c.Fields {
			g.env.Record(field.Name, field.Type)
			value := zeroValue(field.Type)
			if field.Init != nil {
				value = g.expr(field.Init)
			}
			lines = append(lines, fmt.Sprintf("%sself.%s = %s", pad(indent+2), field.Name, value))
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}

	for _, method := range c.Methods {
		parts = append(parts, g.funcDef(method, indent+1, true))
	}

	if len(parts) == 0 {
		parts = append(parts, pad(indent+1)+"pass")
	}

	return fmt.Sprintf("%sclass %s:\n%s", pad(indent), c.Name, strings.Join(parts, "\n"))
}

// body renders a Block's statements one level deep, dropping statements that
// contribute nothing and filling an empty body with pass.
func (g *Generator) body(b *Block, indent int) string {
	var lines []string
	for _, s := range b.Stmts {
		if text := g.stmt(s, indent); text != "" {
			lines = append(lines, text)
		}
	}
	if len(lines) == 0 {
		return pad(indent) + "pass"
	}
	return strings.Join(lines, "\n")
}

// Generate renders a Program to Python source text. Permissive generation
// always succeeds; with Options.Strict every silently-applied default
// surfaces as the returned error once the walk has completed.
func Generate(prog *Program, opts Options) (string, []Diagnostic, error) {
	g := newGenerator(opts)

	var lines []string
	for _, s := range prog.Stmts {
		if text := g.stmt(s, 0); text != "" {
			lines = append(lines, text)
		}
	}
	text := strings.Join(lines, "\n")

	if g.strict && len(g.diags) > 0 {
		return text, g.diags, fmt.Errorf("strict mode: %d silent defaults applied; first: %s",
			len(g.diags), g.diags[0].Message)
	}
	return text, g.diags, nil
}
