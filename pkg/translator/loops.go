package translator

import (
	"fmt"
	"strconv"
	"strings"
)

// Counted loops render through one of two strategies. rangeFor is the
// readability fast path: when init, condition, and iterator follow the
// canonical counted shape, the loop becomes a Python for-range line.
// whileFor is the fallback that handles every other well-formed three-part
// loop, including loops with any part missing. Both preserve iteration count
// and side-effect order for the loops they accept.

func (g *Generator) forStmt(f *For, indent int) string {
	if text, ok := g.rangeFor(f, indent); ok {
		return text
	}
	return g.whileFor(f, indent)
}

// rangeFor matches the canonical counted shape
//
//	init       v = start            (declaration or assignment)
//	condition  v < B   or   v <= B
//	iterator   v++ / v-- / v = v ± literal   (compound forms arrive lowered)
//
// and renders  for v in range(start, end[, step]):  An inclusive <= bound
// widens by exactly one; the unit step is omitted; a decrement steps by -1.
// Any other loop reports not matched and falls through to whileFor.
func (g *Generator) rangeFor(f *For, indent int) (string, bool) {
	if f.Init == nil || f.Cond == nil || f.Post == nil {
		return "", false
	}

	var loopVar, start, declType string
	switch init := f.Init.(type) {
	case *VarDecl:
		if init.Init == nil {
			return "", false
		}
		loopVar = init.Name
		start = g.expr(init.Init)
		declType = init.Type
	case *Assign:
		v, ok := init.Target.(*Var)
		if !ok {
			return "", false
		}
		loopVar = v.Name
		start = g.expr(init.Value)
	default:
		return "", false
	}

	cond, ok := f.Cond.(*BinaryOp)
	if !ok || (cond.Op != LESS && cond.Op != LESS_EQ) {
		return "", false
	}
	cv, ok := cond.Left.(*Var)
	if !ok || cv.Name != loopVar {
		return "", false
	}
	end := g.expr(cond.Right)
	if cond.Op == LESS_EQ {
		if lit, isLit := cond.Right.(*Literal); isLit && lit.Kind == LitInt {
			end = strconv.FormatInt(lit.Int+1, 10)
		} else {
			end = fmt.Sprintf("(%s) + 1", end)
		}
	}

	step, ok := forStep(f.Post, loopVar)
	if !ok {
		return "", false
	}

	if declType != "" {
		g.env.Record(loopVar, declType)
	}

	header := fmt.Sprintf("%sfor %s in range(%s, %s):", pad(indent), loopVar, start, end)
	if step != 1 {
		header = fmt.Sprintf("%sfor %s in range(%s, %s, %d):", pad(indent), loopVar, start, end, step)
	}
	return header + "\n" + g.body(f.Body, indent+1), true
}

// forStep extracts the literal step of an iterator over loopVar: ±1 for the
// increment and decrement forms, ±k for v = v ± k.
func forStep(post Stmt, loopVar string) (int64, bool) {
	switch p := post.(type) {
	case *ExprStmt:
		inc, ok := p.Expr.(*UnaryOp)
		if !ok {
			return 0, false
		}
		v, ok := inc.Operand.(*Var)
		if !ok || v.Name != loopVar {
			return 0, false
		}
		switch inc.Op {
		case PLUS_PLUS:
			return 1, true
		case MINUS_MINUS:
			return -1, true
		}
		return 0, false

	case *Assign:
		v, ok := p.Target.(*Var)
		if !ok || v.Name != loopVar {
			return 0, false
		}
		bin, ok := p.Value.(*BinaryOp)
		if !ok || (bin.Op != PLUS && bin.Op != MINUS) {
			return 0, false
		}
		left, ok := bin.Left.(*Var)
		if !ok || left.Name != loopVar {
			return 0, false
		}
		lit, ok := bin.Right.(*Literal)
		if !ok || lit.Kind != LitInt {
			return 0, false
		}
		if bin.Op == MINUS {
			return -lit.Int, true
		}
		return lit.Int, true
	}
	return 0, false
}

// whileFor renders any three-part loop correctly: the initializer runs once
// before the loop, a missing condition becomes True, and the iterator runs
// as the final statement of every iteration.
func (g *Generator) whileFor(f *For, indent int) string {
	var lines []string
	if f.Init != nil {
		if text := g.stmt(f.Init, indent); text != "" {
			lines = append(lines, text)
		}
	}

	cond := "True"
	if f.Cond != nil {
		cond = g.expr(f.Cond)
	}
	lines = append(lines, fmt.Sprintf("%swhile %s:", pad(indent), cond))

	var inner []string
	for _, s := range f.Body.Stmts {
		if text := g.stmt(s, indent+1); text != "" {
			inner = append(inner, text)
		}
	}
	if f.Post != nil {
		if text := g.stmt(f.Post, indent+1); text != "" {
			inner = append(inner, text)
		}
	}
	if len(inner) == 0 {
		inner = append(inner, pad(indent+1)+"pass")
	}
	return strings.Join(append(lines, inner...), "\n")
}
