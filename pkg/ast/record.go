package ast

import "fmt"

// Record renders a node as the tagged-record mapping used at the
// output boundary: a map with "kind", "position" and the per-kind
// attributes. Null members are kept as explicit nils so that the
// serialized form matches the reference output.
func Record(n Node) any {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *Program:
		return map[string]any{
			"kind":     n.Kind(),
			"position": n.Pos(),
			"body":     nodeList(n.Body),
		}
	case *Include:
		return rec(n, "file", n.File)
	case *Predefine:
		return rec(n,
			"identifier", Record(n.Identifier),
			"arguments", exprList(n.Arguments),
			"value", expr(n.Value))
	case *TypeSpec:
		return rec(n, "name", n.Name, "modifiers", stringList(n.Modifiers))
	case *Ident:
		return rec(n, "name", n.Name)
	case *Decl:
		return rec(n, "identifier", Record(n.Identifier), "type", Record(n.Type))
	case *VarDecl:
		fields := []any{"identifier", Record(n.Identifier), "type", Record(n.Type)}
		if n.Dims != nil {
			fields = append(fields, "length", exprList(n.Dims))
		}
		if n.Defined {
			fields = append(fields, "value", expr(n.Value))
		}
		return rec(n, fields...)
	case *FuncDecl:
		return rec(n,
			"identifier", Record(n.Identifier),
			"type", Record(n.Type),
			"parameters", declList(n.Params))
	case *FuncDef:
		return rec(n,
			"identifier", Record(n.Identifier),
			"type", Record(n.Type),
			"parameters", declList(n.Params),
			"body", Record(n.Body))
	case *Body:
		return rec(n, "body", nodeList(n.List))
	case *If:
		var elseBody any
		if n.Else != nil {
			elseBody = Record(n.Else)
		}
		return rec(n,
			"condition", expr(n.Cond),
			"body", Record(n.Body),
			"elseBody", elseBody)
	case *While:
		return rec(n, "condition", expr(n.Cond), "body", Record(n.Body))
	case *DoWhile:
		return rec(n, "condition", expr(n.Cond), "body", Record(n.Body))
	case *For:
		return rec(n,
			"init", Record(n.Init),
			"condition", expr(n.Cond),
			"step", expr(n.Step),
			"body", Record(n.Body))
	case *Return:
		return rec(n, "value", expr(n.Value))
	case *Break:
		return rec(n, "label", expr(n.Label))
	case *Continue:
		return rec(n, "label", expr(n.Label))
	case *ExprStmt:
		return rec(n, "expression", expr(n.X))
	case *BlockComment:
		return rec(n, "content", n.Content)
	case *InlineComment:
		return rec(n, "content", n.Content)
	case *Binary:
		return rec(n, "op", n.Op, "left", expr(n.Left), "right", expr(n.Right))
	case *Index:
		return rec(n, "array", expr(n.Array), "indexes", exprList(n.Indexes))
	case *Call:
		return rec(n, "callee", expr(n.Callee), "arguments", exprList(n.Args))
	case *Paren:
		return rec(n, "expression", expr(n.X))
	case *ArrayLit:
		return rec(n, "value", exprList(n.Elems))
	case *CharLit:
		return rec(n, "value", n.Value)
	case *StringLit:
		return rec(n, "value", n.Value)
	case *NumberLit:
		return rec(n, "value", n.Value)
	default:
		panic(fmt.Sprintf("ast: unknown node %T", n))
	}
}

// rec builds the record map from alternating key/value pairs
func rec(n Node, fields ...any) map[string]any {
	m := map[string]any{
		"kind":     n.Kind(),
		"position": n.Pos(),
	}
	for i := 0; i+1 < len(fields); i += 2 {
		m[fields[i].(string)] = fields[i+1]
	}
	return m
}

func expr(x Expr) any {
	if x == nil {
		return nil
	}
	return Record(x)
}

func exprList(xs []Expr) any {
	if xs == nil {
		return nil
	}
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = expr(x)
	}
	return out
}

func nodeList(ns []Node) []any {
	out := make([]any, len(ns))
	for i, n := range ns {
		out[i] = Record(n)
	}
	return out
}

func declList(ds []*Decl) []any {
	out := make([]any, len(ds))
	for i, d := range ds {
		out[i] = Record(d)
	}
	return out
}

func stringList(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
