package parser

import (
	"github.com/finchlang/finch-cc/pkg/ast"
)

// parseExpression parses a full expression; when end is non-empty the
// terminator is consumed after it. Callers relying on the empty form
// stop at any character outside the operator table, , and ) included.
func (p *Parser) parseExpression(end string) ast.Expr {
	expr := p.parseBinary(p.parseUnary(), 0)
	if end != "" {
		p.consume(end)
	}
	return expr
}

// scanBinaryOperator peeks the next binary operator without
// committing. Table order makes the first match the longest one.
func (p *Parser) scanBinaryOperator() string {
	st := p.save()
	for _, op := range binaryOperators {
		if p.lookahead(op) {
			p.restore(st)
			return op
		}
	}
	return ""
}

// parseBinary extends left by precedence climbing. An operator at or
// above minPrecedence is consumed; the right operand is then extended
// while the following operator binds strictly tighter.
func (p *Parser) parseBinary(left ast.Expr, minPrecedence int) ast.Expr {
	ahead := p.scanBinaryOperator()
	for ahead != "" && precedence[ahead] >= minPrecedence {
		op := ahead
		line := p.line
		p.consume(op)
		right := p.parseUnary()
		if right == nil {
			p.unexpected("right value")
		}
		ahead = p.scanBinaryOperator()

		for ahead != "" && precedence[ahead] > precedence[op] {
			right = p.parseBinary(right, precedence[ahead])
			if right == nil {
				p.unexpected("right value")
			}
			ahead = p.scanBinaryOperator()
		}

		left = &ast.Binary{Line: line, Op: op, Left: left, Right: right}
	}
	return left
}

// parseUnary parses a literal with its postfix forms: subscripts
// collect into one IndexExpression, a parenthesis after a value makes
// a call, a bare parenthesis groups.
func (p *Parser) parseUnary() ast.Expr {
	literal := p.parseLiteral()
	var indexes []ast.Expr
	for p.lookahead("[") {
		indexes = append(indexes, p.parseExpression(""))
		p.consume("]")
	}
	if len(indexes) > 0 {
		return &ast.Index{Line: p.line, Array: literal, Indexes: indexes}
	}
	if p.lookahead("(") {
		if literal != nil {
			call := &ast.Call{Line: p.line, Callee: literal}
			var arguments []ast.Expr
			for p.curr != 0 {
				arguments = append(arguments, p.parseExpression(""))
				if !p.lookahead(",") {
					break
				}
			}
			p.consume(")")
			call.Args = arguments
			return call
		}
		paren := &ast.Paren{Line: p.line}
		paren.X = p.parseExpression("")
		p.consume(")")
		return paren
	}
	return literal
}

// parseLiteral parses a literal or identifier, or returns nil when
// the current character cannot start one.
func (p *Parser) parseLiteral() ast.Expr {
	if p.lookahead("{") {
		literal := &ast.ArrayLit{Line: p.line}
		var entries []ast.Expr
		for p.curr != 0 {
			entries = append(entries, p.parseExpression(""))
			if !p.lookahead(",") {
				break
			}
		}
		p.consume("}")
		literal.Elems = entries
		return literal
	}
	if p.curr == '\'' {
		p.next(true, true)
		literal := &ast.CharLit{Line: p.line}
		value := string([]byte{p.curr})
		if p.curr == '\\' {
			value = p.parseEscape()
		} else {
			p.next(true, true)
		}
		p.consume("'")
		literal.Value = value
		return literal
	}
	if p.curr == '"' {
		literal := &ast.StringLit{Line: p.line}
		literal.Value = p.parseString(false)
		return literal
	}
	if p.lookahead("0x") {
		return p.parseNumber(16)
	}
	if p.lookahead("-0x") {
		number := p.parseNumber(16)
		number.Value = "-" + number.Value
		return number
	}
	if isFloatChar(p.curr) || p.curr == '-' {
		return p.parseNumber(10)
	}
	if isIdentifierStart(p.curr) {
		return p.parseIdentifier(false)
	}
	return nil
}
