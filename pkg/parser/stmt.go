package parser

import (
	"github.com/finchlang/finch-cc/pkg/ast"
)

// parseStatement parses one statement, dispatching on the leading
// keyword; declarations and expression statements are the fallbacks.
func (p *Parser) parseStatement() ast.Node {
	switch {
	case p.lookahead("if"):
		statement := &ast.If{Line: p.line}
		p.consume("(")
		condition := p.parseExpression(")")
		if condition == nil {
			p.unexpected("if condition")
		}
		statement.Cond = condition
		if p.lookahead("else") {
			p.unexpected("if body statement")
		}
		statement.Body = p.parseBody(false)
		if p.lookahead("else") {
			statement.Else = p.parseBody(false)
		}
		return statement

	case p.lookahead("while"):
		statement := &ast.While{Line: p.line}
		p.consume("(")
		condition := p.parseExpression(")")
		if condition == nil {
			p.unexpected("while condition")
		}
		statement.Cond = condition
		statement.Body = p.parseBody(false)
		return statement

	case p.lookahead("do"):
		statement := &ast.DoWhile{Line: p.line}
		statement.Body = p.parseBody(false)
		p.consume("while")
		p.consume("(")
		condition := p.parseExpression(")")
		if condition == nil {
			p.unexpected("while condition")
		}
		statement.Cond = condition
		p.consume(";")
		return statement

	case p.lookahead("for"):
		statement := &ast.For{Line: p.line}
		p.consume("(")
		init := p.parseStatement()
		if declaration, ok := init.(*ast.VarDecl); ok && declaration.Dims == nil {
			declaration.ForInit = true
		}
		statement.Init = init
		statement.Cond = p.parseExpression(";")
		statement.Step = p.parseExpression(")")
		statement.Body = p.parseBody(false)
		return statement

	case p.lookahead("return"):
		statement := &ast.Return{Line: p.line}
		statement.Value = p.parseExpression(";")
		return statement

	case p.lookahead("break"):
		statement := &ast.Break{Line: p.line}
		statement.Label = p.parseExpression(";")
		return statement

	case p.lookahead("continue"):
		statement := &ast.Continue{Line: p.line}
		statement.Label = p.parseExpression(";")
		return statement

	case p.declarationIncoming():
		return p.parseDefinition(p.parseDeclaration("Declaration"), false)

	default:
		statement := &ast.ExprStmt{Line: p.line}
		statement.X = p.parseExpression(";")
		return statement
	}
}

// parseBody parses the body of a compound statement. A brace (or
// shouldBeBlock, used for function bodies) makes a BlockStatement;
// otherwise a single statement or a bare semicolon makes an
// InlineStatement. Pending comments are spliced in at block open and
// between statements.
func (p *Parser) parseBody(shouldBeBlock bool) *ast.Body {
	if p.curr == '{' || shouldBeBlock {
		block := &ast.Body{Line: p.line}
		p.consume("{")
		var statements []ast.Node
		p.flushComments(&statements)
		for p.curr != 0 && p.curr != '}' {
			statements = append(statements, p.parseStatement())
			p.flushComments(&statements)
		}
		p.consume("}")
		block.List = statements
		return block
	}
	line := &ast.Body{Line: p.line, Inline: true}
	var statements []ast.Node
	p.flushComments(&statements)
	if !p.lookahead(";") {
		statements = append(statements, p.parseStatement())
	}
	line.List = statements
	return line
}
