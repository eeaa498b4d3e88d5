package parser

import (
	"strings"

	"github.com/finchlang/finch-cc/pkg/ast"
)

// declarationIncoming probes whether a declaration starts at the
// current position. The scanner state is restored on every probe.
func (p *Parser) declarationIncoming() bool {
	st := p.save()
	for _, modifier := range typeModifiers {
		if p.lookahead(modifier) {
			p.restore(st)
			return true
		}
	}
	for _, name := range p.typeNames {
		if p.lookahead(name) {
			p.restore(st)
			return true
		}
	}
	return false
}

// parseDeclaration parses modifiers, a type name and an identifier.
// When no type name matches but modifiers were read, the last
// modifier serves as the type name (as in "unsigned x;"). kind is
// Declaration, ParameterDeclaration or TypeDefinition.
func (p *Parser) parseDeclaration(kind string) *ast.Decl {
	var modifiers []string
	typeSpec := &ast.TypeSpec{Line: p.line}
	for {
		hasModifier := false
		for _, modifier := range typeModifiers {
			if p.lookahead(modifier) {
				modifiers = append(modifiers, modifier)
				hasModifier = true
			}
		}
		if !hasModifier {
			break
		}
	}
	for _, name := range p.typeNames {
		if p.lookahead(name) {
			typeSpec.Name = name
			typeSpec.Modifiers = modifiers
			declaration := &ast.Decl{Line: p.line, DeclKind: kind, Type: typeSpec}
			declaration.Identifier = p.parseIdentifier(false)
			return declaration
		}
	}
	if len(modifiers) > 0 {
		typeSpec.Name = modifiers[len(modifiers)-1]
		typeSpec.Modifiers = modifiers[:len(modifiers)-1]
		declaration := &ast.Decl{Line: p.line, DeclKind: kind, Type: typeSpec}
		declaration.Identifier = p.parseIdentifier(false)
		return declaration
	}
	p.unexpected("correct type name")
	return nil
}

// parseDefinition finishes a variable or array declaration or
// definition from a parsed type+identifier. When the declaration list
// continues with a comma, the comma is rewritten in place to the
// textual type so the caller re-enters declaration parsing at the
// next identifier; only then is no semicolon consumed here.
func (p *Parser) parseDefinition(declaration *ast.Decl, isGlobal bool) *ast.VarDecl {
	var length []ast.Expr
	isArray := false
	for p.lookahead("[") {
		isArray = true
		if !p.lookahead("]") {
			length = append(length, p.parseExpression(""))
			p.consume("]")
		} else {
			length = append(length, nil)
		}
	}
	definition := &ast.VarDecl{
		Line:       declaration.Line,
		Identifier: declaration.Identifier,
		Type:       declaration.Type,
		Global:     isGlobal,
	}
	if isArray {
		definition.Dims = length
	}
	if p.lookahead("=") {
		definition.Defined = true
		definition.Value = p.parseExpression("")
	}
	if p.curr == ',' { // multiple identifiers
		var name strings.Builder
		for _, modifier := range definition.Type.Modifiers {
			name.WriteString(modifier)
			name.WriteByte(' ')
		}
		name.WriteString(definition.Type.Name)
		rewritten := make([]byte, 0, len(p.source)+name.Len())
		rewritten = append(rewritten, p.source[:p.index]...)
		rewritten = append(rewritten, name.String()...)
		rewritten = append(rewritten, p.source[p.index+1:]...)
		p.source = rewritten
		p.curr = p.source[p.index]
	} else {
		p.consume(";")
	}
	return definition
}

// parseFunction finishes a function declaration or definition from a
// parsed type+identifier; the opening parenthesis is already
// consumed. A definition body must be a block.
func (p *Parser) parseFunction(declaration *ast.Decl) ast.Node {
	parameters := p.parseParameters()
	if p.lookahead(";") {
		return &ast.FuncDecl{
			Line:       declaration.Line,
			Identifier: declaration.Identifier,
			Type:       declaration.Type,
			Params:     parameters,
		}
	}
	return &ast.FuncDef{
		Line:       declaration.Line,
		Identifier: declaration.Identifier,
		Type:       declaration.Type,
		Params:     parameters,
		Body:       p.parseBody(true),
	}
}

// parseParameters parses the comma-separated parameter declarations
// up to and including the closing parenthesis.
func (p *Parser) parseParameters() []*ast.Decl {
	var params []*ast.Decl
	for p.declarationIncoming() {
		params = append(params, p.parseDeclaration("ParameterDeclaration"))
		if p.lookahead(")") {
			return params
		}
		p.consume(",")
	}
	p.consume(")")
	return params
}

// parseInclude parses the file operand of an #include, keeping the
// delimiters in the file attribute.
func (p *Parser) parseInclude() *ast.Include {
	statement := &ast.Include{Line: p.line}
	var file []byte
	if p.curr == '<' {
		for p.curr != 0 && p.curr != '>' {
			file = append(file, p.curr)
			p.next(true, false)
		}
	} else if p.curr == '"' {
		for {
			file = append(file, p.curr)
			p.next(true, false)
			if p.curr == 0 || p.curr == '"' {
				break
			}
		}
	} else {
		p.unexpected("\" or <")
	}
	if p.curr != 0 {
		file = append(file, p.curr)
	}
	statement.File = string(file)
	p.next(true, false)
	return statement
}

// parsePredefine parses a #define: an identifier, an optional
// parenthesized argument list, and a value expression. The value has
// no terminator; whitespace handling stops it. A function-like macro
// value must itself start with a parenthesis.
func (p *Parser) parsePredefine() *ast.Predefine {
	statement := &ast.Predefine{Line: p.line}
	statement.Identifier = p.parseIdentifier(false)
	var arguments []ast.Expr
	if p.lookahead("(") {
		for p.curr != 0 {
			arguments = append(arguments, p.parseExpression(""))
			if !p.lookahead(",") {
				break
			}
		}
		p.consume(")")
	}
	statement.Arguments = arguments
	if arguments != nil && p.curr != '(' {
		p.unexpected("(")
	}
	statement.Value = p.parseExpression("")
	return statement
}
