// Package parser implements a single-pass recursive descent parser
// with integrated lexing for the finch C dialect. Scanning, the
// typedef-grown type-name table, lookahead with backtracking and
// precedence climbing are interleaved; there is no separate token
// stream.
package parser

import (
	"github.com/finchlang/finch-cc/pkg/ast"
)

// typeModifiers are the reserved words accepted before a type name.
// The table is fixed; matching order is the table order.
var typeModifiers = []string{
	"unsigned", "signed", "short", "long", "const",
	"static", "extern", "register", "auto", "volatile",
}

// defaultTypeNames seeds each parser's mutable type-name table;
// typedef appends to the parser's own copy.
var defaultTypeNames = []string{"void", "char", "int", "float", "double"}

// binaryOperators is ordered so that a longer lexeme sharing a prefix
// with a shorter one comes first; the operator scan takes the first
// match, which is then the longest.
var binaryOperators = []string{
	"<<", ">>", "<=", ">=", "==", "!=", "&&", "||",
	"+", "-", "*", "/", "%", "<", ">", "&", "|", "^", "=",
}

// precedence maps operator lexemes to binding strength, higher binds
// tighter. All binary operators are left-associative under the
// strictly-greater extension rule in parseBinary.
var precedence = map[string]int{
	"=":  1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7,
	"<": 8, "<=": 8, ">": 8, ">=": 8,
	"<<": 9, ">>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
}

// escapes lists the single-character escape follow characters kept in
// source form. \x and octal escapes decode to the raw byte instead.
var escapes = map[byte]bool{
	'n': true, 't': true, 'r': true, 'a': true, 'b': true,
	'f': true, 'v': true, '\\': true, '\'': true, '"': true, '?': true,
}

// Parser owns the source buffer and all scanner state. The buffer is
// mutable: multi-identifier declarations are handled by rewriting the
// separating comma into the declared type (see parseDefinition). A
// Parser is single-use and not safe for concurrent use.
type Parser struct {
	source []byte
	index  int
	curr   byte
	line   int

	comments  []ast.Node
	typeNames []string
}

// New creates a Parser over the given source text
func New(src string) *Parser {
	return &Parser{
		source:    []byte(src),
		index:     -1,
		line:      1,
		typeNames: append([]string(nil), defaultTypeNames...),
	}
}

// Parse consumes the whole source and returns the Program node. The
// first violation aborts with a ParseError (or the struct/enum
// sentinel errors); there is no recovery.
func (p *Parser) Parse() (prog *ast.Program, errRet error) {
	defer func() {
		if e := recover(); e != nil {
			peb := e.(parseErrorBreakOut) // Will re-panic if not a breakout.
			prog = nil
			errRet = peb.err
		}
	}()

	p.next(false, false)
	var statements []ast.Node
	for p.curr != 0 {
		p.skipSpaces()
		p.flushComments(&statements)
		switch {
		case p.lookahead("#include"):
			statements = append(statements, p.parseInclude())
		case p.lookahead("#define"):
			statements = append(statements, p.parsePredefine())
		case p.declarationIncoming():
			declaration := p.parseDeclaration("Declaration")
			if p.lookahead("(") {
				statements = append(statements, p.parseFunction(declaration))
			} else {
				statements = append(statements, p.parseDefinition(declaration, true))
			}
		case p.lookahead("typedef"):
			declaration := p.parseDeclaration("TypeDefinition")
			p.typeNames = append(p.typeNames, declaration.Identifier.Name)
			p.consume(";")
			statements = append(statements, declaration)
		case p.lookahead("struct"):
			p.fail(ErrStruct)
		case p.lookahead("enum"):
			p.fail(ErrEnum)
		default:
			p.unexpected("definition")
		}
		p.flushComments(&statements)
		p.skipSpaces()
	}
	return &ast.Program{Body: statements}, nil
}

// flushComments splices the pending comment queue into a statement
// list and clears the queue.
func (p *Parser) flushComments(dst *[]ast.Node) {
	if len(p.comments) == 0 {
		return
	}
	*dst = append(*dst, p.comments...)
	p.comments = p.comments[:0]
}
