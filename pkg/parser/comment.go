package parser

import (
	"github.com/finchlang/finch-cc/pkg/ast"
)

// parseComment parses a comment starting at the current position and
// returns nil when none starts here. Block comments run to the first
// closing delimiter and do not nest; inline comments stop before the
// newline, which the surrounding whitespace skipping then consumes.
// The delimiter match keeps blanks so the content is preserved
// verbatim.
func (p *Parser) parseComment() ast.Node {
	if p.lookaheadSpacing("/*", true) {
		comment := &ast.BlockComment{Line: p.line}
		var content []byte
		for !(p.curr == '*' && p.charAt(p.index+1) == '/') {
			if p.curr == 0 {
				p.unexpected("*/")
			}
			content = append(content, p.curr)
			p.next(true, true)
		}
		comment.Content = string(content)
		p.index += 2
		p.curr = p.charAt(p.index)
		return comment
	}
	if p.lookaheadSpacing("//", true) {
		comment := &ast.InlineComment{Line: p.line}
		var content []byte
		for p.curr != '\n' && p.curr != 0 {
			content = append(content, p.curr)
			p.next(true, true)
		}
		comment.Content = string(content)
		return comment
	}
	return nil
}
