package parser

import (
	"github.com/finchlang/finch-cc/pkg/ast"
)

// parseIdentifier parses an identifier. Trailing whitespace is
// skipped unless keepBlanks is set.
func (p *Parser) parseIdentifier(keepBlanks bool) *ast.Ident {
	if !isIdentifierStart(p.curr) {
		p.unexpected("Identifier")
	}
	identifier := &ast.Ident{Line: p.line}
	name := []byte{p.curr}
	p.next(true, false)
	for p.curr != 0 && isIdentifierBody(p.curr) {
		name = append(name, p.curr)
		p.next(true, false)
	}
	if !keepBlanks {
		p.skipSpaces()
	}
	identifier.Name = string(name)
	return identifier
}

// parseNumber parses a numeric literal in the given base (10 or 16).
// The current character is the first digit (or sign or dot for
// decimal); the 0x prefix has already been consumed for hex. Value is
// the textual form including sign, prefix and suffixes.
func (p *Parser) parseNumber(base int) *ast.NumberLit {
	if base == 16 && !isHex(p.curr) {
		p.unexpected("Number")
	}
	number := &ast.NumberLit{Line: p.line, Style: ast.StyleNumber}
	if base == 16 {
		number.Style = ast.StyleHex
	}
	if p.curr == '.' {
		number.Style = ast.StyleFloat
	}
	value := []byte{p.curr}
	p.next(true, false)
	for p.curr != 0 {
		more := isFloatChar(p.curr)
		if base == 16 {
			more = isHex(p.curr)
		} else if !more {
			// exponent, or the sign directly after one
			more = lower(p.curr) == 'e' ||
				(p.curr == '-' && lower(p.charAt(p.index-1)) == 'e')
		}
		if !more {
			break
		}
		if p.curr == '.' {
			number.Style = ast.StyleFloat
		}
		value = append(value, p.curr)
		p.next(true, false)
	}
	if base != 16 && value[0] == '0' && number.Style != ast.StyleFloat {
		number.Style = ast.StyleOct
	}
	if lower(p.curr) == 'l' {
		number.Long = true
		value = append(value, p.curr)
		p.next(true, false)
	}
	if lower(p.curr) == 'u' {
		number.Unsigned = true
		value = append(value, p.curr)
		p.next(true, false)
	}
	if base == 16 && p.curr == '.' {
		p.unexpected("hex number")
	}
	if base == 16 {
		value = append([]byte("0x"), value...)
	}
	p.skipSpaces()
	number.Value = string(value)
	return number
}

// parseString parses the body of a string literal; the scanner is on
// the opening quote. Escapes are re-emitted by parseEscape; raw
// characters, whitespace included, are kept as-is.
func (p *Parser) parseString(keepBlanks bool) string {
	var str []byte
	p.next(true, true)
	for p.curr != 0 && p.curr != '"' {
		if p.curr == '\\' {
			str = append(str, p.parseEscape()...)
		} else {
			str = append(str, p.curr)
			p.next(true, true)
		}
	}
	if !p.lookaheadSpacing("\"", keepBlanks) {
		p.unexpected("double quote")
	}
	return string(str)
}

// parseEscape parses the escape at the current backslash. \x and
// octal escapes decode to the raw byte; characters from the escapes
// table keep their two-character source form.
func (p *Parser) parseEscape() string {
	p.index++
	p.curr = p.charAt(p.index)
	if p.curr == 'x' {
		p.next(true, true)
		code := 0
		for i := 0; i < 2; i++ {
			if isHex(p.curr) {
				code = code*16 + hexValue(p.curr)
				p.next(true, true)
			}
		}
		return string([]byte{byte(code)})
	}
	if isOct(p.curr) {
		code := 0
		for i := 0; i < 3; i++ {
			if isOct(p.curr) {
				code = code*8 + int(p.curr-'0')
				p.next(true, true)
			}
		}
		return string([]byte{byte(code)})
	}
	if escapes[p.curr] {
		escaped := string([]byte{'\\', p.curr})
		p.next(true, true)
		return escaped
	}
	p.unexpected("escape sequence")
	return ""
}

func hexValue(ch byte) int {
	switch {
	case isDigit(ch):
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	default:
		return int(ch-'A') + 10
	}
}
