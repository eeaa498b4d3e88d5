package parser

// scanState is a scanner snapshot taken before a speculative match.
// Restoring also truncates the comment queue so a failed probe cannot
// enqueue a comment twice.
type scanState struct {
	index   int
	line    int
	pending int
	curr    byte
}

func (p *Parser) save() scanState {
	return scanState{index: p.index, line: p.line, pending: len(p.comments), curr: p.curr}
}

func (p *Parser) restore(s scanState) {
	p.index = s.index
	p.line = s.line
	p.curr = s.curr
	p.comments = p.comments[:s.pending]
}

// charAt returns the byte at offset i, or the null sentinel outside
// the buffer.
func (p *Parser) charAt(i int) byte {
	if i < 0 || i >= len(p.source) {
		return 0
	}
	return p.source[i]
}

// next advances to the next character. Unless keepSpaces is set it
// then consumes any whitespace run; unless keepComments is set it
// parses and queues any comment found along the way and rejects
// illegal characters. The two skips repeat until neither makes
// progress.
func (p *Parser) next(keepSpaces, keepComments bool) {
	if p.curr == '\n' {
		p.line++
	}
	p.index++
	p.curr = p.charAt(p.index)
	for {
		skipped := false
		if !keepSpaces && isSpace(p.curr) {
			for p.curr != 0 && isSpace(p.curr) {
				if p.curr == '\n' {
					p.line++
				}
				p.index++
				p.curr = p.charAt(p.index)
			}
			skipped = true
		}
		if !keepComments {
			if comment := p.parseComment(); comment != nil {
				skipped = true
				p.comments = append(p.comments, comment)
			}
			if isIllegal(p.curr) {
				p.unexpected("legal character")
			}
		}
		if !skipped {
			break
		}
	}
}

// lookahead attempts to match token at the current position. On
// success the match is committed and trailing whitespace skipped; on
// failure the scanner state is restored. A keyword is rejected when
// it would split a longer identifier.
func (p *Parser) lookahead(token string) bool {
	return p.lookaheadSpacing(token, false)
}

func (p *Parser) lookaheadSpacing(token string, keepBlanks bool) bool {
	st := p.save()
	for i := 0; i < len(token); i++ {
		if p.curr != token[i] {
			p.restore(st)
			return false
		}
		p.next(true, false)
	}

	if isIdentifierBody(p.curr) && isIdentifier(token) {
		p.restore(st)
		return false
	}

	if !keepBlanks {
		p.skipSpaces()
	}
	return true
}

// consume is a mandatory lookahead: a mismatch aborts the parse
func (p *Parser) consume(token string) {
	for i := 0; i < len(token); i++ {
		if p.curr != token[i] {
			p.unexpected(token)
		}
		p.next(false, false)
	}
}

func (p *Parser) skipSpaces() {
	if isSpace(p.curr) {
		p.next(false, false)
	}
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// isFloatChar accepts the characters a decimal or float literal is
// built from, exponent and sign aside.
func isFloatChar(ch byte) bool {
	return isDigit(ch) || ch == '.'
}

func isHex(ch byte) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

func isOct(ch byte) bool {
	return '0' <= ch && ch <= '7'
}

func isIdentifierStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isIdentifierBody(ch byte) bool {
	return isIdentifierStart(ch) || isDigit(ch)
}

func isIdentifier(s string) bool {
	if s == "" || !isIdentifierStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isIdentifierBody(s[i]) {
			return false
		}
	}
	return true
}

// isIllegal rejects control and non-ASCII bytes outside literals and
// comments. The null sentinel marks end of input, not a character.
func isIllegal(ch byte) bool {
	return ch != 0 && !isSpace(ch) && (ch < 0x20 || ch >= 0x7f)
}

func lower(ch byte) byte {
	if 'A' <= ch && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
