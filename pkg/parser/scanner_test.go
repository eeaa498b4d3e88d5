package parser

import "testing"

func TestLookaheadIdentifierBoundary(t *testing.T) {
	tests := []struct {
		input string
		token string
		match bool
	}{
		{"if (x)", "if", true},
		{"iffy = 1", "if", false},
		{"return_code = 1", "return", false},
		{"return 1", "return", true},
		{"do ;", "do", true},
		{"double x", "do", false},
		{"int x", "int", true},
		{"integer x", "int", false},
		{"<= y", "<=", true},
		{"<y", "<=", false},
	}

	for i, tt := range tests {
		p := New(tt.input)
		p.next(false, false)
		if got := p.lookahead(tt.token); got != tt.match {
			t.Errorf("tests[%d] - lookahead(%q) on %q = %v, want %v",
				i, tt.token, tt.input, got, tt.match)
		}
	}
}

func TestLookaheadRestoresState(t *testing.T) {
	p := New("while_not x")
	p.next(false, false)
	if p.lookahead("while") {
		t.Fatal("matched inside a longer identifier")
	}
	if p.index != 0 || p.curr != 'w' || p.line != 1 {
		t.Errorf("state not restored: index=%d curr=%q line=%d", p.index, p.curr, p.line)
	}
}

func TestLookaheadSkipsTrailingSpaces(t *testing.T) {
	p := New("if   (x)")
	p.next(false, false)
	if !p.lookahead("if") {
		t.Fatal("expected match")
	}
	if p.curr != '(' {
		t.Errorf("trailing spaces not skipped, curr=%q", p.curr)
	}
}

func TestLineCounting(t *testing.T) {
	p := New("int\n\nx\n;")
	p.next(false, false)
	if p.line != 1 {
		t.Fatalf("line = %d, want 1", p.line)
	}
	if !p.lookahead("int") {
		t.Fatal("expected match")
	}
	if p.line != 3 {
		t.Errorf("line after blank lines = %d, want 3", p.line)
	}
}

func TestScanBinaryOperatorLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<< 2", "<<"},
		{"<= 2", "<="},
		{"< 2", "<"},
		{"== 2", "=="},
		{"= 2", "="},
		{"&& b", "&&"},
		{"& b", "&"},
		{"} b", ""},
		{", b", ""},
		{") b", ""},
	}

	for i, tt := range tests {
		p := New(tt.input)
		p.next(false, false)
		st := p.save()
		if got := p.scanBinaryOperator(); got != tt.want {
			t.Errorf("tests[%d] - operator wrong. expected=%q, got=%q", i, tt.want, got)
		}
		if p.index != st.index || p.curr != st.curr {
			t.Errorf("tests[%d] - scan committed the scanner", i)
		}
	}
}

func TestDeclarationIncomingRestores(t *testing.T) {
	p := New("unsigned long x;")
	p.next(false, false)
	if !p.declarationIncoming() {
		t.Fatal("expected declaration")
	}
	if p.index != 0 || p.curr != 'u' {
		t.Errorf("probe committed: index=%d curr=%q", p.index, p.curr)
	}

	p = New("frobnicate();")
	p.next(false, false)
	if p.declarationIncoming() {
		t.Fatal("unexpected declaration")
	}
}
