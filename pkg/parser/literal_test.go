package parser

import (
	"testing"

	"github.com/finchlang/finch-cc/pkg/ast"
)

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  string
		value string
	}{
		{"42", "NumberLiteral", "42"},
		{"-7", "NumberLiteral", "-7"},
		{"0", "OctNumberLiteral", "0"},
		{"017", "OctNumberLiteral", "017"},
		{"3.14", "FloatNumberLiteral", "3.14"},
		{".5", "FloatNumberLiteral", ".5"},
		{"0.5", "FloatNumberLiteral", "0.5"},
		{"1e9", "NumberLiteral", "1e9"},
		{"1e-5", "NumberLiteral", "1e-5"},
		{"2.5E-3", "FloatNumberLiteral", "2.5E-3"},
		{"0x1A", "HexNumberLiteral", "0x1A"},
		{"0xff", "HexNumberLiteral", "0xff"},
		{"-0xFF", "HexNumberLiteral", "-0xFF"},
		{"10l", "LongNumberLiteral", "10l"},
		{"10L", "LongNumberLiteral", "10L"},
		{"10lu", "UnsignedLongNumberLiteral", "10lu"},
		{"07l", "LongOctNumberLiteral", "07l"},
		{"0x2Al", "LongHexNumberLiteral", "0x2Al"},
	}

	for i, tt := range tests {
		num, ok := parseExprText(t, tt.input).(*ast.NumberLit)
		if !ok {
			t.Fatalf("tests[%d] - not a number literal: %q", i, tt.input)
		}
		if num.Kind() != tt.kind {
			t.Errorf("tests[%d] - kind wrong. expected=%q, got=%q", i, tt.kind, num.Kind())
		}
		if num.Value != tt.value {
			t.Errorf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.value, num.Value)
		}
	}
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`'a'`, "a"},
		{`'0'`, "0"},
		{`' '`, " "},
		{`'\n'`, `\n`},
		{`'\t'`, `\t`},
		{`'\\'`, `\\`},
		{`'\''`, `\'`},
		{`'\x41'`, "A"},
		{`'\x0a'`, "\n"},
		{`'\101'`, "A"},
		{`'\0'`, "\x00"},
	}

	for i, tt := range tests {
		lit, ok := parseExprText(t, tt.input).(*ast.CharLit)
		if !ok {
			t.Fatalf("tests[%d] - not a char literal: %q", i, tt.input)
		}
		if lit.Value != tt.value {
			t.Errorf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.value, lit.Value)
		}
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input string
		value string
	}{
		{`"hello"`, "hello"},
		{`"two words"`, "two words"},
		{`""`, ""},
		{`"line\n"`, `line\n`},
		{`"tab\tend"`, `tab\tend`},
		{`"quote\"inner\"done"`, `quote\"inner\"done`},
		{`"a\x41b"`, "aAb"},
		{`"a\101b"`, "aAb"},
	}

	for i, tt := range tests {
		lit, ok := parseExprText(t, tt.input).(*ast.StringLit)
		if !ok {
			t.Fatalf("tests[%d] - not a string literal: %q", i, tt.input)
		}
		if lit.Value != tt.value {
			t.Errorf("tests[%d] - value wrong. expected=%q, got=%q", i, tt.value, lit.Value)
		}
	}
}

func TestIdentifierLexing(t *testing.T) {
	tests := []struct {
		input string
		name  string
	}{
		{"x", "x"},
		{"_tmp", "_tmp"},
		{"camelCase9", "camelCase9"},
		{"iffy", "iffy"},
		{"return_code", "return_code"},
	}

	for i, tt := range tests {
		ident, ok := parseExprText(t, tt.input).(*ast.Ident)
		if !ok {
			t.Fatalf("tests[%d] - not an identifier: %q", i, tt.input)
		}
		if ident.Name != tt.name {
			t.Errorf("tests[%d] - name wrong. expected=%q, got=%q", i, tt.name, ident.Name)
		}
	}
}
