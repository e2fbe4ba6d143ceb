package grammar

import (
	"strings"
	"testing"
)

func TestLexer_Run(t *testing.T) {
	symTok := func(text string, row int) *token {
		return &token{
			kind: tokenKindSymbol,
			text: text,
			pos:  newPosition(row, 0),
		}
	}
	kindTok := func(kind tokenKind, row int) *token {
		return &token{
			kind: kind,
			pos:  newPosition(row, 0),
		}
	}

	tests := []struct {
		caption string
		src     string
		tokens  []*token
	}{
		{
			caption: "the lexer can recognize all kinds of tokens",
			src:     "S,A\na->b|\n",
			tokens: []*token{
				symTok("S", 1),
				kindTok(tokenKindComma, 1),
				symTok("A", 1),
				kindTok(tokenKindNewline, 1),
				symTok("a", 2),
				kindTok(tokenKindArrow, 2),
				symTok("b", 2),
				kindTok(tokenKindOr, 2),
				kindTok(tokenKindNewline, 2),
				kindTok(tokenKindEOF, 0),
			},
		},
		{
			caption: "the lexer skips white spaces and accepts CRLF",
			src:     " S \t-> a\tS \r\n",
			tokens: []*token{
				symTok("S", 1),
				kindTok(tokenKindArrow, 1),
				symTok("a", 1),
				symTok("S", 1),
				kindTok(tokenKindNewline, 1),
				kindTok(tokenKindEOF, 0),
			},
		},
		{
			caption: "a symbol can be any single character",
			src:     "-あ>0",
			tokens: []*token{
				symTok("-", 1),
				symTok("あ", 1),
				symTok(">", 1),
				symTok("0", 1),
				kindTok(tokenKindEOF, 0),
			},
		},
		{
			caption: "a symbol followed by > is an arrow only after -",
			src:     "->->>",
			tokens: []*token{
				kindTok(tokenKindArrow, 1),
				kindTok(tokenKindArrow, 1),
				symTok(">", 1),
				kindTok(tokenKindEOF, 0),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			l, err := newLexer(strings.NewReader(tt.src))
			if err != nil {
				t.Fatal(err)
			}
			for _, eTok := range tt.tokens {
				tok, err := l.next()
				if err != nil {
					t.Fatal(err)
				}
				testToken(t, eTok, tok)
			}
		})
	}
}

func TestLexer_InvalidToken(t *testing.T) {
	l, err := newLexer(strings.NewReader("S\rA"))
	if err != nil {
		t.Fatal(err)
	}
	tok, err := l.next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.kind != tokenKindSymbol {
		t.Fatalf("unexpected token; want: %v, got: %v", tokenKindSymbol, tok.kind)
	}
	tok, err = l.next()
	if err != nil {
		t.Fatal(err)
	}
	if tok.kind != tokenKindInvalid {
		t.Fatalf("a lone carriage return must be an invalid token; got: %v", tok.kind)
	}
}

func testToken(t *testing.T, expected, actual *token) {
	t.Helper()

	if actual.kind != expected.kind || actual.text != expected.text {
		t.Fatalf("unexpected token; want: %+v, got: %+v", expected, actual)
	}
	if expected.kind != tokenKindEOF && actual.pos.Row != expected.pos.Row {
		t.Fatalf("unexpected row; want: %v, got: %v", expected.pos.Row, actual.pos.Row)
	}
}
