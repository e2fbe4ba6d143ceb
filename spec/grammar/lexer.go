package grammar

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
	aspec "github.com/nihei9/relang/spec/automaton"
)

type tokenKind string

const (
	tokenKindSymbol  = tokenKind("symbol")
	tokenKindComma   = tokenKind(",")
	tokenKindArrow   = tokenKind("->")
	tokenKindOr      = tokenKind("|")
	tokenKindNewline = tokenKind("newline")
	tokenKindEOF     = tokenKind("eof")
	tokenKindInvalid = tokenKind("invalid")
)

type Position struct {
	Row int
	Col int
}

func newPosition(row, col int) Position {
	return Position{
		Row: row,
		Col: col,
	}
}

type token struct {
	kind tokenKind
	sym  aspec.Symbol
	text string
	pos  Position
}

func newSymbolToken(kind tokenKind, pos Position) *token {
	return &token{
		kind: kind,
		pos:  pos,
	}
}

func newGrammarSymbolToken(sym aspec.Symbol, pos Position) *token {
	return &token{
		kind: tokenKindSymbol,
		sym:  sym,
		text: sym.String(),
		pos:  pos,
	}
}

func newEOFToken(pos Position) *token {
	return &token{
		kind: tokenKindEOF,
		pos:  pos,
	}
}

func newInvalidToken(text string, pos Position) *token {
	return &token{
		kind: tokenKindInvalid,
		text: text,
		pos:  pos,
	}
}

// A symbol is any single character other than white spaces, line breaks, and the delimiters.
var lexEntries = []*mlspec.LexEntry{
	{
		Kind:    "white_space",
		Pattern: `[\u{0009}\u{0020}]+`,
	},
	{
		Kind:    "newline",
		Pattern: `\u{000D}?\u{000A}`,
	},
	{
		Kind:    "arrow",
		Pattern: `->`,
	},
	{
		Kind:    "comma",
		Pattern: `,`,
	},
	{
		Kind:    "or",
		Pattern: `\|`,
	},
	{
		Kind:    "symbol",
		Pattern: `[^\u{0009}\u{000A}\u{000D}\u{0020}\u{002C}\u{007C}]`,
	},
}

var (
	lexSpecOnce sync.Once
	lexSpec     *mlspec.CompiledLexSpec
	lexSpecErr  error
)

func compiledLexSpec() (*mlspec.CompiledLexSpec, error) {
	lexSpecOnce.Do(func() {
		lexSpec, lexSpecErr = compileLexSpec()
	})
	return lexSpec, lexSpecErr
}

func compileLexSpec() (*mlspec.CompiledLexSpec, error) {
	clspec, err, cErrs := mlcompiler.Compile(&mlspec.LexSpec{
		Entries: lexEntries,
	}, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		if len(cErrs) > 0 {
			var b strings.Builder
			for i, cerr := range cErrs {
				if i > 0 {
					fmt.Fprintf(&b, "\n")
				}
				fmt.Fprintf(&b, "%v: %v", cerr.Kind, cerr.Cause)
			}
			return nil, fmt.Errorf("failed to compile the grammar lexer: %v", b.String())
		}
		return nil, err
	}
	return clspec, nil
}

type lexer struct {
	s *mlspec.CompiledLexSpec
	d *mldriver.Lexer
}

func newLexer(src io.Reader) (*lexer, error) {
	s, err := compiledLexSpec()
	if err != nil {
		return nil, err
	}
	d, err := mldriver.NewLexer(mldriver.NewLexSpec(s), src)
	if err != nil {
		return nil, err
	}
	return &lexer{
		s: s,
		d: d,
	}, nil
}

// next returns the next token skipping white spaces. Positions are 1-based.
func (l *lexer) next() (*token, error) {
	var tok *mldriver.Token
	for {
		var err error
		tok, err = l.d.Next()
		if err != nil {
			return nil, err
		}
		pos := newPosition(tok.Row+1, tok.Col+1)
		if tok.Invalid {
			return newInvalidToken(string(tok.Lexeme), pos), nil
		}
		if tok.EOF {
			return newEOFToken(pos), nil
		}
		if l.s.KindNames[tok.KindID].String() == "white_space" {
			continue
		}
		break
	}

	pos := newPosition(tok.Row+1, tok.Col+1)
	switch l.s.KindNames[tok.KindID].String() {
	case "newline":
		return newSymbolToken(tokenKindNewline, pos), nil
	case "arrow":
		return newSymbolToken(tokenKindArrow, pos), nil
	case "comma":
		return newSymbolToken(tokenKindComma, pos), nil
	case "or":
		return newSymbolToken(tokenKindOr, pos), nil
	case "symbol":
		r, _ := utf8.DecodeRune(tok.Lexeme)
		return newGrammarSymbolToken(aspec.Symbol(r), pos), nil
	default:
		return newInvalidToken(string(tok.Lexeme), pos), nil
	}
}
