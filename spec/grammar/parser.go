package grammar

import (
	"io"
	"os"
	"runtime"

	verr "github.com/nihei9/relang/error"
	aspec "github.com/nihei9/relang/spec/automaton"
)

type parseError struct {
	cause  *SyntaxError
	detail string
	row    int
}

func raiseSyntaxError(row int, synErr *SyntaxError, detail string) {
	panic(&parseError{
		cause:  synErr,
		detail: detail,
		row:    row,
	})
}

// LoadGrammar reads a grammar description from a file.
func LoadGrammar(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, verr.NewIOError(err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, verr.WithSource(err, path, path)
	}
	return g, nil
}

// Parse reads a grammar description in the following line-oriented format:
//
//  1. comma-separated nonterminal symbols
//  2. comma-separated terminal symbols
//  3. the start symbol
//  4. productions of the form `A -> rhs1|rhs2|...`, one per line
//
// A symbol is a single character. White spaces between symbols are ignored, and so are blank lines between
// productions. A malformed description is reported as a *verr.SpecError of verr.KindFormat.
func Parse(src io.Reader) (*Grammar, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	return p.parse()
}

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
	row       int
}

func newParser(src io.Reader) (*parser, error) {
	lex, err := newLexer(src)
	if err != nil {
		return nil, err
	}
	return &parser{
		lex: lex,
		row: 1,
	}, nil
}

func (p *parser) parse() (g *Grammar, retErr error) {
	defer func() {
		err := recover()
		if err == nil {
			return
		}
		if perr, ok := err.(*parseError); ok {
			retErr = &verr.SpecError{
				Kind:   verr.KindFormat,
				Cause:  perr.cause,
				Detail: perr.detail,
				Row:    perr.row,
			}
			return
		}
		if _, ok := err.(runtime.Error); ok {
			panic(err)
		}
		if e, ok := err.(error); ok {
			retErr = verr.NewIOError(e)
			return
		}
		panic(err)
	}()

	return p.parseGrammar(), nil
}

func (p *parser) parseGrammar() *Grammar {
	nonterms := p.parseSymbolList()
	if len(nonterms) == 0 {
		raiseSyntaxError(p.row, synErrNoNonterminals, "")
	}
	p.expectLineBreak(synErrNoTerminalsLine)
	if p.peek(tokenKindEOF) {
		raiseSyntaxError(p.row, synErrNoTerminalsLine, "")
	}

	terms := p.parseSymbolList()
	p.expectLineBreak(synErrNoStartSymbol)

	if !p.consume(tokenKindSymbol) {
		raiseSyntaxError(p.row, synErrNoStartSymbol, "")
	}
	start := p.lastTok.sym
	if !p.consume(tokenKindNewline) && !p.peek(tokenKindEOF) {
		raiseSyntaxError(p.row, synErrStartSymbolNoBreak, p.describeNext())
	}

	g := &Grammar{
		Nonterminals: nonterms,
		Terminals:    terms,
		StartSymbol:  start,
	}
	prods := map[aspec.Symbol]*Production{}
	for {
		p.skipNewlines()
		if p.consume(tokenKindEOF) {
			break
		}

		prod := p.parseProduction()
		if merged, ok := prods[prod.LHS]; ok {
			merged.Alternatives = append(merged.Alternatives, prod.Alternatives...)
			continue
		}
		prods[prod.LHS] = prod
		g.Productions = append(g.Productions, prod)
	}
	if len(g.Productions) == 0 {
		raiseSyntaxError(p.row, synErrNoProduction, "")
	}

	return g
}

// parseSymbolList parses comma-separated symbols up to the end of the line. An empty line is an empty list.
func (p *parser) parseSymbolList() []aspec.Symbol {
	if p.peek(tokenKindNewline) || p.peek(tokenKindEOF) {
		return nil
	}

	var syms []aspec.Symbol
	seen := map[aspec.Symbol]struct{}{}
	for {
		if !p.consume(tokenKindSymbol) {
			raiseSyntaxError(p.row, synErrNoSymbol, p.describeNext())
		}
		sym := p.lastTok.sym
		if _, dup := seen[sym]; dup {
			raiseSyntaxError(p.row, synErrDuplicateSymbol, sym.String())
		}
		seen[sym] = struct{}{}
		syms = append(syms, sym)

		if !p.consume(tokenKindComma) {
			break
		}
	}
	if !p.peek(tokenKindNewline) && !p.peek(tokenKindEOF) {
		raiseSyntaxError(p.row, synErrUnexpectedToken, p.describeNext())
	}
	return syms
}

func (p *parser) parseProduction() *Production {
	if !p.consume(tokenKindSymbol) {
		raiseSyntaxError(p.row, synErrNoProductionName, p.describeNext())
	}
	prod := &Production{
		LHS: p.lastTok.sym,
		Row: p.row,
	}
	if !p.consume(tokenKindArrow) {
		raiseSyntaxError(p.row, synErrNoArrow, p.describeNext())
	}

	prod.Alternatives = append(prod.Alternatives, p.parseAlternative())
	for p.consume(tokenKindOr) {
		prod.Alternatives = append(prod.Alternatives, p.parseAlternative())
	}

	if !p.consume(tokenKindNewline) && !p.peek(tokenKindEOF) {
		raiseSyntaxError(p.row, synErrUnexpectedToken, p.describeNext())
	}
	return prod
}

func (p *parser) parseAlternative() Alternative {
	alt := Alternative{}
	for p.consume(tokenKindSymbol) {
		alt = append(alt, p.lastTok.sym)
	}
	return alt
}

// expectLineBreak ends a header line. Reaching the end of the input instead means the following line is missing.
func (p *parser) expectLineBreak(synErr *SyntaxError) {
	if !p.consume(tokenKindNewline) {
		raiseSyntaxError(p.row+1, synErr, "")
	}
}

func (p *parser) skipNewlines() {
	for p.consume(tokenKindNewline) {
	}
}

func (p *parser) describeNext() string {
	tok := p.peekToken()
	switch tok.kind {
	case tokenKindSymbol, tokenKindInvalid:
		return tok.text
	}
	return string(tok.kind)
}

func (p *parser) peek(expected tokenKind) bool {
	return p.peekToken().kind == expected
}

func (p *parser) peekToken() *token {
	if p.peekedTok == nil {
		tok, err := p.lex.next()
		if err != nil {
			panic(err)
		}
		p.peekedTok = tok
	}
	return p.peekedTok
}

func (p *parser) consume(expected tokenKind) bool {
	tok := p.peekToken()
	if tok.kind == tokenKindInvalid {
		raiseSyntaxError(tok.pos.Row, synErrInvalidToken, tok.text)
	}
	if tok.kind == tokenKindSymbol && tok.sym.IsEpsilon() {
		raiseSyntaxError(tok.pos.Row, synErrInvalidToken, "NUL")
	}
	if tok.kind != expected {
		return false
	}

	p.peekedTok = nil
	p.lastTok = tok
	switch tok.kind {
	case tokenKindNewline:
		p.row = tok.pos.Row + 1
	case tokenKindEOF:
	default:
		p.row = tok.pos.Row
	}
	return true
}
