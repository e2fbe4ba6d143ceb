package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	aspec "github.com/nihei9/relang/spec/automaton"
)

// Alternative is a right-hand side of a production. An empty alternative derives the empty string.
type Alternative []aspec.Symbol

func (a Alternative) String() string {
	var b strings.Builder
	for _, sym := range a {
		fmt.Fprintf(&b, "%v", sym)
	}
	return b.String()
}

type Production struct {
	LHS          aspec.Symbol
	Alternatives []Alternative

	// Row is the line where the production first appears.
	Row int
}

// Grammar is a grammar description. The model keeps what the description says; whether the grammar is right-linear
// is checked by the translator.
type Grammar struct {
	Nonterminals []aspec.Symbol
	Terminals    []aspec.Symbol
	StartSymbol  aspec.Symbol

	// Productions are ordered by the first appearance of their left-hand side. Lines sharing a left-hand side are
	// merged into one production.
	Productions []*Production
}

func (g *Grammar) IsNonterminal(sym aspec.Symbol) bool {
	return contains(g.Nonterminals, sym)
}

func (g *Grammar) IsTerminal(sym aspec.Symbol) bool {
	return contains(g.Terminals, sym)
}

// Production returns the production of a nonterminal.
func (g *Grammar) Production(lhs aspec.Symbol) (*Production, bool) {
	for _, prod := range g.Productions {
		if prod.LHS == lhs {
			return prod, true
		}
	}
	return nil, false
}

func contains(syms []aspec.Symbol, sym aspec.Symbol) bool {
	for _, s := range syms {
		if s == sym {
			return true
		}
	}
	return false
}

// Write writes a grammar in the grammar description format.
func Write(w io.Writer, g *Grammar) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%v\n", joinSymbols(g.Nonterminals))
	fmt.Fprintf(bw, "%v\n", joinSymbols(g.Terminals))
	fmt.Fprintf(bw, "%v\n", g.StartSymbol)
	for _, prod := range g.Productions {
		alts := make([]string, len(prod.Alternatives))
		for i, alt := range prod.Alternatives {
			alts[i] = alt.String()
		}
		fmt.Fprintf(bw, "%v -> %v\n", prod.LHS, strings.Join(alts, "|"))
	}

	return bw.Flush()
}

func joinSymbols(syms []aspec.Symbol) string {
	ss := make([]string, len(syms))
	for i, sym := range syms {
		ss[i] = sym.String()
	}
	return strings.Join(ss, ",")
}
