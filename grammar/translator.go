package grammar

import (
	"fmt"

	u "github.com/araddon/gou"
	"github.com/nihei9/relang/automaton"
	verr "github.com/nihei9/relang/error"
	aspec "github.com/nihei9/relang/spec/automaton"
	gspec "github.com/nihei9/relang/spec/grammar"
)

// Rows of the header lines of a grammar description.
const (
	rowTerminals   = 2
	rowStartSymbol = 3
)

// ToNFA translates a right-linear grammar into an NFA accepting the same language.
//
// Each nonterminal has an entry state. The entry state of the start symbol is state 0 and the other nonterminals
// follow in declaration order. The next state is the only accepting state, and the states after it are the
// intermediate states holding the rest of a multi-terminal alternative.
//
// When the grammar isn't right-linear, ToNFA returns verr.SpecErrors of verr.KindStructural.
func ToNFA(g *gspec.Grammar) (*aspec.NFA, error) {
	t := &translator{
		g: g,
	}
	if errs := t.check(); len(errs) > 0 {
		return nil, errs
	}
	return t.translate()
}

// ToDFA translates a right-linear grammar into a DFA accepting the same language.
func ToDFA(g *gspec.Grammar) (*aspec.DFA, error) {
	nfa, err := ToNFA(g)
	if err != nil {
		return nil, err
	}
	return automaton.ToDFA(nfa)
}

type translator struct {
	g         *gspec.Grammar
	entries   map[aspec.Symbol]aspec.StateID
	accepting aspec.StateID
}

func (t *translator) check() verr.SpecErrors {
	var errs verr.SpecErrors
	structural := func(cause error, detail string, row int) {
		errs = append(errs, &verr.SpecError{
			Kind:   verr.KindStructural,
			Cause:  cause,
			Detail: detail,
			Row:    row,
		})
	}

	for _, sym := range t.g.Terminals {
		if t.g.IsNonterminal(sym) {
			structural(semErrDuplicateName, sym.String(), rowTerminals)
		}
	}
	if !t.g.IsNonterminal(t.g.StartSymbol) {
		structural(semErrUndefinedStartSymbol, t.g.StartSymbol.String(), rowStartSymbol)
	}

	for _, prod := range t.g.Productions {
		if !t.g.IsNonterminal(prod.LHS) {
			structural(semErrUndefinedLHS, prod.LHS.String(), prod.Row)
		}
		for _, alt := range prod.Alternatives {
			for i, sym := range alt {
				switch {
				case t.g.IsNonterminal(sym):
					if i != len(alt)-1 {
						structural(semErrNonterminalNotLast, fmt.Sprintf("%v in %v -> %v", sym, prod.LHS, alt), prod.Row)
					}
				case !t.g.IsTerminal(sym):
					structural(semErrUndefinedSym, fmt.Sprintf("%v in %v -> %v", sym, prod.LHS, alt), prod.Row)
				}
			}
		}
	}

	for _, sym := range t.g.Nonterminals {
		if _, ok := t.g.Production(sym); !ok {
			u.Warnf("nonterminal %v has no production; its entry state has no transitions", sym)
		}
	}

	return errs
}

func (t *translator) translate() (*aspec.NFA, error) {
	alphabet, err := aspec.NewAlphabet(t.g.Terminals)
	if err != nil {
		return nil, &verr.SpecError{
			Kind:   verr.KindStructural,
			Cause:  semErrInvalidTerminals,
			Detail: err.Error(),
			Row:    rowTerminals,
		}
	}

	t.entries = make(map[aspec.Symbol]aspec.StateID, len(t.g.Nonterminals))
	t.entries[t.g.StartSymbol] = aspec.StateIDMin
	next := aspec.StateIDMin + 1
	for _, sym := range t.g.Nonterminals {
		if sym == t.g.StartSymbol {
			continue
		}
		t.entries[sym] = next
		next++
	}
	t.accepting = next
	stateCount := next.Int() + 1

	b := aspec.NewTransitionTableBuilder(alphabet.RowCount(), stateCount)
	for _, prod := range t.g.Productions {
		for _, alt := range prod.Alternatives {
			err := t.translateAlternative(b, alphabet, t.entries[prod.LHS], alt)
			if err != nil {
				return nil, err
			}
		}
	}

	u.Debugf("translated a grammar into an NFA with %v states (%v intermediate)", b.StateCount(), b.StateCount()-stateCount)

	return aspec.NewNFA(alphabet, aspec.StateIDMin, []aspec.StateID{t.accepting}, b.Build())
}

func (t *translator) translateAlternative(b *aspec.TransitionTableBuilder, alphabet *aspec.Alphabet, from aspec.StateID, alt gspec.Alternative) error {
	if len(alt) == 0 {
		return b.Add(aspec.RowEpsilon, from, t.accepting)
	}

	last := len(alt) - 1
	cur := from
	for i := 0; i <= last; i++ {
		sym := alt[i]
		if t.g.IsNonterminal(sym) {
			return b.Add(aspec.RowEpsilon, cur, t.entries[sym])
		}

		row, _ := alphabet.Row(sym)
		switch {
		case i == last:
			return b.Add(row, cur, t.accepting)
		case i+1 == last && t.g.IsNonterminal(alt[last]):
			return b.Add(row, cur, t.entries[alt[last]])
		default:
			next := b.AddState()
			err := b.Add(row, cur, next)
			if err != nil {
				return err
			}
			cur = next
		}
	}
	return nil
}
