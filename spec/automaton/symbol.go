package automaton

import (
	"fmt"
	"strconv"
	"strings"
)

// Symbol represents a terminal character of an alphabet.
type Symbol rune

// SymbolEpsilon represents the empty transition. It is never a member of an alphabet.
const SymbolEpsilon = Symbol(0)

func (s Symbol) String() string {
	if s == SymbolEpsilon {
		return "ε"
	}
	return string(rune(s))
}

func (s Symbol) IsEpsilon() bool {
	return s == SymbolEpsilon
}

// SymbolsOf splits a string into symbols, one per code point.
func SymbolsOf(s string) []Symbol {
	syms := make([]Symbol, 0, len(s))
	for _, r := range s {
		syms = append(syms, Symbol(r))
	}
	return syms
}

// StateID represents an index of a state. Valid states are sequential numbers starting from StateIDMin.
type StateID int

const (
	// StateIDNil represents an absent state.
	StateIDNil = StateID(-1)

	StateIDMin = StateID(0)
)

func (id StateID) Int() int {
	return int(id)
}

func (id StateID) String() string {
	return strconv.Itoa(int(id))
}

// RowEpsilon is the transition table row of the empty transition.
const RowEpsilon = 0

// Alphabet is an ordered set of distinct symbols. The order of the symbols defines the order
// of the rows of a transition table.
type Alphabet struct {
	symbols []Symbol
	rows    map[Symbol]int
}

func NewAlphabet(symbols []Symbol) (*Alphabet, error) {
	a := &Alphabet{
		symbols: make([]Symbol, 0, len(symbols)),
		rows:    make(map[Symbol]int, len(symbols)),
	}
	for _, sym := range symbols {
		if sym.IsEpsilon() {
			return nil, fmt.Errorf("the epsilon symbol cannot be a member of an alphabet")
		}
		if _, ok := a.rows[sym]; ok {
			return nil, fmt.Errorf("duplicate symbol: %v", sym)
		}
		a.symbols = append(a.symbols, sym)
		a.rows[sym] = len(a.symbols)
	}
	return a, nil
}

// Len returns the number of symbols excluding epsilon.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// RowCount returns the number of transition table rows, that is, the number of symbols plus the epsilon row.
func (a *Alphabet) RowCount() int {
	return len(a.symbols) + 1
}

// Symbols returns the symbols in declaration order.
func (a *Alphabet) Symbols() []Symbol {
	return append([]Symbol{}, a.symbols...)
}

// Symbol returns the symbol of a row. Row 0 is epsilon.
func (a *Alphabet) Symbol(row int) Symbol {
	if row == RowEpsilon {
		return SymbolEpsilon
	}
	return a.symbols[row-1]
}

// Row returns the transition table row of a symbol. The second return value is false when the alphabet doesn't
// contain the symbol.
func (a *Alphabet) Row(sym Symbol) (int, bool) {
	if sym.IsEpsilon() {
		return RowEpsilon, true
	}
	row, ok := a.rows[sym]
	return row, ok
}

func (a *Alphabet) Contains(sym Symbol) bool {
	_, ok := a.rows[sym]
	return ok
}

func (a *Alphabet) String() string {
	var b strings.Builder
	for i, sym := range a.symbols {
		if i > 0 {
			fmt.Fprintf(&b, ",")
		}
		fmt.Fprintf(&b, "%v", sym)
	}
	return b.String()
}
