package driver

import (
	"fmt"
	"unicode/utf8"

	spec "github.com/nihei9/relang/spec/automaton"
)

// Matcher runs a compiled DFA. It reads the transition table in whichever compression level the table was
// compiled with.
type Matcher struct {
	spec *spec.CompiledDFA
	cols map[spec.Symbol]int
}

// NewMatcher checks a compiled DFA before running it. Every entry of the transition table must be reachable
// through the compressed layout and must point to a state of the DFA, so a corrupted table is reported here and
// never reaches NextState.
func NewMatcher(cspec *spec.CompiledDFA) (*Matcher, error) {
	if cspec == nil || cspec.DFA == nil {
		return nil, fmt.Errorf("a compiled DFA has no transition table")
	}
	if cspec.StateCount <= 0 || len(cspec.AcceptingStates) != cspec.StateCount {
		return nil, fmt.Errorf("a compiled DFA has an inconsistent state count: %v", cspec.StateCount)
	}
	if cspec.InitialState < spec.StateIDMin || cspec.InitialState.Int() >= cspec.StateCount {
		return nil, fmt.Errorf("an initial state is out of range: %v", cspec.InitialState)
	}
	if len(cspec.Alphabet) != cspec.DFA.ColCount {
		return nil, fmt.Errorf("an alphabet has %v symbols but a transition table has %v columns", len(cspec.Alphabet), cspec.DFA.ColCount)
	}
	switch cspec.CompressionLevel {
	case 0:
		if len(cspec.DFA.UncompressedTransition) != cspec.StateCount*cspec.DFA.ColCount {
			return nil, fmt.Errorf("an uncompressed transition table has an invalid size: %v", len(cspec.DFA.UncompressedTransition))
		}
	case 1, 2:
		tran := cspec.DFA.Transition
		if tran == nil || len(tran.RowNums) != cspec.StateCount {
			return nil, fmt.Errorf("a compressed transition table is broken")
		}
		if cspec.CompressionLevel == 1 && tran.OriginalColCount != cspec.DFA.ColCount {
			return nil, fmt.Errorf("a compressed transition table has %v columns but %v are expected", tran.OriginalColCount, cspec.DFA.ColCount)
		}
		if cspec.CompressionLevel == 2 && tran.UniqueEntries == nil {
			return nil, fmt.Errorf("a compressed transition table has no unique entries")
		}
	default:
		return nil, fmt.Errorf("unsupported compression level: %v", cspec.CompressionLevel)
	}

	cols := make(map[spec.Symbol]int, len(cspec.Alphabet))
	for col, name := range cspec.Alphabet {
		r, size := utf8.DecodeRuneInString(name)
		if r == utf8.RuneError || size != len(name) {
			return nil, fmt.Errorf("an alphabet symbol must be a single character: %q", name)
		}
		cols[spec.Symbol(r)] = col
	}

	m := &Matcher{
		spec: cspec,
		cols: cols,
	}
	for s := 0; s < cspec.StateCount; s++ {
		for col := 0; col < cspec.DFA.ColCount; col++ {
			next, err := m.lookup(spec.StateID(s), col)
			if err != nil {
				return nil, err
			}
			if next < spec.CompiledStateIDNil || next.Int() > cspec.StateCount {
				return nil, fmt.Errorf("a transition of state %v targets a state out of range: %v", s, next.StateID())
			}
		}
	}

	return m, nil
}

func (m *Matcher) InitialState() spec.StateID {
	return m.spec.InitialState
}

func (m *Matcher) Accept(state spec.StateID) bool {
	if state < spec.StateIDMin || state.Int() >= m.spec.StateCount {
		return false
	}
	return m.spec.AcceptingStates[state]
}

// NextState returns the target of a state under a symbol. The second return value is false when there is no
// transition or the symbol isn't in the alphabet.
func (m *Matcher) NextState(state spec.StateID, sym spec.Symbol) (spec.StateID, bool) {
	col, ok := m.cols[sym]
	if !ok || state < spec.StateIDMin || state.Int() >= m.spec.StateCount {
		return spec.StateIDNil, false
	}
	next, err := m.lookup(state, col)
	if err != nil || next == spec.CompiledStateIDNil {
		return spec.StateIDNil, false
	}
	return next.StateID(), true
}

// lookup reads an entry of the transition table. state and col must be in range.
func (m *Matcher) lookup(state spec.StateID, col int) (spec.CompiledStateID, error) {
	tab := m.spec.DFA
	switch m.spec.CompressionLevel {
	case 2:
		tran := tab.Transition
		rdTab := tran.UniqueEntries
		rowNum := tran.RowNums[state]
		if rowNum < 0 || rowNum >= len(rdTab.RowDisplacement) {
			return spec.CompiledStateIDNil, fmt.Errorf("state %v refers to a missing unique row: %v", state, rowNum)
		}
		d := rdTab.RowDisplacement[rowNum]
		if d < 0 || d+col >= len(rdTab.Bounds) || d+col >= len(rdTab.Entries) {
			return spec.CompiledStateIDNil, fmt.Errorf("unique row %v has a displacement out of range: %v", rowNum, d)
		}
		if rdTab.Bounds[d+col] != rowNum {
			return spec.CompiledStateIDNil, nil
		}
		return rdTab.Entries[d+col], nil
	case 1:
		tran := tab.Transition
		rowNum := tran.RowNums[state]
		i := rowNum*tran.OriginalColCount + col
		if rowNum < 0 || i >= len(tran.UncompressedUniqueEntries) {
			return spec.CompiledStateIDNil, fmt.Errorf("state %v refers to a missing unique row: %v", state, rowNum)
		}
		return tran.UncompressedUniqueEntries[i], nil
	default:
		return tab.UncompressedTransition[state.Int()*tab.ColCount+col], nil
	}
}

// Match reports whether the compiled DFA accepts input.
func (m *Matcher) Match(input []spec.Symbol) bool {
	state := m.InitialState()
	for _, sym := range input {
		next, ok := m.NextState(state, sym)
		if !ok {
			return false
		}
		state = next
	}
	return m.Accept(state)
}

func (m *Matcher) MatchString(s string) bool {
	return m.Match(spec.SymbolsOf(s))
}
