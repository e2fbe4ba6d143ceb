package automaton

import (
	"fmt"
	"sort"

	verr "github.com/nihei9/relang/error"
)

// NFA is a nondeterministic finite automaton with epsilon transitions. An NFA is immutable once constructed.
type NFA struct {
	alphabet     *Alphabet
	stateCount   int
	initialState StateID
	accepting    []StateID
	isAccepting  []bool
	transitions  *TransitionTable
}

// NewNFA validates the components and returns an NFA. It returns a *verr.SpecError of KindRange when the initial
// state or an accepting state lies outside [0, stateCount).
func NewNFA(alphabet *Alphabet, initialState StateID, accepting []StateID, tab *TransitionTable) (*NFA, error) {
	if alphabet == nil || tab == nil {
		return nil, fmt.Errorf("an alphabet and a transition table are required")
	}
	if tab.RowCount() != alphabet.RowCount() {
		return nil, fmt.Errorf("transition table has %v rows but the alphabet needs %v", tab.RowCount(), alphabet.RowCount())
	}
	stateCount := tab.StateCount()
	if stateCount <= 0 {
		return nil, &verr.SpecError{
			Kind:  verr.KindRange,
			Cause: semErrNoState,
		}
	}
	if initialState < StateIDMin || initialState.Int() >= stateCount {
		return nil, &verr.SpecError{
			Kind:   verr.KindRange,
			Cause:  semErrInitialStateOutOfRange,
			Detail: initialState.String(),
		}
	}

	isAccepting := make([]bool, stateCount)
	var acc []StateID
	for _, s := range accepting {
		if s < StateIDMin || s.Int() >= stateCount {
			return nil, &verr.SpecError{
				Kind:   verr.KindRange,
				Cause:  semErrAcceptingStateOutOfRange,
				Detail: s.String(),
			}
		}
		if isAccepting[s] {
			continue
		}
		isAccepting[s] = true
		acc = append(acc, s)
	}
	sort.Slice(acc, func(i, j int) bool {
		return acc[i] < acc[j]
	})

	return &NFA{
		alphabet:     alphabet,
		stateCount:   stateCount,
		initialState: initialState,
		accepting:    acc,
		isAccepting:  isAccepting,
		transitions:  tab,
	}, nil
}

func (a *NFA) Alphabet() *Alphabet {
	return a.alphabet
}

func (a *NFA) StateCount() int {
	return a.stateCount
}

func (a *NFA) InitialState() StateID {
	return a.initialState
}

// AcceptingStates returns the accepting states in increasing order.
func (a *NFA) AcceptingStates() []StateID {
	return append([]StateID{}, a.accepting...)
}

func (a *NFA) IsAccepting(s StateID) bool {
	if s < StateIDMin || s.Int() >= a.stateCount {
		return false
	}
	return a.isAccepting[s]
}

func (a *NFA) Transitions() *TransitionTable {
	return a.transitions
}

// Targets returns the targets of a state under a symbol. It returns nil when the symbol isn't in the alphabet.
func (a *NFA) Targets(sym Symbol, s StateID) []StateID {
	row, ok := a.alphabet.Row(sym)
	if !ok {
		return nil
	}
	return a.transitions.Targets(row, s)
}

// EpsilonTargets returns the targets of a state under the empty transition.
func (a *NFA) EpsilonTargets(s StateID) []StateID {
	return a.transitions.Targets(RowEpsilon, s)
}

// DFA is a deterministic finite automaton. Each (symbol, state) pair has at most one target, and a missing
// transition means rejection.
type DFA struct {
	nfa *NFA
}

// NewDFA validates the components like NewNFA and additionally requires a deterministic transition table.
func NewDFA(alphabet *Alphabet, initialState StateID, accepting []StateID, tab *TransitionTable) (*DFA, error) {
	if !tab.IsDeterministic() {
		return nil, &verr.SpecError{
			Kind:  verr.KindFormat,
			Cause: semErrNondeterministic,
		}
	}
	nfa, err := NewNFA(alphabet, initialState, accepting, tab)
	if err != nil {
		return nil, err
	}
	return &DFA{
		nfa: nfa,
	}, nil
}

// AsDFA views an NFA as a DFA. The second return value is false when the NFA isn't deterministic.
func AsDFA(nfa *NFA) (*DFA, bool) {
	if !nfa.transitions.IsDeterministic() {
		return nil, false
	}
	return &DFA{
		nfa: nfa,
	}, true
}

// NFA returns the DFA viewed as an NFA. Every DFA is also an NFA without epsilon transitions.
func (d *DFA) NFA() *NFA {
	return d.nfa
}

func (d *DFA) Alphabet() *Alphabet {
	return d.nfa.alphabet
}

func (d *DFA) StateCount() int {
	return d.nfa.stateCount
}

func (d *DFA) InitialState() StateID {
	return d.nfa.initialState
}

func (d *DFA) AcceptingStates() []StateID {
	return d.nfa.AcceptingStates()
}

func (d *DFA) IsAccepting(s StateID) bool {
	return d.nfa.IsAccepting(s)
}

// Next returns the target of a state under a symbol. The second return value is false when there is no
// transition, including when the symbol isn't in the alphabet.
func (d *DFA) Next(sym Symbol, s StateID) (StateID, bool) {
	if sym.IsEpsilon() {
		return StateIDNil, false
	}
	ts := d.nfa.Targets(sym, s)
	if len(ts) == 0 {
		return StateIDNil, false
	}
	return ts[0], true
}
