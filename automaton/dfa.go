package automaton

import (
	u "github.com/araddon/gou"
	spec "github.com/nihei9/relang/spec/automaton"
)

// ToDFA converts an NFA to an equivalent DFA by subset construction. DFA states are numbered in the order in which
// their state sets are discovered, and symbols are explored in alphabet order, so the result for the same NFA is
// always identical.
func ToDFA(nfa *spec.NFA) (*spec.DFA, error) {
	dfa, _, err := ToDFAWithSets(nfa)
	if err != nil {
		return nil, err
	}
	return dfa, nil
}

// ToDFAWithSets works like ToDFA and also returns the NFA state set behind each DFA state, indexed by DFA state.
func ToDFAWithSets(nfa *spec.NFA) (*spec.DFA, []*StateSet, error) {
	alphabet := nfa.Alphabet()
	syms := alphabet.Symbols()

	var sets []*StateSet
	known := map[string]spec.StateID{}
	b := spec.NewTransitionTableBuilder(alphabet.RowCount(), 0)

	discover := func(set *StateSet) (spec.StateID, bool) {
		h := set.hash()
		if id, ok := known[h]; ok {
			return id, false
		}
		id := b.AddState()
		known[h] = id
		sets = append(sets, set)
		return id, true
	}

	initial, _ := discover(InitialClosure(nfa))
	unchecked := []spec.StateID{initial}
	for len(unchecked) > 0 {
		from := unchecked[0]
		unchecked = unchecked[1:]
		for _, sym := range syms {
			next := Closure(nfa, Move(nfa, sets[from], sym))
			if next.IsEmpty() {
				continue
			}
			to, isNew := discover(next)
			if isNew {
				unchecked = append(unchecked, to)
			}
			row, _ := alphabet.Row(sym)
			err := b.Add(row, from, to)
			if err != nil {
				return nil, nil, err
			}
		}
	}

	var accepting []spec.StateID
	for id, set := range sets {
		if Accepts(nfa, set) {
			accepting = append(accepting, spec.StateID(id))
		}
	}

	dfa, err := spec.NewDFA(alphabet, initial, accepting, b.Build())
	if err != nil {
		return nil, nil, err
	}

	u.Debugf("subset construction: %v NFA states -> %v DFA states (%v accepting)", nfa.StateCount(), dfa.StateCount(), len(accepting))

	return dfa, sets, nil
}
