package automaton

import (
	spec "github.com/nihei9/relang/spec/automaton"
)

// Closure returns the smallest superset of states closed under the epsilon transitions of nfa. The argument isn't
// modified.
func Closure(nfa *spec.NFA, states *StateSet) *StateSet {
	closure := states.Clone()
	worklist := states.States()
	for len(worklist) > 0 {
		s := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range nfa.EpsilonTargets(s) {
			if closure.Contains(t) {
				continue
			}
			closure.Add(t)
			worklist = append(worklist, t)
		}
	}
	return closure
}

// InitialClosure returns the closure of the initial state.
func InitialClosure(nfa *spec.NFA) *StateSet {
	return Closure(nfa, StateSetOf(nfa.StateCount(), nfa.InitialState()))
}

// Move returns the union of the targets of all members of states under a symbol. It returns an empty set when the
// alphabet doesn't contain the symbol.
func Move(nfa *spec.NFA, states *StateSet, sym spec.Symbol) *StateSet {
	next := NewStateSet(nfa.StateCount())
	row, ok := nfa.Alphabet().Row(sym)
	if !ok || row == spec.RowEpsilon {
		return next
	}
	tab := nfa.Transitions()
	for _, s := range states.States() {
		for _, t := range tab.Targets(row, s) {
			next.Add(t)
		}
	}
	return next
}

// Accepts reports whether states contains an accepting state of nfa.
func Accepts(nfa *spec.NFA, states *StateSet) bool {
	for _, s := range states.States() {
		if nfa.IsAccepting(s) {
			return true
		}
	}
	return false
}
