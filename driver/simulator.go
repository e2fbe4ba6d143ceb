package driver

import (
	"github.com/nihei9/relang/automaton"
	spec "github.com/nihei9/relang/spec/automaton"
)

// Step is a configuration of an NFA after consuming a symbol. The first step of a trace holds the closure of the
// initial state and its Symbol is spec.SymbolEpsilon.
type Step struct {
	Symbol spec.Symbol
	States *automaton.StateSet
}

// Accepts reports whether nfa accepts input. A symbol outside the alphabet rejects the input immediately, and so
// does a step leaving no reachable state.
func Accepts(nfa *spec.NFA, input []spec.Symbol) bool {
	return simulate(nfa, input, nil)
}

// AcceptsString runs Accepts over the code points of s.
func AcceptsString(nfa *spec.NFA, s string) bool {
	return Accepts(nfa, spec.SymbolsOf(s))
}

// Trace runs the same simulation as Accepts and additionally returns the configuration after every consumed
// symbol. When the simulation stops early, the last step holds the empty set.
func Trace(nfa *spec.NFA, input []spec.Symbol) ([]*Step, bool) {
	var steps []*Step
	accepted := simulate(nfa, input, func(sym spec.Symbol, states *automaton.StateSet) {
		steps = append(steps, &Step{
			Symbol: sym,
			States: states.Clone(),
		})
	})
	return steps, accepted
}

func simulate(nfa *spec.NFA, input []spec.Symbol, onStep func(sym spec.Symbol, states *automaton.StateSet)) bool {
	current := automaton.InitialClosure(nfa)
	if onStep != nil {
		onStep(spec.SymbolEpsilon, current)
	}
	for _, sym := range input {
		if sym.IsEpsilon() || !nfa.Alphabet().Contains(sym) {
			if onStep != nil {
				onStep(sym, automaton.NewStateSet(nfa.StateCount()))
			}
			return false
		}
		current = automaton.Closure(nfa, automaton.Move(nfa, current, sym))
		if onStep != nil {
			onStep(sym, current)
		}
		if current.IsEmpty() {
			return false
		}
	}
	return automaton.Accepts(nfa, current)
}

// AcceptsDFA reports whether dfa accepts input. A missing transition rejects the input.
func AcceptsDFA(dfa *spec.DFA, input []spec.Symbol) bool {
	state := dfa.InitialState()
	for _, sym := range input {
		next, ok := dfa.Next(sym, state)
		if !ok {
			return false
		}
		state = next
	}
	return dfa.IsAccepting(state)
}
