package automaton

import (
	"bytes"
	"strings"
	"testing"

	u "github.com/araddon/gou"
	spec "github.com/nihei9/relang/spec/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	u.SetupLogging("debug")
	u.SetColorOutput()
}

func mustReadNFA(t *testing.T, src string) *spec.NFA {
	t.Helper()
	nfa, err := spec.ReadAutomaton(strings.NewReader(src))
	require.NoError(t, err)
	return nfa
}

func mustToDFA(t *testing.T, nfa *spec.NFA) *spec.DFA {
	t.Helper()
	dfa, err := ToDFA(nfa)
	require.NoError(t, err)
	return dfa
}

func writeDFA(t *testing.T, dfa *spec.DFA) string {
	t.Helper()
	var b bytes.Buffer
	require.NoError(t, spec.WriteDFA(&b, dfa))
	return b.String()
}

const (
	// 0 -ε-> 1, 1 -a-> {1, 2}, 2 -b-> 3; 3 accepts.
	nfaEpsilonChain = "a,b\n4\n3\n1,,,\n,1;2,,\n,,3,\n"

	// 0 -a-> {1, 2}; 2 accepts.
	nfaFanOut = "a\n3\n2\n,,\n1;2,,\n"

	// An epsilon cycle 0 -ε-> 1 -ε-> 2 -ε-> 0 with 3 -ε-> 4 off the cycle.
	nfaEpsilonCycle = "a\n5\n4\n1,2,0;0,4,\n3,,,,\n"
)

func TestStateSet(t *testing.T) {
	assert := assert.New(t)

	s1 := StateSetOf(10, 3, 1, 7)
	s2 := StateSetOf(10, 7, 3, 1, 3)
	assert.True(s1.Equal(s2))
	assert.Equal(s1.hash(), s2.hash())
	assert.Equal([]spec.StateID{1, 3, 7}, s1.States())
	assert.Equal(3, s1.Len())
	assert.Equal("{1, 3, 7}", s1.String())

	// Capacity doesn't affect identity.
	assert.Equal(StateSetOf(10, 1).hash(), StateSetOf(300, 1).hash())
	assert.Equal(NewStateSet(3).hash(), NewStateSet(300).hash())

	assert.True(StateSetOf(10, 1).IsSubsetOf(s1))
	assert.False(StateSetOf(10, 2).IsSubsetOf(s1))
	assert.True(s1.Intersects(StateSetOf(10, 7, 8)))
	assert.False(s1.Intersects(StateSetOf(10, 0, 8)))
	assert.True(NewStateSet(4).IsEmpty())

	c := s1.Clone().Add(9)
	assert.False(s1.Contains(9))
	assert.True(c.Contains(9))
	assert.True(StateSetOf(10, 1).Merge(StateSetOf(10, 2)).Equal(StateSetOf(10, 1, 2)))
}

func TestClosure(t *testing.T) {
	tests := []struct {
		caption  string
		src      string
		states   []spec.StateID
		expected []spec.StateID
	}{
		{
			caption:  "the closure of the initial state follows epsilon transitions",
			src:      nfaEpsilonChain,
			states:   []spec.StateID{0},
			expected: []spec.StateID{0, 1},
		},
		{
			caption:  "a state without epsilon transitions is its own closure",
			src:      nfaEpsilonChain,
			states:   []spec.StateID{2},
			expected: []spec.StateID{2},
		},
		{
			caption:  "an empty set has an empty closure",
			src:      nfaEpsilonChain,
			expected: []spec.StateID{},
		},
		{
			caption:  "an epsilon cycle terminates",
			src:      nfaEpsilonCycle,
			states:   []spec.StateID{1},
			expected: []spec.StateID{0, 1, 2},
		},
		{
			caption:  "closures of several states are merged",
			src:      nfaEpsilonCycle,
			states:   []spec.StateID{2, 3},
			expected: []spec.StateID{0, 1, 2, 3, 4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			nfa := mustReadNFA(t, tt.src)
			arg := StateSetOf(nfa.StateCount(), tt.states...)
			before := arg.String()
			c := Closure(nfa, arg)
			assert.Equal(t, tt.expected, c.States())
			assert.Equal(t, before, arg.String(), "the argument must not be modified")
		})
	}
}

func TestClosure_Properties(t *testing.T) {
	for _, src := range []string{nfaEpsilonChain, nfaFanOut, nfaEpsilonCycle} {
		nfa := mustReadNFA(t, src)
		n := nfa.StateCount()
		for mask := 0; mask < 1<<n; mask++ {
			s := NewStateSet(n)
			for i := 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					s.Add(spec.StateID(i))
				}
			}
			c := Closure(nfa, s)
			assert.True(t, s.IsSubsetOf(c), "monotonicity: %v ⊄ %v", s, c)
			assert.True(t, Closure(nfa, c).Equal(c), "idempotence: %v", s)
		}
	}
}

func TestMove(t *testing.T) {
	nfa := mustReadNFA(t, nfaEpsilonChain)
	assert.Equal(t, []spec.StateID{1, 2}, Move(nfa, StateSetOf(4, 0, 1), 'a').States())
	assert.Equal(t, []spec.StateID{3}, Move(nfa, StateSetOf(4, 1, 2), 'b').States())
	assert.True(t, Move(nfa, StateSetOf(4, 0, 1), 'z').IsEmpty(), "a symbol outside the alphabet moves nowhere")
	assert.True(t, Move(nfa, StateSetOf(4, 0), spec.SymbolEpsilon).IsEmpty(), "Move doesn't follow epsilon transitions")
}

func TestToDFA(t *testing.T) {
	tests := []struct {
		caption  string
		src      string
		expected string
		sets     [][]spec.StateID
	}{
		{
			caption:  "the state reached by a fan-out accepts when one of its members accepts",
			src:      nfaFanOut,
			expected: "a\n2\n1\n,\n1,\n",
			sets:     [][]spec.StateID{{0}, {1, 2}},
		},
		{
			caption:  "epsilon transitions are eliminated",
			src:      nfaEpsilonChain,
			expected: "a,b\n3\n2\n,,\n1,1,\n,2,\n",
			sets:     [][]spec.StateID{{0, 1}, {1, 2}, {3}},
		},
		{
			caption:  "states are numbered in discovery order",
			src:      "a,b\n3\n1\n,,\n2,,\n1,,1\n",
			expected: "a,b\n3\n2\n,,\n1,,\n2,2,\n",
			sets:     [][]spec.StateID{{0}, {2}, {1}},
		},
		{
			caption:  "a known state set doesn't get a new ID",
			src:      "a,b\n3\n2\n,,\n1,,\n2,0;0,\n",
			expected: "a,b\n3\n2\n,,\n1,,\n2,0;0,\n",
			sets:     [][]spec.StateID{{0}, {1}, {2}},
		},
		{
			caption:  "an initial closure containing an accepting state accepts the empty string",
			src:      "a\n2\n1\n1,\n,\n",
			expected: "a\n1\n0\n\n\n",
			sets:     [][]spec.StateID{{0, 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			nfa := mustReadNFA(t, tt.src)
			dfa, sets, err := ToDFAWithSets(nfa)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, writeDFA(t, dfa))
			require.Len(t, sets, len(tt.sets))
			for i, s := range tt.sets {
				assert.Equal(t, s, sets[i].States())
			}
			assert.Equal(t, spec.StateIDMin, dfa.InitialState())
		})
	}
}
