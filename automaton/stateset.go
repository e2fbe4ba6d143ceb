package automaton

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	spec "github.com/nihei9/relang/spec/automaton"
)

// StateSet is a set of NFA states. Two sets containing the same states have the same hash regardless of the order
// in which the states were added.
type StateSet struct {
	bits *bitset.BitSet
}

// NewStateSet returns an empty set able to hold the states [0, stateCount).
func NewStateSet(stateCount int) *StateSet {
	return &StateSet{
		bits: bitset.New(uint(stateCount)),
	}
}

// StateSetOf returns a set containing the given states.
func StateSetOf(stateCount int, states ...spec.StateID) *StateSet {
	s := NewStateSet(stateCount)
	for _, state := range states {
		s.Add(state)
	}
	return s
}

func (s *StateSet) Add(state spec.StateID) *StateSet {
	s.bits.Set(uint(state))
	return s
}

func (s *StateSet) Contains(state spec.StateID) bool {
	return s.bits.Test(uint(state))
}

func (s *StateSet) Len() int {
	return int(s.bits.Count())
}

func (s *StateSet) IsEmpty() bool {
	return s.bits.None()
}

// Merge adds all the members of t to s.
func (s *StateSet) Merge(t *StateSet) *StateSet {
	s.bits.InPlaceUnion(t.bits)
	return s
}

// Intersects reports whether s and t have a common member.
func (s *StateSet) Intersects(t *StateSet) bool {
	return s.bits.IntersectionCardinality(t.bits) > 0
}

// IsSubsetOf reports whether every member of s is a member of t.
func (s *StateSet) IsSubsetOf(t *StateSet) bool {
	return t.bits.IsSuperSet(s.bits)
}

func (s *StateSet) Equal(t *StateSet) bool {
	return s.hash() == t.hash()
}

func (s *StateSet) Clone() *StateSet {
	return &StateSet{
		bits: s.bits.Clone(),
	}
}

// States returns the members in increasing order.
func (s *StateSet) States() []spec.StateID {
	states := make([]spec.StateID, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		states = append(states, spec.StateID(i))
	}
	return states
}

func (s *StateSet) hash() string {
	words := s.bits.Bytes()

	// Trailing zero words don't change the members, so they must not change the hash either.
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	buf := make([]byte, n*8)
	for i, w := range words[:n] {
		binary.LittleEndian.PutUint64(buf[i*8:], w)
	}
	return string(buf)
}

func (s *StateSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "{")
	for i, state := range s.States() {
		if i > 0 {
			fmt.Fprintf(&b, ", ")
		}
		fmt.Fprintf(&b, "%v", state)
	}
	fmt.Fprintf(&b, "}")
	return b.String()
}
