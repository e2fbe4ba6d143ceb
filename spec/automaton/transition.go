package automaton

import (
	"fmt"
	"sort"
)

// TransitionTable is an immutable mapping from (row, state) to a set of target states. Row 0 is the epsilon row
// and row i is the i-th symbol of an alphabet.
type TransitionTable struct {
	rowCount   int
	stateCount int

	// entries[row*stateCount+state] holds sorted targets without duplicates.
	entries [][]StateID
}

func (t *TransitionTable) RowCount() int {
	return t.rowCount
}

func (t *TransitionTable) StateCount() int {
	return t.stateCount
}

// Targets returns the targets of a state under a row. The caller must not modify the returned slice.
func (t *TransitionTable) Targets(row int, state StateID) []StateID {
	if row < 0 || row >= t.rowCount || state < StateIDMin || state.Int() >= t.stateCount {
		return nil
	}
	return t.entries[row*t.stateCount+state.Int()]
}

// IsEmptyRow reports whether a row has no transition at all.
func (t *TransitionTable) IsEmptyRow(row int) bool {
	for s := 0; s < t.stateCount; s++ {
		if len(t.entries[row*t.stateCount+s]) > 0 {
			return false
		}
	}
	return true
}

// IsDeterministic reports whether the epsilon row is empty and every other entry has at most one target.
func (t *TransitionTable) IsDeterministic() bool {
	if !t.IsEmptyRow(RowEpsilon) {
		return false
	}
	for _, e := range t.entries {
		if len(e) > 1 {
			return false
		}
	}
	return true
}

// TransitionTableBuilder builds a TransitionTable. States live in an arena; adding a state never renumbers the
// existing ones.
type TransitionTableBuilder struct {
	rowCount int

	// rows[row][state] holds targets in insertion order.
	rows [][]map[StateID]struct{}
}

func NewTransitionTableBuilder(rowCount int, stateCount int) *TransitionTableBuilder {
	b := &TransitionTableBuilder{
		rowCount: rowCount,
		rows:     make([][]map[StateID]struct{}, rowCount),
	}
	for i := 0; i < stateCount; i++ {
		b.AddState()
	}
	return b
}

// AddState appends a new state and returns its index.
func (b *TransitionTableBuilder) AddState() StateID {
	for row := range b.rows {
		b.rows[row] = append(b.rows[row], nil)
	}
	return StateID(b.StateCount() - 1)
}

func (b *TransitionTableBuilder) StateCount() int {
	if b.rowCount == 0 {
		return 0
	}
	return len(b.rows[0])
}

// Add records a transition from a state to a target under a row.
func (b *TransitionTableBuilder) Add(row int, from StateID, to StateID) error {
	if row < 0 || row >= b.rowCount {
		return fmt.Errorf("row out of range: %v", row)
	}
	stateCount := b.StateCount()
	if from < StateIDMin || from.Int() >= stateCount {
		return fmt.Errorf("source state out of range: %v", from)
	}
	if to < StateIDMin || to.Int() >= stateCount {
		return fmt.Errorf("target state out of range: %v", to)
	}
	if b.rows[row][from] == nil {
		b.rows[row][from] = map[StateID]struct{}{}
	}
	b.rows[row][from][to] = struct{}{}
	return nil
}

func (b *TransitionTableBuilder) Build() *TransitionTable {
	stateCount := b.StateCount()
	entries := make([][]StateID, b.rowCount*stateCount)
	for row, states := range b.rows {
		for s, targets := range states {
			if len(targets) == 0 {
				continue
			}
			ts := make([]StateID, 0, len(targets))
			for t := range targets {
				ts = append(ts, t)
			}
			sort.Slice(ts, func(i, j int) bool {
				return ts[i] < ts[j]
			})
			entries[row*stateCount+s] = ts
		}
	}
	return &TransitionTable{
		rowCount:   b.rowCount,
		stateCount: stateCount,
		entries:    entries,
	}
}
