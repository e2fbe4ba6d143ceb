package automaton

// CompiledStateID represents a state in a compiled transition table. Entries hold the target state plus one so that
// the zero value can mark an empty entry.
type CompiledStateID int

// CompiledStateIDNil represents an empty entry of a compiled transition table. A driver reaching this value rejects
// the input.
const CompiledStateIDNil = CompiledStateID(0)

func NewCompiledStateID(s StateID) CompiledStateID {
	return CompiledStateID(s.Int() + 1)
}

func (id CompiledStateID) Int() int {
	return int(id)
}

func (id CompiledStateID) StateID() StateID {
	if id == CompiledStateIDNil {
		return StateIDNil
	}
	return StateID(id - 1)
}

const (
	CompressionLevelMin = 0
	CompressionLevelMax = 2
)

type RowDisplacementTable struct {
	OriginalRowCount int               `json:"original_row_count"`
	OriginalColCount int               `json:"original_col_count"`
	EmptyValue       CompiledStateID   `json:"empty_value"`
	Entries          []CompiledStateID `json:"entries"`
	Bounds           []int             `json:"bounds"`
	RowDisplacement  []int             `json:"row_displacement"`
}

type UniqueEntriesTable struct {
	UniqueEntries             *RowDisplacementTable `json:"unique_entries,omitempty"`
	UncompressedUniqueEntries []CompiledStateID     `json:"uncompressed_unique_entries,omitempty"`
	RowNums                   []int                 `json:"row_nums"`
	OriginalRowCount          int                   `json:"original_row_count"`
	OriginalColCount          int                   `json:"original_col_count"`
}

// CompiledTransitionTable has a row per DFA state and a column per alphabet symbol.
type CompiledTransitionTable struct {
	RowCount               int                 `json:"row_count"`
	ColCount               int                 `json:"col_count"`
	Transition             *UniqueEntriesTable `json:"transition,omitempty"`
	UncompressedTransition []CompiledStateID   `json:"uncompressed_transition,omitempty"`
}

// CompiledDFA is a portable form of a DFA. A driver can run it without the automaton description.
type CompiledDFA struct {
	Alphabet         []string                 `json:"alphabet"`
	StateCount       int                      `json:"state_count"`
	InitialState     StateID                  `json:"initial_state"`
	AcceptingStates  []bool                   `json:"accepting_states"`
	CompressionLevel int                      `json:"compression_level"`
	DFA              *CompiledTransitionTable `json:"dfa"`
}
