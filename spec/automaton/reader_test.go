package automaton

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	verr "github.com/nihei9/relang/error"
)

func TestReadAutomaton(t *testing.T) {
	type transition struct {
		sym     Symbol
		from    StateID
		targets []StateID
	}

	tests := []struct {
		caption     string
		src         string
		opts        []ReaderOption
		symbols     []Symbol
		stateCount  int
		accepting   []StateID
		transitions []transition
		kind        verr.Kind
		cause       error
		row         int
	}{
		{
			caption:    "a single transition",
			src:        "a,b\n2\n1\n,\n1,\n,\n",
			symbols:    []Symbol{'a', 'b'},
			stateCount: 2,
			accepting:  []StateID{1},
			transitions: []transition{
				{sym: 'a', from: 0, targets: []StateID{1}},
			},
		},
		{
			caption:    "epsilon transitions and fan-out",
			src:        "a\n3\n2\n1,,\n1;2,2,\n",
			symbols:    []Symbol{'a'},
			stateCount: 3,
			accepting:  []StateID{2},
			transitions: []transition{
				{sym: SymbolEpsilon, from: 0, targets: []StateID{1}},
				{sym: 'a', from: 0, targets: []StateID{1, 2}},
				{sym: 'a', from: 1, targets: []StateID{2}},
			},
		},
		{
			caption:    "a trailing comma, spaces, and CRLF are tolerated",
			src:        "a, b\r\n2\r\n 0 , 1\r\n,,\r\n0;0, 1,\r\n1 ;0,,\r\n",
			symbols:    []Symbol{'a', 'b'},
			stateCount: 2,
			accepting:  []StateID{0, 1},
			transitions: []transition{
				{sym: 'a', from: 0, targets: []StateID{0}},
				{sym: 'a', from: 1, targets: []StateID{1}},
				{sym: 'b', from: 0, targets: []StateID{0, 1}},
			},
		},
		{
			caption:    "an automaton may have no accepting states",
			src:        "a\n1\n\n\n0;0\n",
			symbols:    []Symbol{'a'},
			stateCount: 1,
			transitions: []transition{
				{sym: 'a', from: 0, targets: []StateID{0}},
			},
		},
		{
			caption:    "a lone 0 means no transition",
			src:        "a\n2\n1\n0,0\n1,0\n",
			symbols:    []Symbol{'a'},
			stateCount: 2,
			accepting:  []StateID{1},
			transitions: []transition{
				{sym: 'a', from: 0, targets: []StateID{1}},
			},
		},
		{
			caption:    "0;0 is a transition to state 0",
			src:        "a\n2\n1\n0,0\n1,0;0\n",
			symbols:    []Symbol{'a'},
			stateCount: 2,
			accepting:  []StateID{1},
			transitions: []transition{
				{sym: 'a', from: 0, targets: []StateID{1}},
				{sym: 'a', from: 1, targets: []StateID{0}},
			},
		},
		{
			caption:    "a lone 0 is a transition to state 0 when ZeroIsState is enabled",
			src:        "a\n2\n1\n,\n1,0\n",
			opts:       []ReaderOption{ZeroIsState()},
			symbols:    []Symbol{'a'},
			stateCount: 2,
			accepting:  []StateID{1},
			transitions: []transition{
				{sym: 'a', from: 0, targets: []StateID{1}},
				{sym: 'a', from: 1, targets: []StateID{0}},
			},
		},
		{
			caption: "a symbol must be a single character",
			src:     "ab\n1\n\n\n\n",
			kind:    verr.KindFormat,
			cause:   synErrInvalidSymbol,
			row:     1,
		},
		{
			caption: "symbols must be unique",
			src:     "a,a\n1\n\n\n\n\n",
			kind:    verr.KindFormat,
			cause:   synErrDuplicateSymbol,
			row:     1,
		},
		{
			caption: "the state count must be an integer",
			src:     "a\nx\n\n",
			kind:    verr.KindFormat,
			cause:   synErrInvalidInteger,
			row:     2,
		},
		{
			caption: "an automaton needs a state",
			src:     "a\n0\n\n",
			kind:    verr.KindRange,
			cause:   semErrNoState,
			row:     2,
		},
		{
			caption: "an accepting state must be in range",
			src:     "a\n2\n2\n,\n,\n",
			kind:    verr.KindRange,
			cause:   semErrAcceptingStateOutOfRange,
			row:     3,
		},
		{
			caption: "a target state must be in range",
			src:     "a\n2\n1\n,\n1,5\n",
			kind:    verr.KindRange,
			cause:   semErrTargetStateOutOfRange,
			row:     5,
		},
		{
			caption: "a row needs one field per state",
			src:     "a\n3\n1\n,,\n1,2\n",
			kind:    verr.KindFormat,
			cause:   synErrFieldCount,
			row:     5,
		},
		{
			caption: "a target must be an integer",
			src:     "a\n2\n1\n,\n1;x,\n",
			kind:    verr.KindFormat,
			cause:   synErrInvalidInteger,
			row:     5,
		},
		{
			caption: "all rows are required",
			src:     "a,b\n2\n1\n,\n1,\n",
			kind:    verr.KindFormat,
			cause:   synErrMissingRow,
			row:     6,
		},
		{
			caption: "no line may follow the rows",
			src:     "a\n2\n1\n,\n1,\n1,1\n",
			kind:    verr.KindFormat,
			cause:   synErrExtraRow,
			row:     6,
		},
		{
			caption: "the accepting states line is required",
			src:     "a\n2\n",
			kind:    verr.KindFormat,
			cause:   synErrNoAcceptingStates,
			row:     3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			nfa, err := ReadAutomaton(strings.NewReader(tt.src), tt.opts...)
			if tt.cause != nil {
				if err == nil {
					t.Fatalf("an error was expected")
				}
				if !errors.Is(err, tt.kind) {
					t.Fatalf("unexpected error kind: want: %v, got: %v", tt.kind, err)
				}
				if !errors.Is(err, tt.cause) {
					t.Fatalf("unexpected error: want: %v, got: %v", tt.cause, err)
				}
				var specErr *verr.SpecError
				if !errors.As(err, &specErr) {
					t.Fatalf("a spec error was expected: %v", err)
				}
				if specErr.Row != tt.row {
					t.Fatalf("unexpected row: want: %v, got: %v", tt.row, specErr.Row)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			syms := nfa.Alphabet().Symbols()
			if len(syms) != len(tt.symbols) {
				t.Fatalf("unexpected alphabet: want: %v, got: %v", tt.symbols, syms)
			}
			for i, sym := range tt.symbols {
				if syms[i] != sym {
					t.Fatalf("unexpected alphabet: want: %v, got: %v", tt.symbols, syms)
				}
			}
			if nfa.StateCount() != tt.stateCount {
				t.Fatalf("unexpected state count: want: %v, got: %v", tt.stateCount, nfa.StateCount())
			}
			if nfa.InitialState() != StateIDMin {
				t.Fatalf("the initial state must be 0: got: %v", nfa.InitialState())
			}
			testStates(t, tt.accepting, nfa.AcceptingStates())

			count := 0
			for row := 0; row < nfa.Transitions().RowCount(); row++ {
				for s := 0; s < nfa.StateCount(); s++ {
					if len(nfa.Transitions().Targets(row, StateID(s))) > 0 {
						count++
					}
				}
			}
			if count != len(tt.transitions) {
				t.Fatalf("unexpected transition count: want: %v, got: %v", len(tt.transitions), count)
			}
			for _, tr := range tt.transitions {
				var targets []StateID
				if tr.sym.IsEpsilon() {
					targets = nfa.EpsilonTargets(tr.from)
				} else {
					targets = nfa.Targets(tr.sym, tr.from)
				}
				testStates(t, tr.targets, targets)
			}
		})
	}
}

func TestLoadAutomaton(t *testing.T) {
	t.Run("a missing file is an I/O error", func(t *testing.T) {
		_, err := LoadAutomaton(filepath.Join(t.TempDir(), "missing.nfa"))
		if !errors.Is(err, verr.KindIO) {
			t.Fatalf("an I/O error was expected: %v", err)
		}
	})

	t.Run("an error message quotes the offending line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.nfa")
		err := os.WriteFile(path, []byte("a\n2\n1\n,\n1,9\n"), 0600)
		if err != nil {
			t.Fatal(err)
		}
		_, err = LoadAutomaton(path)
		if err == nil {
			t.Fatalf("an error was expected")
		}
		if !strings.HasSuffix(err.Error(), "\n    1,9") {
			t.Fatalf("the message must quote the line: %v", err)
		}
	})
}

func TestWriteNFA(t *testing.T) {
	srcs := []string{
		"a,b\n2\n1\n,\n1,\n,\n",
		"a\n3\n2\n1,,\n1;2,2,\n",
		"a\n1\n\n\n0;0\n",
		"x,y,z\n4\n0,3\n,3,,\n1,2;3,,\n,,0;0,\n,,,1;2\n",
	}
	for _, src := range srcs {
		nfa, err := ReadAutomaton(strings.NewReader(src))
		if err != nil {
			t.Fatal(err)
		}
		var b bytes.Buffer
		err = WriteNFA(&b, nfa)
		if err != nil {
			t.Fatal(err)
		}
		if b.String() != src {
			t.Fatalf("unexpected output:\nwant:\n%v\ngot:\n%v", src, b.String())
		}
	}
}

func TestWriteNFA_ZeroIsState(t *testing.T) {
	nfa, err := ReadAutomaton(strings.NewReader("a\n2\n1\n,\n1,0\n"), ZeroIsState())
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	err = WriteNFA(&b, nfa)
	if err != nil {
		t.Fatal(err)
	}
	expected := "a\n2\n1\n,\n1,0;0\n"
	if b.String() != expected {
		t.Fatalf("unexpected output; want: %q, got: %q", expected, b.String())
	}

	// The output reads back as the same automaton without the option.
	reread, err := ReadAutomaton(strings.NewReader(b.String()))
	if err != nil {
		t.Fatal(err)
	}
	testStates(t, []StateID{0}, reread.Targets('a', 1))
}

func TestSaveNFA(t *testing.T) {
	src := "a\n3\n2\n1,,\n1;2,2,\n"
	nfa, err := ReadAutomaton(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.nfa")
	err = SaveNFA(path, nfa)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != src {
		t.Fatalf("unexpected file content:\n%v", string(b))
	}

	err = SaveNFA(filepath.Join(t.TempDir(), "no", "such", "dir.nfa"), nfa)
	if !errors.Is(err, verr.KindIO) {
		t.Fatalf("an I/O error was expected: %v", err)
	}
}

func testStates(t *testing.T, expected, actual []StateID) {
	t.Helper()
	if len(expected) != len(actual) {
		t.Fatalf("unexpected states: want: %v, got: %v", expected, actual)
	}
	for i, s := range expected {
		if actual[i] != s {
			t.Fatalf("unexpected states: want: %v, got: %v", expected, actual)
		}
	}
}
