package automaton

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	verr "github.com/nihei9/relang/error"
)

// WriteNFA writes an NFA in the automaton description format. The output of the same NFA is always byte-identical.
// A transition to state 0 alone is written `0;0` so that the output reads back as the same NFA.
func WriteNFA(w io.Writer, nfa *NFA) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%v\n", nfa.alphabet)
	fmt.Fprintf(bw, "%v\n", nfa.stateCount)
	{
		acc := make([]string, len(nfa.accepting))
		for i, s := range nfa.accepting {
			acc[i] = s.String()
		}
		fmt.Fprintf(bw, "%v\n", strings.Join(acc, ","))
	}

	tab := nfa.transitions
	fields := make([]string, nfa.stateCount)
	for row := 0; row < tab.RowCount(); row++ {
		for s := 0; s < nfa.stateCount; s++ {
			ts := tab.Targets(row, StateID(s))
			if len(ts) == 0 {
				fields[s] = ""
				continue
			}
			// A lone 0 reads as "no transition".
			if len(ts) == 1 && ts[0] == StateIDMin {
				fields[s] = "0;0"
				continue
			}
			var b strings.Builder
			for i, t := range ts {
				if i > 0 {
					fmt.Fprintf(&b, ";")
				}
				fmt.Fprintf(&b, "%v", t)
			}
			fields[s] = b.String()
		}
		fmt.Fprintf(bw, "%v\n", strings.Join(fields, ","))
	}

	return bw.Flush()
}

// WriteDFA writes a DFA in the automaton description format. The epsilon row is written as an empty row.
func WriteDFA(w io.Writer, dfa *DFA) error {
	return WriteNFA(w, dfa.nfa)
}

// SaveNFA writes an NFA to a file. A file-system failure is reported as a *verr.SpecError of KindIO.
func SaveNFA(path string, nfa *NFA) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return verr.NewIOError(err)
	}
	defer f.Close()

	err = WriteNFA(f, nfa)
	if err != nil {
		return verr.NewIOError(err)
	}
	return nil
}
