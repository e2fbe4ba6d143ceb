package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nihei9/relang/automaton"
	aspec "github.com/nihei9/relang/spec/automaton"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var showFlags = struct {
	grammar *bool
	dfa     *bool
	sets    *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "show <automaton file path>",
		Short: "Print the transition table of an automaton",
		Long: `show prints one row per state. The initial state is marked with > and accepting states with *.
--sets also prints the NFA states behind each DFA state.`,
		Example: `  relang show nfa.txt
  relang show --grammar --dfa --sets grammar.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}
	showFlags.grammar = cmd.Flags().BoolP("grammar", "g", false, "read the file as a right-linear grammar")
	showFlags.dfa = cmd.Flags().Bool("dfa", false, "convert the automaton into a DFA before printing")
	showFlags.sets = cmd.Flags().Bool("sets", false, "print the NFA state set of each DFA state (implies --dfa)")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	nfa, err := readNFA(args[0], *showFlags.grammar)
	if err != nil {
		return err
	}

	var sets []*automaton.StateSet
	switch {
	case *showFlags.sets:
		var dfa *aspec.DFA
		dfa, sets, err = automaton.ToDFAWithSets(nfa)
		if err != nil {
			return err
		}
		nfa = dfa.NFA()
	case *showFlags.dfa:
		dfa, err := automaton.ToDFA(nfa)
		if err != nil {
			return err
		}
		nfa = dfa.NFA()
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header(tableHeader(nfa, sets != nil))
	for s := 0; s < nfa.StateCount(); s++ {
		state := aspec.StateID(s)
		row := []string{stateLabel(nfa, state)}
		if sets != nil {
			row = append(row, sets[s].String())
		}
		for r := 0; r < nfa.Alphabet().RowCount(); r++ {
			row = append(row, targetsString(nfa.Transitions().Targets(r, state)))
		}
		table.Append(row)
	}
	return table.Render()
}

func tableHeader(nfa *aspec.NFA, withSets bool) []string {
	header := []string{"state"}
	if withSets {
		header = append(header, "nfa states")
	}
	for r := 0; r < nfa.Alphabet().RowCount(); r++ {
		header = append(header, nfa.Alphabet().Symbol(r).String())
	}
	return header
}

func stateLabel(nfa *aspec.NFA, state aspec.StateID) string {
	var b strings.Builder
	if state == nfa.InitialState() {
		fmt.Fprintf(&b, ">")
	}
	if nfa.IsAccepting(state) {
		fmt.Fprintf(&b, "*")
	}
	fmt.Fprintf(&b, "%v", state)
	return b.String()
}

func targetsString(ts []aspec.StateID) string {
	ss := make([]string, len(ts))
	for i, t := range ts {
		ss[i] = t.String()
	}
	return strings.Join(ss, ";")
}
