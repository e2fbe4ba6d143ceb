package main

import (
	"fmt"
	"io"

	"github.com/nihei9/relang/automaton"
	aspec "github.com/nihei9/relang/spec/automaton"
	"github.com/spf13/cobra"
)

var toDFAFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "to-dfa <automaton file path>",
		Short:   "Convert an NFA into an equivalent DFA",
		Example: `  relang to-dfa nfa.txt -o dfa.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runToDFA,
	}
	toDFAFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runToDFA(cmd *cobra.Command, args []string) error {
	nfa, err := readNFA(args[0], false)
	if err != nil {
		return err
	}

	dfa, err := automaton.ToDFA(nfa)
	if err != nil {
		return fmt.Errorf("Cannot convert %s into a DFA: %w", args[0], err)
	}
	return writeOutput(*toDFAFlags.output, func(w io.Writer) error {
		return aspec.WriteDFA(w, dfa)
	})
}
