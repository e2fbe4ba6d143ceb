package main

import (
	"fmt"
	"io"

	"github.com/nihei9/relang/automaton"
	aspec "github.com/nihei9/relang/spec/automaton"
	"github.com/spf13/cobra"
)

var fromGrammarFlags = struct {
	output *string
	dfa    *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "from-grammar <grammar file path>",
		Short: "Translate a right-linear grammar into an NFA",
		Example: `  relang from-grammar grammar.txt -o nfa.txt
  relang from-grammar --dfa grammar.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runFromGrammar,
	}
	fromGrammarFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	fromGrammarFlags.dfa = cmd.Flags().Bool("dfa", false, "convert the NFA into a DFA")
	rootCmd.AddCommand(cmd)
}

func runFromGrammar(cmd *cobra.Command, args []string) error {
	nfa, err := readNFA(args[0], true)
	if err != nil {
		return err
	}

	if *fromGrammarFlags.dfa {
		dfa, err := automaton.ToDFA(nfa)
		if err != nil {
			return fmt.Errorf("Cannot convert %s into a DFA: %w", args[0], err)
		}
		return writeOutput(*fromGrammarFlags.output, func(w io.Writer) error {
			return aspec.WriteDFA(w, dfa)
		})
	}
	if *fromGrammarFlags.output != "" {
		return aspec.SaveNFA(*fromGrammarFlags.output, nfa)
	}
	return writeOutput("", func(w io.Writer) error {
		return aspec.WriteNFA(w, nfa)
	})
}
