package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nihei9/relang/automaton"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	grammar     *bool
	output      *string
	compression *int
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "compile <automaton file path>",
		Short: "Compile an automaton into a DFA transition table",
		Long: `compile converts an automaton into a DFA and writes its transition table in JSON format.
The table can be run with the match command.`,
		Example: `  relang compile nfa.txt -o dfa.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.grammar = cmd.Flags().BoolP("grammar", "g", false, "read the file as a right-linear grammar")
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	compileFlags.compression = cmd.Flags().Int("compression", -1, "compression level [0,1,2] (default: compression of the config file or 2)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	nfa, err := readNFA(args[0], *compileFlags.grammar)
	if err != nil {
		return err
	}

	compLv := appConfig.Compression
	if cmd.Flags().Changed("compression") {
		compLv = *compileFlags.compression
	}
	dfa, err := automaton.ToDFA(nfa)
	if err != nil {
		return fmt.Errorf("Cannot convert %s into a DFA: %w", args[0], err)
	}
	cdfa, err := automaton.Compile(dfa, compLv)
	if err != nil {
		return fmt.Errorf("Cannot compile %s: %w", args[0], err)
	}

	data, err := json.Marshal(cdfa)
	if err != nil {
		return err
	}
	return writeOutput(*compileFlags.output, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, string(data))
		return err
	})
}
