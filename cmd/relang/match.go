package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nihei9/relang/driver"
	aspec "github.com/nihei9/relang/spec/automaton"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "match <compiled DFA file path> <string...>",
		Short:   "Run a compiled DFA on strings",
		Example: `  relang match dfa.json aab b`,
		Args:    cobra.MinimumNArgs(2),
		RunE:    runMatch,
	}
	rootCmd.AddCommand(cmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	cdfa, err := readCompiledDFA(args[0])
	if err != nil {
		return err
	}
	m, err := driver.NewMatcher(cdfa)
	if err != nil {
		return fmt.Errorf("Cannot load the compiled DFA %s: %w", args[0], err)
	}

	for _, s := range args[1:] {
		fmt.Fprintf(os.Stdout, "%v %v\n", verdict(m.MatchString(s)), s)
	}
	return nil
}

func readCompiledDFA(path string) (*aspec.CompiledDFA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read the compiled DFA %s: %w", path, err)
	}
	cdfa := &aspec.CompiledDFA{}
	err = json.Unmarshal(data, cdfa)
	if err != nil {
		return nil, fmt.Errorf("Cannot parse the compiled DFA %s: %w", path, err)
	}
	return cdfa, nil
}
