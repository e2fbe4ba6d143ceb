package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nihei9/relang/tester"
	"github.com/spf13/cobra"
)

var testFlags = struct {
	grammar *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "test <automaton file path> <test file path>|<test directory path>",
		Short: "Test whether an automaton gives the expected verdicts",
		Example: `  relang test nfa.txt test
  relang test --grammar grammar.txt test/a_star_b.txt`,
		Args: cobra.ExactArgs(2),
		RunE: runTest,
	}
	testFlags.grammar = cmd.Flags().BoolP("grammar", "g", false, "read the file as a right-linear grammar")
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	nfa, err := readNFA(args[0], *testFlags.grammar)
	if err != nil {
		return fmt.Errorf("Cannot read the automaton %s: %w", args[0], err)
	}

	cs := tester.ListTestCases(args[1])
	errOccurred := false
	for _, c := range cs {
		if c.Error != nil {
			fmt.Fprintf(os.Stderr, "Failed to read a test case or a directory: %v\n%v\n", c.FilePath, c.Error)
			errOccurred = true
		}
	}
	if errOccurred {
		return errors.New("Cannot run test")
	}

	t := &tester.Tester{
		NFA:   nfa,
		Cases: cs,
	}
	rs := t.Run()
	testFailed := false
	for _, r := range rs {
		fmt.Fprintln(os.Stdout, r)
		if r.Error != nil {
			testFailed = true
		}
	}
	if testFailed {
		return errors.New("Test failed")
	}
	return nil
}
