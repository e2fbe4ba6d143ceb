package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/nihei9/relang/driver"
	aspec "github.com/nihei9/relang/spec/automaton"
	"github.com/spf13/cobra"
)

var checkFlags = struct {
	grammar *bool
	trace   *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "check <automaton file path> [string...]",
		Short: "Check whether an automaton accepts strings",
		Long: `check prints accept or reject for each string.
Without strings, check reads them interactively until an empty line or EOF.`,
		Example: `  relang check nfa.txt aab b
  relang check --grammar grammar.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	checkFlags.grammar = cmd.Flags().BoolP("grammar", "g", false, "read the file as a right-linear grammar")
	checkFlags.trace = cmd.Flags().BoolP("trace", "t", false, "print the state set after each symbol")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	nfa, err := readNFA(args[0], *checkFlags.grammar)
	if err != nil {
		return err
	}

	if len(args) > 1 {
		for _, s := range args[1:] {
			accepted := check(os.Stdout, nfa, s)
			fmt.Fprintf(os.Stdout, "%v %v\n", verdict(accepted), s)
		}
		return nil
	}

	return checkInteractively(nfa)
}

func checkInteractively(nfa *aspec.NFA) error {
	accept := promptui.Styler(promptui.FGGreen, promptui.FGBold)
	reject := promptui.Styler(promptui.FGRed, promptui.FGBold)
	for {
		prompt := promptui.Prompt{
			Label: appConfig.Prompt,
		}
		s, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}
			return err
		}
		if s == "" {
			return nil
		}

		if check(os.Stdout, nfa, s) {
			fmt.Fprintln(os.Stdout, accept(verdict(true)))
		} else {
			fmt.Fprintln(os.Stdout, reject(verdict(false)))
		}
	}
}

// check simulates nfa on s and prints the trace when --trace is given.
func check(w io.Writer, nfa *aspec.NFA, s string) bool {
	if !*checkFlags.trace {
		return driver.AcceptsString(nfa, s)
	}

	steps, accepted := driver.Trace(nfa, aspec.SymbolsOf(s))
	for _, step := range steps {
		fmt.Fprintf(w, "  %v %v\n", step.Symbol, step.States)
	}
	return accepted
}

func verdict(accepted bool) string {
	if accepted {
		return "accept"
	}
	return "reject"
}
