package main

import (
	"fmt"
	"io"
	"os"

	verr "github.com/nihei9/relang/error"
	"github.com/nihei9/relang/grammar"
	aspec "github.com/nihei9/relang/spec/automaton"
	gspec "github.com/nihei9/relang/spec/grammar"
)

// readNFA reads an automaton description, or a grammar description translated into an NFA.
func readNFA(path string, asGrammar bool) (*aspec.NFA, error) {
	if !asGrammar {
		return aspec.LoadAutomaton(path, appConfig.ReaderOptions()...)
	}

	g, err := gspec.LoadGrammar(path)
	if err != nil {
		return nil, err
	}
	nfa, err := grammar.ToNFA(g)
	if err != nil {
		return nil, verr.WithSource(err, path, path)
	}
	return nfa, nil
}

// writeOutput writes to a file, or to stdout when path is empty.
func writeOutput(path string, write func(w io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("Cannot open the output file %s: %w", path, err)
	}
	defer f.Close()

	return write(f)
}
