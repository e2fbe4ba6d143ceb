package automaton

import (
	"fmt"

	u "github.com/araddon/gou"
	"github.com/nihei9/relang/compressor"
	spec "github.com/nihei9/relang/spec/automaton"
)

// Compile converts a DFA into a portable table. compLv selects the compression of the transition table:
//
//   - 0: an uncompressed row-major table
//   - 1: identical rows are shared
//   - 2: identical rows are shared, and the unique rows are overlaid by row displacement
//
// An automaton with an empty alphabet is always stored uncompressed.
func Compile(dfa *spec.DFA, compLv int) (*spec.CompiledDFA, error) {
	if compLv < spec.CompressionLevelMin || compLv > spec.CompressionLevelMax {
		return nil, fmt.Errorf("compression level must be %v to %v: %v", spec.CompressionLevelMin, spec.CompressionLevelMax, compLv)
	}

	alphabet := dfa.Alphabet()
	syms := alphabet.Symbols()
	colCount := len(syms)
	rowCount := dfa.StateCount()

	tran := make([]spec.CompiledStateID, rowCount*colCount)
	for s := 0; s < rowCount; s++ {
		for col, sym := range syms {
			next, ok := dfa.Next(sym, spec.StateID(s))
			if !ok {
				continue
			}
			tran[s*colCount+col] = spec.NewCompiledStateID(next)
		}
	}

	acc := make([]bool, rowCount)
	for _, s := range dfa.AcceptingStates() {
		acc[s] = true
	}

	names := make([]string, colCount)
	for i, sym := range syms {
		names[i] = sym.String()
	}

	tranTab := &spec.CompiledTransitionTable{
		RowCount:               rowCount,
		ColCount:               colCount,
		UncompressedTransition: tran,
	}
	if colCount == 0 {
		compLv = spec.CompressionLevelMin
	}

	var err error
	switch compLv {
	case 2:
		tranTab, err = compressTransitionTableLv2(tranTab)
	case 1:
		tranTab, err = compressTransitionTableLv1(tranTab)
	}
	if err != nil {
		return nil, err
	}

	u.Debugf("compiled a DFA with %v states and %v symbols at compression level %v", rowCount, colCount, compLv)

	return &spec.CompiledDFA{
		Alphabet:         names,
		StateCount:       rowCount,
		InitialState:     dfa.InitialState(),
		AcceptingStates:  acc,
		CompressionLevel: compLv,
		DFA:              tranTab,
	}, nil
}

func compressTransitionTableLv2(tranTab *spec.CompiledTransitionTable) (*spec.CompiledTransitionTable, error) {
	urTab := compressor.NewUniqueRowsTable()
	{
		orig, err := compressor.NewTable(toIntSlice(tranTab.UncompressedTransition), tranTab.ColCount)
		if err != nil {
			return nil, err
		}
		err = urTab.Compress(orig)
		if err != nil {
			return nil, err
		}
	}

	rdTab := compressor.NewRowDisplacementTable(spec.CompiledStateIDNil.Int())
	{
		orig, err := compressor.NewTable(urTab.UniqueRows, urTab.OriginalColCount)
		if err != nil {
			return nil, err
		}
		err = rdTab.Compress(orig)
		if err != nil {
			return nil, err
		}
	}

	tranTab.Transition = &spec.UniqueEntriesTable{
		UniqueEntries: &spec.RowDisplacementTable{
			OriginalRowCount: rdTab.OriginalRowCount,
			OriginalColCount: rdTab.OriginalColCount,
			EmptyValue:       spec.CompiledStateIDNil,
			Entries:          toCompiledStateIDSlice(rdTab.Entries),
			Bounds:           rdTab.Bounds,
			RowDisplacement:  rdTab.RowDisplacement,
		},
		RowNums:          urTab.RowNums,
		OriginalRowCount: urTab.OriginalRowCount,
		OriginalColCount: urTab.OriginalColCount,
	}
	tranTab.UncompressedTransition = nil

	return tranTab, nil
}

func compressTransitionTableLv1(tranTab *spec.CompiledTransitionTable) (*spec.CompiledTransitionTable, error) {
	urTab := compressor.NewUniqueRowsTable()
	orig, err := compressor.NewTable(toIntSlice(tranTab.UncompressedTransition), tranTab.ColCount)
	if err != nil {
		return nil, err
	}
	err = urTab.Compress(orig)
	if err != nil {
		return nil, err
	}

	tranTab.Transition = &spec.UniqueEntriesTable{
		UncompressedUniqueEntries: toCompiledStateIDSlice(urTab.UniqueRows),
		RowNums:                   urTab.RowNums,
		OriginalRowCount:          urTab.OriginalRowCount,
		OriginalColCount:          urTab.OriginalColCount,
	}
	tranTab.UncompressedTransition = nil

	return tranTab, nil
}

func toIntSlice(s []spec.CompiledStateID) []int {
	is := make([]int, len(s))
	for i, v := range s {
		is[i] = v.Int()
	}
	return is
}

func toCompiledStateIDSlice(s []int) []spec.CompiledStateID {
	ss := make([]spec.CompiledStateID, len(s))
	for i, v := range s {
		ss[i] = spec.CompiledStateID(v)
	}
	return ss
}
