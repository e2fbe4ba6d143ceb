package automaton

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	verr "github.com/nihei9/relang/error"
)

type readerConfig struct {
	zeroIsState bool
}

type ReaderOption func(c *readerConfig)

// ZeroIsState makes the reader treat a lone `0` field as a transition to state 0. By default a lone `0` means
// "no transition", and a transition to state 0 is written `0;0`.
func ZeroIsState() ReaderOption {
	return func(c *readerConfig) {
		c.zeroIsState = true
	}
}

// LoadAutomaton reads an automaton description from a file. A failure to open the file is reported as a
// *verr.SpecError of KindIO; other errors carry the file path so that their messages quote the offending line.
func LoadAutomaton(path string, opts ...ReaderOption) (*NFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, verr.NewIOError(err)
	}
	defer f.Close()

	nfa, err := ReadAutomaton(f, opts...)
	if err != nil {
		return nil, verr.WithSource(err, path, path)
	}
	return nfa, nil
}

// ReadAutomaton reads an automaton description in the following line-oriented format:
//
//  1. comma-separated alphabet symbols
//  2. the number of states N
//  3. comma-separated accepting states
//  4. one row per symbol in the order [epsilon, symbol_1, ..., symbol_k], each having N comma-separated fields.
//     A field is empty or `0` (no transition), or `;`-separated target states. A lone transition to state 0 is
//     written `0;0`.
func ReadAutomaton(r io.Reader, opts ...ReaderOption) (*NFA, error) {
	c := &readerConfig{}
	for _, opt := range opts {
		opt(c)
	}

	p := &automatonParser{
		s:      bufio.NewScanner(r),
		config: c,
	}
	return p.parse()
}

type automatonParser struct {
	s      *bufio.Scanner
	config *readerConfig
	row    int
}

func (p *automatonParser) nextLine() (string, bool, error) {
	if !p.s.Scan() {
		if err := p.s.Err(); err != nil {
			return "", false, verr.NewIOError(err)
		}
		return "", false, nil
	}
	p.row++
	return strings.TrimSuffix(p.s.Text(), "\r"), true, nil
}

func (p *automatonParser) formatError(cause error, detail string) *verr.SpecError {
	return &verr.SpecError{
		Kind:   verr.KindFormat,
		Cause:  cause,
		Detail: detail,
		Row:    p.row,
	}
}

func (p *automatonParser) rangeError(cause error, detail string) *verr.SpecError {
	return &verr.SpecError{
		Kind:   verr.KindRange,
		Cause:  cause,
		Detail: detail,
		Row:    p.row,
	}
}

func (p *automatonParser) parse() (*NFA, error) {
	alphabet, err := p.parseAlphabet()
	if err != nil {
		return nil, err
	}

	stateCount, err := p.parseStateCount()
	if err != nil {
		return nil, err
	}

	accepting, err := p.parseAcceptingStates(stateCount)
	if err != nil {
		return nil, err
	}

	b := NewTransitionTableBuilder(alphabet.RowCount(), stateCount)
	for row := 0; row < alphabet.RowCount(); row++ {
		line, ok, err := p.nextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			p.row++
			return nil, p.formatError(synErrMissingRow, fmt.Sprintf("symbol %v", alphabet.Symbol(row)))
		}
		err = p.parseTransitionRow(b, row, line, stateCount)
		if err != nil {
			return nil, err
		}
	}

	for {
		line, ok, err := p.nextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, p.formatError(synErrExtraRow, "")
		}
	}

	return NewNFA(alphabet, StateIDMin, accepting, b.Build())
}

func (p *automatonParser) parseAlphabet() (*Alphabet, error) {
	line, ok, err := p.nextLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		p.row++
		return nil, p.formatError(synErrNoAlphabet, "")
	}

	var syms []Symbol
	if strings.TrimSpace(line) != "" {
		seen := map[Symbol]struct{}{}
		for _, field := range strings.Split(line, ",") {
			f := strings.TrimSpace(field)
			if utf8.RuneCountInString(f) != 1 {
				return nil, p.formatError(synErrInvalidSymbol, strconv.Quote(f))
			}
			r, _ := utf8.DecodeRuneInString(f)
			sym := Symbol(r)
			if sym.IsEpsilon() {
				return nil, p.formatError(synErrInvalidSymbol, strconv.Quote(f))
			}
			if _, dup := seen[sym]; dup {
				return nil, p.formatError(synErrDuplicateSymbol, f)
			}
			seen[sym] = struct{}{}
			syms = append(syms, sym)
		}
	}

	a, err := NewAlphabet(syms)
	if err != nil {
		return nil, p.formatError(err, "")
	}
	return a, nil
}

func (p *automatonParser) parseStateCount() (int, error) {
	line, ok, err := p.nextLine()
	if err != nil {
		return 0, err
	}
	if !ok {
		p.row++
		return 0, p.formatError(synErrNoStateCount, "")
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, p.formatError(synErrInvalidInteger, strconv.Quote(line))
	}
	if n <= 0 {
		return 0, p.rangeError(semErrNoState, strconv.Itoa(n))
	}
	return n, nil
}

func (p *automatonParser) parseAcceptingStates(stateCount int) ([]StateID, error) {
	line, ok, err := p.nextLine()
	if err != nil {
		return nil, err
	}
	if !ok {
		p.row++
		return nil, p.formatError(synErrNoAcceptingStates, "")
	}
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	var acc []StateID
	for _, field := range strings.Split(line, ",") {
		f := strings.TrimSpace(field)
		if f == "" {
			continue
		}
		s, err := p.parseState(f, stateCount, semErrAcceptingStateOutOfRange)
		if err != nil {
			return nil, err
		}
		acc = append(acc, s)
	}
	return acc, nil
}

func (p *automatonParser) parseTransitionRow(b *TransitionTableBuilder, row int, line string, stateCount int) error {
	fields := strings.Split(line, ",")
	if len(fields) == stateCount+1 && strings.TrimSpace(fields[stateCount]) == "" {
		fields = fields[:stateCount]
	}
	if len(fields) != stateCount {
		return p.formatError(synErrFieldCount, fmt.Sprintf("want %v fields, got %v", stateCount, len(fields)))
	}

	for from, field := range fields {
		f := strings.TrimSpace(field)
		if f == "" {
			continue
		}
		if f == "0" && !p.config.zeroIsState {
			continue
		}
		for _, t := range strings.Split(f, ";") {
			to, err := p.parseState(strings.TrimSpace(t), stateCount, semErrTargetStateOutOfRange)
			if err != nil {
				return err
			}
			err = b.Add(row, StateID(from), to)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (p *automatonParser) parseState(text string, stateCount int, rangeCause error) (StateID, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return StateIDNil, p.formatError(synErrInvalidInteger, strconv.Quote(text))
	}
	if n < StateIDMin.Int() || n >= stateCount {
		return StateIDNil, p.rangeError(rangeCause, strconv.Itoa(n))
	}
	return StateID(n), nil
}
