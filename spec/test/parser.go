package test

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

type Verdict string

const (
	VerdictAccept = Verdict("accept")
	VerdictReject = Verdict("reject")
)

// Case is a string and the verdict an automaton must give on it.
type Case struct {
	Expected Verdict
	Input    string

	// Row is the line of the case in a test case file.
	Row int
}

type TestCase struct {
	Description string
	Cases       []*Case
}

// ParseTestCase reads a test case file. A file consists of a description and a list of cases separated by a
// `---` line:
//
//	Strings ending with b
//	---
//	accept ab
//	reject ba
//	accept b
//	reject
//
// The input of a case is the rest of the line after the first space, so `reject` alone means the empty string.
// Blank lines and lines starting with `#` are ignored.
func ParseTestCase(r io.Reader) (*TestCase, error) {
	parts, err := splitIntoParts(r)
	if err != nil {
		return nil, err
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("too many or too few part delimiters: a test case consists of just two parts: %v parts found", len(parts))
	}

	cases, err := parseCases(parts[1].buf, parts[0].lineCount+1)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("a test case needs at least one case")
	}

	return &TestCase{
		Description: strings.TrimSpace(string(parts[0].buf)),
		Cases:       cases,
	}, nil
}

func parseCases(src []byte, lineOffset int) ([]*Case, error) {
	var cases []*Case
	s := bufio.NewScanner(bytes.NewReader(src))
	row := lineOffset
	for s.Scan() {
		row++
		line := strings.TrimSuffix(s.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		verb, input, _ := strings.Cut(line, " ")
		switch Verdict(verb) {
		case VerdictAccept, VerdictReject:
		default:
			return nil, fmt.Errorf("%v: a case must start with %v or %v: %q", row, VerdictAccept, VerdictReject, verb)
		}
		cases = append(cases, &Case{
			Expected: Verdict(verb),
			Input:    input,
			Row:      row,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

type testCasePart struct {
	buf       []byte
	lineCount int
}

func splitIntoParts(r io.Reader) ([]*testCasePart, error) {
	var bufs []*testCasePart
	s := bufio.NewScanner(r)
	for {
		buf, lineCount, err := readPart(s)
		if err != nil {
			return nil, err
		}
		if buf == nil {
			break
		}
		bufs = append(bufs, &testCasePart{
			buf:       buf,
			lineCount: lineCount,
		})
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return bufs, nil
}

var reDelim = regexp.MustCompile(`^\s*---+\s*$`)

func readPart(s *bufio.Scanner) ([]byte, int, error) {
	if !s.Scan() {
		return nil, 0, s.Err()
	}
	buf := &bytes.Buffer{}
	line := s.Bytes()
	if reDelim.Match(line) {
		// Return an empty slice because (*bytes.Buffer).Bytes() returns nil if we have never written data.
		return []byte{}, 0, nil
	}
	buf.Write(line)
	lineCount := 1
	for s.Scan() {
		line := s.Bytes()
		if reDelim.Match(line) {
			return buf.Bytes(), lineCount, nil
		}
		buf.WriteByte('\n')
		buf.Write(line)
		lineCount++
	}
	if err := s.Err(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), lineCount, nil
}
