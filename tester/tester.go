package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nihei9/relang/driver"
	aspec "github.com/nihei9/relang/spec/automaton"
	tspec "github.com/nihei9/relang/spec/test"
)

// CaseFailure is a case on which an automaton gave the wrong verdict.
type CaseFailure struct {
	Case   *tspec.Case
	Actual tspec.Verdict
}

func (f *CaseFailure) String() string {
	return fmt.Sprintf("%v: expected %v but got %v: %q", f.Case.Row, f.Case.Expected, f.Actual, f.Case.Input)
}

type TestResult struct {
	TestCasePath string
	Error        error
	Failures     []*CaseFailure
}

func (r *TestResult) String() string {
	if r.Error != nil {
		const indent1 = "    "
		const indent2 = indent1 + indent1

		msgLines := strings.Split(r.Error.Error(), "\n")
		msg := fmt.Sprintf("Failed %v:\n%v%v", r.TestCasePath, indent1, strings.Join(msgLines, "\n"+indent1))
		if len(r.Failures) == 0 {
			return msg
		}
		var failureLines []string
		for _, f := range r.Failures {
			failureLines = append(failureLines, f.String())
		}
		return fmt.Sprintf("%v\n%v%v", msg, indent2, strings.Join(failureLines, "\n"+indent2))
	}
	return fmt.Sprintf("Passed %v", r.TestCasePath)
}

type TestCaseWithMetadata struct {
	TestCase *tspec.TestCase
	FilePath string
	Error    error
}

// ListTestCases reads a test case file, or every test case file under a directory.
func ListTestCases(testPath string) []*TestCaseWithMetadata {
	fi, err := os.Stat(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	if !fi.IsDir() {
		c, err := parseTestCase(testPath)
		return []*TestCaseWithMetadata{
			{
				TestCase: c,
				FilePath: testPath,
				Error:    err,
			},
		}
	}

	es, err := os.ReadDir(testPath)
	if err != nil {
		return []*TestCaseWithMetadata{
			{
				FilePath: testPath,
				Error:    err,
			},
		}
	}
	var cases []*TestCaseWithMetadata
	for _, e := range es {
		cs := ListTestCases(filepath.Join(testPath, e.Name()))
		cases = append(cases, cs...)
	}
	return cases
}

func parseTestCase(testCasePath string) (*tspec.TestCase, error) {
	f, err := os.Open(testCasePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tspec.ParseTestCase(f)
}

type Tester struct {
	NFA   *aspec.NFA
	Cases []*TestCaseWithMetadata
}

func (t *Tester) Run() []*TestResult {
	var rs []*TestResult
	for _, c := range t.Cases {
		rs = append(rs, runTest(t.NFA, c))
	}
	return rs
}

func runTest(nfa *aspec.NFA, c *TestCaseWithMetadata) *TestResult {
	if c.Error != nil {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        c.Error,
		}
	}

	var failures []*CaseFailure
	for _, tc := range c.TestCase.Cases {
		actual := tspec.VerdictReject
		if driver.AcceptsString(nfa, tc.Input) {
			actual = tspec.VerdictAccept
		}
		if actual != tc.Expected {
			failures = append(failures, &CaseFailure{
				Case:   tc,
				Actual: actual,
			})
		}
	}
	if len(failures) > 0 {
		return &TestResult{
			TestCasePath: c.FilePath,
			Error:        fmt.Errorf("%v of %v cases failed", len(failures), len(c.TestCase.Cases)),
			Failures:     failures,
		}
	}
	return &TestResult{
		TestCasePath: c.FilePath,
	}
}
