package error

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Kind classifies an error reported while loading or translating a description.
// A Kind can be used as the target of errors.Is.
type Kind string

const (
	KindFormat     = Kind("format error")
	KindRange      = Kind("range error")
	KindStructural = Kind("structural grammar error")
	KindIO         = Kind("i/o error")
)

func (k Kind) Error() string {
	return string(k)
}

type SpecError struct {
	Kind       Kind
	Cause      error
	Detail     string
	FilePath   string
	SourceName string
	Row        int
}

func (e *SpecError) Error() string {
	var b strings.Builder
	if e.SourceName != "" {
		fmt.Fprintf(&b, "%v: ", e.SourceName)
	}
	if e.Row != 0 {
		fmt.Fprintf(&b, "%v: ", e.Row)
	}
	if e.Kind != "" {
		fmt.Fprintf(&b, "%v: ", e.Kind)
	}
	fmt.Fprintf(&b, "%v", e.Cause)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %v", e.Detail)
	}

	line := readLine(e.FilePath, e.Row)
	if line != "" {
		fmt.Fprintf(&b, "\n    %v", line)
	}

	return b.String()
}

func (e *SpecError) Unwrap() error {
	return e.Cause
}

func (e *SpecError) Is(target error) bool {
	k, ok := target.(Kind)
	if !ok {
		return false
	}
	return e.Kind == k
}

// WithSource attaches a file path and a display name to the error so that Error can quote the offending line.
func (e *SpecError) WithSource(filePath, sourceName string) *SpecError {
	e.FilePath = filePath
	e.SourceName = sourceName
	return e
}

// WithSource attaches a file path and a display name to a *SpecError or to every member of SpecErrors. Other
// errors are returned as they are.
func WithSource(err error, filePath, sourceName string) error {
	switch e := err.(type) {
	case *SpecError:
		return e.WithSource(filePath, sourceName)
	case SpecErrors:
		for _, specErr := range e {
			specErr.WithSource(filePath, sourceName)
		}
		return e
	}
	return err
}

type SpecErrors []*SpecError

func (e SpecErrors) Error() string {
	if len(e) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%v", e[0])
	for _, err := range e[1:] {
		fmt.Fprintf(&b, "\n%v", err)
	}

	return b.String()
}

// Is reports whether any of the errors matches target.
func (e SpecErrors) Is(target error) bool {
	for _, err := range e {
		if err.Is(target) {
			return true
		}
	}
	return false
}

// NewIOError reports a file-system failure. The cause usually carries the path already.
func NewIOError(cause error) *SpecError {
	return &SpecError{
		Kind:  KindIO,
		Cause: cause,
	}
}

func readLine(filePath string, row int) string {
	if filePath == "" || row <= 0 {
		return ""
	}

	f, err := os.Open(filePath)
	if err != nil {
		return ""
	}
	defer f.Close()

	i := 1
	s := bufio.NewScanner(f)
	for s.Scan() {
		if i == row {
			return s.Text()
		}
		i++
	}

	return ""
}
