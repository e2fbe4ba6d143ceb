package automaton

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return e.message
}

var (
	synErrNoAlphabet        = newSyntaxError("missing alphabet line")
	synErrNoStateCount      = newSyntaxError("missing state count line")
	synErrNoAcceptingStates = newSyntaxError("missing accepting states line")
	synErrMissingRow        = newSyntaxError("missing transition row")
	synErrExtraRow          = newSyntaxError("unexpected line after the transition rows")
	synErrInvalidSymbol     = newSyntaxError("a symbol must be exactly one character")
	synErrDuplicateSymbol   = newSyntaxError("duplicate symbol")
	synErrInvalidInteger    = newSyntaxError("invalid integer")
	synErrFieldCount        = newSyntaxError("wrong number of fields")
)
