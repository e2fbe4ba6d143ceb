package grammar

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
	// lexical errors
	synErrInvalidToken = newSyntaxError("invalid token")

	// syntax errors
	synErrNoNonterminals     = newSyntaxError("a grammar needs at least one nonterminal")
	synErrNoTerminalsLine    = newSyntaxError("missing terminals line")
	synErrNoStartSymbol      = newSyntaxError("missing start symbol")
	synErrNoProduction       = newSyntaxError("a grammar must have at least one production")
	synErrNoProductionName   = newSyntaxError("a production name is missing")
	synErrNoArrow            = newSyntaxError("the arrow -> must follow a production name")
	synErrNoSymbol           = newSyntaxError("a symbol is missing")
	synErrDuplicateSymbol    = newSyntaxError("duplicate symbol")
	synErrUnexpectedToken    = newSyntaxError("unexpected token")
	synErrStartSymbolNoBreak = newSyntaxError("a start symbol must be followed by a newline")
)
