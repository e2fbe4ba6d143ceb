package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrUndefinedSym         = newSemanticError("undefined symbol")
	semErrUndefinedStartSymbol = newSemanticError("the start symbol must be a nonterminal")
	semErrUndefinedLHS         = newSemanticError("the left-hand side of a production must be a nonterminal")
	semErrNonterminalNotLast   = newSemanticError("a nonterminal can appear only at the end of an alternative")
	semErrDuplicateName        = newSemanticError("duplicate names are not allowed between terminals and nonterminals")
	semErrInvalidTerminals     = newSemanticError("invalid terminals")
)
