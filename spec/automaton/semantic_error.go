package automaton

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
	semErrNoState                  = newSemanticError("an automaton needs at least one state")
	semErrInitialStateOutOfRange   = newSemanticError("initial state out of range")
	semErrAcceptingStateOutOfRange = newSemanticError("accepting state out of range")
	semErrTargetStateOutOfRange    = newSemanticError("target state out of range")
	semErrNondeterministic         = newSemanticError("a DFA cannot have epsilon transitions or multiple targets")
)
