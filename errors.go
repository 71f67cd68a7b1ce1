package pigment

import "fmt"

// ParsingError is the error thrown when the invocation parser can't
// finish successfully.  Unlike a Diagnostic, it means the surrounding
// source is malformed (an unterminated string or argument list) and
// expansion of the file cannot proceed.
type ParsingError struct {
	Message string
	Span    Span
}

func (e ParsingError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Span)
}

// backtrackingError is an internal error type that is captured and
// discarded by the Choice operator when it tries the next alternative.
type backtrackingError struct {
	Message string
	Span    Span
}

func (e backtrackingError) Error() string {
	return fmt.Sprintf("%s @ %s", e.Message, e.Span)
}

func isthrown(err error) bool {
	_, ok := err.(ParsingError)
	return ok
}
