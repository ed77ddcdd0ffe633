package template

import "fmt"

// Error describes a malformed expression found while parsing or rendering
// a template: unbalanced delimiters, an empty expression, an unknown helper,
// or a helper called with the wrong number of arguments.
type Error struct {
	Offset int    // Byte offset of the expression's opening delimiter
	Msg    string // What went wrong
}

func (e *Error) Error() string {
	return fmt.Sprintf("template: %s (offset %d)", e.Msg, e.Offset)
}
