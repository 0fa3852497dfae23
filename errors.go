package argparse

import "fmt"

// DeclarationError is returned by ActionContainer.AddArgument,
// MutexGroup.AddArgument and Parser.AddSubparsers/AddParser when the
// declaration itself is malformed (conflicting option strings, positional
// after REMAINDER, a required argument inside a required mutex group, and
// similar programmer errors).
// It never occurs mid-parse; a program that never fails AddArgument in
// development will never see one in production.
type DeclarationError struct {
	Action  string
	Message string
}

func (e *DeclarationError) Error() string {
	if e.Action == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

// ArgumentError describes anything wrong with the supplied tokens: a missing
// required argument, an unknown optional, a bad arity match, a coercion
// failure, a choices violation, or a mutex-group conflict.
// Parser.ParseArgs/ParseKnownArgs pass it through the parser's error
// boundary, so a caller receives it as the text of a *ParserExit.
type ArgumentError struct {
	Action  string // DisplayName of the offending action, if any
	Message string
}

func (e *ArgumentError) Error() string {
	if e.Action == "" {
		return e.Message
	}
	return fmt.Sprintf("argument %s: %s", e.Action, e.Message)
}

func newArgumentError(action *Action, format string, args ...any) *ArgumentError {
	name := ""
	if action != nil {
		name = action.DisplayName()
	}
	return &ArgumentError{Action: name, Message: fmt.Sprintf(format, args...)}
}

func newDeclarationError(action *Action, format string, args ...any) *DeclarationError {
	name := ""
	if action != nil {
		name = action.DisplayName()
	}
	return &DeclarationError{Action: name, Message: fmt.Sprintf(format, args...)}
}

// ParserExit is the boundary error a Parser's error()/Exit() reaching a
// caller who set ExitOnError(false): it carries the status code the process
// would otherwise have exited with, and for a parse error the
// "prog: error: ..." message already written to stderr. For --help/--version
// the text goes to stdout and Message is empty.
type ParserExit struct {
	Code    int
	Message string
}

func (e *ParserExit) Error() string {
	return e.Message
}
