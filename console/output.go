package console

import (
	"errors"
	"fmt"
)

// Output holds the messages and errors produced by a single command.
type Output struct {
	messages []string
	errs     []error
}

// Print adds a message to the Output, formatted like fmt.Sprint.
func (o *Output) Print(a ...any) {
	o.messages = append(o.messages, fmt.Sprint(a...))
}

// Printf adds a message to the Output, formatted like fmt.Sprintf.
func (o *Output) Printf(format string, a ...any) {
	o.messages = append(o.messages, fmt.Sprintf(format, a...))
}

// Error adds an error to the Output.
func (o *Output) Error(a ...any) {
	o.errs = append(o.errs, errors.New(fmt.Sprint(a...)))
}

// Errorf adds an error to the Output, formatted like fmt.Errorf.
func (o *Output) Errorf(format string, a ...any) {
	o.errs = append(o.errs, fmt.Errorf(format, a...))
}

// Messages returns the messages added to the Output.
func (o *Output) Messages() []string {
	return o.messages
}

// Errors returns the errors added to the Output.
func (o *Output) Errors() []error {
	return o.errs
}
