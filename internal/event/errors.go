package event

import "fmt"

// Fields a ParseError can refer to.
const (
	FieldDayLabel  = "day label"
	FieldStartTime = "start time"
)

// ParseError reports text that could not be turned into a date or time.
type ParseError struct {
	Field  string
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %s", e.Field, e.Input, e.Reason)
}

func dayLabelError(input, format string, args ...any) *ParseError {
	return &ParseError{Field: FieldDayLabel, Input: input, Reason: fmt.Sprintf(format, args...)}
}

func startTimeError(input, format string, args ...any) *ParseError {
	return &ParseError{Field: FieldStartTime, Input: input, Reason: fmt.Sprintf(format, args...)}
}

// ParseErrors flattens an error tree, such as the one returned by
// Resolver.ResolveAll, into its ParseErrors.
func ParseErrors(err error) []*ParseError {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ParseError); ok {
		return []*ParseError{pe}
	}

	var out []*ParseError
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			out = append(out, ParseErrors(e)...)
		}
	case interface{ Unwrap() error }:
		out = append(out, ParseErrors(u.Unwrap())...)
	}
	return out
}
