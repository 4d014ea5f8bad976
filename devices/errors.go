package devices

import "strings"

// ErrorSet aggregates the failures of several devices into one error.
// Startup and Shutdown attempt every device regardless of individual
// failures, so callers get all faults in a single report.
type ErrorSet []error

// Len returns the number of collected errors.
func (e ErrorSet) Len() int {
	return len(e)
}

// Append adds the given errors to the set.
func (e *ErrorSet) Append(args ...error) {
	*e = append(*e, args...)
}

func (e ErrorSet) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}
