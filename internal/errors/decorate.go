package errors

// DecoratedError rewrites the text of an error while leaving it intact as the cause.
// The code and concrete type of the cause stay reachable through Unwrap.
type DecoratedError struct {
	Cause    error
	decorate func(string) string
}

func (e *DecoratedError) Error() string {
	return e.decorate(e.Cause.Error())
}

func (e *DecoratedError) Unwrap() error {
	return e.Cause
}

// Decorate returns err with its message passed through fn.
func Decorate(err error, fn func(message string) string) error {
	if err == nil {
		return nil
	}
	if fn == nil {
		return err
	}
	return &DecoratedError{Cause: err, decorate: fn}
}

// AppendLines decorates err by appending newline-separated context lines to its message.
func AppendLines(err error, lines ...string) error {
	return Decorate(err, func(message string) string {
		for _, line := range lines {
			message += "\n" + line
		}
		return message
	})
}
