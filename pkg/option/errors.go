package option

// EmptyValueError reports an attempt to extract the value of a None
// Option. Msg is either the default extraction message or the one
// supplied to Expect.
type EmptyValueError struct {
	Msg string
}

func (e *EmptyValueError) Error() string {
	return e.Msg
}
