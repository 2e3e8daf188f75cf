package result

import "fmt"

// UnwrapError reports an extraction from the wrong Result channel:
// Unwrap/Expect on an Err, or UnwrapErr/ExpectErr on an Ok. Payload is
// the other channel's value, or the message passed to Expect/ExpectErr.
type UnwrapError struct {
	Payload any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprint(e.Payload)
}
