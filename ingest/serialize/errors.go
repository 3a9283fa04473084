package serialize

import (
	"fmt"
)

// EncodeError reports a record the encoder could not represent
// (e.g. a non-finite number in a JSON payload)
type EncodeError struct {
	// Index is the position of the failing record in the input batch
	Index int
	// Err is the underlying encoder error
	Err error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("serialize: record %d: %v", e.Index, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
