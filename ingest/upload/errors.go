package upload

import (
	"fmt"
	"net/http"
)

// AcceptedStatus is the only response status that counts as a successful upload
const AcceptedStatus = http.StatusAccepted

// UnexpectedStatusError reports a response status other than 202 Accepted.
// The benchmark harness asserts on it instead of retrying, since masking a
// failure would silently invalidate the measurement
type UnexpectedStatusError struct {
	Status int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("upload: unexpected status %d (want %d)", e.Status, AcceptedStatus)
}
