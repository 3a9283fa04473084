package upload

import (
	"fmt"

	"github.com/jhenke/ingestbench/ingest/common"
)

// UploadRoute is the POST route every upload client targets
const UploadRoute = "/runs/multipart"

// PartContentType is the content type every serialized buffer is tagged with
const PartContentType = "application/json"

// Part is one named body part of a multipart upload request.
// Data is borrowed read-only for the duration of the send
type Part struct {
	Name        string
	ContentType string
	Data        []byte
}

// NewParts wraps serialized buffers into upload parts. Part i is named
// "part{i}" so the names are unique within one request and the endpoint can
// distinguish them
func NewParts(buffers [][]byte) []Part {
	parts := make([]Part, len(buffers))
	for i, b := range buffers {
		parts[i] = Part{
			Name:        fmt.Sprintf("part%d", i),
			ContentType: PartContentType,
			Data:        b,
		}
	}
	return parts
}

// IUploadClient is the interface for all upload client implementations
type IUploadClient interface {
	// Connect initializes the client with the given configuration
	Connect(config common.ClientConfig) error
	// Upload sends one multipart POST containing every part and blocks until
	// the endpoint has responded or the connection failed. It returns the
	// response status; any status other than 202 Accepted is reported as an
	// *UnexpectedStatusError alongside the status itself.
	// The client never retries: a retry would corrupt the timed measurement.
	Upload(parts []Part) (status int, err error)
	// Close releases client resources
	Close() error
}
