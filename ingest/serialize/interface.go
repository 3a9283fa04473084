package serialize

import (
	"github.com/jhenke/ingestbench/ingest/payload"
)

// ISerializeStrategy is the interface for all serialization strategies
type ISerializeStrategy interface {
	// SerializeAll encodes every record into a byte buffer and returns the
	// buffers index-aligned with the input: buffer i decodes to record i,
	// regardless of the order records were encoded in internally.
	// A record the encoder cannot represent fails the whole batch with an
	// *EncodeError; no partial output is returned.
	SerializeAll(records []payload.Record) ([][]byte, error)
}
