package payload

import (
	"fmt"
	"strings"
)

// --------------------------------------------------------------------------
// Record model
// --------------------------------------------------------------------------

// Shape selects which canonical record layout Generate produces
type Shape string

const (
	// ShapeArray produces records carrying a wide array of small nested objects
	ShapeArray Shape = "array"
	// ShapeBlob produces records carrying three very large text fields
	ShapeBlob Shape = "blob"
)

// Metadata is the small trailing object every record carries
type Metadata struct {
	CreatedAt string  `json:"created_at"`
	Author    string  `json:"author"`
	Version   float64 `json:"version"`
}

// Nested is the innermost object of an array element
type Nested struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// Element is one entry of an array-shape record
type Element struct {
	Index  int    `json:"index"`
	Data   string `json:"data"`
	Nested Nested `json:"nested"`
}

// Record is one synthetic structured value to be serialized. It carries both
// canonical shapes; the fields of the absent shape are zero-valued and kept
// off the wire via omitempty, so each shape encodes to its canonical JSON form.
type Record struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Array       []Element `json:"array,omitempty"`
	Key1        string    `json:"key1,omitempty"`
	Key2        string    `json:"key2,omitempty"`
	Key3        string    `json:"key3,omitempty"`
	Metadata    Metadata  `json:"metadata"`
}

const (
	recordName        = "Huge JSON"
	recordDescription = "This is a very large JSON object for benchmarking purposes."
	metadataCreatedAt = "2024-10-22T19:00:00Z"
	metadataAuthor    = "ingestbench"
	metadataVersion   = 1.0
)

// --------------------------------------------------------------------------
// Generator
// --------------------------------------------------------------------------

// Generate builds count independent records of the given shape. For
// ShapeArray, scale is the element count of each record's array; for
// ShapeBlob, scale is the length of each of the three text fields.
// All records of one call share identical shape and size parameters so that
// timing differences between strategies reflect only the strategy choice.
func Generate(shape Shape, scale, count int) ([]Record, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("payload: scale must be positive, got %d", scale)
	}
	if count <= 0 {
		return nil, fmt.Errorf("payload: count must be positive, got %d", count)
	}

	records := make([]Record, count)
	for i := range records {
		switch shape {
		case ShapeArray:
			records[i] = newArrayRecord(scale)
		case ShapeBlob:
			records[i] = newBlobRecord(scale)
		default:
			return nil, fmt.Errorf("payload: unknown shape %q", shape)
		}
	}
	return records, nil
}

// Clone returns a deep copy of records. The copy shares no mutable state with
// the original, so it can be handed to a consuming strategy while the
// original batch stays intact.
func Clone(records []Record) []Record {
	cloned := make([]Record, len(records))
	for i, r := range records {
		cloned[i] = r
		if r.Array != nil {
			cloned[i].Array = make([]Element, len(r.Array))
			copy(cloned[i].Array, r.Array)
		}
	}
	return cloned
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// newArrayRecord builds one array-shape record with n elements.
// Field values are derived from the element index
func newArrayRecord(n int) Record {
	elements := make([]Element, n)
	for i := range elements {
		elements[i] = Element{
			Index: i,
			Data:  fmt.Sprintf("This is element number %d", i),
			Nested: Nested{
				ID:    i,
				Value: fmt.Sprintf("Nested value for element %d", i),
			},
		}
	}

	return Record{
		Name:        recordName,
		Description: recordDescription,
		Array:       elements,
		Metadata:    defaultMetadata(),
	}
}

// newBlobRecord builds one blob-shape record with three text fields of length l
func newBlobRecord(l int) Record {
	blob := strings.Repeat("a", l)
	return Record{
		Name:        recordName,
		Description: recordDescription,
		Key1:        blob,
		Key2:        blob,
		Key3:        blob,
		Metadata:    defaultMetadata(),
	}
}

func defaultMetadata() Metadata {
	return Metadata{
		CreatedAt: metadataCreatedAt,
		Author:    metadataAuthor,
		Version:   metadataVersion,
	}
}
