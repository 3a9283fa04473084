// Package payload constructs the synthetic records serialized and uploaded by
// the benchmark suites. Records come in two canonical shapes at a
// caller-specified scale:
//
//   - Array shape: a record holding a wide array of N small nested objects,
//     stressing encoders with many fields and much structure.
//
//   - Blob shape: a record holding three repeated-character strings of length
//     L, stressing encoders with few fields and very large values.
//
// Within one Generate call all records share identical shape and size
// parameters, so measured differences between serialization strategies can
// only come from the strategy itself, never from payload variance.
//
// Generation is pure construction: no I/O, no shared mutable state between
// records, and deterministic structure (field values are derived from the
// element index).
package payload
