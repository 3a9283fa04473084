// Package upload defines the interface and shared building blocks for the
// multipart upload clients under comparison. Two interchangeable
// implementations exist in the subpackages:
//
//   - httpclient: a high-level client built on net/http and mime/multipart,
//     which manages the multipart encoding internally.
//
//   - socket: a low-level client that assembles the multipart body and the
//     HTTP request head by hand and writes them over a raw TCP connection.
//
// Both produce wire-compatible multipart/form-data bodies and target the same
// POST route, so any measured difference between them comes from the client
// stack, not from the payload.
//
// The mock subpackage provides the deterministic stand-in endpoint the
// clients are measured against.
package upload
