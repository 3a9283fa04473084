package upload

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
)

// NewBoundary returns a fresh boundary token for one request
func NewBoundary() string {
	return "------------------------" + uuid.NewString()
}

// FormContentType returns the request Content-Type header value announcing
// the given boundary
func FormContentType(boundary string) string {
	return "multipart/form-data; boundary=" + boundary
}

// EncodeBody assembles a multipart/form-data body by hand, RFC 2046 style:
//
//	--boundary\r\n
//	Content-Disposition: form-data; name="part0"\r\n
//	Content-Type: application/json\r\n
//	\r\n
//	<raw bytes>\r\n
//	...
//	--boundary--\r\n
func EncodeBody(parts []Part, boundary string) []byte {
	var buf bytes.Buffer
	for _, p := range parts {
		buf.WriteString("--" + boundary + "\r\n")
		fmt.Fprintf(&buf, "Content-Disposition: form-data; name=%q\r\n", p.Name)
		buf.WriteString("Content-Type: " + p.ContentType + "\r\n\r\n")
		buf.Write(p.Data)
		buf.WriteString("\r\n")
	}
	buf.WriteString("--" + boundary + "--\r\n")
	return buf.Bytes()
}
