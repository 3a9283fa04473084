package upload

import (
	"strings"
	"testing"
)

// TestEncodeBodyWireFormat pins the hand-assembled body down to the byte
func TestEncodeBodyWireFormat(t *testing.T) {
	parts := []Part{
		{Name: "part0", ContentType: "application/json", Data: []byte("{}")},
		{Name: "part1", ContentType: "application/json", Data: []byte("[1,2]")},
	}

	body := EncodeBody(parts, "B")

	expected := "--B\r\n" +
		"Content-Disposition: form-data; name=\"part0\"\r\n" +
		"Content-Type: application/json\r\n" +
		"\r\n" +
		"{}\r\n" +
		"--B\r\n" +
		"Content-Disposition: form-data; name=\"part1\"\r\n" +
		"Content-Type: application/json\r\n" +
		"\r\n" +
		"[1,2]\r\n" +
		"--B--\r\n"

	if string(body) != expected {
		t.Errorf("Body doesn't match wire format:\nExpected: %q\nGot:      %q", expected, string(body))
	}
}

// TestEncodeBodyEmpty tests that an empty part list still yields a terminated body
func TestEncodeBodyEmpty(t *testing.T) {
	body := EncodeBody(nil, "B")
	if string(body) != "--B--\r\n" {
		t.Errorf("Expected bare terminator, got %q", string(body))
	}
}

// TestNewParts tests part naming and content type tagging
func TestNewParts(t *testing.T) {
	buffers := [][]byte{[]byte("{}"), []byte("[]"), []byte("1")}
	parts := NewParts(buffers)

	if len(parts) != 3 {
		t.Fatalf("Expected 3 parts, got %d", len(parts))
	}

	expectedNames := []string{"part0", "part1", "part2"}
	for i, p := range parts {
		if p.Name != expectedNames[i] {
			t.Errorf("Part %d: expected name %q, got %q", i, expectedNames[i], p.Name)
		}
		if p.ContentType != PartContentType {
			t.Errorf("Part %d: expected content type %q, got %q", i, PartContentType, p.ContentType)
		}
		if string(p.Data) != string(buffers[i]) {
			t.Errorf("Part %d: data not preserved", i)
		}
	}
}

// TestNewBoundary tests that boundaries are unique and usable in a header
func TestNewBoundary(t *testing.T) {
	a := NewBoundary()
	b := NewBoundary()

	if a == b {
		t.Error("Expected unique boundaries per call")
	}
	for _, boundary := range []string{a, b} {
		if strings.ContainsAny(boundary, " \r\n\"") {
			t.Errorf("Boundary %q contains characters invalid in a header", boundary)
		}
	}
}
