// Package socket provides the low-level upload client. It dials the endpoint
// directly, assembles the multipart body and the HTTP/1.1 request head by
// hand, and parses the response status line itself, so nothing but the raw
// connection sits between the benchmark and the wire.
package socket

import (
	"bufio"
	"bytes"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jhenke/ingestbench/ingest/common"
	"github.com/jhenke/ingestbench/ingest/upload"
)

// NewSocketUploadClient creates a new upload client writing directly to a
// TCP connection
func NewSocketUploadClient() upload.IUploadClient {
	return &socketUploadClient{}
}

// socketUploadClient implements the upload.IUploadClient interface with a
// hand-assembled request over one connection per upload
type socketUploadClient struct {
	addr    string
	host    string
	timeout time.Duration
}

// --------------------------------------------------------------------------
// Interface Methods (docu see upload.IUploadClient)
// --------------------------------------------------------------------------

func (c *socketUploadClient) Connect(config common.ClientConfig) error {
	parsed, err := url.Parse(config.Endpoint)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" {
		return fmt.Errorf("socket upload client supports http endpoints only, got %q", parsed.Scheme)
	}

	c.host = parsed.Host
	c.addr = parsed.Host
	if parsed.Port() == "" {
		c.addr = net.JoinHostPort(parsed.Hostname(), "80")
	}
	c.timeout = time.Duration(config.TimeoutSecond) * time.Second

	return nil
}

func (c *socketUploadClient) Upload(parts []upload.Part) (int, error) {
	// Check if the client is initialized
	if c.addr == "" {
		return 0, fmt.Errorf("socket upload client not initialized")
	}

	// Assemble the body before dialing so connection time is all that is
	// left outside the payload write
	boundary := upload.NewBoundary()
	body := upload.EncodeBody(parts, boundary)

	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if c.timeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
			return 0, err
		}
	}

	// Hand-assembled request head; one connection per request
	var head bytes.Buffer
	fmt.Fprintf(&head, "POST %s HTTP/1.1\r\n", upload.UploadRoute)
	fmt.Fprintf(&head, "Host: %s\r\n", c.host)
	fmt.Fprintf(&head, "Content-Type: %s\r\n", upload.FormContentType(boundary))
	fmt.Fprintf(&head, "Content-Length: %d\r\n", len(body))
	head.WriteString("Connection: close\r\n\r\n")

	buffers := net.Buffers{head.Bytes(), body}
	if _, err := buffers.WriteTo(conn); err != nil {
		return 0, err
	}

	status, err := readStatus(conn)
	if err != nil {
		return 0, err
	}
	if status != upload.AcceptedStatus {
		return status, &upload.UnexpectedStatusError{Status: status}
	}
	return status, nil
}

func (c *socketUploadClient) Close() error {
	c.addr = ""
	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

// readStatus parses the status code out of an HTTP/1.1 status line
// (e.g. "HTTP/1.1 202 Accepted")
func readStatus(conn net.Conn) (int, error) {
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return 0, err
	}

	fields := strings.Fields(line)
	if len(fields) < 2 || !strings.HasPrefix(fields[0], "HTTP/") {
		return 0, fmt.Errorf("malformed status line %q", strings.TrimSpace(line))
	}

	status, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, fmt.Errorf("malformed status code in %q", strings.TrimSpace(line))
	}
	return status, nil
}
