// Package httpclient provides the high-level upload client built on net/http.
// The multipart body is produced by mime/multipart, mirroring how the low
// level socket client hand-assembles the same wire format.
package httpclient

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"github.com/jhenke/ingestbench/ingest/common"
	"github.com/jhenke/ingestbench/ingest/upload"
)

// NewHTTPUploadClient creates a new upload client backed by net/http
func NewHTTPUploadClient() upload.IUploadClient {
	return &httpUploadClient{}
}

// httpUploadClient implements the upload.IUploadClient interface using the
// standard HTTP client with multipart encoding managed by mime/multipart
type httpUploadClient struct {
	uploadURL string
	client    *http.Client
}

// --------------------------------------------------------------------------
// Interface Methods (docu see upload.IUploadClient)
// --------------------------------------------------------------------------

func (c *httpUploadClient) Connect(config common.ClientConfig) error {
	parsed, err := url.Parse(config.Endpoint)
	if err != nil {
		return err
	}

	timeout := time.Duration(config.TimeoutSecond) * time.Second

	// Create client with default transport
	c.client = &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     timeout,
		},
		Timeout: timeout,
	}
	c.uploadURL = parsed.JoinPath(upload.UploadRoute).String()

	return nil
}

func (c *httpUploadClient) Upload(parts []upload.Part) (int, error) {
	// Check if the client is initialized
	if c.client == nil {
		return 0, fmt.Errorf("http upload client not initialized")
	}

	// Build the multipart body
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, p.Name))
		header.Set("Content-Type", p.ContentType)

		pw, err := writer.CreatePart(header)
		if err != nil {
			return 0, err
		}
		if _, err := pw.Write(p.Data); err != nil {
			return 0, err
		}
	}
	if err := writer.Close(); err != nil {
		return 0, err
	}

	// Create the request
	request, err := http.NewRequest(http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return 0, err
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())

	// Send the request; no retries, a retry would corrupt the timing
	response, err := c.client.Do(request)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	// Drain the body so the connection can be reused
	if _, err := io.Copy(io.Discard, response.Body); err != nil {
		return response.StatusCode, err
	}

	if response.StatusCode != upload.AcceptedStatus {
		return response.StatusCode, &upload.UnexpectedStatusError{Status: response.StatusCode}
	}
	return response.StatusCode, nil
}

func (c *httpUploadClient) Close() error {
	if c.client != nil {
		c.client.CloseIdleConnections()
	}
	c.client = nil
	return nil
}
