// Package upload publishes rendered documents to tmpfiles.org so callers
// get a shareable link without running their own host.
package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

const defaultEndpoint = "https://tmpfiles.org/api/v1/upload"

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 500 * time.Millisecond

const maxRetries = 3

// Client uploads files to the public temporary host.
type Client struct {
	endpoint string
	http     *http.Client
}

// New creates a Client. An empty endpoint selects the tmpfiles.org API.
func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 30 * time.Second},
	}
}

// response is the tmpfiles.org upload reply. The page URL in data.url is
// rewritten to the /dl/ direct-download form before returning.
type response struct {
	Status string `json:"status"`
	Data   struct {
		URL string `json:"url"`
	} `json:"data"`
}

// Upload posts the file as multipart form data and returns the direct
// download URL. HTTP 429 is retried with exponential backoff; other failure
// statuses return an error immediately.
func (c *Client) Upload(ctx context.Context, filename string, data []byte, contentType string) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("building upload form: %w", err)
	}

	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body.Bytes()))
		if err != nil {
			return "", fmt.Errorf("creating upload request: %w", err)
		}
		req.Header.Set("Content-Type", mw.FormDataContentType())

		resp, err := c.http.Do(req)
		if err != nil {
			return "", fmt.Errorf("uploading %s: %w", filename, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < maxRetries {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()

			backoff := time.Duration(1<<attempt) * RetryBaseDelay
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			continue
		}

		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			io.Copy(io.Discard, resp.Body)
			return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
		}

		var result response
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return "", fmt.Errorf("decoding upload response: %w", err)
		}
		if result.Data.URL == "" {
			return "", fmt.Errorf("upload response carried no URL")
		}
		return directURL(result.Data.URL), nil
	}
}

// directURL converts the landing-page URL into the direct download form by
// inserting /dl/ into the path.
func directURL(pageURL string) string {
	return strings.Replace(pageURL, "tmpfiles.org/", "tmpfiles.org/dl/", 1)
}
