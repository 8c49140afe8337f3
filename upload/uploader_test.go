package upload

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// Keep backoff waits negligible in tests.
	RetryBaseDelay = 1 * time.Millisecond
}

func TestUpload(t *testing.T) {
	var gotFilename, gotContentType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		gotFilename = header.Filename
		gotContentType = header.Header.Get("Content-Type")
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "%PDF-fake", string(body))

		fmt.Fprint(w, `{"status":"success","data":{"url":"https://tmpfiles.org/123/doc.pdf"}}`)
	}))
	defer ts.Close()

	url, err := New(ts.URL).Upload(context.Background(), "doc.pdf", []byte("%PDF-fake"), "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "https://tmpfiles.org/dl/123/doc.pdf", url)
	assert.Equal(t, "doc.pdf", gotFilename)
	assert.Equal(t, "application/pdf", gotContentType)
}

func TestUploadRetriesRateLimit(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"status":"success","data":{"url":"https://tmpfiles.org/9/x.docx"}}`)
	}))
	defer ts.Close()

	url, err := New(ts.URL).Upload(context.Background(), "x.docx", []byte("data"), "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "https://tmpfiles.org/dl/9/x.docx", url)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestUploadServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := New(ts.URL).Upload(context.Background(), "doc.pdf", []byte("x"), "application/pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestUploadEmptyResponseURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"status":"success","data":{}}`)
	}))
	defer ts.Close()

	_, err := New(ts.URL).Upload(context.Background(), "doc.pdf", []byte("x"), "application/pdf")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "no URL"))
}
