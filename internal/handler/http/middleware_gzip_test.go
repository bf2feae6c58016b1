package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})
}

func TestWithGZip_PlainRequestPlainResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"x"}`))
	rec := httptest.NewRecorder()

	withGZip(echoHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, `{"title":"x"}`, rec.Body.String())
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/books", bytes.NewReader(gzipBytes(t, `{"title":"x"}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, `{"title":"x"}`, rec.Body.String())
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(`{"title":"x"}`))
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(t)).ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"x"}`, string(body))
}

func TestWithGZip_InvalidGzipBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(echoHandler(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON was passed", errorMessage(t, rec))
}

func TestWithGZip_EmptyHandlerWritesNothing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, rec.Body.Len())
	assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
}
