package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/fetch"
)

func TestClientGet(t *testing.T) {
	t.Parallel()

	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("hello"))
	}))
	defer server.Close()

	client := fetch.NewClient(5*time.Second, "blogwatch-test/1.0")

	body, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "hello", body)
	assert.Equal(t, "blogwatch-test/1.0", gotUserAgent)
}

func TestClientGetUnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := fetch.NewClient(5*time.Second, "blogwatch-test/1.0")

	_, err := client.Get(context.Background(), server.URL)
	require.ErrorIs(t, err, fetch.ErrUnexpectedStatus)
}

func TestClientGetTimeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))
	defer server.Close()

	client := fetch.NewClient(20*time.Millisecond, "blogwatch-test/1.0")

	_, err := client.Get(context.Background(), server.URL)
	require.Error(t, err)
}

func TestClientGetContextCancelled(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := fetch.NewClient(5*time.Second, "blogwatch-test/1.0")

	_, err := client.Get(ctx, server.URL)
	require.Error(t, err)
}

func TestClientDocument(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h1>Parsed Heading</h1></body></html>`))
	}))
	defer server.Close()

	client := fetch.NewClient(5*time.Second, "blogwatch-test/1.0")

	doc, err := client.Document(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Parsed Heading", doc.Find("h1").Text())
}
