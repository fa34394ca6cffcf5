package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"combolunch/internal/menu"

	"github.com/stretchr/testify/require"
)

// fakeBucket answers path-style GET and PUT object requests in memory.
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		b.objects[r.URL.Path] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodGet:
		body, ok := b.objects[r.URL.Path]
		if !ok {
			w.Header().Set("Content-Type", "application/xml")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`))
			return
		}
		_, _ = w.Write(body)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestClient(t *testing.T, bucket *fakeBucket) *R2Client {
	t.Helper()

	srv := httptest.NewServer(bucket)
	t.Cleanup(srv.Close)

	client, err := NewR2Client(context.Background(), R2Config{
		Endpoint:   srv.URL,
		AccessKey:  "test",
		SecretKey:  "test",
		Bucket:     "menus",
		CatalogKey: "catalog/dishes.json",
	})
	require.NoError(t, err)
	return client
}

func TestR2Client_FetchSnapshot(t *testing.T) {
	bucket := &fakeBucket{objects: map[string][]byte{
		"/menus/catalog/dishes.json": []byte(`[{"keyword":"kotleta","name":"Котлета","price":200,"category":"main"}]`),
	}}
	client := newTestClient(t, bucket)

	raw, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, raw, 1)
	require.Equal(t, "main", raw[0].Category)
}

func TestR2Client_PutThenFetch(t *testing.T) {
	bucket := &fakeBucket{objects: map[string][]byte{}}
	client := newTestClient(t, bucket)

	want := []menu.RawDish{{Keyword: "mors", Name: "Морс", Price: 80, Category: "drink"}}
	require.NoError(t, client.PutCatalog(context.Background(), want))

	got, err := client.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestR2Client_MissingObject(t *testing.T) {
	client := newTestClient(t, &fakeBucket{objects: map[string][]byte{}})

	_, err := client.Fetch(context.Background())

	var loadErr *menu.CatalogLoadError
	require.True(t, errors.As(err, &loadErr))
	require.Equal(t, "fetch", loadErr.Op)
}

func TestNewR2Client_RequiresBucket(t *testing.T) {
	_, err := NewR2Client(context.Background(), R2Config{Endpoint: "http://localhost"})
	require.Error(t, err)
}
