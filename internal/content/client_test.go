package content

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Article_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/content/articles/a-guide-to-modern-css-layouts.md", r.URL.Path)
		w.Header().Set("Content-Type", "text/markdown")
		_, _ = w.Write([]byte("# Title\n\n  body with trailing spaces  \n"))
	}))
	defer ts.Close()

	c := NewClient(ts.URL+"/", ts.Client())
	body, err := c.Article(context.Background(), "a-guide-to-modern-css-layouts")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\n  body with trailing spaces  \n", body)
}

func TestClient_Article_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "missing", http.StatusNotFound)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client())
	_, err := c.Article(context.Background(), "nope")
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
	assert.Contains(t, err.Error(), "status 404")
}

func TestClient_Article_CanceledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("never read"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(ts.URL, ts.Client())
	_, err := c.Article(ctx, "any")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
