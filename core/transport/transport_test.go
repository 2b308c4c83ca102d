package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Post(t *testing.T) {
	var (
		gotPath          string
		gotBody          []byte
		gotHeader        http.Header
		gotUser, gotPass string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHeader = r.Header.Clone()
		gotBody, _ = io.ReadAll(r.Body)
		gotUser, gotPass, _ = r.BasicAuth()

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"1","result":42,"error":null}`))
	}))
	defer srv.Close()

	tr := NewHTTP(HTTPConfig{
		BaseURL:  srv.URL,
		Username: "rpcuser",
		Password: "rpcpass",
		Headers:  map[string]string{"X-Static": "always"},
	})

	body := []byte(`{"jsonrpc":"1.0","id":"1","method":"getblockcount","params":[]}`)
	result, err := tr.Post(context.Background(), "/wallet/miner", body, map[string]string{"X-Call": "once"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, `{"id":"1","result":42,"error":null}`, string(result.Body))

	assert.Equal(t, "/wallet/miner", gotPath)
	assert.Equal(t, body, gotBody)
	assert.Equal(t, "application/json", gotHeader.Get("Content-Type"))
	assert.Equal(t, "always", gotHeader.Get("X-Static"))
	assert.Equal(t, "once", gotHeader.Get("X-Call"))
	assert.Equal(t, "rpcuser", gotUser)
	assert.Equal(t, "rpcpass", gotPass)
}

func TestHTTP_Post_EmptyPathDefaultsToRoot(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	// BaseURL 末尾多余的斜杠会被裁掉，不产生双斜杠路径
	tr := NewHTTP(HTTPConfig{BaseURL: srv.URL + "/"})

	_, err := tr.Post(context.Background(), "", []byte(`{}`), nil)
	require.NoError(t, err)
	assert.Equal(t, "/", gotPath)
}

func TestHTTP_Post_NoAuthWithoutCredentials(t *testing.T) {
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, hasAuth = r.BasicAuth()
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	tr := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	_, err := tr.Post(context.Background(), "/", []byte(`{}`), nil)
	require.NoError(t, err)
	assert.False(t, hasAuth)
}

func TestHTTP_Post_NonOKStatusIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("node is overloaded"))
	}))
	defer srv.Close()

	tr := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	result, err := tr.Post(context.Background(), "/", []byte(`{}`), nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, result.StatusCode)
	assert.Equal(t, "node is overloaded", string(result.Body))
}

func TestHTTP_Post_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tr := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	result, err := tr.Post(context.Background(), "/", []byte(`{}`), nil)
	require.Error(t, err)
	assert.Nil(t, result)
}
