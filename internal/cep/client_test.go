package cep

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestLookupSuccess(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cep":"60000-000","logradouro":"Rua das Flores","bairro":"Centro","localidade":"Fortaleza","uf":"CE"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, discardLogger())
	addr, found := client.Lookup(context.Background(), "60000-000")

	require.True(t, found)
	assert.Equal(t, "/ws/60000000/json/", gotPath)
	assert.Equal(t, "Rua das Flores, Centro, Fortaleza/CE", addr.String())
}

func TestLookupErroResponse(t *testing.T) {
	cases := []string{`{"erro": true}`, `{"erro": "true"}`}
	for _, body := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		client := NewClient(srv.URL, discardLogger())
		_, found := client.Lookup(context.Background(), "99999999")
		srv.Close()
		assert.False(t, found, "body %s", body)
	}
}

func TestLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, discardLogger())
	_, found := client.Lookup(context.Background(), "60000000")
	assert.False(t, found)
}

func TestLookupNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, discardLogger())
	_, found := client.Lookup(context.Background(), "60000000")
	assert.False(t, found)
}

func TestLookupRejectsShortCEP(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(srv.URL, discardLogger())
	_, found := client.Lookup(context.Background(), "60000-00")

	assert.False(t, found)
	assert.False(t, called, "short cep must not hit the network")
}

func TestLookupStripsMask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ws/60000000/json/", r.URL.Path)
		_, _ = w.Write([]byte(`{"logradouro":"Rua A","bairro":"B","localidade":"C","uf":"CE"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, discardLogger())
	_, found := client.Lookup(context.Background(), "60.000-000")
	assert.True(t, found)
}
