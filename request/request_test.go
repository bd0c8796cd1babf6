package request_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/amonks/lineup/failure"
	"github.com/amonks/lineup/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"name": "Techno"}`)
	}))
	defer srv.Close()

	var out struct{ Name string }
	require.NoError(t, request.FetchJSON(context.Background(), srv.Client(), srv.URL, &out))
	assert.Equal(t, "Techno", out.Name)
}

func TestFetchJSONStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"sys": {"id": "AccessTokenInvalid"}, "message": "The access token you sent could not be found or is invalid."}`)
	}))
	defer srv.Close()

	var out struct{}
	err := request.FetchJSON(context.Background(), srv.Client(), srv.URL+"/x?access_token=secret", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, failure.ErrTransport)
	assert.NotContains(t, err.Error(), "secret")

	var statusErr *request.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
	assert.Equal(t, "The access token you sent could not be found or is invalid.", statusErr.Message)
}

func TestFetchJSONStatusPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	var out struct{}
	err := request.FetchJSON(context.Background(), srv.Client(), srv.URL, &out)

	var statusErr *request.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, "", statusErr.Message)
}

func TestFetchJSONMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"name": `)
	}))
	defer srv.Close()

	var out struct{ Name string }
	err := request.FetchJSON(context.Background(), srv.Client(), srv.URL, &out)
	assert.ErrorIs(t, err, failure.ErrRuntime)
}

func TestFetchJSONUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var out struct{}
	err := request.FetchJSON(context.Background(), http.DefaultClient, url, &out)
	assert.ErrorIs(t, err, failure.ErrTransport)
}

func TestFetchJSONUnreachableRedacted(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var out struct{}
	err := request.FetchJSON(context.Background(), http.DefaultClient, url+"/spaces/x/entries?access_token=secret", &out)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
}
