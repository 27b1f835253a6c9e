package proxy

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "hawamoni/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForward(t *testing.T) {
	var got struct {
		method string
		path   string
		query  string
		body   string
		auth   string
	}
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.body = string(body)
		got.auth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"grp-1"}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, time.Second)

	res, err := client.Forward(context.Background(),
		http.MethodPost, "moni/groups", "limit=5", []byte(`{"name":"Family"}`), "Bearer tok")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/moni/groups", got.path)
	assert.Equal(t, "limit=5", got.query)
	assert.Equal(t, `{"name":"Family"}`, got.body)
	assert.Equal(t, "Bearer tok", got.auth)

	assert.Equal(t, http.StatusCreated, res.Status)
	assert.JSONEq(t, `{"id":"grp-1"}`, string(res.Body))
	assert.Equal(t, "application/json", res.ContentType)
	assert.True(t, res.OK())
}

func TestForwardCopiesErrorBodies(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"email taken"}`))
	}))
	defer backend.Close()

	client := NewClient(backend.URL, time.Second)
	res, err := client.Register(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
	assert.JSONEq(t, `{"message":"email taken"}`, string(res.Body))
	assert.False(t, res.OK())
}

func TestLoginRedirectNeverFollowed(t *testing.T) {
	followed := false
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth" {
			followed = true
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Redirect(w, r, "/oauth", http.StatusFound)
	}))
	defer backend.Close()

	client := NewClient(backend.URL, time.Second)
	_, err := client.Login(context.Background(), []byte(`{"email":"a@b.c","password":"x"}`))

	assert.ErrorIs(t, err, apperrors.ErrLoginRedirected)
	assert.False(t, followed, "redirect must not be followed")
}

func TestLoginRedirectStatuses(t *testing.T) {
	for _, status := range []int{300, 301, 302, 307, 308, 399} {
		status := status
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", "/elsewhere")
			w.WriteHeader(status)
		}))
		client := NewClient(backend.URL, time.Second)
		_, err := client.Login(context.Background(), nil)
		assert.ErrorIs(t, err, apperrors.ErrLoginRedirected, "status %d", status)
		backend.Close()
	}
}

func TestForwardBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close() // connection refused from here on

	client := NewClient(backend.URL, time.Second)
	_, err := client.Forward(context.Background(), http.MethodGet, "moni/groups", "", nil, "")

	var derr *apperrors.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, apperrors.ErrBackendUnreachable.Code, derr.Code)
}

func TestForwardTimeout(t *testing.T) {
	blocked := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-blocked
	}))
	defer func() {
		close(blocked)
		backend.Close()
	}()

	client := NewClient(backend.URL, 50*time.Millisecond)
	_, err := client.Forward(context.Background(), http.MethodGet, "moni/slow", "", nil, "")

	var derr *apperrors.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, apperrors.ErrBackendUnreachable.Code, derr.Code)
}
