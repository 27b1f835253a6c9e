package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hawamoni/internal/repositories"
	"hawamoni/internal/services/auth"
	"hawamoni/internal/services/proxy"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const googleOnlyMessage = `This account requires Google authentication. Please use "Continue with Google" to sign in.`

func newAuthApp(backendURL string) *fiber.App {
	client := proxy.NewClient(backendURL, time.Second)
	handler := NewAuthHandler(auth.NewService(client, repositories.NewMemorySessionStore()))

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/register", handler.Register)
	app.Get("/api/auth/session", handler.Session)
	return app
}

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/moni/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"at-1","refresh_token":"rt-1"}`))
	}))
	defer backend.Close()

	app := newAuthApp(backend.URL)

	resp, err := app.Test(loginRequest(`{"email":"ada@campus.edu","password":"secret"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		User         struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "at-1", payload.AccessToken)
	assert.Equal(t, "rt-1", payload.RefreshToken)
	assert.Equal(t, "ada@campus.edu", payload.User.Email)

	var sessionCookie *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "hawamoni_session" {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "session cookie must be set")
	assert.NotEmpty(t, sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)
}

func TestLoginRedirectBecomesGoogleHint(t *testing.T) {
	for _, status := range []int{http.StatusMovedPermanently, http.StatusFound, http.StatusTemporaryRedirect} {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Location", "https://accounts.google.com/o/oauth2/auth")
			w.WriteHeader(status)
		}))

		app := newAuthApp(backend.URL)

		resp, err := app.Test(loginRequest(`{"email":"ada@campus.edu","password":"secret"}`))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "backend status %d", status)

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		backend.Close()

		var payload map[string]string
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, googleOnlyMessage, payload["message"])
	}
}

func TestLoginBackendErrorPassesThrough(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"account locked"}`))
	}))
	defer backend.Close()

	app := newAuthApp(backend.URL)

	resp, err := app.Test(loginRequest(`{"email":"ada@campus.edu","password":"secret"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"detail":"account locked"}`, string(body))
	assert.Empty(t, resp.Cookies(), "no session on failed login")
}

func TestLoginMissingCredentials(t *testing.T) {
	app := newAuthApp("http://127.0.0.1:1")

	resp, err := app.Test(loginRequest(`{"email":"","password":""}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterForwardsVerbatim(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/moni/create", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email":"new@campus.edu","password":"pw","username":"new"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"email already registered"}`))
	}))
	defer backend.Close()

	app := newAuthApp(backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"email":"new@campus.edu","password":"pw","username":"new"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"detail":"email already registered"}`, string(body))
}

func TestSessionWithoutCookie(t *testing.T) {
	app := newAuthApp("http://127.0.0.1:1")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/session", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, false, payload["authenticated"])
}
