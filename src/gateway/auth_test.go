package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/artjalyuzi/admin-panel/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		// Login carries no credential yet
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "admin", creds.Login)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"upstream-token"}`))
	}))
	defer srv.Close()

	gw := NewAuthGateway(NewClient(srv.URL))
	token, err := gw.Login(context.Background(), models.Credentials{Login: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "upstream-token", token)
}

func TestLogin_200WithoutTokenIsFailure(t *testing.T) {
	// Some backend misconfigurations answer 200 with no token.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	gw := NewAuthGateway(NewClient(srv.URL))
	token, err := gw.Login(context.Background(), models.Credentials{Login: "", Password: ""})
	require.Error(t, err)
	assert.Empty(t, token)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "No token received from server", authErr.Message)
}

func TestLogin_RejectedCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid login or password"}`))
	}))
	defer srv.Close()

	gw := NewAuthGateway(NewClient(srv.URL))
	_, err := gw.Login(context.Background(), models.Credentials{Login: "admin", Password: "wrong"})
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid login or password", authErr.Message)
}

func TestGetMe_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login":"admin"}`))
	}))
	defer srv.Close()

	gw := NewAuthGateway(NewClient(srv.URL))
	profile, err := gw.GetMe(context.Background(), "tok-123")
	require.NoError(t, err)
	assert.Equal(t, "admin", profile.Login)
}

func TestGetMe_UnauthorizedIsAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := NewAuthGateway(NewClient(srv.URL))
	_, err := gw.GetMe(context.Background(), "expired")
	require.Error(t, err)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestGetMe_ServerErrorIsNotAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	gw := NewAuthGateway(NewClient(srv.URL))
	_, err := gw.GetMe(context.Background(), "tok")
	require.Error(t, err)

	var authErr *AuthError
	assert.False(t, errors.As(err, &authErr), "5xx must not classify as AuthError")

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestUpdateMe_SendsPartialUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/auth/me", r.URL.Path)

		var update map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		assert.Equal(t, "newlogin", update["login"])
		// Empty password must be omitted entirely
		_, hasPassword := update["password"]
		assert.False(t, hasPassword)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"login":"newlogin"}`))
	}))
	defer srv.Close()

	gw := NewAuthGateway(NewClient(srv.URL))
	profile, err := gw.UpdateMe(context.Background(), "tok", models.ProfileUpdate{Login: "newlogin"})
	require.NoError(t, err)
	assert.Equal(t, "newlogin", profile.Login)
}
