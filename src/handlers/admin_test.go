package handlers

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminProfilePage_PrefillsLogin(t *testing.T) {
	upstream := newFakeUpstream(t)
	router, sessions := newTestRouter(t, upstream)
	cookie, err := sessions.Issue("tok", "admin")
	require.NoError(t, err)

	w := get(router, "/dashboard/admin", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="admin"`)
}

func TestAdminProfileUpdate_PasswordMismatchRejectedLocally(t *testing.T) {
	upstream := newFakeUpstream(t)
	router, sessions := newTestRouter(t, upstream)
	cookie, err := sessions.Issue("tok", "admin")
	require.NoError(t, err)

	w := postForm(router, "/dashboard/admin", cookie, url.Values{
		"login":            {"admin"},
		"password":         {"newpass"},
		"confirm_password": {"other"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")
	assert.EqualValues(t, 0, upstream.ProfilePatch.Load(), "mismatch never reaches the network")
}

func TestAdminProfileUpdate_Success(t *testing.T) {
	upstream := newFakeUpstream(t)
	router, sessions := newTestRouter(t, upstream)
	cookie, err := sessions.Issue("tok", "admin")
	require.NoError(t, err)

	w := postForm(router, "/dashboard/admin", cookie, url.Values{
		"login":            {"admin"},
		"password":         {"newpass"},
		"confirm_password": {"newpass"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/admin", w.Header().Get("Location"))
	assert.EqualValues(t, 1, upstream.ProfilePatch.Load())
}

func TestDashboardHome_SurvivesContactFetchFailure(t *testing.T) {
	// /contacts is not scripted in the fake upstream, so the gateway
	// fails; the page must still render with an inline error.
	upstream := newFakeUpstream(t)
	router, sessions := newTestRouter(t, upstream)
	cookie, err := sessions.Issue("tok", "admin")
	require.NoError(t, err)

	w := get(router, "/dashboard", cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch contacts")
}
