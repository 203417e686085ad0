package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guardTestSecret = "0123456789abcdef0123456789abcdef"

// guardFixture wires a guarded route against a scripted upstream and
// counts how many verification calls reach it.
type guardFixture struct {
	router   *gin.Engine
	sessions *session.Manager
	upstream *httptest.Server
	calls    *atomic.Int64
	rendered *atomic.Int64
}

func newGuardFixture(t *testing.T, upstreamStatus int, upstreamBody string) *guardFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var calls, rendered atomic.Int64
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(upstreamStatus)
		w.Write([]byte(upstreamBody))
	}))
	t.Cleanup(upstream.Close)

	sessions, err := session.NewManager(guardTestSecret, time.Hour, false)
	require.NoError(t, err)

	auth := gateway.NewAuthGateway(gateway.NewClient(upstream.URL))

	router := gin.New()
	router.GET("/dashboard", SessionGuard(sessions, auth), func(c *gin.Context) {
		rendered.Add(1)
		profile, verified := Profile(c)
		c.String(http.StatusOK, "hello %s verified=%v token=%s notice=%q", profile.Login, verified, Token(c), Notice(c))
	})

	return &guardFixture{
		router:   router,
		sessions: sessions,
		upstream: upstream,
		calls:    &calls,
		rendered: &rendered,
	}
}

func (f *guardFixture) request(t *testing.T, cookie string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	f.router.ServeHTTP(w, req)
	return w
}

func clearedSessionCookie(w *httptest.ResponseRecorder) bool {
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName && c.Value == "" && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestSessionGuard_AbsentCredentialRedirectsWithoutUpstreamCall(t *testing.T) {
	f := newGuardFixture(t, http.StatusOK, `{"login":"admin"}`)

	w := f.request(t, "")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.EqualValues(t, 0, f.calls.Load(), "no upstream call may be made without a credential")
	assert.EqualValues(t, 0, f.rendered.Load())
}

func TestSessionGuard_TamperedCookieRedirectsWithoutUpstreamCall(t *testing.T) {
	f := newGuardFixture(t, http.StatusOK, `{"login":"admin"}`)

	w := f.request(t, "not-a-valid-jwt")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.True(t, clearedSessionCookie(w))
	assert.EqualValues(t, 0, f.calls.Load())
}

func TestSessionGuard_VerifiedSessionRenders(t *testing.T) {
	f := newGuardFixture(t, http.StatusOK, `{"login":"admin"}`)

	cookie, err := f.sessions.Issue("upstream-token", "admin")
	require.NoError(t, err)

	w := f.request(t, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hello admin")
	assert.Contains(t, w.Body.String(), "verified=true")
	assert.Contains(t, w.Body.String(), "token=upstream-token")
	assert.Contains(t, w.Body.String(), `notice=""`)
	assert.EqualValues(t, 1, f.calls.Load())
}

func TestSessionGuard_UnauthorizedClearsCredentialAndRedirects(t *testing.T) {
	f := newGuardFixture(t, http.StatusUnauthorized, `{"message":"unauthorized"}`)

	cookie, err := f.sessions.Issue("expired-token", "admin")
	require.NoError(t, err)

	w := f.request(t, cookie)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.True(t, clearedSessionCookie(w), "rejected credential must be cleared")
	assert.EqualValues(t, 0, f.rendered.Load())
}

func TestSessionGuard_ServerErrorKeepsCredentialAndRenders(t *testing.T) {
	// A flaky backend must not destroy a valid session.
	f := newGuardFixture(t, http.StatusBadGateway, ``)

	cookie, err := f.sessions.Issue("still-valid", "admin")
	require.NoError(t, err)

	w := f.request(t, cookie)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "verified=false")
	assert.Contains(t, w.Body.String(), "token=still-valid")
	assert.Contains(t, w.Body.String(), "problem connecting to the server",
		"the degraded render must carry the notice")
	assert.False(t, clearedSessionCookie(w), "credential must survive transient errors")
	assert.EqualValues(t, 1, f.rendered.Load())
}
