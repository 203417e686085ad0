package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/artjalyuzi/admin-panel/src/gateway"
	"github.com/artjalyuzi/admin-panel/src/middleware"
	"github.com/artjalyuzi/admin-panel/src/session"
	"github.com/artjalyuzi/admin-panel/src/templates"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// fakeUpstream is a scripted backend that serves the auth and service
// endpoints and counts mutating calls.
type fakeUpstream struct {
	srv *httptest.Server

	MeStatus      int
	LoginStatus   int
	LoginBody     string
	ServiceCreate atomic.Int64
	ServiceDelete atomic.Int64
	ProfilePatch  atomic.Int64
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	t.Helper()
	f := &fakeUpstream{
		MeStatus:    http.StatusOK,
		LoginStatus: http.StatusOK,
		LoginBody:   `{"token":"upstream-token"}`,
	}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/auth/login" && r.Method == http.MethodPost:
			w.WriteHeader(f.LoginStatus)
			w.Write([]byte(f.LoginBody))
		case r.URL.Path == "/auth/me" && r.Method == http.MethodGet:
			w.WriteHeader(f.MeStatus)
			w.Write([]byte(`{"login":"admin"}`))
		case r.URL.Path == "/auth/me" && r.Method == http.MethodPatch:
			f.ProfilePatch.Add(1)
			w.Write([]byte(`{"login":"admin"}`))
		case r.URL.Path == "/services" && r.Method == http.MethodGet:
			w.Write([]byte(`[{"_id":"s1","name_uz":"A","name_ru":"B","image":[{"url":"http://x/img.png"}]}]`))
		case r.URL.Path == "/services" && r.Method == http.MethodPost:
			f.ServiceCreate.Add(1)
			w.Write([]byte(`{"_id":"s2","name_uz":"A","name_ru":"B"}`))
		case strings.HasPrefix(r.URL.Path, "/services/") && r.Method == http.MethodGet:
			w.Write([]byte(`{"_id":"s1","name_uz":"A","name_ru":"B","image":[{"url":"http://x/img.png"}]}`))
		case strings.HasPrefix(r.URL.Path, "/services/") && r.Method == http.MethodDelete:
			f.ServiceDelete.Add(1)
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(f.srv.Close)
	return f
}

// newTestRouter wires the handlers under test the same way main does.
func newTestRouter(t *testing.T, upstream *fakeUpstream) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions, err := session.NewManager(testSecret, time.Hour, false)
	require.NoError(t, err)

	client := gateway.NewClient(upstream.srv.URL)
	authGW := gateway.NewAuthGateway(client)
	serviceGW := gateway.NewServiceGateway(client)
	contactGW := gateway.NewContactGateway(client)

	tmpl, err := templates.Load()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	authHandler := NewAuthHandler(authGW, sessions)
	serviceHandler := NewServiceHandler(serviceGW, sessions)
	adminHandler := NewAdminHandler(authGW, sessions)
	dashboardHandler := NewDashboardHandler(contactGW, sessions)

	router.GET("/login", authHandler.HandleLoginPage)
	router.POST("/login", authHandler.HandleLogin)
	router.POST("/logout", authHandler.HandleLogout)

	dashboard := router.Group("/dashboard", middleware.SessionGuard(sessions, authGW))
	dashboard.GET("", dashboardHandler.HandleHome)
	dashboard.GET("/services", serviceHandler.HandleList)
	dashboard.GET("/services/new", serviceHandler.HandleNewForm)
	dashboard.POST("/services/new", serviceHandler.HandleCreate)
	dashboard.GET("/services/:id/edit", serviceHandler.HandleEditForm)
	dashboard.POST("/services/:id/edit", serviceHandler.HandleUpdate)
	dashboard.GET("/services/:id/delete", serviceHandler.HandleDeleteConfirm)
	dashboard.POST("/services/:id/delete", serviceHandler.HandleDelete)
	dashboard.GET("/admin", adminHandler.HandleProfilePage)
	dashboard.POST("/admin", adminHandler.HandleProfileUpdate)

	return router, sessions
}

// get performs an authenticated GET with the given session cookie.
func get(router *gin.Engine, path, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	router.ServeHTTP(w, req)
	return w
}

// postForm performs an authenticated form POST.
func postForm(router *gin.Engine, path, cookie string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}
	router.ServeHTTP(w, req)
	return w
}
