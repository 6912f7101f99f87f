package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nestimate/nestimate/internal/session"
)

func testSession() *session.Manager {
	return session.NewManager([]byte("test-secret"))
}

// formRequest builds a POST with an urlencoded body, the way the
// browser submits the pages.
func formRequest(method, target string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// attachSession signs the user in against a throwaway recorder and
// carries the resulting cookie onto req.
func attachSession(t *testing.T, sess *session.Manager, req *http.Request, id int, username string) {
	t.Helper()
	rr := httptest.NewRecorder()
	seed := httptest.NewRequest("GET", "/", nil)
	if err := sess.SignIn(rr, seed, id, username); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
