// Package session wraps the signed cookie that carries the logged-in
// user and pending one-shot flash messages.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "nestimate_session"

	keyUserID   = "user_id"
	keyUsername = "username"
)

// Flash is a one-shot notice rendered on the next page and cleared
// after display.
type Flash struct {
	Level   string // "success" or "error"
	Message string
}

func init() {
	gob.Register(Flash{})
}

// User is the authenticated identity carried by the session cookie.
type User struct {
	ID       int
	Username string
}

// Manager owns the cookie store. The cookie is opaque to the browser
// and signed with the configured secret.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret []byte) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   24 * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// Current returns the logged-in user, if any. A missing, garbled, or
// badly signed cookie just reads as "not logged in".
func (m *Manager) Current(r *http.Request) (User, bool) {
	s, err := m.store.Get(r, cookieName)
	if err != nil {
		return User{}, false
	}
	id, ok := s.Values[keyUserID].(int)
	if !ok {
		return User{}, false
	}
	name, _ := s.Values[keyUsername].(string)
	return User{ID: id, Username: name}, true
}

// SignIn binds the user id and username to the session cookie.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, id int, username string) error {
	s, _ := m.store.Get(r, cookieName)
	s.Values[keyUserID] = id
	s.Values[keyUsername] = username
	return s.Save(r, w)
}

// SignOut clears all session state unconditionally and expires the
// cookie.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) {
	s, _ := m.store.Get(r, cookieName)
	s.Values = make(map[interface{}]interface{})
	s.Options.MaxAge = -1
	_ = s.Save(r, w)
}

// Flash queues a one-shot message for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, level, message string) {
	s, _ := m.store.Get(r, cookieName)
	s.AddFlash(Flash{Level: level, Message: message})
	_ = s.Save(r, w)
}

// Flashes drains and returns the pending messages. Draining rewrites
// the cookie so each message shows exactly once.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s, err := m.store.Get(r, cookieName)
	if err != nil {
		return nil
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(r, w)

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			out = append(out, f)
		}
	}
	return out
}
