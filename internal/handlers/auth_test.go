package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/nestimate/nestimate/internal/auth"
	"github.com/nestimate/nestimate/internal/repo"
)

func newAuthHandler(t *testing.T, failDelay time.Duration) (*AuthHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	h := &AuthHandler{
		Auth:    auth.NewService(repo.NewUserRepo(db), failDelay),
		Session: testSession(),
	}
	return h, mock, func() { db.Close() }
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h, mock, closeDB := newAuthHandler(t, 0)
	defer closeDB()

	// No store expectations: a short password never reaches the store.
	req := formRequest("POST", "/register", url.Values{"username": {"alice"}, "password": {"short"}})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("Register status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/register" {
		t.Errorf("redirect: got %q, want /register", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h, mock, closeDB := newAuthHandler(t, 0)
	defer closeDB()

	mock.ExpectQuery(`SELECT id, username, password_hash`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(1, "alice", "hash"))

	req := formRequest("POST", "/register", url.Values{"username": {"alice"}, "password": {"password123"}})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("Register status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/register" {
		t.Errorf("redirect: got %q, want /register", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h, mock, closeDB := newAuthHandler(t, 0)
	defer closeDB()

	mock.ExpectQuery(`SELECT id, username, password_hash`).
		WithArgs("alice").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO users \(username, password_hash\)`).
		WithArgs("alice", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "alice"))

	req := formRequest("POST", "/register", url.Values{"username": {"alice"}, "password": {"password123"}})
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("Register status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect: got %q, want /login", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, mock, closeDB := newAuthHandler(t, 0)
	defer closeDB()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	mock.ExpectQuery(`SELECT id, username, password_hash`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(1, "alice", string(hash)))

	req := formRequest("POST", "/login", url.Values{"username": {"alice"}, "password": {"password123"}})
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusFound {
		t.Fatalf("Login status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/home" {
		t.Errorf("redirect: got %q, want /home", loc)
	}

	// The session cookie must carry the user id and username.
	next := httptest.NewRequest("GET", "/home", nil)
	for _, c := range rr.Result().Cookies() {
		next.AddCookie(c)
	}
	user, ok := h.Session.Current(next)
	if !ok {
		t.Fatal("expected an authenticated session after login")
	}
	if user.ID != 1 || user.Username != "alice" {
		t.Errorf("unexpected session user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	const delay = 40 * time.Millisecond
	h, mock, closeDB := newAuthHandler(t, delay)
	defer closeDB()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	mock.ExpectQuery(`SELECT id, username, password_hash`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).AddRow(1, "alice", string(hash)))

	req := formRequest("POST", "/login", url.Values{"username": {"alice"}, "password": {"wrongpass"}})
	rr := httptest.NewRecorder()
	start := time.Now()
	h.Login(rr, req)
	elapsed := time.Since(start)

	if rr.Code != http.StatusOK {
		t.Errorf("Login status: got %d, want 200 re-render", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid username or password") {
		t.Error("expected the error message on the re-rendered login page")
	}
	if elapsed < delay {
		t.Errorf("expected the fixed failure delay of %v, took %v", delay, elapsed)
	}
	// No session may be established on failure.
	next := httptest.NewRequest("GET", "/home", nil)
	for _, c := range rr.Result().Cookies() {
		next.AddCookie(c)
	}
	if _, ok := h.Session.Current(next); ok {
		t.Error("expected no session after a failed login")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h, _, closeDB := newAuthHandler(t, 0)
	defer closeDB()

	req := httptest.NewRequest("GET", "/logout", nil)
	attachSession(t, h.Session, req, 1, "alice")
	rr := httptest.NewRecorder()
	h.Logout(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("Logout status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login?logout=1" {
		t.Errorf("redirect: got %q, want /login?logout=1", loc)
	}

	next := httptest.NewRequest("GET", "/home", nil)
	for _, c := range rr.Result().Cookies() {
		next.AddCookie(c)
	}
	if _, ok := h.Session.Current(next); ok {
		t.Error("expected session to be cleared after logout")
	}
}
