package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nestimate/nestimate/internal/repo"
)

func newPageHandler(t *testing.T) (*PageHandler, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	h := &PageHandler{
		Session: testSession(),
		Props:   repo.NewPropertyRepo(db),
	}
	return h, mock, func() { db.Close() }
}

func TestPageHandler_Home_ListsOwnSubmissions(t *testing.T) {
	h, mock, closeDB := newPageHandler(t)
	defer closeDB()

	mock.ExpectQuery(`SELECT id, city, pincode, survey, price, area, user_id`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"id", "city", "pincode", "survey", "price", "area", "user_id"}).
			AddRow(1, "Pune", "411001", "SRV1", 50.0, 1200.0, 7))

	req := httptest.NewRequest("GET", "/home", nil)
	attachSession(t, h.Session, req, 7, "alice")
	rr := httptest.NewRecorder()
	h.Home(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Home status: got %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "alice") {
		t.Error("expected the username in the page")
	}
	if !strings.Contains(body, "Pune") {
		t.Error("expected the user's submission in the page")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPageHandler_Home_Unauthenticated(t *testing.T) {
	h, mock, closeDB := newPageHandler(t)
	defer closeDB()

	req := httptest.NewRequest("GET", "/home", nil)
	rr := httptest.NewRecorder()
	h.Home(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("Home status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login" {
		t.Errorf("redirect: got %q, want /login", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestPageHandler_NotFound(t *testing.T) {
	h, _, closeDB := newPageHandler(t)
	defer closeDB()

	req := httptest.NewRequest("GET", "/nope", nil)
	rr := httptest.NewRecorder()
	h.NotFound(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("NotFound status: got %d, want 404", rr.Code)
	}
}
