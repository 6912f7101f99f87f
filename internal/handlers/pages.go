package handlers

import (
	"log/slog"
	"net/http"

	"github.com/nestimate/nestimate/internal/repo"
	"github.com/nestimate/nestimate/internal/session"
	"github.com/nestimate/nestimate/internal/view"
)

// ==========================
// Page Handler (landing, home, confirmation, 404)
// ==========================
type PageHandler struct {
	Session *session.Manager
	Props   *repo.PropertyRepo
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusOK, "index.html", pageData(h.Session, w, r))
}

// Home greets the logged-in user and lists their own submissions.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Session.Current(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	data := pageData(h.Session, w, r)

	props, err := h.Props.ListByUser(r.Context(), user.ID)
	if err != nil {
		slog.Error("home list properties", "user_id", user.ID, "error", err)
		view.Render(w, http.StatusOK, "home.html", withError(data, "Could not load your submissions."))
		return
	}

	data.Content = map[string]interface{}{
		"Properties": props,
	}
	view.Render(w, http.StatusOK, "home.html", data)
}

func (h *PageHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusOK, "confirmation.html", pageData(h.Session, w, r))
}

func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusNotFound, "404.html", pageData(h.Session, w, r))
}
