package handlers

import (
	"log/slog"
	"net/http"

	"github.com/nestimate/nestimate/internal/models"
	"github.com/nestimate/nestimate/internal/repo"
	"github.com/nestimate/nestimate/internal/session"
	"github.com/nestimate/nestimate/internal/view"
)

// ==========================
// Admin Handler
// ==========================
type AdminHandler struct {
	Props   *repo.PropertyRepo
	Session *session.Manager
}

// Panel lists every submitted property joined with its owner.
// Admin identity is the literal "admin" username; there is no roles
// table.
func (h *AdminHandler) Panel(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Session.Current(r)
	if !ok || user.Username != models.AdminUsername {
		h.Session.Flash(w, r, "error", "Access denied! Admins only.")
		http.Redirect(w, r, "/home", http.StatusFound)
		return
	}

	props, err := h.Props.ListWithOwners(r.Context())
	if err != nil {
		slog.Error("admin list properties", "error", err)
		view.Render(w, http.StatusOK, "admin.html",
			withError(pageData(h.Session, w, r), "Could not load properties."))
		return
	}

	data := pageData(h.Session, w, r)
	data.Content = map[string]interface{}{
		"Properties": props,
	}
	view.Render(w, http.StatusOK, "admin.html", data)
}
