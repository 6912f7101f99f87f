package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nestimate/nestimate/internal/property"
	"github.com/nestimate/nestimate/internal/session"
	"github.com/nestimate/nestimate/internal/shared"
	"github.com/nestimate/nestimate/internal/view"
)

// ==========================
// Property Handler
// ==========================
type PropertyHandler struct {
	Props   *property.Service
	Session *session.Manager
}

// ==========================
// Form (GET)
// ==========================
func (h *PropertyHandler) Form(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusOK, "form.html", pageData(h.Session, w, r))
}

// ==========================
// Submit (POST)
// ==========================
func (h *PropertyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := h.Session.Current(r)
	if !ok {
		h.Session.Flash(w, r, "error", "Please log in first!")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}

	_, err := h.Props.Submit(r.Context(), user.ID,
		strings.TrimSpace(r.FormValue("city")),
		strings.TrimSpace(r.FormValue("pincode")),
		strings.TrimSpace(r.FormValue("survey")),
		r.FormValue("price"),
		r.FormValue("area"),
	)
	if err != nil {
		if errors.Is(err, shared.ErrNotPositiveNumber) {
			view.Render(w, http.StatusOK, "form.html",
				withError(pageData(h.Session, w, r), "Price and area must be positive numbers."))
			return
		}
		// Store failure is not fatal: tell the user and let them retry.
		slog.Error("property insert", "user_id", user.ID, "error", err)
		view.Render(w, http.StatusOK, "form.html",
			withError(pageData(h.Session, w, r), "Could not save your submission. Please try again."))
		return
	}

	h.Session.Flash(w, r, "success", "Form submitted successfully!")
	http.Redirect(w, r, "/confirmation", http.StatusFound)
}
