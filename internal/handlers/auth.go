package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nestimate/nestimate/internal/auth"
	"github.com/nestimate/nestimate/internal/metrics"
	"github.com/nestimate/nestimate/internal/session"
	"github.com/nestimate/nestimate/internal/shared"
	"github.com/nestimate/nestimate/internal/view"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Auth    *auth.Service
	Session *session.Manager
}

// ==========================
// Register (GET form, POST submit)
// ==========================
func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusOK, "register.html", pageData(h.Session, w, r))
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.Auth.Register(r.Context(), username, password)
	if err != nil {
		switch {
		case shared.IsValidation(err):
			h.Session.Flash(w, r, "error", "Username and password (min 8 characters) are required!")
		case errors.Is(err, shared.ErrUsernameTaken):
			h.Session.Flash(w, r, "error", "Username already exists! Please choose another one.")
		default:
			slog.Error("register", "username", username, "error", err)
			h.Session.Flash(w, r, "error", "Something went wrong. Please try again.")
		}
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username)
	h.Session.Flash(w, r, "success", "Registration successful! You can now log in.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

// ==========================
// Login (GET form, POST submit)
// ==========================
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := pageData(h.Session, w, r)
	if r.URL.Query().Get("logout") != "" {
		data.Flashes = append(data.Flashes, session.Flash{Level: "success", Message: "Logged out successfully!"})
	}
	view.Render(w, http.StatusOK, "login.html", data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.Auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidCredentials) {
			metrics.IncLoginFailures()
			view.Render(w, http.StatusOK, "login.html",
				withError(view.Data{}, "Invalid username or password. Try again."))
			return
		}
		slog.Error("login", "username", username, "error", err)
		view.Render(w, http.StatusOK, "login.html",
			withError(view.Data{}, "Something went wrong. Please try again."))
		return
	}

	if err := h.Session.SignIn(w, r, user.ID, user.Username); err != nil {
		slog.Error("sign in", "user_id", user.ID, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/home", http.StatusFound)
}

// ==========================
// Logout
// ==========================
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Session.SignOut(w, r)
	http.Redirect(w, r, "/login?logout=1", http.StatusFound)
}
