package handlers

import (
	"net/http"

	"github.com/nestimate/nestimate/internal/session"
	"github.com/nestimate/nestimate/internal/view"
)

func badForm(w http.ResponseWriter) {
	http.Error(w, "bad form", http.StatusBadRequest)
}

// pageData assembles the payload every page starts from: the current
// username (if logged in) and any pending flash messages, drained.
func pageData(sess *session.Manager, w http.ResponseWriter, r *http.Request) view.Data {
	d := view.Data{Flashes: sess.Flashes(w, r)}
	if u, ok := sess.Current(r); ok {
		d.Username = u.Username
	}
	return d
}

// withError appends an inline error flash for re-rendering the same
// page after a failed submission.
func withError(d view.Data, message string) view.Data {
	d.Flashes = append(d.Flashes, session.Flash{Level: "error", Message: message})
	return d
}
