package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/nestimate/nestimate/internal/metrics"
	"github.com/nestimate/nestimate/internal/predictor"
	"github.com/nestimate/nestimate/internal/session"
	"github.com/nestimate/nestimate/internal/view"
)

// ==========================
// Predict Handler (no login required)
// ==========================
type PredictHandler struct {
	Artifact *predictor.Artifact
	Session  *session.Manager
}

// ==========================
// Form (GET)
// ==========================
func (h *PredictHandler) Form(w http.ResponseWriter, r *http.Request) {
	view.Render(w, http.StatusOK, "prediction.html", pageData(h.Session, w, r))
}

// ==========================
// Predict (POST)
// ==========================
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badForm(w)
		return
	}

	in := predictor.Input{
		AreaType: strings.TrimSpace(r.FormValue("area_type")),
		Location: strings.TrimSpace(r.FormValue("location")),
	}

	// The numeric fields must parse; beyond that there are no
	// plausibility checks. A negative square footage gets an answer.
	var parseErr error
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"size", &in.Size},
		{"total_sqft", &in.TotalSqft},
		{"bath", &in.Bath},
		{"balcony", &in.Balcony},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue(f.name)), 64)
		if err != nil {
			parseErr = fmt.Errorf("field %s: %w", f.name, err)
			break
		}
		*f.dst = v
	}
	if parseErr != nil {
		view.Render(w, http.StatusOK, "prediction.html",
			withError(pageData(h.Session, w, r), "All numeric fields are required."))
		return
	}

	estimate := h.Artifact.Predict(in)
	metrics.IncPredictions()

	data := pageData(h.Session, w, r)
	data.Content = map[string]interface{}{
		"Estimate": fmt.Sprintf("%.2f", estimate),
	}
	view.Render(w, http.StatusOK, "prediction.html", data)
}
