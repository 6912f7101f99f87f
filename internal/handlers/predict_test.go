package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/nestimate/nestimate/internal/predictor"
)

// flatModel ignores its input and always answers the same price.
type flatModel struct {
	price float64
}

func (m flatModel) PredictSingle(_ []float64, _ int) float64 { return m.price }

func newPredictHandler(price float64) *PredictHandler {
	columns := []string{"size", "total_sqft", "bath", "balcony", "location_Whitefield"}
	return &PredictHandler{
		Artifact: predictor.New(flatModel{price: price}, columns),
		Session:  testSession(),
	}
}

func predictForm() url.Values {
	return url.Values{
		"area_type":  {"Super built-up  Area"},
		"location":   {"Whitefield"},
		"size":       {"2"},
		"total_sqft": {"1056"},
		"bath":       {"2"},
		"balcony":    {"1"},
	}
}

func TestPredictHandler_Predict(t *testing.T) {
	h := newPredictHandler(54.125)

	req := formRequest("POST", "/prediction", predictForm())
	rr := httptest.NewRecorder()
	h.Predict(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Predict status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "54.13") {
		t.Error("expected the estimate rounded to two decimals in the page")
	}
}

func TestPredictHandler_Predict_NoLoginRequired(t *testing.T) {
	h := newPredictHandler(42)

	// No session cookie on the request; the estimator is public.
	req := formRequest("POST", "/prediction", predictForm())
	rr := httptest.NewRecorder()
	h.Predict(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Predict status: got %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "42.00") {
		t.Error("expected the estimate in the page")
	}
}

func TestPredictHandler_Predict_NonNumericField(t *testing.T) {
	h := newPredictHandler(42)

	form := predictForm()
	form.Set("total_sqft", "lots")

	req := formRequest("POST", "/prediction", form)
	rr := httptest.NewRecorder()
	h.Predict(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Predict status: got %d, want 200 re-render", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "All numeric fields are required.") {
		t.Error("expected the validation message on the re-rendered page")
	}
	if strings.Contains(rr.Body.String(), "42.00") {
		t.Error("did not expect an estimate for unparseable input")
	}
}
