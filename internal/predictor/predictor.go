package predictor

import "math"

// Predict encodes one raw submission against the artifact's column
// schema and returns the model's point estimate rounded to two
// decimal places. Deterministic for a fixed artifact.
func (a *Artifact) Predict(in Input) float64 {
	fvals := a.enc.Encode(in)
	raw := a.Model.PredictSingle(fvals, 0)
	return math.Round(raw*100) / 100
}
