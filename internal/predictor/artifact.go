// Package predictor loads the offline-trained price model and turns
// raw form submissions into schema-aligned feature vectors for it.
package predictor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitryikh/leaves"
)

// Model is the fitted regression function inside the artifact.
// Satisfied by *leaves.Ensemble; tests substitute a stub.
type Model interface {
	PredictSingle(fvals []float64, nEstimators int) float64
}

// Artifact pairs the fitted model with the ordered feature columns it
// was trained on. Loaded once at process start and read-only after
// that; there is no reload or hot-swap.
type Artifact struct {
	Model   Model
	Columns []string

	enc *encoder
}

// Load reads the trained XGBoost dump and its column list. The two
// files are produced together by the offline trainer; a missing or
// unreadable file is a startup failure.
func Load(modelPath, columnsPath string) (*Artifact, error) {
	model, err := leaves.XGEnsembleFromFile(modelPath, false)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", modelPath, err)
	}

	columns, err := loadColumns(columnsPath)
	if err != nil {
		return nil, err
	}

	if n := model.NFeatures(); n > 0 && n != len(columns) {
		return nil, fmt.Errorf("model expects %d features but %s lists %d columns", n, columnsPath, len(columns))
	}

	return New(model, columns), nil
}

// New builds an Artifact around an already-loaded model and column
// list.
func New(model Model, columns []string) *Artifact {
	return &Artifact{Model: model, Columns: columns, enc: newEncoder(columns)}
}

func loadColumns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load columns %s: %w", path, err)
	}

	var columns []string
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("parse columns %s: %w", path, err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("columns file %s is empty", path)
	}
	return columns, nil
}
