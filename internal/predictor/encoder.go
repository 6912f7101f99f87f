package predictor

import "strings"

// Input is one raw prediction request as read off the form. The two
// string fields are categorical and get one-hot expanded; the rest
// are fed through as numbers. No plausibility checks happen here:
// the model answers whatever it is asked, exactly as trained.
type Input struct {
	AreaType  string
	Location  string
	Size      float64
	TotalSqft float64
	Bath      float64
	Balcony   float64
}

// Column-name prefixes the trainer uses for one-hot indicator
// columns. The known category set per field is exactly the set of
// suffixes present in the artifact's column list.
const (
	prefixAreaType = "area_type_"
	prefixLocation = "location_"
)

type encoder struct {
	columns []string
}

func newEncoder(columns []string) *encoder {
	return &encoder{columns: columns}
}

// Encode reindexes the raw input against the trained column order.
// Indicator columns whose category the input does not match stay at
// the neutral default of 0 — including the whole block when the
// input carries a value the trainer never saw. Values with no
// matching column are dropped; the schema never grows at inference
// time.
func (e *encoder) Encode(in Input) []float64 {
	fvals := make([]float64, len(e.columns))
	for i, col := range e.columns {
		switch {
		case strings.HasPrefix(col, prefixAreaType):
			if col[len(prefixAreaType):] == in.AreaType {
				fvals[i] = 1
			}
		case strings.HasPrefix(col, prefixLocation):
			if col[len(prefixLocation):] == in.Location {
				fvals[i] = 1
			}
		case col == "size":
			fvals[i] = in.Size
		case col == "total_sqft":
			fvals[i] = in.TotalSqft
		case col == "bath":
			fvals[i] = in.Bath
		case col == "balcony":
			fvals[i] = in.Balcony
		}
	}
	return fvals
}
