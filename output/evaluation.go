package output

import (
	"encoding/json"
	"math"

	"github.com/hscells/arff2libsvm/stats"
)

// jsonFloat encodes NaN and infinities, which rows written by older tools may contain, as null.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func jsonFloats(values []float64) []jsonFloat {
	f := make([]jsonFloat, len(values))
	for i, v := range values {
		f[i] = jsonFloat(v)
	}
	return f
}

type measureSummary struct {
	Mean               jsonFloat   `json:"mean"`
	ConfidenceInterval jsonFloat   `json:"ci"`
	N                  int         `json:"n"`
	Values             []jsonFloat `json:"values"`
}

// JsonFormatter outputs the summary as a single JSON object keyed by measure name, including every observation.
func JsonFormatter(label string, summary stats.Summary) (string, error) {
	m := struct {
		Label    string                    `json:"label"`
		Measures map[string]measureSummary `json:"measures"`
	}{
		Label:    label,
		Measures: make(map[string]measureSummary, len(summary)),
	}
	for name, s := range summary {
		m.Measures[name] = measureSummary{
			Mean:               jsonFloat(s.Mean()),
			ConfidenceInterval: jsonFloat(s.ConfidenceInterval()),
			N:                  s.N(),
			Values:             jsonFloats(s.Values()),
		}
	}

	v, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Formatters maps format names accepted on the command line to formatters.
var Formatters = map[string]Formatter{
	"tab":  TabFormatter,
	"json": JsonFormatter,
}
