package eval

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hscells/arff2libsvm/dataset"
	"github.com/pkg/errors"
)

// PartialMeasures are the measures written to a partial results row, in column order.
var PartialMeasures = []Evaluator{HamPrecision, SpamPrecision, HamRecall, SpamRecall, FMeasure}

// PartialResult is the outcome of a single experiment run, in percentages.
type PartialResult struct {
	HamPrecision  float64
	SpamPrecision float64
	HamRecall     float64
	SpamRecall    float64
	FMeasure      float64
}

// NewPartialResult scores the confusion matrix with PartialMeasures, scaled to percentages.
func NewPartialResult(cm ConfusionMatrix) PartialResult {
	scores := Evaluate(PartialMeasures, cm)
	return PartialResult{
		HamPrecision:  100.0 * scores[HamPrecision.Name()],
		SpamPrecision: 100.0 * scores[SpamPrecision.Name()],
		HamRecall:     100.0 * scores[HamRecall.Name()],
		SpamRecall:    100.0 * scores[SpamRecall.Name()],
		FMeasure:      100.0 * scores[FMeasure.Name()],
	}
}

// Values returns the columns of the row in PartialMeasures order.
func (p PartialResult) Values() []float64 {
	return []float64{p.HamPrecision, p.SpamPrecision, p.HamRecall, p.SpamRecall, p.FMeasure}
}

// String formats the row as tab separated values, without a trailing newline.
func (p PartialResult) String() string {
	return fmt.Sprintf("%f\t%f\t%f\t%f\t%f", p.HamPrecision, p.SpamPrecision, p.HamRecall, p.SpamRecall, p.FMeasure)
}

// ParsePartialResult reads a row written by String. A decimal comma is accepted in place of the decimal point.
func ParsePartialResult(line string) (PartialResult, error) {
	parts := strings.Split(line, "\t")
	if len(parts) < len(PartialMeasures) {
		return PartialResult{}, errors.Errorf("partial result has %d columns, want %d", len(parts), len(PartialMeasures))
	}

	v := make([]float64, len(PartialMeasures))
	for i := range v {
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.Replace(parts[i], ",", ".", 1)), 64)
		if err != nil {
			return PartialResult{}, errors.Wrapf(err, "column %s", PartialMeasures[i].Name())
		}
		v[i] = f
	}
	return PartialResult{v[0], v[1], v[2], v[3], v[4]}, nil
}

// ReadLabels reads the label digit at the start of every line of a LIBSVM data or prediction file. Characters that
// are not digits read as label -1.
func ReadLabels(reader io.Reader) ([]dataset.Label, error) {
	var labels []dataset.Label
	scanner := dataset.NewScanner(reader)
	for n := 1; scanner.Scan(); n++ {
		line := scanner.Bytes()
		if len(line) == 0 {
			return nil, errors.Errorf("line %d is empty", n)
		}
		c := line[0]
		if c < '0' || c > '9' {
			labels = append(labels, -1)
			continue
		}
		labels = append(labels, dataset.Label(c-'0'))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return labels, nil
}
