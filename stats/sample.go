// Package stats aggregates the measurements of repeated experiment runs into means and confidence intervals.
package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Confidence is the two-sided confidence level of ConfidenceInterval.
const Confidence = 0.95

// Sample is an ordered collection of observations of one measure.
type Sample struct {
	values []float64
}

// NewSample creates a sample from existing observations.
func NewSample(values ...float64) *Sample {
	return &Sample{values: append([]float64(nil), values...)}
}

// Add records an observation.
func (s *Sample) Add(v float64) {
	s.values = append(s.values, v)
}

// N is the number of observations.
func (s *Sample) N() int {
	return len(s.values)
}

// Values returns a copy of the observations.
func (s *Sample) Values() []float64 {
	return append([]float64(nil), s.values...)
}

// constant reports whether every observation is identical.
func (s *Sample) constant() bool {
	return len(s.values) > 0 && floats.Min(s.values) == floats.Max(s.values)
}

// Mean is the sample mean, 0 for an empty sample.
func (s *Sample) Mean() float64 {
	if len(s.values) == 0 {
		return 0
	}
	if s.constant() {
		return s.values[0]
	}
	return stat.Mean(s.values, nil)
}

// StdDev is the bias-corrected sample standard deviation, 0 for fewer than two observations.
func (s *Sample) StdDev() float64 {
	if len(s.values) < 2 || s.constant() {
		return 0
	}
	return stat.StdDev(s.values, nil)
}

// ConfidenceInterval is the half width of the two-sided Student-t confidence interval around the mean. It is 0 when
// there are fewer than two observations or they are all identical.
func (s *Sample) ConfidenceInterval() float64 {
	n := float64(len(s.values))
	if n <= 1 || s.constant() {
		return 0
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}.Quantile(1 - (1-Confidence)/2)
	return t * s.StdDev() / math.Sqrt(n)
}
