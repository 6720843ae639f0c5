// Package eval compares the labels of a test set with the labels predicted by LIBSVM and scores the predictions.
package eval

import (
	"github.com/hscells/arff2libsvm/dataset"
	"github.com/pkg/errors"
)

// ErrSizeMismatch is returned when the expected and predicted label sequences differ in length.
var ErrSizeMismatch = errors.New("expected and predicted sizes differ")

// Evaluator is an interface for scoring a confusion matrix.
type Evaluator interface {
	Score(cm ConfusionMatrix) float64
	Name() string
}

// Evaluate scores a confusion matrix using the supplied evaluation measurements.
func Evaluate(evaluators []Evaluator, cm ConfusionMatrix) map[string]float64 {
	scores := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		scores[evaluator.Name()] = evaluator.Score(cm)
	}
	return scores
}

// ConfusionMatrix counts predictions per (expected, predicted) class pair. Labels other than ham and spam are
// counted in Total only.
type ConfusionMatrix struct {
	HamHam   int
	HamSpam  int
	SpamHam  int
	SpamSpam int
	Total    int
}

// NewConfusionMatrix builds the matrix from parallel expected and predicted label sequences.
func NewConfusionMatrix(expected, predicted []dataset.Label) (ConfusionMatrix, error) {
	if len(expected) != len(predicted) {
		return ConfusionMatrix{}, errors.Wrapf(ErrSizeMismatch, "%d expected, %d predicted", len(expected), len(predicted))
	}

	cm := ConfusionMatrix{Total: len(expected)}
	for i := range expected {
		switch {
		case expected[i] == dataset.Ham && predicted[i] == dataset.Ham:
			cm.HamHam++
		case expected[i] == dataset.Ham && predicted[i] == dataset.Spam:
			cm.HamSpam++
		case expected[i] == dataset.Spam && predicted[i] == dataset.Ham:
			cm.SpamHam++
		case expected[i] == dataset.Spam && predicted[i] == dataset.Spam:
			cm.SpamSpam++
		}
	}
	return cm, nil
}

// Count returns the number of records of class expected that were predicted as predicted.
func (cm ConfusionMatrix) Count(expected, predicted dataset.Label) int {
	switch {
	case expected == dataset.Ham && predicted == dataset.Ham:
		return cm.HamHam
	case expected == dataset.Ham && predicted == dataset.Spam:
		return cm.HamSpam
	case expected == dataset.Spam && predicted == dataset.Ham:
		return cm.SpamHam
	case expected == dataset.Spam && predicted == dataset.Spam:
		return cm.SpamSpam
	}
	return 0
}

// Correct is the number of records on the diagonal.
func (cm ConfusionMatrix) Correct() int {
	return cm.HamHam + cm.SpamSpam
}
