package eval

import (
	"fmt"

	"github.com/hscells/arff2libsvm/dataset"
)

type precisionEvaluator struct{ label dataset.Label }
type recallEvaluator struct{ label dataset.Label }
type avgPrecision struct{}
type avgRecall struct{}
type fMeasure struct{}
type accuracy struct{}

var (
	// HamPrecision is the fraction of records predicted as ham that are ham.
	HamPrecision = precisionEvaluator{label: dataset.Ham}
	// SpamPrecision is the fraction of records predicted as spam that are spam.
	SpamPrecision = precisionEvaluator{label: dataset.Spam}
	// HamRecall is the fraction of ham records predicted as ham.
	HamRecall = recallEvaluator{label: dataset.Ham}
	// SpamRecall is the fraction of spam records predicted as spam.
	SpamRecall = recallEvaluator{label: dataset.Spam}
	// AvgPrecision is the macro-averaged precision over both classes.
	AvgPrecision = avgPrecision{}
	// AvgRecall is the macro-averaged recall over both classes.
	AvgRecall = avgRecall{}
	// FMeasure is the harmonic mean of AvgPrecision and AvgRecall.
	FMeasure = fMeasure{}
	// Accuracy is the fraction of all records predicted correctly.
	Accuracy = accuracy{}
)

func (e precisionEvaluator) Score(cm ConfusionMatrix) float64 {
	tp := cm.Count(e.label, e.label)
	predicted := tp + cm.Count(e.label.Opposite(), e.label)
	if predicted == 0 {
		return 0.0
	}
	return float64(tp) / float64(predicted)
}

func (e precisionEvaluator) Name() string {
	return fmt.Sprintf("%sPrecision", e.label)
}

func (e recallEvaluator) Score(cm ConfusionMatrix) float64 {
	tp := cm.Count(e.label, e.label)
	actual := tp + cm.Count(e.label, e.label.Opposite())
	if actual == 0 {
		return 0.0
	}
	return float64(tp) / float64(actual)
}

func (e recallEvaluator) Name() string {
	return fmt.Sprintf("%sRecall", e.label)
}

func (avgPrecision) Score(cm ConfusionMatrix) float64 {
	return (HamPrecision.Score(cm) + SpamPrecision.Score(cm)) / 2
}

func (avgPrecision) Name() string {
	return "avgPrecision"
}

func (avgRecall) Score(cm ConfusionMatrix) float64 {
	return (HamRecall.Score(cm) + SpamRecall.Score(cm)) / 2
}

func (avgRecall) Name() string {
	return "avgRecall"
}

func (fMeasure) Score(cm ConfusionMatrix) float64 {
	precision := AvgPrecision.Score(cm)
	recall := AvgRecall.Score(cm)
	if precision == 0 || recall == 0 {
		return 0
	}
	return 2.0 / ((1.0 / recall) + (1.0 / precision))
}

func (fMeasure) Name() string {
	return "fMeasure"
}

func (accuracy) Score(cm ConfusionMatrix) float64 {
	if cm.Total == 0 {
		return 0
	}
	return float64(cm.Correct()) / float64(cm.Total)
}

func (accuracy) Name() string {
	return "accuracy"
}
