package arff2libsvm

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// File name suffixes of the stage inputs and outputs.
const (
	ArffSuffix           = ".arff"
	UnscaledSuffix       = ".unscaled"
	ScaledSuffix         = ".scaled"
	TrainSuffix          = ".train"
	TestSuffix           = ".test"
	ModelSuffix          = ".model"
	PredictionSuffix     = ".prediction"
	TrainTimesSuffix     = ".train_times"
	TestTimesSuffix      = ".test_times"
	PartialResultsSuffix = ".partial_results"
)

// PreparePaths derives the full, train and test dataset files of a feature file: data.arff becomes
// data.unscaled, data.train.unscaled and data.test.unscaled in the same directory.
func PreparePaths(arff string) (all, train, test string) {
	stem := strings.TrimSuffix(arff, ArffSuffix)
	return stem + UnscaledSuffix, stem + TrainSuffix + UnscaledSuffix, stem + TestSuffix + UnscaledSuffix
}

func replaceSuffix(path, suffix, replacement string) (string, error) {
	if !strings.HasSuffix(path, suffix) || len(filepath.Base(path)) == len(suffix) {
		return "", errors.Errorf("%s does not end in %s", path, suffix)
	}
	return strings.TrimSuffix(path, suffix) + replacement, nil
}

// ScaledPath maps X.unscaled to X.scaled.
func ScaledPath(data string) (string, error) {
	return replaceSuffix(data, UnscaledSuffix, ScaledSuffix)
}

// TrainPaths maps X.train.scaled to the model X.model and the timing file X.train_times.
func TrainPaths(train string) (model, times string, err error) {
	model, err = replaceSuffix(train, TrainSuffix+ScaledSuffix, ModelSuffix)
	if err != nil {
		return "", "", err
	}
	times, _ = replaceSuffix(train, TrainSuffix+ScaledSuffix, TrainTimesSuffix)
	return model, times, nil
}

// PredictPaths maps X.test.scaled to the prediction X.prediction and the timing file X.test_times.
func PredictPaths(test string) (prediction, times string, err error) {
	prediction, err = replaceSuffix(test, TestSuffix+ScaledSuffix, PredictionSuffix)
	if err != nil {
		return "", "", err
	}
	times, _ = replaceSuffix(test, TestSuffix+ScaledSuffix, TestTimesSuffix)
	return prediction, times, nil
}

// PartialResultsPath maps X.prediction to X.partial_results.
func PartialResultsPath(prediction string) (string, error) {
	return replaceSuffix(prediction, PredictionSuffix, PartialResultsSuffix)
}
