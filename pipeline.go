// Package arff2libsvm prepares ham/spam feature files for LIBSVM, runs the LIBSVM binaries over them and evaluates
// the predictions. Each stage reads the files written by the previous one, so a series of experiment runs can be
// driven by a script invoking the stages one after another.
package arff2libsvm

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/hscells/arff2libsvm/config"
	"github.com/hscells/arff2libsvm/dataset"
	"github.com/hscells/arff2libsvm/eval"
	"github.com/hscells/arff2libsvm/stats"
	"github.com/hscells/arff2libsvm/svm"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Pipeline contains the configuration shared by the stages.
type Pipeline struct {
	Config  config.Config
	Toolkit svm.Toolkit
	// Progress shows a progress bar on stderr while parsing feature files.
	Progress bool
}

// NewPipeline creates a pipeline that runs the LIBSVM binaries with runner.
func NewPipeline(c config.Config, runner svm.Runner) Pipeline {
	return Pipeline{
		Config:  c,
		Toolkit: svm.NewToolkit(runner, c),
	}
}

func (p Pipeline) parse(path string) (dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if p.Progress {
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		bar := pb.Full.Start64(info.Size())
		bar.Set(pb.Bytes, true)
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}
	return dataset.Parse(r)
}

// Prepare converts a feature file into a balanced, shuffled LIBSVM dataset and splits it into train and test sets.
// Empty ham and spam records are appended to the test set only.
func (p Pipeline) Prepare(arff string, emptyHam, emptySpam int, seed int32) (PrepareResult, error) {
	if emptyHam < 0 || emptySpam < 0 {
		return PrepareResult{}, errors.Errorf("empty record counts must not be negative (got %d, %d)", emptyHam, emptySpam)
	}
	log.Info().Str("stage", "prepare").Str("file", arff).Int32("seed", seed).Msg("starting")

	var res PrepareResult
	res.Dataset, res.Train, res.Test = PreparePaths(arff)

	d, err := p.parse(arff)
	if err != nil {
		return PrepareResult{}, errors.Wrapf(err, "parsing %s", arff)
	}
	res.Parsed = len(d)
	log.Debug().Int("ham", d.Count(dataset.Ham)).Int("spam", d.Count(dataset.Spam)).Msg("parsed feature file")

	d, err = dataset.Balance(d, seed)
	if err != nil {
		return PrepareResult{}, err
	}
	res.Balanced = len(d)
	dataset.Shuffle(d, seed)

	if err := dataset.WriteFile(res.Dataset, d); err != nil {
		return PrepareResult{}, err
	}

	train, test, err := dataset.Split(d, p.Config.Split)
	if err != nil {
		return PrepareResult{}, err
	}
	if err := dataset.WriteFile(res.Train, train); err != nil {
		return PrepareResult{}, err
	}
	test = dataset.AddEmpty(test, emptyHam, emptySpam)
	if err := dataset.WriteFile(res.Test, test); err != nil {
		return PrepareResult{}, err
	}
	res.TrainCount, res.TestCount = len(train), len(test)

	log.Info().
		Str("stage", "prepare").
		Int("parsed", res.Parsed).
		Int("balanced", res.Balanced).
		Int("train", res.TrainCount).
		Int("test", res.TestCount).
		Msg("done")
	return res, nil
}

// requireOutput fails unless path exists and is not empty.
func requireOutput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "expected output missing")
	}
	if info.Size() == 0 {
		return errors.Errorf("expected output %s is empty", path)
	}
	return nil
}

// sameRecordCount parses both LIBSVM files and fails unless they hold the same number of records.
func sameRecordCount(input, output string) (int, error) {
	in, err := dataset.ReadFile(input)
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", input)
	}
	out, err := dataset.ReadFile(output)
	if err != nil {
		return 0, errors.Wrapf(err, "reading %s", output)
	}
	if len(in) != len(out) {
		return 0, errors.Errorf("%s has %d records, %s has %d", output, len(out), input, len(in))
	}
	return len(out), nil
}

// Scale runs svm-scale over X.unscaled, writing X.scaled. The scaled file must parse and keep every record.
func (p Pipeline) Scale(ctx context.Context, data string) (RunResult, error) {
	output, err := ScaledPath(data)
	if err != nil {
		return RunResult{}, err
	}
	log.Info().Str("stage", "scale").Str("file", data).Msg("starting")

	res, err := p.Toolkit.Scale(ctx, data, output)
	if err != nil {
		return RunResult{}, err
	}
	if err := requireOutput(output); err != nil {
		return RunResult{}, err
	}
	records, err := sameRecordCount(data, output)
	if err != nil {
		return RunResult{}, err
	}

	log.Info().Str("stage", "scale").Str("output", output).Int("records", records).Dur("elapsed", res.Elapsed).Msg("done")
	return RunResult{Output: output, Elapsed: res.Elapsed}, nil
}

// Train runs svm-train over X.train.scaled, writing the model X.model and appending the elapsed milliseconds to
// X.train_times.
func (p Pipeline) Train(ctx context.Context, train string) (RunResult, error) {
	model, times, err := TrainPaths(train)
	if err != nil {
		return RunResult{}, err
	}
	log.Info().Str("stage", "train").Str("file", train).Msg("starting")

	res, err := p.Toolkit.Train(ctx, train, model)
	if err != nil {
		return RunResult{}, err
	}
	if err := requireOutput(model); err != nil {
		return RunResult{}, err
	}
	if err := AppendTiming(times, res.Elapsed); err != nil {
		return RunResult{}, err
	}

	log.Info().Str("stage", "train").Str("model", model).Dur("elapsed", res.Elapsed).Msg("done")
	return RunResult{Output: model, Times: times, Elapsed: res.Elapsed}, nil
}

// Test runs svm-predict over X.test.scaled, writing the predictions to X.prediction and appending the elapsed
// milliseconds to X.test_times.
func (p Pipeline) Test(ctx context.Context, test, model string) (RunResult, error) {
	prediction, times, err := PredictPaths(test)
	if err != nil {
		return RunResult{}, err
	}
	log.Info().Str("stage", "test").Str("file", test).Str("model", model).Msg("starting")

	res, err := p.Toolkit.Predict(ctx, test, model, prediction)
	if err != nil {
		return RunResult{}, err
	}
	if err := requireOutput(prediction); err != nil {
		return RunResult{}, err
	}
	if err := AppendTiming(times, res.Elapsed); err != nil {
		return RunResult{}, err
	}

	log.Info().Str("stage", "test").Str("prediction", prediction).Dur("elapsed", res.Elapsed).Msg("done")
	return RunResult{Output: prediction, Times: times, Elapsed: res.Elapsed}, nil
}

func readLabels(path string) ([]dataset.Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	labels, err := eval.ReadLabels(f)
	return labels, errors.Wrapf(err, "reading labels from %s", path)
}

// Evaluate compares the labels of a test set with the predicted labels and appends the scores as a row to
// X.partial_results, where X.prediction is the prediction file.
func (p Pipeline) Evaluate(test, prediction string) (eval.PartialResult, error) {
	output, err := PartialResultsPath(prediction)
	if err != nil {
		return eval.PartialResult{}, err
	}

	expected, err := readLabels(test)
	if err != nil {
		return eval.PartialResult{}, err
	}
	predicted, err := readLabels(prediction)
	if err != nil {
		return eval.PartialResult{}, err
	}

	cm, err := eval.NewConfusionMatrix(expected, predicted)
	if err != nil {
		return eval.PartialResult{}, err
	}
	result := eval.NewPartialResult(cm)

	if err := appendToFile(output, result.String()+"\n"); err != nil {
		return eval.PartialResult{}, err
	}

	log.Info().
		Str("stage", "evaluate").
		Int("ham_ham", cm.HamHam).
		Int("ham_spam", cm.HamSpam).
		Int("spam_ham", cm.SpamHam).
		Int("spam_spam", cm.SpamSpam).
		Msgf("Accuracy = %.4f%% (%d/%d)", 100.0*eval.Accuracy.Score(cm), cm.Correct(), cm.Total)
	return result, nil
}

// Aggregate summarises the partial results and timing files of a series of runs.
func (p Pipeline) Aggregate(partialResults, trainTimes, testTimes string) (stats.Summary, error) {
	files := make([]*os.File, 3)
	for i, path := range []string{partialResults, trainTimes, testTimes} {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		files[i] = f
	}

	summary, err := stats.Aggregate(files[0], files[1], files[2])
	if err != nil {
		return nil, err
	}
	log.Debug().Str("stage", "aggregate").Int("runs", summary[stats.FMeasure].N()).Msg("done")
	return summary, nil
}

// AppendTiming appends the duration in whole milliseconds as a line to path.
func AppendTiming(path string, elapsed time.Duration) error {
	return appendToFile(path, fmt.Sprintf("%d\n", elapsed.Milliseconds()))
}

func appendToFile(path, value string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	if _, err := f.WriteString(value); err != nil {
		f.Close()
		return errors.Wrapf(err, "appending to %s", path)
	}
	return f.Close()
}
