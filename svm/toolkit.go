package svm

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/hscells/arff2libsvm/config"
)

// Names of the LIBSVM binaries.
const (
	ScaleBinary   = "svm-scale"
	TrainBinary   = "svm-train"
	PredictBinary = "svm-predict"
)

// Toolkit invokes the LIBSVM binaries with fixed flags.
type Toolkit struct {
	Runner Runner
	// Dir contains the binaries.
	Dir          string
	ScaleLower   float64
	TrainCacheMB float64
}

// NewToolkit creates a toolkit located and parameterised by c.
func NewToolkit(runner Runner, c config.Config) Toolkit {
	return Toolkit{
		Runner:       runner,
		Dir:          c.LibSVMDir,
		ScaleLower:   c.ScaleLower,
		TrainCacheMB: c.TrainCacheMB,
	}
}

func (t Toolkit) binary(name string) string {
	return filepath.Join(t.Dir, name)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Scale runs `svm-scale -l <lower> data` with its output written to output.
func (t Toolkit) Scale(ctx context.Context, data, output string) (Result, error) {
	return t.Runner.Run(ctx, Command{
		Path:   t.binary(ScaleBinary),
		Args:   []string{"-l", formatFloat(t.ScaleLower), data},
		Stdout: output,
	})
}

// Train runs `svm-train -m <cache> -q train model`.
func (t Toolkit) Train(ctx context.Context, train, model string) (Result, error) {
	return t.Runner.Run(ctx, Command{
		Path: t.binary(TrainBinary),
		Args: []string{"-m", formatFloat(t.TrainCacheMB), "-q", train, model},
	})
}

// Predict runs `svm-predict test model output`.
func (t Toolkit) Predict(ctx context.Context, test, model, output string) (Result, error) {
	return t.Runner.Run(ctx, Command{
		Path: t.binary(PredictBinary),
		Args: []string{test, model, output},
	})
}
