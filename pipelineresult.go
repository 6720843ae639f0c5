package arff2libsvm

import (
	"time"
)

// PrepareResult describes the files written by Prepare.
type PrepareResult struct {
	Dataset string
	Train   string
	Test    string

	// Record counts: parsed from the feature file, after balancing, and per partition (the test count includes
	// empty records).
	Parsed     int
	Balanced   int
	TrainCount int
	TestCount  int
}

// RunResult is the output of a stage that runs a LIBSVM binary.
type RunResult struct {
	// Output is the file the binary produced.
	Output string
	// Times is the timing file the elapsed time was appended to, if any.
	Times   string
	Elapsed time.Duration
}
