package stats

import (
	"io"
	"strconv"
	"strings"

	"github.com/hscells/arff2libsvm/dataset"
	"github.com/hscells/arff2libsvm/eval"
	"github.com/pkg/errors"
)

// Names of the aggregated measures.
const (
	HamPrecision  = "hamPrecision"
	SpamPrecision = "spamPrecision"
	HamRecall     = "hamRecall"
	SpamRecall    = "spamRecall"
	FMeasure      = "fMeasure"
	TrainTime     = "trainTime"
	TestTime      = "testTime"
)

// Measures lists the aggregated measures in output order.
var Measures = []string{HamPrecision, SpamPrecision, HamRecall, SpamRecall, FMeasure, TrainTime, TestTime}

// Summary maps each measure name to its sample.
type Summary map[string]*Sample

// NewSummary creates an empty sample for every measure.
func NewSummary() Summary {
	s := make(Summary, len(Measures))
	for _, m := range Measures {
		s[m] = &Sample{}
	}
	return s
}

// AddPartialResult records one evaluation row. The row's columns are the leading entries of Measures.
func (s Summary) AddPartialResult(p eval.PartialResult) {
	for i, v := range p.Values() {
		s[Measures[i]].Add(v)
	}
}

// Aggregate reads the partial results rows and the train and test timing files (one millisecond value per line)
// of a series of runs.
func Aggregate(partialResults, trainTimes, testTimes io.Reader) (Summary, error) {
	s := NewSummary()

	err := eachLine(partialResults, func(line string) error {
		p, err := eval.ParsePartialResult(line)
		if err != nil {
			return err
		}
		s.AddPartialResult(p)
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "reading partial results")
	}

	if err := readTimes(trainTimes, s[TrainTime]); err != nil {
		return nil, errors.Wrap(err, "reading train times")
	}
	if err := readTimes(testTimes, s[TestTime]); err != nil {
		return nil, errors.Wrap(err, "reading test times")
	}
	return s, nil
}

func readTimes(reader io.Reader, sample *Sample) error {
	return eachLine(reader, func(line string) error {
		ms, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return err
		}
		sample.Add(float64(ms))
		return nil
	})
}

// eachLine calls fn for every non-blank line, trimmed.
func eachLine(reader io.Reader, fn func(string) error) error {
	scanner := dataset.NewScanner(reader)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return errors.Wrapf(err, "line %d", n)
		}
	}
	return scanner.Err()
}
