package stats_test

import (
	"strings"
	"testing"

	"github.com/hscells/arff2libsvm/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceInterval(t *testing.T) {
	s := stats.NewSample(1, 2, 3)
	assert.InDelta(t, 2.0, s.Mean(), 1e-12)
	assert.InDelta(t, 1.0, s.StdDev(), 1e-12)
	assert.InDelta(t, 2.484137711750331, s.ConfidenceInterval(), 1e-6)

	s = stats.NewSample(90, 95, 100, 85)
	assert.InDelta(t, 92.5, s.Mean(), 1e-12)
	assert.InDelta(t, 10.271301283804394, s.ConfidenceInterval(), 1e-6)
}

func TestConfidenceIntervalDegenerate(t *testing.T) {
	var empty stats.Sample
	assert.Equal(t, 0, empty.N())
	assert.Equal(t, 0.0, empty.Mean())
	assert.Equal(t, 0.0, empty.ConfidenceInterval())

	single := stats.NewSample(42.5)
	assert.Equal(t, 42.5, single.Mean())
	assert.Equal(t, 0.0, single.ConfidenceInterval())

	for _, n := range []int{2, 3, 10, 100} {
		s := &stats.Sample{}
		for i := 0; i < n; i++ {
			s.Add(0.1)
		}
		assert.Equal(t, 0.0, s.ConfidenceInterval(), "n=%d", n)
		assert.Equal(t, 0.1, s.Mean(), "n=%d", n)
	}
}

func TestAggregate(t *testing.T) {
	partials := "90.000000\t80.000000\t70.000000\t60.000000\t50.000000\n" +
		"92,000000\t82,000000\t72,000000\t62,000000\t52,000000\n"
	summary, err := stats.Aggregate(strings.NewReader(partials), strings.NewReader("100\n200\n300\n"), strings.NewReader("7\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, summary[stats.HamPrecision].N())
	assert.InDelta(t, 91.0, summary[stats.HamPrecision].Mean(), 1e-9)
	assert.InDelta(t, 81.0, summary[stats.SpamPrecision].Mean(), 1e-9)
	assert.InDelta(t, 71.0, summary[stats.HamRecall].Mean(), 1e-9)
	assert.InDelta(t, 61.0, summary[stats.SpamRecall].Mean(), 1e-9)
	assert.InDelta(t, 51.0, summary[stats.FMeasure].Mean(), 1e-9)
	assert.InDelta(t, 200.0, summary[stats.TrainTime].Mean(), 1e-9)
	assert.Equal(t, 3, summary[stats.TrainTime].N())
	assert.Equal(t, 7.0, summary[stats.TestTime].Mean())
	assert.Equal(t, 0.0, summary[stats.TestTime].ConfidenceInterval())
}

func TestAggregateLongLine(t *testing.T) {
	partials := "90.0\t80.0\t70.0\t60.0\t50.0\t" + strings.Repeat("x", 100*1024) + "\n"
	summary, err := stats.Aggregate(strings.NewReader(partials), strings.NewReader(""), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, []float64{90}, summary[stats.HamPrecision].Values())
	assert.Equal(t, []float64{50}, summary[stats.FMeasure].Values())
	assert.Equal(t, 0, summary[stats.TrainTime].N())
}

func TestAggregateErrors(t *testing.T) {
	_, err := stats.Aggregate(strings.NewReader("1\t2\n"), strings.NewReader(""), strings.NewReader(""))
	assert.Error(t, err)

	_, err = stats.Aggregate(strings.NewReader(""), strings.NewReader("1.5\n"), strings.NewReader(""))
	assert.Error(t, err)

	_, err = stats.Aggregate(strings.NewReader(""), strings.NewReader(""), strings.NewReader("abc\n"))
	assert.Error(t, err)
}
