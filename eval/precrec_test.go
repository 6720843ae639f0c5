package eval_test

import (
	"strings"
	"testing"

	"github.com/hscells/arff2libsvm/dataset"
	"github.com/hscells/arff2libsvm/eval"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	h = dataset.Ham
	s = dataset.Spam
)

func TestConfusionMatrix(t *testing.T) {
	cm, err := eval.NewConfusionMatrix([]dataset.Label{h, h, s, s}, []dataset.Label{h, s, s, h})
	require.NoError(t, err)
	assert.Equal(t, eval.ConfusionMatrix{HamHam: 1, HamSpam: 1, SpamHam: 1, SpamSpam: 1, Total: 4}, cm)

	p := eval.NewPartialResult(cm)
	assert.InDelta(t, 50.0, p.HamPrecision, 1e-9)
	assert.InDelta(t, 50.0, p.SpamPrecision, 1e-9)
	assert.InDelta(t, 50.0, p.HamRecall, 1e-9)
	assert.InDelta(t, 50.0, p.SpamRecall, 1e-9)
	assert.InDelta(t, 50.0, p.FMeasure, 1e-9)
	assert.InDelta(t, 0.5, eval.Accuracy.Score(cm), 1e-9)
}

func TestSizeMismatch(t *testing.T) {
	_, err := eval.NewConfusionMatrix([]dataset.Label{h, h}, []dataset.Label{h})
	require.Error(t, err)
	assert.True(t, errors.Is(err, eval.ErrSizeMismatch))
}

func TestPrecisionRecall(t *testing.T) {
	// 3 ham: 2 correct, 1 as spam. 5 spam: 4 correct, 1 as ham.
	cm, err := eval.NewConfusionMatrix(
		[]dataset.Label{h, h, h, s, s, s, s, s},
		[]dataset.Label{h, h, s, s, s, s, s, h})
	require.NoError(t, err)

	scores := eval.Evaluate([]eval.Evaluator{
		eval.HamPrecision, eval.SpamPrecision, eval.HamRecall, eval.SpamRecall,
		eval.AvgPrecision, eval.AvgRecall, eval.FMeasure, eval.Accuracy,
	}, cm)

	hp, sp := 2.0/3.0, 4.0/5.0
	hr, sr := 2.0/3.0, 4.0/5.0
	ap, ar := (hp+sp)/2, (hr+sr)/2
	assert.InDelta(t, hp, scores["hamPrecision"], 1e-9)
	assert.InDelta(t, sp, scores["spamPrecision"], 1e-9)
	assert.InDelta(t, hr, scores["hamRecall"], 1e-9)
	assert.InDelta(t, sr, scores["spamRecall"], 1e-9)
	assert.InDelta(t, ap, scores["avgPrecision"], 1e-9)
	assert.InDelta(t, ar, scores["avgRecall"], 1e-9)
	assert.InDelta(t, 2*ap*ar/(ap+ar), scores["fMeasure"], 1e-9)
	assert.InDelta(t, 6.0/8.0, scores["accuracy"], 1e-9)
}

func TestZeroDenominators(t *testing.T) {
	// Everything predicted as spam: nothing is predicted ham.
	cm, err := eval.NewConfusionMatrix([]dataset.Label{h, s}, []dataset.Label{s, s})
	require.NoError(t, err)
	assert.Equal(t, 0.0, eval.HamPrecision.Score(cm))
	assert.Equal(t, 0.0, eval.HamRecall.Score(cm))
	assert.InDelta(t, 0.5, eval.SpamPrecision.Score(cm), 1e-9)

	empty, err := eval.NewConfusionMatrix(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, eval.FMeasure.Score(empty))
	assert.Equal(t, 0.0, eval.Accuracy.Score(empty))
}

func TestUnknownLabels(t *testing.T) {
	cm, err := eval.NewConfusionMatrix([]dataset.Label{h, 3}, []dataset.Label{h, h})
	require.NoError(t, err)
	assert.Equal(t, 1, cm.HamHam)
	assert.Equal(t, 2, cm.Total)
	assert.Equal(t, 1, cm.Correct())
}

func TestPartialResultRoundTrip(t *testing.T) {
	p := eval.PartialResult{HamPrecision: 97.5, SpamPrecision: 90, HamRecall: 89.25, SpamRecall: 100, FMeasure: 94.123456}
	assert.Equal(t, "97.500000\t90.000000\t89.250000\t100.000000\t94.123456", p.String())

	parsed, err := eval.ParsePartialResult(p.String())
	require.NoError(t, err)
	assert.Equal(t, p, parsed)

	parsed, err = eval.ParsePartialResult("97,5\t90,0\t89,25\t100,0\t94,123456")
	require.NoError(t, err)
	assert.Equal(t, p, parsed)

	_, err = eval.ParsePartialResult("1\t2\t3")
	assert.Error(t, err)
	_, err = eval.ParsePartialResult("1\t2\t3\tx\t5")
	assert.Error(t, err)
}

func TestReadLabels(t *testing.T) {
	labels, err := eval.ReadLabels(strings.NewReader("1 1:0.5 2:1\n2 1:0\n1\n2\n"))
	require.NoError(t, err)
	assert.Equal(t, []dataset.Label{h, s, h, s}, labels)

	labels, err = eval.ReadLabels(strings.NewReader("labels 1 2\n1 0.9 0.1\n"))
	require.NoError(t, err)
	assert.Equal(t, []dataset.Label{-1, h}, labels)

	_, err = eval.ReadLabels(strings.NewReader("1\n\n2\n"))
	assert.Error(t, err)
}
