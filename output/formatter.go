// Package output formats aggregated experiment results.
package output

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/hscells/arff2libsvm/stats"
)

// Formatter renders the summary of a series of runs under a label.
type Formatter func(label string, summary stats.Summary) (string, error)

// FormatPercentage formats a percentage with two decimals.
func FormatPercentage(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatMillis formats the absolute value of a millisecond duration as HH:mm:ss.SSS. Fractional milliseconds are
// truncated.
func FormatMillis(millis float64) string {
	ms := int64(math.Abs(millis))
	hours := ms / 3600000
	ms -= hours * 3600000
	minutes := ms / 60000
	ms -= minutes * 60000
	seconds := ms / 1000
	ms -= seconds * 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, ms)
}

// ShortLabel derives a run label from the location of a partial results file: the directories following the last
// occurrence of anchor, joined by tabs. Without the anchor it is the name of the containing directory.
func ShortLabel(path, anchor string) string {
	dir := filepath.Dir(filepath.Clean(path))
	if len(anchor) > 0 {
		if i := strings.LastIndex(dir, anchor); i >= 0 {
			return strings.Join(strings.Split(dir[i:], string(filepath.Separator)), "\t")
		}
	}
	return filepath.Base(dir)
}

func margin(summary stats.Summary, measure string, format func(float64) string) string {
	s, ok := summary[measure]
	if !ok {
		s = &stats.Sample{}
	}
	return fmt.Sprintf("%s ± %s", format(s.Mean()), format(s.ConfidenceInterval()))
}

// TabFormatter outputs the label followed by `mean ± interval` for every measure, separated by tabs. Percentages
// use two decimals and times use HH:mm:ss.SSS.
func TabFormatter(label string, summary stats.Summary) (string, error) {
	cols := []string{label}
	for _, measure := range stats.Measures {
		format := FormatPercentage
		if measure == stats.TrainTime || measure == stats.TestTime {
			format = FormatMillis
		}
		cols = append(cols, margin(summary, measure, format))
	}
	return strings.Join(cols, "\t"), nil
}
