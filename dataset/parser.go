package dataset

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	hamMarker  = "HAM"
	spamMarker = "SPAM"
)

// MaxLineSize is the longest line accepted by the readers of feature, data, prediction and result files.
const MaxLineSize = 16 * 1024 * 1024

// NewScanner creates a line scanner accepting lines up to MaxLineSize bytes.
func NewScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), MaxLineSize)
	return scanner
}

// ParseLine converts a comma separated feature line whose last column is the class marker into a record. Every
// column except the last becomes a 1-indexed feature. Lines that end in neither marker report false.
func ParseLine(line string) (Record, bool) {
	var label Label
	switch {
	case strings.HasSuffix(line, hamMarker):
		label = Ham
	case strings.HasSuffix(line, spamMarker):
		label = Spam
	default:
		return Record{}, false
	}

	parts := strings.Split(line, ",")
	r := Record{
		Label:    label,
		Features: make([]Feature, len(parts)-1),
	}
	for i := 0; i < len(parts)-1; i++ {
		r.Features[i] = Feature{Index: i + 1, Value: parts[i]}
	}
	return r, true
}

// Parse reads every labelled line of an ARFF-style feature file. Header and attribute lines are skipped because
// they carry no class marker.
func Parse(reader io.Reader) (Dataset, error) {
	var d Dataset
	scanner := NewScanner(reader)
	for scanner.Scan() {
		if r, ok := ParseLine(scanner.Text()); ok {
			d = append(d, r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading feature lines")
	}
	return d, nil
}
