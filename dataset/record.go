// Package dataset prepares labelled email feature data for LIBSVM. It parses comma separated feature files into
// sparse LIBSVM records, balances the ham and spam populations, shuffles them deterministically and splits them into
// train and test partitions.
package dataset

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Label is the class of a record.
type Label int

const (
	// Ham is a legitimate email.
	Ham Label = 1
	// Spam is an unwanted email.
	Spam Label = 2
)

// String returns the lowercase class name.
func (l Label) String() string {
	switch l {
	case Ham:
		return "ham"
	case Spam:
		return "spam"
	}
	return "label(" + strconv.Itoa(int(l)) + ")"
}

// Opposite returns the other class.
func (l Label) Opposite() Label {
	if l == Ham {
		return Spam
	}
	return Ham
}

// Feature is a single sparse index:value pair. Values are kept verbatim.
type Feature struct {
	Index int
	Value string
}

// Record is one line of a LIBSVM data file.
type Record struct {
	Label    Label
	Features []Feature
}

// String serialises the record as `label 1:v1 2:v2 ...`.
func (r Record) String() string {
	var b bytes.Buffer
	b.WriteString(strconv.Itoa(int(r.Label)))
	for _, f := range r.Features {
		b.WriteByte(' ')
		b.WriteString(strconv.Itoa(f.Index))
		b.WriteByte(':')
		b.WriteString(f.Value)
	}
	return b.String()
}

// ParseRecord reads a LIBSVM line back into a record.
func ParseRecord(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, errors.New("empty record")
	}

	label, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, errors.Wrapf(err, "invalid label %q", fields[0])
	}

	r := Record{Label: Label(label)}
	for _, field := range fields[1:] {
		i := strings.IndexByte(field, ':')
		if i < 1 {
			return Record{}, errors.Errorf("invalid feature %q", field)
		}
		idx, err := strconv.Atoi(field[:i])
		if err != nil {
			return Record{}, errors.Wrapf(err, "invalid feature index in %q", field)
		}
		r.Features = append(r.Features, Feature{Index: idx, Value: field[i+1:]})
	}
	return r, nil
}

// Dataset is an ordered sequence of records.
type Dataset []Record

// Count returns the number of records with the label.
func (d Dataset) Count(label Label) int {
	n := 0
	for _, r := range d {
		if r.Label == label {
			n++
		}
	}
	return n
}

// positions returns the indices of records with the label, in order.
func (d Dataset) positions(label Label) []int {
	var p []int
	for i, r := range d {
		if r.Label == label {
			p = append(p, i)
		}
	}
	return p
}
