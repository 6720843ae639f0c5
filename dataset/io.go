package dataset

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Write outputs one LIBSVM line per record, each terminated by a newline.
func Write(w io.Writer, d Dataset) error {
	bw := bufio.NewWriter(w)
	for _, r := range d {
		if _, err := bw.WriteString(r.String()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes the dataset to it.
func WriteFile(path string, d Dataset) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := Write(f, d); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}

// Read parses a LIBSVM data file. Blank lines are skipped.
func Read(reader io.Reader) (Dataset, error) {
	var d Dataset
	scanner := NewScanner(reader)
	for n := 1; scanner.Scan(); n++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		r, err := ParseRecord(scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", n)
		}
		d = append(d, r)
	}
	return d, scanner.Err()
}

// ReadFile parses the LIBSVM data file at path.
func ReadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
