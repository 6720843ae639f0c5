package dataset

import (
	"github.com/pkg/errors"
)

// ErrEmptyClass is returned when the minority class has no records to resample from.
var ErrEmptyClass = errors.New("minority class has no records")

// Balance equalises the ham and spam populations by appending records drawn uniformly with replacement from the
// minority class. Draws only consider the records present before balancing, so for a ham-first file they come from
// the minority class's positional range in the input. The same seed and input always append the same records.
func Balance(d Dataset, seed int32) (Dataset, error) {
	hamCount := d.Count(Ham)
	spamCount := d.Count(Spam)
	if hamCount == spamCount {
		return d, nil
	}

	minority, difference := Ham, spamCount-hamCount
	if spamCount < hamCount {
		minority, difference = Spam, hamCount-spamCount
	}

	pool := d.positions(minority)
	if len(pool) == 0 {
		return nil, errors.Wrapf(ErrEmptyClass, "cannot balance %d %s records against 0 %s", difference, minority.Opposite(), minority)
	}

	random := NewJavaRandom(seed)
	for i := 0; i < difference; i++ {
		d = append(d, d[pool[random.Intn(int32(len(pool)))]])
	}
	return d, nil
}

// Shuffle permutes the dataset in place. Every position i is swapped with a position drawn from the whole dataset,
// not from [i, n), so the resulting permutation is not uniform. Existing experiments depend on this exact order.
func Shuffle(d Dataset, seed int32) {
	random := NewJavaRandom(seed)
	n := int32(len(d))
	for i := int32(0); i < n; i++ {
		j := random.Intn(n)
		d[i], d[j] = d[j], d[i]
	}
}

// Split returns the first floor(fraction*n) records as the training partition and the rest as the test partition.
// Both partitions are copies, so appending to one never affects the other.
func Split(d Dataset, fraction float64) (train, test Dataset, err error) {
	if fraction < 0 || fraction > 1 {
		return nil, nil, errors.Errorf("split fraction %v outside [0, 1]", fraction)
	}
	k := int(fraction * float64(len(d)))
	train = append(Dataset{}, d[:k]...)
	test = append(Dataset{}, d[k:]...)
	return train, test, nil
}

// AddEmpty appends feature-less ham records followed by feature-less spam records.
func AddEmpty(d Dataset, ham, spam int) Dataset {
	for i := 0; i < ham; i++ {
		d = append(d, Record{Label: Ham})
	}
	for i := 0; i < spam; i++ {
		d = append(d, Record{Label: Spam})
	}
	return d
}
