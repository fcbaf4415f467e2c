package naming

import (
	"errors"
	"io"
)

// MaxDatasetSize caps how much of a dataset file is read. The largest public
// colour name lists are a few megabytes.
const MaxDatasetSize int64 = 32 << 20

// ErrDatasetTooLarge is returned when a dataset exceeds MaxDatasetSize.
var ErrDatasetTooLarge = errors.New("colour name dataset too large")

// limitedReader fails once more than remaining bytes have been requested,
// rather than silently truncating like io.LimitReader.
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func newLimitedReader(r io.Reader, maxBytes int64) *limitedReader {
	return &limitedReader{r: r, remaining: maxBytes}
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining <= 0 {
		return 0, ErrDatasetTooLarge
	}
	if int64(len(p)) > l.remaining {
		p = p[:l.remaining]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	return n, err
}
