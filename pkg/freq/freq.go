package freq

import (
	"fmt"
	"io"
)

// DefaultChunkSize is the read buffer capacity used when none is given.
const DefaultChunkSize = 128 * 1024

// Table holds one occurrence count per possible byte value.
type Table [256]uint64

// Total returns the number of bytes tallied into the table.
func (t *Table) Total() uint64 {
	var sum uint64

	for _, n := range t {
		sum += n
	}

	return sum
}

// Distinct returns the number of byte values with a nonzero count.
func (t *Table) Distinct() int {
	distinct := 0

	for _, n := range t {
		if n != 0 {
			distinct++
		}
	}

	return distinct
}

// Add returns the elementwise sum of two tables. Counting disjoint ranges of
// a stream and adding the results is equivalent to counting the whole stream.
func (t Table) Add(other Table) Table {
	for i, n := range other {
		t[i] += n
	}

	return t
}

// Counter tallies bytes from a stream into a Table using a single fixed-size
// chunk buffer, so memory use stays constant regardless of stream length.
// A Counter can be reused across streams but not shared between goroutines.
type Counter struct {
	buf []byte
}

// NewCounter returns a Counter that reads up to chunkSize bytes at a time.
// Sizes below 1 fall back to DefaultChunkSize.
func NewCounter(chunkSize int) *Counter {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}

	return &Counter{buf: make([]byte, chunkSize)}
}

// ChunkSize returns the counter's read buffer capacity.
func (c *Counter) ChunkSize() int { return len(c.buf) }

// ConsumeAll reads r to exhaustion, counting every byte it yields. It
// returns the completed table and the number of bytes read. If a read fails
// mid-stream the whole result is discarded: the zero Table, a zero count and
// an error wrapping the cause are returned.
func (c *Counter) ConsumeAll(r io.Reader) (Table, int64, error) {
	var (
		table Table
		total int64
	)

	for {
		n, err := r.Read(c.buf)

		for _, b := range c.buf[:n] {
			table[b]++
		}
		total += int64(n)

		if err == io.EOF {
			return table, total, nil
		} else if err != nil {
			return Table{}, 0, fmt.Errorf("read failed after %d bytes: %w", total, err)
		}
	}
}

// Count reads r to exhaustion with the default chunk size.
func Count(r io.Reader) (Table, int64, error) {
	return NewCounter(DefaultChunkSize).ConsumeAll(r)
}
