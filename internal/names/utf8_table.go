package names

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"
	"github.com/cespare/xxhash/v2"
)

// utf8Record addresses one interned byte sequence inside the table's
// shared text arena. Rows stay 8 bytes so tables with millions of
// identifiers remain cache-friendly.
type utf8Record struct {
	off uint32
	len uint32
}

// utf8Table interns raw identifier text, content-addressed by xxhash64
// with a full byte comparison on bucket collisions.
type utf8Table struct {
	text  []byte
	recs  []utf8Record
	index map[uint64][]uint32
}

func newUTF8Table(capacity uint32) utf8Table {
	if capacity == 0 {
		capacity = 64
	}
	return utf8Table{
		recs:  make([]utf8Record, 1, capacity+1), // index 0 reserved for NoName
		index: make(map[uint64][]uint32, capacity),
	}
}

// intern returns the row holding content, storing a copy on first sight.
func (t *utf8Table) intern(content []byte) uint32 {
	hash := xxhash.Sum64(content)
	for _, row := range t.index[hash] {
		if bytes.Equal(t.view(row), content) {
			return row
		}
	}

	off, err := safecast.Conv[uint32](len(t.text))
	if err != nil {
		panic(fmt.Errorf("names: utf8 text arena overflow: %w", err))
	}
	length, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("names: utf8 entry too long: %w", err))
	}
	row, err := safecast.Conv[uint32](len(t.recs))
	if err != nil {
		panic(fmt.Errorf("names: utf8 table overflow: %w", err))
	}
	t.text = append(t.text, content...)
	t.recs = append(t.recs, utf8Record{off: off, len: length})
	t.index[hash] = append(t.index[hash], row)
	return row
}

// view returns the stored bytes for a row. The slice aliases the table's
// text arena; callers must not mutate it.
func (t *utf8Table) view(row uint32) []byte {
	if row == 0 || int(row) >= len(t.recs) {
		panic(fmt.Errorf("names: utf8 row %d out of range", row))
	}
	rec := t.recs[row]
	return t.text[rec.off : rec.off+rec.len : rec.off+rec.len]
}

// size reports stored rows excluding the sentinel.
func (t *utf8Table) size() int { return len(t.recs) - 1 }
