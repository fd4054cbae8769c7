package names

import (
	"fmt"

	"fortio.org/safecast"
)

// constantName marks the wrapped name as a qualified constant path
// segment. Display and equality pass through to the wrapped name.
type constantName struct {
	Wrapped Handle
}

// constantTable interns constant wrappers, one row per wrapped handle.
type constantTable struct {
	recs  []constantName
	index map[Handle]uint32
}

func newConstantTable(capacity uint32) constantTable {
	if capacity == 0 {
		capacity = 16
	}
	return constantTable{
		recs:  make([]constantName, 1, capacity+1), // index 0 reserved for NoName
		index: make(map[Handle]uint32, capacity),
	}
}

// intern returns the row wrapping ref, inserting it on first sight.
func (t *constantTable) intern(ref Handle) uint32 {
	if row, ok := t.index[ref]; ok {
		return row
	}
	row, err := safecast.Conv[uint32](len(t.recs))
	if err != nil {
		panic(fmt.Errorf("names: constant table overflow: %w", err))
	}
	t.recs = append(t.recs, constantName{Wrapped: ref})
	t.index[ref] = row
	return row
}

func (t *constantTable) get(row uint32) constantName {
	if row == 0 || int(row) >= len(t.recs) {
		panic(fmt.Errorf("names: constant row %d out of range", row))
	}
	return t.recs[row]
}

func (t *constantTable) size() int { return len(t.recs) - 1 }
