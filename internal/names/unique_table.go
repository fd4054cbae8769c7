package names

import (
	"fmt"

	"fortio.org/safecast"
)

// uniqueName is one synthesized-name row: the name it disambiguates, the
// sequence number, and the compiler concern that generated it. Kept at 12
// bytes; see sizecheck.go.
type uniqueName struct {
	Original Handle
	Num      int32
	Kind     UniqueKind
}

// uniqueTable interns synthesized names deduplicated by the full triple.
type uniqueTable struct {
	recs  []uniqueName
	index map[uniqueName]uint32
}

func newUniqueTable(capacity uint32) uniqueTable {
	if capacity == 0 {
		capacity = 32
	}
	return uniqueTable{
		recs:  make([]uniqueName, 1, capacity+1), // index 0 reserved for NoName
		index: make(map[uniqueName]uint32, capacity),
	}
}

// intern returns the row holding rec, inserting it on first sight.
func (t *uniqueTable) intern(rec uniqueName) uint32 {
	if row, ok := t.index[rec]; ok {
		return row
	}
	row, err := safecast.Conv[uint32](len(t.recs))
	if err != nil {
		panic(fmt.Errorf("names: unique table overflow: %w", err))
	}
	t.recs = append(t.recs, rec)
	t.index[rec] = row
	return row
}

func (t *uniqueTable) get(row uint32) uniqueName {
	if row == 0 || int(row) >= len(t.recs) {
		panic(fmt.Errorf("names: unique row %d out of range", row))
	}
	return t.recs[row]
}

func (t *uniqueTable) size() int { return len(t.recs) - 1 }
