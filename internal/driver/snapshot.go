package driver

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"tern/internal/names"
)

// Current schema version - increment when snapshotPayload format changes.
const snapshotSchemaVersion uint16 = 1

// snapshotPayload records an arena as an ordered replay log. Restoring
// replays the recorded intern calls in row order, which reproduces the
// exact handles of the snapshotted arena: downstream caching keyed on
// name identity depends on that.
type snapshotPayload struct {
	Schema    uint16
	Texts     []string
	Uniques   []snapshotUnique
	Constants []names.Handle
	Counters  []names.CounterSnapshot
	Frozen    bool
}

type snapshotUnique struct {
	Original names.Handle
	Num      int32
	Kind     uint8
}

// Snapshot serializes the arena into a msgpack replay log.
func Snapshot(a *names.Arena) ([]byte, error) {
	payload := snapshotPayload{
		Schema: snapshotSchemaVersion,
		Frozen: a.IsFrozen(),
	}
	a.EachUTF8(func(_ names.Handle, content []byte) {
		payload.Texts = append(payload.Texts, string(content))
	})
	a.EachUnique(func(_, original names.Handle, num int32, kind names.UniqueKind) {
		payload.Uniques = append(payload.Uniques, snapshotUnique{
			Original: original,
			Num:      num,
			Kind:     uint8(kind),
		})
	})
	a.EachConstant(func(_, wrapped names.Handle) {
		payload.Constants = append(payload.Constants, wrapped)
	})
	payload.Counters = a.Counters()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(&payload); err != nil {
		return nil, fmt.Errorf("encode arena snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Restore rebuilds an arena from a Snapshot payload. Handles recorded
// against the snapshotted arena are valid against the restored one.
func Restore(data []byte) (*names.Arena, error) {
	var payload snapshotPayload
	if err := msgpack.NewDecoder(bytes.NewReader(data)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode arena snapshot: %w", err)
	}
	if payload.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("arena snapshot schema %d, want %d", payload.Schema, snapshotSchemaVersion)
	}

	a := names.NewArena(names.Hints{
		UTF8:      uint(len(payload.Texts)),
		Uniques:   uint(len(payload.Uniques)),
		Constants: uint(len(payload.Constants)),
	})
	// Per-table row order is insertion order, so replaying each table in
	// order reassigns identical rows. References between tables are plain
	// handle values and are not dereferenced during interning, so the
	// tables can be replayed one after another.
	for _, text := range payload.Texts {
		a.Intern(text)
	}
	for _, u := range payload.Uniques {
		a.InternUniqueExact(u.Original, names.UniqueKind(u.Kind), u.Num)
	}
	for _, wrapped := range payload.Constants {
		a.ConstantNameFor(wrapped)
	}
	a.RestoreCounters(payload.Counters)
	if payload.Frozen {
		a.Freeze()
	}
	return a, nil
}
