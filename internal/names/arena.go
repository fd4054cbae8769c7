package names

import (
	"fmt"
	"sort"

	"fortio.org/safecast"
)

// Hints provide optional capacity suggestions for the arena tables.
type Hints struct{ UTF8, Uniques, Constants uint }

// Arena owns the interning tables and fresh-sequence counters for one
// compilation session or worker. Exactly one logical owner mutates an
// arena at a time; a frozen arena is safe for concurrent reads.
type Arena struct {
	utf8      utf8Table
	uniques   uniqueTable
	constants constantTable
	counters  map[counterKey]int32
	frozen    bool
}

// counterKey addresses the next fresh sequence number for one
// (original, kind) pair.
type counterKey struct {
	original Handle
	kind     UniqueKind
}

// NewArena builds a fresh arena with optional capacity hints.
func NewArena(h Hints) *Arena {
	utf8Cap, err := safecast.Conv[uint32](h.UTF8)
	if err != nil {
		panic(fmt.Errorf("names: utf8 capacity overflow: %w", err))
	}
	uniqueCap, err := safecast.Conv[uint32](h.Uniques)
	if err != nil {
		panic(fmt.Errorf("names: unique capacity overflow: %w", err))
	}
	constCap, err := safecast.Conv[uint32](h.Constants)
	if err != nil {
		panic(fmt.Errorf("names: constant capacity overflow: %w", err))
	}
	return &Arena{
		utf8:      newUTF8Table(utf8Cap),
		uniques:   newUniqueTable(uniqueCap),
		constants: newConstantTable(constCap),
		counters:  make(map[counterKey]int32),
	}
}

// Intern deduplicates text into the arena and returns its handle. The same
// content always yields the same handle for the arena's lifetime.
func (a *Arena) Intern(text string) Handle {
	return a.InternBytes([]byte(text))
}

// InternBytes is Intern for raw byte content. The arena stores its own copy.
func (a *Arena) InternBytes(content []byte) Handle {
	a.mutationGuard()
	return makeHandle(KindUTF8, a.utf8.intern(content))
}

// FreshUnique synthesizes a new name for original on behalf of the given
// compiler concern. Sequence numbers per (original, kind) start at 1 and
// are strictly increasing; replaying an identical ordered sequence of
// calls on a fresh arena reproduces identical handles and displays.
func (a *Arena) FreshUnique(original Handle, kind UniqueKind) Handle {
	a.mutationGuard()
	if !original.IsValid() {
		panic("names: FreshUnique of invalid original")
	}
	key := counterKey{original: original, kind: kind}
	num := a.counters[key] + 1
	a.counters[key] = num
	// The triple may already exist if it was carried over through
	// InternUniqueExact; the table dedups it to the existing row.
	return makeHandle(KindUnique, a.uniques.intern(uniqueName{
		Original: original,
		Num:      num,
		Kind:     kind,
	}))
}

// InternUniqueExact inserts-or-finds the exact (original, kind, num)
// triple without consulting or advancing the counters. It exists for the
// merge path, which must preserve sequence numbers from the source arena,
// and for positional-argument slots, whose Num carries the argument
// position rather than a counter value.
func (a *Arena) InternUniqueExact(original Handle, kind UniqueKind, num int32) Handle {
	a.mutationGuard()
	if !original.IsValid() {
		panic("names: InternUniqueExact of invalid original")
	}
	return makeHandle(KindUnique, a.uniques.intern(uniqueName{
		Original: original,
		Num:      num,
		Kind:     kind,
	}))
}

// ConstantNameFor wraps ref as a qualified constant path segment,
// memoized per wrapped handle.
func (a *Arena) ConstantNameFor(ref Handle) Handle {
	a.mutationGuard()
	if !ref.IsValid() {
		panic("names: ConstantNameFor of invalid handle")
	}
	return makeHandle(KindConstant, a.constants.intern(ref))
}

// Text resolves a plain-text handle to its stored bytes. The view aliases
// arena storage; callers must not mutate it. Resolving any other handle
// kind is a contract violation.
func (a *Arena) Text(h Handle) []byte {
	return a.utf8.view(a.rowFor(h, KindUTF8))
}

// Unique resolves a unique-name handle into its triple.
func (a *Arena) Unique(h Handle) (original Handle, num int32, kind UniqueKind) {
	rec := a.uniques.get(a.rowFor(h, KindUnique))
	return rec.Original, rec.Num, rec.Kind
}

// Constant resolves a constant-name handle to the handle it wraps.
func (a *Arena) Constant(h Handle) Handle {
	return a.constants.get(a.rowFor(h, KindConstant)).Wrapped
}

func (a *Arena) rowFor(h Handle, want Kind) uint32 {
	if h.Kind() != want {
		panic(fmt.Errorf("names: %v resolved against %v table", h, want))
	}
	return h.row()
}

// Len reports the number of rows interned in the table for kind.
func (a *Arena) Len(k Kind) int {
	switch k {
	case KindUTF8:
		return a.utf8.size()
	case KindUnique:
		return a.uniques.size()
	case KindConstant:
		return a.constants.size()
	default:
		return 0
	}
}

// Freeze forbids further interning. Used at phase boundaries to catch
// late, unintended mutation; freezing twice is harmless.
func (a *Arena) Freeze() { a.frozen = true }

// IsFrozen reports whether the arena refuses new records.
func (a *Arena) IsFrozen() bool { return a.frozen }

func (a *Arena) mutationGuard() {
	if a.frozen {
		panic("names: intern on frozen arena")
	}
}

// EachUTF8 visits plain-text rows in insertion order.
func (a *Arena) EachUTF8(fn func(h Handle, content []byte)) {
	for row := uint32(1); int(row) < len(a.utf8.recs); row++ {
		fn(makeHandle(KindUTF8, row), a.utf8.view(row))
	}
}

// EachUnique visits unique-name rows in insertion order.
func (a *Arena) EachUnique(fn func(h, original Handle, num int32, kind UniqueKind)) {
	for row := uint32(1); int(row) < len(a.uniques.recs); row++ {
		rec := a.uniques.recs[row]
		fn(makeHandle(KindUnique, row), rec.Original, rec.Num, rec.Kind)
	}
}

// EachConstant visits constant-name rows in insertion order.
func (a *Arena) EachConstant(fn func(h, wrapped Handle)) {
	for row := uint32(1); int(row) < len(a.constants.recs); row++ {
		fn(makeHandle(KindConstant, row), a.constants.recs[row].Wrapped)
	}
}

// CounterSnapshot is one captured fresh-sequence counter entry.
type CounterSnapshot struct {
	Original Handle
	Kind     UniqueKind
	Next     int32
}

// Counters captures the fresh-sequence counters in deterministic order,
// for the surrounding snapshot layer.
func (a *Arena) Counters() []CounterSnapshot {
	out := make([]CounterSnapshot, 0, len(a.counters))
	for key, next := range a.counters {
		out = append(out, CounterSnapshot{Original: key.original, Kind: key.kind, Next: next})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Original != out[j].Original {
			return out[i].Original < out[j].Original
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// RestoreCounters reinstates counters captured by Counters. Counters are
// only ever raised, so replayed records can never be handed out twice.
func (a *Arena) RestoreCounters(entries []CounterSnapshot) {
	a.mutationGuard()
	for _, e := range entries {
		key := counterKey{original: e.Original, kind: e.Kind}
		if e.Next > a.counters[key] {
			a.counters[key] = e.Next
		}
	}
}
