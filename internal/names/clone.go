package names

// Clone builds an unfrozen arena holding the same records and counters as
// src. Rows are replayed in insertion order, so every handle valid against
// src is valid against the clone and shows identically. Typical use:
// freeze a baseline arena shared read-only by parallel workers and hand
// each worker its own clone to mutate.
func Clone(src *Arena) *Arena {
	dst := NewArena(Hints{
		UTF8:      uint(src.utf8.size()),
		Uniques:   uint(src.uniques.size()),
		Constants: uint(src.constants.size()),
	})
	src.EachUTF8(func(_ Handle, content []byte) {
		dst.InternBytes(content)
	})
	src.EachUnique(func(_, original Handle, num int32, kind UniqueKind) {
		dst.InternUniqueExact(original, kind, num)
	})
	src.EachConstant(func(_, wrapped Handle) {
		dst.ConstantNameFor(wrapped)
	})
	dst.RestoreCounters(src.Counters())
	return dst
}
