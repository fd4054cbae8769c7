package names

import "fmt"

// Handle identifies one interned name within an Arena.
// The two low bits carry the table kind, the upper thirty the row index.
// Handles are only meaningful against the arena that produced them (or a
// merge target, via DeepCopy).
type Handle uint32

const (
	// NoName marks the absence of a name reference.
	NoName Handle = 0

	kindBits = 2
	kindMask = 1<<kindBits - 1
	maxRow   = 1<<(32-kindBits) - 1
)

// Kind classifies which table of an arena a handle points into.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindUTF8
	KindUnique
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindUTF8:
		return "utf8"
	case KindUnique:
		return "unique"
	case KindConstant:
		return "constant"
	default:
		return "invalid"
	}
}

func makeHandle(kind Kind, row uint32) Handle {
	if row > maxRow {
		panic(fmt.Errorf("names: table row %d exceeds handle capacity", row))
	}
	return Handle(row<<kindBits | uint32(kind))
}

// Kind reports which table the handle addresses.
func (h Handle) Kind() Kind { return Kind(h & kindMask) }

// row is the index into the table selected by Kind.
func (h Handle) row() uint32 { return uint32(h) >> kindBits }

// IsValid reports whether the handle refers to an interned name.
func (h Handle) IsValid() bool { return h.Kind() != KindInvalid }

// String renders the handle for debug output; use Arena.Show for the
// display form of the name itself.
func (h Handle) String() string {
	if !h.IsValid() {
		return "noname"
	}
	return fmt.Sprintf("%s#%d", h.Kind(), h.row())
}
