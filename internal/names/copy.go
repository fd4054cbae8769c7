package names

import "fmt"

// DeepCopy transplants the name h, and every name it references, from src
// into dst, returning the equivalent handle in dst. Dependencies are
// copied before their dependents, so the reference graph must be a DAG;
// a cycle is a contract violation and panics. Unique sequence numbers are
// carried over verbatim, never renumbered, so display identity and any
// cross-session stability keyed on it are preserved. Copying a name whose
// equivalent already exists in dst returns the pre-existing handle.
func DeepCopy(src *Arena, h Handle, dst *Arena) Handle {
	c := copier{src: src, dst: dst, active: make(map[Handle]struct{})}
	return c.copy(h)
}

// copier tracks in-flight source handles while a dependency chain is
// being transplanted.
type copier struct {
	src    *Arena
	dst    *Arena
	active map[Handle]struct{}
}

func (c *copier) copy(h Handle) Handle {
	if _, inFlight := c.active[h]; inFlight {
		panic(fmt.Errorf("names: reference cycle through %v during deep copy", h))
	}
	c.active[h] = struct{}{}
	defer delete(c.active, h)

	switch h.Kind() {
	case KindUTF8:
		return c.dst.InternBytes(c.src.Text(h))
	case KindUnique:
		original, num, kind := c.src.Unique(h)
		return c.dst.InternUniqueExact(c.copy(original), kind, num)
	case KindConstant:
		return c.dst.ConstantNameFor(c.copy(c.src.Constant(h)))
	default:
		panic(fmt.Errorf("names: deep copy of invalid handle %v", h))
	}
}
