package names

import (
	"fmt"
	"strconv"
)

// Show renders the display form of a name. Unique names render as the
// original's display plus a kind tag and the sequence number, except
// WellKnown names, which display exactly like their original. Constant
// names display as the name they wrap.
func (a *Arena) Show(h Handle) string {
	switch h.Kind() {
	case KindUTF8:
		return string(a.Text(h))
	case KindUnique:
		original, num, kind := a.Unique(h)
		if kind == UniqueWellKnown {
			return a.Show(original)
		}
		return a.Show(original) + "$" + kind.String() + "$" + strconv.FormatInt(int64(num), 10)
	case KindConstant:
		return a.Show(a.Constant(h))
	default:
		panic(fmt.Errorf("names: Show of invalid handle %v", h))
	}
}
