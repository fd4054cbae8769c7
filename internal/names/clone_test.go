package names

import "testing"

func TestCloneSharesHandles(t *testing.T) {
	base := NewArena(Hints{})
	foo := base.Intern("foo")
	u := base.FreshUnique(foo, UniqueNamer)
	c := base.ConstantNameFor(base.Intern("Bar"))
	base.Freeze()

	clone := Clone(base)
	if clone.IsFrozen() {
		t.Error("clone must start unfrozen")
	}
	for _, h := range []Handle{foo, u, c} {
		if clone.Show(h) != base.Show(h) {
			t.Errorf("handle %v: clone shows %q, base shows %q", h, clone.Show(h), base.Show(h))
		}
	}

	// Mutating the clone must not disturb the frozen baseline.
	clone.Intern("worker_local")
	if base.Len(KindUTF8) != 2 {
		t.Errorf("baseline utf8 len = %d, want 2", base.Len(KindUTF8))
	}
}

func TestCloneCarriesCounters(t *testing.T) {
	base := NewArena(Hints{})
	foo := base.Intern("foo")
	base.FreshUnique(foo, UniqueNamer)

	clone := Clone(base)
	if _, num, _ := clone.Unique(clone.FreshUnique(foo, UniqueNamer)); num != 2 {
		t.Errorf("fresh on clone num = %d, want 2", num)
	}
}
