package driver

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"tern/internal/names"
)

func buildSessionArena() (*names.Arena, []names.Handle) {
	a := names.NewArena(names.Hints{})
	foo := a.Intern("foo")
	bar := a.Intern("Bar")
	u1 := a.FreshUnique(foo, names.UniqueNamer)
	u2 := a.FreshUnique(u1, names.UniqueDesugar)
	c := a.ConstantNameFor(bar)
	slot := a.InternUniqueExact(foo, names.UniquePositionalArg, names.RestArgNum)
	return a, []names.Handle{foo, bar, u1, u2, c, slot}
}

func TestSnapshotRestoreHandleStability(t *testing.T) {
	src, handles := buildSessionArena()

	data, err := Snapshot(src)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// Handles taken against the snapshotted arena must resolve identically
	// against the restored one.
	for _, h := range handles {
		if got, want := restored.Show(h), src.Show(h); got != want {
			t.Errorf("handle %v: restored show %q, want %q", h, got, want)
		}
	}
	for _, k := range []names.Kind{names.KindUTF8, names.KindUnique, names.KindConstant} {
		if restored.Len(k) != src.Len(k) {
			t.Errorf("%v len = %d, want %d", k, restored.Len(k), src.Len(k))
		}
	}
}

func TestRestoreKeepsFreshCountersMoving(t *testing.T) {
	src, _ := buildSessionArena()
	foo := src.Intern("foo")

	data, err := Snapshot(src)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	want := src.FreshUnique(foo, names.UniqueNamer)
	got := restored.FreshUnique(foo, names.UniqueNamer)
	if got != want {
		t.Errorf("fresh after restore = %v, want %v (same as on the live arena)", got, want)
	}
}

func TestRestorePreservesFreeze(t *testing.T) {
	src, _ := buildSessionArena()
	src.Freeze()

	data, err := Snapshot(src)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	restored, err := Restore(data)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !restored.IsFrozen() {
		t.Error("restored arena must stay frozen")
	}
}

func TestRestoreRejectsForeignSchema(t *testing.T) {
	data, err := msgpack.Marshal(&snapshotPayload{Schema: snapshotSchemaVersion + 1})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if _, err := Restore(data); err == nil {
		t.Error("foreign schema must be rejected")
	}
}

func TestNameCacheRoundTrip(t *testing.T) {
	cache, err := OpenNameCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenNameCacheAt: %v", err)
	}

	shards := [][]string{{"foo", "Bar"}, {"baz"}}
	key := HashShards(shards)

	if _, hit, err := cache.Get(key); err != nil || hit {
		t.Fatalf("cold cache: hit=%v err=%v", hit, err)
	}

	src, handles := buildSessionArena()
	if err := cache.Put(key, src); err != nil {
		t.Fatalf("Put: %v", err)
	}

	restored, hit, err := cache.Get(key)
	if err != nil || !hit {
		t.Fatalf("warm cache: hit=%v err=%v", hit, err)
	}
	for _, h := range handles {
		if restored.Show(h) != src.Show(h) {
			t.Errorf("cached handle %v shows %q, want %q", h, restored.Show(h), src.Show(h))
		}
	}
}

func TestHashShardsBoundariesMatter(t *testing.T) {
	a := HashShards([][]string{{"x", "y"}})
	b := HashShards([][]string{{"x"}, {"y"}})
	if a == b {
		t.Error("shard boundaries must change the digest")
	}
}
