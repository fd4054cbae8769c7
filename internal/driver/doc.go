// Package driver layers the parallel-worker and persistence concerns
// around the names core: sharded interning with one private arena per
// worker folded into a coordinator arena, and msgpack snapshots of an
// arena that restore with identical handles.
package driver
