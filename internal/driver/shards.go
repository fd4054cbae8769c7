package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tern/internal/names"
)

// ShardResult carries the names one worker produced. After InternShards
// returns, Handles are valid against the coordinator arena.
type ShardResult struct {
	Shard   int
	Handles []names.Handle
}

// InternIdentifier interns one identifier into the arena. Identifiers
// starting with an upper-case ASCII letter denote constant path segments
// in the source language and get the constant wrapper.
func InternIdentifier(a *names.Arena, text string) names.Handle {
	h := a.Intern(text)
	if text != "" && text[0] >= 'A' && text[0] <= 'Z' {
		return a.ConstantNameFor(h)
	}
	return h
}

// InternShards interns every shard of identifiers into a private per-worker
// arena in parallel, then folds the private arenas one at a time into a
// single coordinator arena. No two goroutines ever touch the same arena:
// parallelism comes purely from arena-per-worker plus a sequential reduce.
//
// A non-nil baseline must be frozen; each worker starts from its own clone
// of it, and baseline handles stay valid against the coordinator.
func InternShards(ctx context.Context, baseline *names.Arena, shards [][]string, jobs int) (*names.Arena, []ShardResult, error) {
	if baseline != nil && !baseline.IsFrozen() {
		panic("driver: shard baseline arena must be frozen")
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	type workerOut struct {
		arena *names.Arena
		roots []names.Handle
	}
	// Slots are indexed per shard, so workers never share state.
	outs := make([]workerOut, len(shards))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(shards), 1)))

	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			arena := newWorkerArena(baseline, uint(len(shard)))
			roots := make([]names.Handle, len(shard))
			for j, ident := range shard {
				roots[j] = InternIdentifier(arena, ident)
			}
			outs[i] = workerOut{arena: arena, roots: roots}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	// Sequential reduce: shard order is fixed, so the coordinator arena is
	// deterministic regardless of worker scheduling.
	coordinator := newWorkerArena(baseline, 0)
	results := make([]ShardResult, len(shards))
	for i := range outs {
		results[i] = ShardResult{
			Shard:   i,
			Handles: MergeInto(coordinator, outs[i].arena, outs[i].roots),
		}
	}
	return coordinator, results, nil
}

func newWorkerArena(baseline *names.Arena, utf8Hint uint) *names.Arena {
	if baseline != nil {
		return names.Clone(baseline)
	}
	return names.NewArena(names.Hints{UTF8: utf8Hint})
}

// MergeInto folds the given roots of src into dst and returns the
// equivalent dst handles, in root order. Dependencies of each root travel
// with it; records dst already holds are reused.
func MergeInto(dst, src *names.Arena, roots []names.Handle) []names.Handle {
	merged := make([]names.Handle, len(roots))
	for i, root := range roots {
		merged[i] = names.DeepCopy(src, root, dst)
	}
	return merged
}
