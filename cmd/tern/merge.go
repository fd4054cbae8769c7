package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tern/internal/driver"
	"tern/internal/names"
)

var mergeCmd = &cobra.Command{
	Use:   "merge [flags]",
	Short: "Build shard arenas in parallel and merge them",
	Long:  `Merge interns each manifest shard into its own arena on a worker pool, folds the arenas into one canonical arena, and prints its stats`,
	RunE:  runMerge,
}

func init() {
	mergeCmd.Flags().String("manifest", "", "path to tern.toml (default: search upward from .)")
	mergeCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = GOMAXPROCS)")
	mergeCmd.Flags().String("cache-dir", "", "reuse merged arenas cached in this directory")
}

func runMerge(cmd *cobra.Command, _ []string) error {
	manifestPath, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return fmt.Errorf("failed to get manifest flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return fmt.Errorf("failed to get cache-dir flag: %w", err)
	}

	manifest, err := loadMergeManifest(manifestPath)
	if err != nil {
		return err
	}

	shards, err := loadShards(manifest)
	if err != nil {
		return err
	}

	var cache *driver.NameCache
	key := driver.HashShards(shards)
	if cacheDir != "" {
		cache, err = driver.OpenNameCacheAt(cacheDir)
		if err != nil {
			return fmt.Errorf("failed to open name cache: %w", err)
		}
		if arena, hit, err := cache.Get(key); err != nil {
			return fmt.Errorf("failed to read name cache: %w", err)
		} else if hit {
			printMergeStats(cmd, manifest, arena, len(shards), true)
			return nil
		}
	}

	arena, _, err := driver.InternShards(cmd.Context(), nil, shards, jobs)
	if err != nil {
		return fmt.Errorf("shard merge failed: %w", err)
	}
	arena.Freeze()

	if cache != nil {
		if err := cache.Put(key, arena); err != nil {
			return fmt.Errorf("failed to write name cache: %w", err)
		}
	}

	printMergeStats(cmd, manifest, arena, len(shards), false)
	return nil
}

// loadShards reads each shard's files, relative to the manifest root, into
// one identifier list per shard.
func loadShards(manifest *mergeManifest) ([][]string, error) {
	shards := make([][]string, len(manifest.Config.Shards))
	for i, shard := range manifest.Config.Shards {
		for _, file := range shard.Files {
			path := file
			if !filepath.IsAbs(path) {
				path = filepath.Join(manifest.Root, path)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("shard %d: failed to read %s: %w", i, file, err)
			}
			shards[i] = append(shards[i], strings.Fields(string(data))...)
		}
	}
	return shards, nil
}

func printMergeStats(cmd *cobra.Command, manifest *mergeManifest, arena *names.Arena, shardCount int, cached bool) {
	out := cmd.OutOrStdout()
	name := manifest.Config.Project.Name
	if name == "" {
		name = manifest.Root
	}
	suffix := ""
	if cached {
		suffix = " (cached)"
	}
	fmt.Fprintf(out, "%s: merged %d shards%s\n", name, shardCount, suffix)
	fmt.Fprintf(out, "  utf8     %d\n", arena.Len(names.KindUTF8))
	fmt.Fprintf(out, "  unique   %d\n", arena.Len(names.KindUnique))
	fmt.Fprintf(out, "  constant %d\n", arena.Len(names.KindConstant))
}
