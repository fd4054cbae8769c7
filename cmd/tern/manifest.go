package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noTernTomlMessage = "no tern.toml found\nplease specify the manifest explicitly, e.g.:\n  tern merge --manifest path/to/tern.toml"

type mergeManifest struct {
	Path   string
	Root   string
	Config mergeConfig
}

type mergeConfig struct {
	Project projectConfig `toml:"project"`
	Shards  []shardConfig `toml:"shard"`
}

type projectConfig struct {
	Name string `toml:"name"`
}

type shardConfig struct {
	Files []string `toml:"files"`
}

func findTernToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "tern.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadMergeManifest(path string) (*mergeManifest, error) {
	if path == "" {
		found, ok, err := findTernToml(".")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.New(noTernTomlMessage)
		}
		path = found
	}

	var cfg mergeConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(cfg.Shards) == 0 {
		return nil, fmt.Errorf("%s: manifest declares no [[shard]] sections", path)
	}
	return &mergeManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, nil
}
