package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arvidh/bigint"
)

// A manifest carries the default strategy configuration loaded from a
// bigcalc.toml found in the working directory or one of its parents:
//
//	[strategy]
//	mul = "karatsuba"   # auto|classic|karatsuba|fft
//	div = "newton"      # auto|classic|newton
type manifest struct {
	Path   string
	Config bigint.Config
}

type manifestFile struct {
	Strategy strategyConfig `toml:"strategy"`
}

type strategyConfig struct {
	Mul string `toml:"mul"`
	Div string `toml:"div"`
}

func findManifest(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "bigcalc.toml")
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

func loadManifest(startDir string) (*manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}

	var file manifestFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	var cfg bigint.Config
	if file.Strategy.Mul != "" {
		m, err := parseMulMode(file.Strategy.Mul)
		if err != nil {
			return nil, true, fmt.Errorf("%s: [strategy].mul: %w", path, err)
		}
		cfg.MulMode = m
	}
	if file.Strategy.Div != "" {
		m, err := parseDivMode(file.Strategy.Div)
		if err != nil {
			return nil, true, fmt.Errorf("%s: [strategy].div: %w", path, err)
		}
		cfg.DivMode = m
	}

	return &manifest{Path: path, Config: cfg}, true, nil
}
