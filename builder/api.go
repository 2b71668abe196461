// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract:
//   • One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs cons in order.
//   • Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   • Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   • Safety: never panic; constructors return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/blossom/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph mode flags (directed/loops/multigraph/weighted).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
