// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means "no randomness supplied".
	rng *rand.Rand
	// Bipartite ID prefixes (left/right).
	leftPrefix  string
	rightPrefix string
}

// Deterministic defaults (named, no magic literals).
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// decimalID is the default ID scheme: "0", "1", "2", ...
func decimalID(idx int) string { return strconv.Itoa(idx) }

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		rng:         nil,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// BuilderOption configures the builder via functional arguments.
type BuilderOption func(*builderConfig)

// WithIDScheme overrides the vertex ID scheme (index -> ID).
// A nil fn is ignored, keeping the decimal default.
func WithIDScheme(fn func(int) string) BuilderOption {
	return func(cfg *builderConfig) {
		if fn != nil {
			cfg.idFn = fn
		}
	}
}

// WithRand supplies a shared RNG stream for stochastic constructors.
// A nil r is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed freezes stochastic constructors to a reproducible stream.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets the left/right vertex ID prefixes used by
// CompleteBipartite. Empty strings keep the "L"/"R" defaults.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(cfg *builderConfig) {
		if left != "" {
			cfg.leftPrefix = left
		}
		if right != "" {
			cfg.rightPrefix = right
		}
	}
}
