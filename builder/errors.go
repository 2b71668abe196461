// SPDX-License-Identifier: MIT
// Package: blossom/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with fmt.Errorf("...: %w", ErrX).
//   • Constructors never panic at runtime.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, n1, n2) is smaller
// than the minimum the requested constructor supports.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible
// with the current core.Graph mode (e.g. a simple-graph topology on a
// directed graph).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates the builder could not assemble the requested
// topology without breaking invariants, or was handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
