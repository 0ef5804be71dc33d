// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors. Constructors wrap them with the method name; branch with errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates the graph rejected a vertex or edge, or a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrOptionViolation indicates a meaningless value that must surface as an
	// error rather than a panic (Prefixed with empty or equal prefixes).
	ErrOptionViolation = errors.New("builder: invalid option value")
)
