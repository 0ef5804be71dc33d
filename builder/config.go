// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bimatch/core"
)

// builderConfig aggregates the knobs used by constructors.
// It is passed by value, so a constructor may adjust its copy freely.
type builderConfig struct {
	rng         *rand.Rand // nil unless WithSeed/WithRand
	leftPrefix  string
	rightPrefix string
}

// Defaults and method tags.
const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"

	methodCompleteBipartite = "CompleteBipartite"
	methodCrown             = "Crown"
	methodLadder            = "Ladder"
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodRandomBipartite   = "RandomBipartite"
	methodEdges             = "Edges"
	methodPrefixed          = "Prefixed"
)

// newBuilderConfig applies opts over the defaults, last option wins, and
// resolves empty prefixes back to the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// left returns the i-th Left ID.
func (c builderConfig) left(i int) string { return fmt.Sprintf("%s%d", c.leftPrefix, i) }

// right returns the j-th Right ID.
func (c builderConfig) right(j int) string { return fmt.Sprintf("%s%d", c.rightPrefix, j) }

// addSides inserts n1 Left and n2 Right vertices in index order.
func (c builderConfig) addSides(g *core.Graph, method string, n1, n2 int) error {
	for i := 0; i < n1; i++ {
		if err := g.AddVertex(c.left(i), core.Left); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, c.left(i), err, ErrConstructFailed)
		}
	}
	for j := 0; j < n2; j++ {
		if err := g.AddVertex(c.right(j), core.Right); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, c.right(j), err, ErrConstructFailed)
		}
	}

	return nil
}

// addPair adds the edge l-r, creating l on the Left and r on the Right.
func addPair(g *core.Graph, method, l, r string) error {
	if err := g.AddVertex(l, core.Left); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, l, err, ErrConstructFailed)
	}
	if err := g.AddVertex(r, core.Right); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w: %w", method, r, err, ErrConstructFailed)
	}
	if _, err := g.AddEdge(l, r); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w: %w", method, l, r, err, ErrConstructFailed)
	}

	return nil
}

// atLeast validates n >= least for method.
func atLeast(method, name string, n, least int) error {
	if n < least {
		return fmt.Errorf("%s: %s=%d (must be ≥ %d): %w", method, name, n, least, ErrTooFewVertices)
	}

	return nil
}
