// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with gopts, resolves bopts, and applies
// cons in order. The first constructor error is returned as
// "BuildGraph: <err>" with the sentinel preserved for errors.Is.
//
// Complexity: O(len(bopts)) plus the sum of the constructors' costs.
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

// Prefixed runs c with the side prefixes replaced by left and right, so the
// same topology can be added twice to one graph as a disjoint component.
func Prefixed(left, right string, c Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if c == nil {
			return fmt.Errorf("%s: nil constructor: %w", methodPrefixed, ErrConstructFailed)
		}
		if left == "" || right == "" || left == right {
			return fmt.Errorf("%s: prefixes %q/%q: %w", methodPrefixed, left, right, ErrOptionViolation)
		}
		cfg.leftPrefix, cfg.rightPrefix = left, right

		return c(g, cfg)
	}
}

// Edges adds explicit Left-Right pairs; the first ID of each pair is the Left
// endpoint. Prefixes are not applied.
func Edges(pairs ...[2]string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			if err := addPair(g, methodEdges, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}
