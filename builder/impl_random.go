// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// RandomBipartite returns a Constructor that adds n1 Left and n2 Right
// vertices and keeps each of the n1·n2 pairs independently with probability p.
// Pairs are drawn i over Left then j over Right, so a fixed seed gives a fixed graph.
//
// Validation order: sizes (ErrTooFewVertices), p ∈ [0,1] (ErrInvalidProbability),
// rng present (ErrNeedRandSource).
func RandomBipartite(n1, n2 int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodRandomBipartite, "n1", n1, 1); err != nil {
			return err
		}
		if err := atLeast(methodRandomBipartite, "n2", n2, 1); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomBipartite, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomBipartite, ErrNeedRandSource)
		}
		if err := cfg.addSides(g, methodRandomBipartite, n1, n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addPair(g, methodRandomBipartite, cfg.left(i), cfg.right(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
