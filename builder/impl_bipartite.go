// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/bimatch/core"

// CompleteBipartite returns a Constructor for K(n1,n2): every Left vertex
// joined to every Right vertex, emitted i over Left then j over Right.
// Requires n1, n2 ≥ 1.
//
// Complexity: O(n1+n2) vertices, O(n1·n2) edges.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodCompleteBipartite, "n1", n1, 1); err != nil {
			return err
		}
		if err := atLeast(methodCompleteBipartite, "n2", n2, 1); err != nil {
			return err
		}
		if err := cfg.addSides(g, methodCompleteBipartite, n1, n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := addPair(g, methodCompleteBipartite, cfg.left(i), cfg.right(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Crown returns a Constructor for the crown graph on 2n vertices: K(n,n)
// without the pairs L_i-R_i. Its perfect matchings are the derangements of
// n elements. Requires n ≥ 2.
func Crown(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodCrown, "n", n, 2); err != nil {
			return err
		}
		if err := cfg.addSides(g, methodCrown, n, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addPair(g, methodCrown, cfg.left(i), cfg.right(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Ladder returns a Constructor for the 2×n grid coloured as a bipartite graph:
// rungs L_i-R_i plus rails L_i-R_{i+1} and L_{i+1}-R_i. The number of perfect
// matchings is the (n+1)-th Fibonacci number. Requires n ≥ 1.
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodLadder, "n", n, 1); err != nil {
			return err
		}
		if err := cfg.addSides(g, methodLadder, n, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addPair(g, methodLadder, cfg.left(i), cfg.right(i)); err != nil {
				return err
			}
			if i+1 == n {
				continue
			}
			if err := addPair(g, methodLadder, cfg.left(i), cfg.right(i+1)); err != nil {
				return err
			}
			if err := addPair(g, methodLadder, cfg.left(i+1), cfg.right(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
