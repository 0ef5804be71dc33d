// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/bimatch/core"

// Path returns a Constructor for the path on n vertices alternating sides:
// L0-R0-L1-R1-... Requires n ≥ 2.
//
// Even n has one perfect matching; odd n = 2k+1 has k+1 maximum matchings.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodPath, "n", n, 2); err != nil {
			return err
		}
		// vertex k is Left k/2 when k is even, Right k/2 when odd
		for k := 0; k+1 < n; k++ {
			l, r := cfg.left(k/2), cfg.right(k/2)
			if k%2 == 1 {
				l = cfg.left((k + 1) / 2)
			}
			if err := addPair(g, methodPath, l, r); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor for the even cycle C_2k:
// L_i-R_i and L_{i+1 mod k}-R_i. It always has exactly two perfect
// matchings. Requires k ≥ 2.
func Cycle(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := atLeast(methodCycle, "k", k, 2); err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			if err := addPair(g, methodCycle, cfg.left(i), cfg.right(i)); err != nil {
				return err
			}
			if err := addPair(g, methodCycle, cfg.left((i+1)%k), cfg.right(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
