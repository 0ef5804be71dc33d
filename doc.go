// Package bimatch enumerates every maximum matching of a bipartite graph.
//
// 🚀 What is bimatch?
//
//	A small library and CLI built around one algorithm: starting from a single
//	maximum matching, it walks alternating cycles and length-2 alternating
//	paths of the exchange digraph, splitting the search on one edge at a time,
//	so that each step yields exactly one new maximum matching.
//
// ✨ Why choose bimatch?
//
//   - Output-linear: the work between two reported matchings is polynomial.
//   - No duplicates: the search space is partitioned, nothing is deduplicated.
//   - Early stop: limits, contexts and callbacks end a run with a valid prefix.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/       Graph with Left/Right sides, Pair and Matching
//	builder/    deterministic graph families (complete, crown, ladder, path, cycle, random)
//	view/       immutable indexed snapshot and copy-on-write subgraph views (masked, bit-matrix)
//	maxmatch/   Hopcroft-Karp and Dinic providers, matching validation
//	exchange/   exchange digraph, alternating cycle and path finders
//	enumerate/  All, Count and Each
//	graphio/    TOML/JSON graph files and matching output
//
// Quick ASCII example:
//
//	    L0───R0
//	      ╲ ╱
//	      ╱ ╲
//	    L1───R1
//
//	K(2,2) has two perfect matchings: {L0-R0, L1-R1} and {L0-R1, L1-R0}.
//
// The command-line driver lives in cmd/bimatch:
//
//	go install github.com/katalvlaran/bimatch/cmd/bimatch@latest
//	bimatch enumerate graph.toml
package bimatch
