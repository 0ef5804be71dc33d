// Package builder assembles deterministic bipartite core.Graph fixtures from
// composable constructors.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates the
//     graph, resolves options, and applies constructors in order.
//   - Topologies with known maximum-matching counts:
//     – CompleteBipartite(n1, n2): K(n1,n2); n! perfect matchings when n1 = n2 = n.
//     – Crown(n): K(n,n) minus a perfect matching; derangement count.
//     – Ladder(n): 2×n grid as a bipartite graph; Fibonacci count.
//     – Path(n), Cycle(k): alternating path on n vertices, even cycle C_2k.
//     – RandomBipartite(n1, n2, p): independent edges, needs WithSeed/WithRand.
//     – Edges(pairs...): explicit Left-Right pairs.
//   - Prefixed(left, right, c): runs c with other side prefixes, for disjoint unions.
//   - Options: WithSeed, WithRand, WithPartitionPrefix.
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed, and constructor order give
//     identical graphs.
//   - Constructors return sentinel errors wrapped with the method name;
//     option constructors panic on meaningless values.
package builder
