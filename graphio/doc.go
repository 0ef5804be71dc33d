// Package graphio reads bipartite graphs from files and writes matchings.
//
// Graph files come in two formats chosen by extension:
//
// TOML (.toml):
//
//	left  = ["L0", "L1"]   # optional, for isolated vertices
//	right = ["R0"]
//
//	[[edge]]
//	left  = "L0"
//	right = "R0"
//
// JSON (.json):
//
//	{"left": ["L0"], "right": ["R0"], "edges": [{"left": "L0", "right": "R0"}]}
//
// Unknown keys are rejected in both formats. Matchings are written as text
// (one "[L0-R0 L1-R1]" line each) or as a JSON array of pair arrays.
package graphio
