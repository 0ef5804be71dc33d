package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/graphio"
	"github.com/katalvlaran/bimatch/maxmatch"
	"github.com/katalvlaran/bimatch/view"
)

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		pairs    []string
		provider string
	)

	cmd := &cobra.Command{
		Use:   "check [graph.toml|graph.json]",
		Short: "Validate a graph file and an optional maximum matching",
		Long: `Validate a graph file and print its sizes and maximum matching cardinality.

With --pair, the given pairs must form a maximum matching of the graph:
  bimatch check g.toml --pair L0-R1,L1-R0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), cmd.OutOrStdout(), args[0], pairs, provider)
		},
	}

	cmd.Flags().StringSliceVar(&pairs, "pair", nil, "matching pairs as Left-Right, comma separated or repeated")
	cmd.Flags().StringVar(&provider, "provider", "hopcroft-karp", "maximum matching algorithm: hopcroft-karp, dinic")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, stdout io.Writer, input string, pairs []string, provider string) error {
	p, ok := maxmatch.Named(provider)
	if !ok {
		return fmt.Errorf("--provider %q: %w", provider, ErrInvalidFlag)
	}
	m, err := parsePairs(pairs)
	if err != nil {
		return err
	}

	g, err := graphio.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	b, err := view.Compile(g)
	if err != nil {
		return fmt.Errorf("check %s: %w", input, err)
	}
	mates, err := p.MaxMatching(ctx, b)
	if err != nil {
		return fmt.Errorf("check %s: %w", input, err)
	}
	loggerFromContext(ctx).Debug("check: maximum matching", "provider", provider, "matching", mates.Matching(b))

	printKeyValue(stdout, "left", fmt.Sprint(b.LeftCount()))
	printKeyValue(stdout, "right", fmt.Sprint(b.RightCount()))
	printKeyValue(stdout, "edges", fmt.Sprint(b.EdgeCount()))
	printKeyValue(stdout, "maximum", fmt.Sprint(mates.Size()))

	if m == nil {
		printSuccess(stdout, "graph is a valid bipartite graph")
		return nil
	}
	if _, err := maxmatch.Validate(b, m); err != nil {
		return fmt.Errorf("check matching: %w", err)
	}
	printSuccess(stdout, "%s is a maximum matching", m)

	return nil
}

// parsePairs reads "Left-Right" items; the first '-' separates the IDs.
func parsePairs(items []string) (core.Matching, error) {
	if len(items) == 0 {
		return nil, nil
	}
	m := make(core.Matching, 0, len(items))
	for _, it := range items {
		l, r, ok := strings.Cut(strings.TrimSpace(it), "-")
		if !ok || l == "" || r == "" {
			return nil, fmt.Errorf("--pair %q: want Left-Right: %w", it, ErrInvalidFlag)
		}
		m = append(m, core.Pair{Left: l, Right: r})
	}
	m.Sort()

	return m, nil
}
