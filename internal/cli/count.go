package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bimatch/enumerate"
	"github.com/katalvlaran/bimatch/graphio"
)

// countCommand creates the count command.
func (c *CLI) countCommand() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "count [graph.toml|graph.json]",
		Short: "Count the maximum matchings of a bipartite graph",
		Long: `Count the maximum matchings of a bipartite graph without keeping them.

The count is printed on stdout. When --limit or --timeout cuts the run short
the printed number is a lower bound and a warning is written to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCount(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], flags)
		},
	}
	flags.register(cmd)

	return cmd
}

func (c *CLI) runCount(ctx context.Context, stdout, stderr io.Writer, input string, flags runFlags) error {
	g, err := graphio.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}

	logger := loggerFromContext(ctx)
	opts, cancel, err := flags.options(ctx, logger)
	if err != nil {
		return err
	}
	defer cancel()

	prog := newProgress(logger)
	res, err := enumerate.Count(g, opts...)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	prog.done(fmt.Sprintf("Counted %d matchings", res.Found))

	fmt.Fprintln(stdout, res.Found)
	summarize(stderr, res)

	return nil
}
