package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bimatch/enumerate"
	"github.com/katalvlaran/bimatch/graphio"
)

// enumerateCommand creates the enumerate command.
func (c *CLI) enumerateCommand() *cobra.Command {
	var (
		flags  runFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:     "enumerate [graph.toml|graph.json]",
		Aliases: []string{"enum"},
		Short:   "List every maximum matching of a bipartite graph",
		Long: `List every maximum matching of a bipartite graph.

Matchings are written sorted, one per line as [L-R ...] (text) or as a single
JSON array of pair arrays (-f json). A run cut short by --limit or --timeout
still writes what it found and reports the stop reason on stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEnumerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], flags, format, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

// runEnumerate loads the graph, enumerates and writes the matchings.
func (c *CLI) runEnumerate(ctx context.Context, stdout, stderr io.Writer, input string, flags runFlags, format, output string) error {
	out, err := graphio.ParseOutput(format)
	if err != nil {
		return fmt.Errorf("--format: %w", err)
	}
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
	res, err := enumerate.All(g, opts...)
	if err != nil {
		return fmt.Errorf("enumerate: %w", err)
	}
	prog.done(fmt.Sprintf("Enumerated %d matchings", res.Found))

	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}
	if err := graphio.WriteMatchings(w, res.Sorted(), out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	summarize(stderr, res)
	if output != "" {
		printFile(stderr, output)
	}

	return nil
}

// summarize reports the number of matchings found and why a run stopped early.
func summarize(w io.Writer, res *enumerate.Result) {
	if res.Complete {
		printSuccess(w, "%s maximum matchings of size %s", number(res.Found), number(res.Size))
		return
	}
	printWarning(w, "stopped early (%s) after %d maximum matchings of size %d", res.StopReason, res.Found, res.Size)
}
