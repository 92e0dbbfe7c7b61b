package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspanneal/geom"
)

// pointsCommand creates the points command for generating point files.
func (c *CLI) pointsCommand() *cobra.Command {
	var (
		src    sourceFlags
		seed   int64
		output string
	)

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Generate a point file",
		Long: `Generate a point file.

Writes N uniform random points (--random) or N points on a circle (--circle)
as YAML, to --output or standard output. The file can be fed back to
'tspanneal solve --points'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPoints(cmd.Context(), cmd.OutOrStdout(), src, seed, output)
		},
	}

	src.bind(cmd, false)
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 selects the fixed default)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runPoints(ctx context.Context, w io.Writer, src sourceFlags, seed int64, output string) error {
	ps, desc, err := src.load(seed)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("Generated points", "source", desc, "n", ps.Len())

	if output == "" {
		data, err := geom.MarshalPoints(ps)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if err := geom.WritePoints(output, ps); err != nil {
		return fmt.Errorf("write points %s: %w", output, err)
	}
	printSuccess(w, "Wrote %d points", ps.Len())
	printFile(w, output)
	return nil
}
