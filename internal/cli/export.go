package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/memento/internal/container"
)

func newExportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the saved state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
				enc := json.NewEncoder(opts.out)
				enc.SetIndent("", "  ")
				return enc.Encode(c.Store.Snapshot())
			})
		},
	}
}
