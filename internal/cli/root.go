// Package cli is the memento command line. Every command works on the
// persisted store: it restores the saved state, applies its operation and
// flushes the result before exiting.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/memento/internal/config"
	"github.com/saulo-duarte/memento/internal/container"
)

type options struct {
	configPath string
	out        io.Writer
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "memento",
		Short: "Turn recorded lectures into flashcards, quizzes and a study chat",
		Long: `Memento keeps study projects built from audio lectures: transcriptions,
flashcards, quizzes and a chat about the content. Run "memento serve" for the
HTTP API or use the subcommands to work with the saved state directly.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.out = cmd.OutOrStdout()
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "config.yaml", "path to the YAML config file")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newProjectCmd(opts),
		newChatCmd(opts),
		newExportCmd(opts),
	)
	return rootCmd
}

// withContainer runs fn against a restored store and always flushes it.
func (o *options) withContainer(ctx context.Context, fn func(ctx context.Context, c *container.Container) error) (err error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	c, err := container.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := c.Close(context.Background()); closeErr != nil && err == nil {
			err = fmt.Errorf("save state: %w", closeErr)
		}
	}()
	return fn(ctx, c)
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
