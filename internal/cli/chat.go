package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/memento/internal/container"
	"github.com/saulo-duarte/memento/internal/store"
)

func newChatCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk with the study assistant",
	}

	var projectID string
	sendCmd := &cobra.Command{
		Use:   "send [message]",
		Short: "Send a message and wait for the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
				id := projectID
				if id == "" {
					if p := c.Store.CurrentProject(); p != nil {
						id = p.ID
					}
				}
				if id != "" {
					if _, ok := c.Store.Project(id); !ok {
						return fmt.Errorf("chat send %s: %w", id, store.ErrProjectNotFound)
					}
				}
				msg, err := c.GenerationContainer.Service.Ask(ctx, id, strings.Join(args, " "))
				if err != nil {
					return err
				}
				c.GenerationContainer.Service.Wait()

				chat := c.Store.ProjectChat(id)
				for _, m := range chat {
					if m.Sender == store.SenderAI && !m.Timestamp.Before(msg.Timestamp) {
						fmt.Fprintln(opts.out, m.Content)
					}
				}
				return nil
			})
		},
	}
	sendCmd.Flags().StringVarP(&projectID, "project", "p", "", "project id (defaults to the current project)")

	var clearProject string
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the chat history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
				if clearProject != "" {
					c.Store.ClearProjectChat(clearProject)
					fmt.Fprintf(opts.out, "Cleared chat of %s\n", clearProject)
					return nil
				}
				c.Store.ClearChat()
				fmt.Fprintln(opts.out, "Cleared all chat messages")
				return nil
			})
		},
	}
	clearCmd.Flags().StringVarP(&clearProject, "project", "p", "", "only clear this project's conversation")

	cmd.AddCommand(sendCmd, clearCmd)
	return cmd
}
