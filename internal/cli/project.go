package cli

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/memento/internal/container"
	"github.com/saulo-duarte/memento/internal/project"
)

func newProjectCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "p"},
		Short:   "Manage study projects",
	}

	var query string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List projects, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
				projects := c.ProjectContainer.Service.List(ctx, query)
				if len(projects) == 0 {
					fmt.Fprintln(opts.out, "No projects yet.")
					return nil
				}
				current := ""
				if p := c.Store.CurrentProject(); p != nil {
					current = p.ID
				}
				tw := tabwriter.NewWriter(opts.out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "\tID\tNAME\tSTATUS\tCARDS\tQUIZZES\tUPDATED")
				for _, p := range projects {
					marker := ""
					if p.ID == current {
						marker = "*"
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n", marker, p.ID, p.Name, p.Status, p.Flashcards, p.Quizzes, p.UpdatedDisplay)
				}
				return tw.Flush()
			})
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive name filter")

	createCmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a project and make it current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
				p, err := c.ProjectContainer.Service.Create(ctx, project.CreateProjectDTO{Name: args[0]})
				if err != nil {
					return err
				}
				fmt.Fprintf(opts.out, "Created %q (%s)\n", p.Name, p.ID)
				return nil
			})
		},
	}

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withContainer(cmd.Context(), func(ctx context.Context, c *container.Container) error {
				if err := c.ProjectContainer.Service.Delete(ctx, args[0], yes); err != nil {
					if errors.Is(err, project.ErrConfirmationRequired) {
						return fmt.Errorf("%w: pass --yes to delete %s", err, args[0])
					}
					return err
				}
				fmt.Fprintf(opts.out, "Deleted %s\n", args[0])
				return nil
			})
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")

	cmd.AddCommand(listCmd, createCmd, deleteCmd)
	return cmd
}
