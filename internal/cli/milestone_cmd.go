package cli

import (
	"fmt"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/spf13/cobra"
)

func newMilestoneCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "milestone",
		Aliases: []string{"milestones"},
		Short:   "Manage project milestones",
	}

	cmd.AddCommand(
		newMilestoneAddCmd(app),
		newMilestoneListCmd(app),
		newMilestoneUpdateCmd(app),
		newMilestoneRemoveCmd(app),
	)

	return cmd
}

func newMilestoneAddCmd(app *App) *cobra.Command {
	var name, notes string
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a milestone",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &domain.Milestone{Name: name, Notes: notes}
			if t := date.Time(); t != nil {
				m.Date = *t
			}
			if err := app.Milestones.Create(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created milestone #%d %s (%s)\n", m.ID, m.Name, m.Date.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Milestone name")
	cmd.Flags().Var(&date, "date", "Milestone date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newMilestoneListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := app.Milestones.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMilestoneList(ms))
			return nil
		},
	}
}

func newMilestoneUpdateCmd(app *App) *cobra.Command {
	var name, notes string
	var date dateFlag

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a milestone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			m, err := app.Milestones.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				m.Name = name
			}
			if cmd.Flags().Changed("date") && date.Time() != nil {
				m.Date = *date.Time()
			}
			if cmd.Flags().Changed("notes") {
				m.Notes = notes
			}
			if err := app.Milestones.Update(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated milestone #%d %s\n", m.ID, m.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Milestone name")
	cmd.Flags().Var(&date, "date", "Milestone date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")

	return cmd
}

func newMilestoneRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a milestone",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Milestones.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted milestone #%d\n", id)
			return nil
		},
	}
}
