package cli

import (
	"fmt"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPhotoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "photo",
		Aliases: []string{"photos"},
		Short:   "Attach photos to units",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add UNIT_ID FILE",
			Short: "Copy a photo into the photo store and attach it to a unit",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				unitID, err := parseID(args[0])
				if err != nil {
					return err
				}
				p, err := app.Photos.Attach(cmd.Context(), unitID, args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Attached photo #%d %s to unit #%d\n", p.ID, p.OriginalName, unitID)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list UNIT_ID",
			Short: "List the photos of a unit",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				unitID, err := parseID(args[0])
				if err != nil {
					return err
				}
				photos, err := app.Photos.ListByUnit(cmd.Context(), unitID)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPhotoList(photos))
				return nil
			},
		},
		&cobra.Command{
			Use:     "rm ID",
			Aliases: []string{"remove"},
			Short:   "Detach and delete a photo",
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				if err := app.Photos.Remove(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted photo #%d\n", id)
				return nil
			},
		},
	)

	return cmd
}
