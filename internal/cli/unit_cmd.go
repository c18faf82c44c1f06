package cli

import (
	"fmt"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/spf13/cobra"
)

// unitFlags are the editable unit fields shared by add and update.
type unitFlags struct {
	number       int
	location     string
	beneficiary  string
	nationalID   string
	coordE       *numberFlag
	coordN       *numberFlag
	start, end   dateFlag
	status       statusFlag
	observations string
}

func (f *unitFlags) register(cmd *cobra.Command) {
	f.coordE = newAmountFlag("coord_e")
	f.coordN = newAmountFlag("coord_n")

	cmd.Flags().IntVar(&f.number, "number", 0, "Unit number")
	cmd.Flags().StringVar(&f.location, "location", "", "Community")
	cmd.Flags().StringVar(&f.beneficiary, "beneficiary", "", "Beneficiary name")
	cmd.Flags().StringVar(&f.nationalID, "ci", "", "Beneficiary national ID")
	cmd.Flags().Var(f.coordE, "coord-e", "UTM easting")
	cmd.Flags().Var(f.coordN, "coord-n", "UTM northing")
	cmd.Flags().Var(&f.start, "start", "Start date (YYYY-MM-DD)")
	cmd.Flags().Var(&f.end, "end", "End date (YYYY-MM-DD)")
	cmd.Flags().Var(&f.status, "status", "pending, in_progress or executed (Spanish labels accepted)")
	cmd.Flags().StringVar(&f.observations, "notes", "", "Observations")
}

// apply copies the flags the user set onto u.
func (f *unitFlags) apply(cmd *cobra.Command, u *domain.Unit) {
	changed := cmd.Flags().Changed
	if changed("number") {
		u.Number = f.number
	}
	if changed("location") {
		u.Location = f.location
	}
	if changed("beneficiary") {
		u.BeneficiaryName = f.beneficiary
	}
	if changed("ci") {
		u.NationalID = f.nationalID
	}
	if changed("coord-e") {
		u.CoordE = f.coordE.v
	}
	if changed("coord-n") {
		u.CoordN = f.coordN.v
	}
	if changed("start") {
		u.StartDate = f.start.Time()
	}
	if changed("end") {
		u.EndDate = f.end.Time()
	}
	if changed("status") {
		u.Status = f.status.s
	}
	if changed("notes") {
		u.Observations = f.observations
	}
}

func newUnitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "unit",
		Aliases: []string{"units", "atajado"},
		Short:   "Manage construction units",
	}

	cmd.AddCommand(
		newUnitAddCmd(app),
		newUnitListCmd(app),
		newUnitShowCmd(app),
		newUnitUpdateCmd(app),
		newUnitRemoveCmd(app),
	)

	return cmd
}

func newUnitAddCmd(app *App) *cobra.Command {
	var f unitFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &domain.Unit{}
			f.apply(cmd, u)
			if err := app.Units.Create(cmd.Context(), u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created unit #%d %s\n", u.ID, u.Label())
			return nil
		},
	}

	f.register(cmd)
	_ = cmd.MarkFlagRequired("number")
	_ = cmd.MarkFlagRequired("beneficiary")

	return cmd
}

func newUnitListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List units",
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := app.Units.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnitList(units))
			return nil
		},
	}
}

func newUnitShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a unit with its per-item progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			detail, err := app.Reports.UnitDetail(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnitDetail(detail))
			return nil
		},
	}
}

func newUnitUpdateCmd(app *App) *cobra.Command {
	var f unitFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := app.Units.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			f.apply(cmd, u)
			if err := app.Units.Update(cmd.Context(), u); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated unit #%d %s\n", u.ID, u.Label())
			return nil
		},
	}

	f.register(cmd)

	return cmd
}

func newUnitRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a unit with its records and photos",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Units.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted unit #%d\n", id)
			return nil
		},
	}
}
