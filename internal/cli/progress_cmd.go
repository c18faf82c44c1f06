package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/spf13/cobra"
)

func newProgressCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Record and review per-unit item progress",
	}

	cmd.AddCommand(
		newProgressRecordCmd(app),
		newProgressListCmd(app),
		newProgressUpdateCmd(app),
		newProgressRemoveCmd(app),
	)

	return cmd
}

func newProgressRecordCmd(app *App) *cobra.Command {
	var unitID, itemID int64
	var recorded, start, end dateFlag
	pct := newPercentFlag()

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record the progress of an item on a unit",
		Long: "Record the progress of an item on a unit. The new record replaces any\n" +
			"earlier one for the same unit and item. Without flags on a terminal an\n" +
			"interactive form is shown.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			var rec *domain.ProgressRecord
			if flags.NFlag() == 0 && app.interactive() {
				r, err := promptProgress(ctx, app)
				if err != nil {
					return err
				}
				rec = r
			} else {
				for _, name := range []string{"unit", "item", "percent"} {
					if !flags.Changed(name) {
						return fmt.Errorf("required flag \"%s\" not set", name)
					}
				}
				rec = &domain.ProgressRecord{
					UnitID:        unitID,
					ItemID:        itemID,
					Percent:       pct.v,
					IntervalStart: start.Time(),
					IntervalEnd:   end.Time(),
				}
				if t := recorded.Time(); t != nil {
					rec.RecordedOn = *t
				}
			}

			if err := app.Progress.Record(ctx, rec); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for item #%d on unit #%d (%s)\n",
				formatter.Percent(rec.Percent), rec.ItemID, rec.UnitID, rec.RecordedOn.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().Int64Var(&unitID, "unit", 0, "Unit ID")
	cmd.Flags().Int64Var(&itemID, "item", 0, "Cost item ID")
	cmd.Flags().Var(pct, "percent", "Percent complete (0-100)")
	cmd.Flags().Var(&recorded, "date", "Record date (YYYY-MM-DD, default today)")
	cmd.Flags().Var(&start, "start", "Work interval start (YYYY-MM-DD)")
	cmd.Flags().Var(&end, "end", "Work interval end (YYYY-MM-DD)")

	return cmd
}

func promptProgress(ctx context.Context, app *App) (*domain.ProgressRecord, error) {
	var fields progressFormFields
	form, err := progressForm(ctx, app, &fields)
	if err != nil {
		return nil, err
	}
	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}
	return fields.record()
}

func newProgressListCmd(app *App) *cobra.Command {
	var unitID, itemID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List progress records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			records, err := app.Progress.List(ctx, repository.ProgressFilter{UnitID: unitID, ItemID: itemID})
			if err != nil {
				return err
			}
			items, err := app.Items.List(ctx, repository.ItemFilter{})
			if err != nil {
				return err
			}
			names := make(map[int64]string, len(items))
			for _, it := range items {
				names[it.ID] = it.Name
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecordList(records, names))
			return nil
		},
	}

	cmd.Flags().Int64Var(&unitID, "unit", 0, "Only records of this unit")
	cmd.Flags().Int64Var(&itemID, "item", 0, "Only records of this item")

	return cmd
}

func newProgressUpdateCmd(app *App) *cobra.Command {
	var recorded, start, end dateFlag
	pct := newPercentFlag()

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Correct a progress record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			rec, err := app.Progress.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			changed := cmd.Flags().Changed
			if changed("percent") {
				rec.Percent = pct.v
			}
			if changed("date") && recorded.Time() != nil {
				rec.RecordedOn = *recorded.Time()
			}
			if changed("start") {
				rec.IntervalStart = start.Time()
			}
			if changed("end") {
				rec.IntervalEnd = end.Time()
			}

			if err := app.Progress.Update(cmd.Context(), rec); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated record #%d\n", rec.ID)
			return nil
		},
	}

	cmd.Flags().Var(pct, "percent", "Percent complete (0-100)")
	cmd.Flags().Var(&recorded, "date", "Record date (YYYY-MM-DD)")
	cmd.Flags().Var(&start, "start", "Work interval start (YYYY-MM-DD, empty clears)")
	cmd.Flags().Var(&end, "end", "Work interval end (YYYY-MM-DD, empty clears)")

	return cmd
}

func newProgressRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a progress record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Progress.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted record #%d\n", id)
			return nil
		},
	}
}
