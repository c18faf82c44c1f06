package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/contract"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import items or units from CSV or XLSX",
		Long: "Import items or units from a CSV or XLSX file. Every row is validated\n" +
			"first; a file with any invalid row is rejected and nothing is written.",
	}

	sub := func(use, short string, run func(context.Context, string) (*contract.ImportResult, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " FILE",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				res, err := run(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
				return nil
			},
		}
	}

	cmd.AddCommand(
		sub("items", "Import the bill of quantities (DESCRIPCIÓN, UNIDAD, CANT., P.U.)",
			func(ctx context.Context, path string) (*contract.ImportResult, error) {
				return app.Import.ImportItems(ctx, path)
			}),
		sub("units", "Import units (number, comunidad, beneficiario, ci, coord_e, coord_n)",
			func(ctx context.Context, path string) (*contract.ImportResult, error) {
				return app.Import.ImportUnits(ctx, path)
			}),
	)

	return cmd
}

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE.xlsx",
		Short: "Export items, units, summary and schedule to an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Export.Export(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported workbook to %s\n", args[0])
			return nil
		},
	}
}
