package cli

import (
	"fmt"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "item",
		Aliases: []string{"items"},
		Short:   "Manage cost items of the bill of quantities",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemShowCmd(app),
		newItemUpdateCmd(app),
		newItemActiveCmd(app, "activate", true),
		newItemActiveCmd(app, "deactivate", false),
		newItemSetProgressCmd(app),
		newItemBreakdownCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var name, uom string
	var active bool
	qty := newAmountFlag("quantity")
	price := newAmountFlag("unit_price")

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a cost item",
		RunE: func(cmd *cobra.Command, args []string) error {
			it := &domain.CostItem{
				Name:          name,
				UnitOfMeasure: uom,
				Quantity:      qty.v,
				UnitPrice:     price.v,
				Active:        active,
			}
			if err := app.Items.Create(cmd.Context(), it); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created item #%d %s\n", it.ID, it.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item description")
	cmd.Flags().StringVar(&uom, "unit", "", "Unit of measure (m3, kg, gl, ...)")
	cmd.Flags().Var(qty, "qty", "Quantity")
	cmd.Flags().Var(price, "price", "Unit price")
	cmd.Flags().BoolVar(&active, "active", false, "Track progress per unit instead of manually")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("qty")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var activeOnly bool
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cost items",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := repository.ItemFilter{Search: search}
			if activeOnly {
				f.Active = &activeOnly
			}
			items, err := app.Items.List(cmd.Context(), f)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItemList(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only items tracked per unit")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name substring")

	return cmd
}

func newItemShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a cost item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			it, err := app.Items.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItem(it))
			return nil
		},
	}
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var name, uom string
	qty := newAmountFlag("quantity")
	price := newAmountFlag("unit_price")

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a cost item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			it, err := app.Items.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				it.Name = name
			}
			if cmd.Flags().Changed("unit") {
				it.UnitOfMeasure = uom
			}
			if cmd.Flags().Changed("qty") {
				it.Quantity = qty.v
			}
			if cmd.Flags().Changed("price") {
				it.UnitPrice = price.v
			}

			if err := app.Items.Update(cmd.Context(), it); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated item #%d %s\n", it.ID, it.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item description")
	cmd.Flags().StringVar(&uom, "unit", "", "Unit of measure")
	cmd.Flags().Var(qty, "qty", "Quantity")
	cmd.Flags().Var(price, "price", "Unit price")

	return cmd
}

func newItemActiveCmd(app *App, use string, active bool) *cobra.Command {
	short := "Track an item's progress per unit"
	if !active {
		short = "Track an item's progress manually"
	}
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Items.SetActive(cmd.Context(), id, active); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item #%d %sd\n", id, use)
			return nil
		},
	}
}

func newItemSetProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set-progress ID PERCENT",
		Short: "Set the manual progress of an inactive item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			pct, err := domain.ParsePercent(args[1])
			if err != nil {
				return err
			}
			if err := app.Items.SetProgress(cmd.Context(), id, pct); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item #%d progress set to %s\n", id, formatter.Percent(pct))
			return nil
		},
	}
}

func newItemBreakdownCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "breakdown",
		Short: "Show each item's contribution to project progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := app.Reports.ItemBreakdown(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBreakdown(lines))
			return nil
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a cost item and its progress records",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item #%d\n", id)
			return nil
		},
	}
}
