package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/progress"
)

const itemNameWidth = 40

// FormatItemList renders cost items as a table.
func FormatItemList(items []*domain.CostItem) string {
	if len(items) == 0 {
		return Dim("No cost items found.") + "\n"
	}

	headers := []string{"ID", "NAME", "UNIT", "QTY", "UNIT PRICE", "COST", "STATE", "MANUAL %"}
	rows := make([][]string, 0, len(items))
	var total float64
	for _, it := range items {
		total += it.Cost()
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", it.ID)),
			Truncate(it.Name, itemNameWidth),
			it.UnitOfMeasure,
			Quantity(it.Quantity),
			Money(it.UnitPrice),
			Money(it.Cost()),
			ActiveIndicator(it.Active),
			Percent(it.Progress),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows, 3, 4, 5, 7))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("items:"), Bold(fmt.Sprintf("%d", len(items))),
		Dim("total cost:"), Bold(Money(total))))
	return b.String()
}

// FormatItem renders a single cost item.
func FormatItem(it *domain.CostItem) string {
	var b strings.Builder
	b.WriteString(Bold(it.Name) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("id:        "), fmt.Sprintf("#%d", it.ID)))
	b.WriteString(fmt.Sprintf("  %s %s %s\n", Dim("quantity:  "), Quantity(it.Quantity), it.UnitOfMeasure))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("unit price:"), Money(it.UnitPrice)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("cost:      "), Money(it.Cost())))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("state:     "), ActiveIndicator(it.Active)))
	if !it.Active {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("progress:  "), RenderProgress(it.Progress, 20)))
	}
	return b.String()
}

// FormatBreakdown renders each item's share of project progress.
func FormatBreakdown(lines []progress.ItemLine) string {
	if len(lines) == 0 {
		return Dim("No cost items found.") + "\n"
	}

	headers := []string{"ID", "NAME", "COST", "DONE", "EXECUTED", "RECORDS"}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		records := Dim("manual")
		if l.Item.Active {
			records = fmt.Sprintf("%d", l.Records)
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", l.Item.ID)),
			Truncate(l.Item.Name, itemNameWidth),
			Money(l.Cost),
			RenderProgress(l.Fraction*100, 10),
			Money(l.Contribution()),
			records,
		})
	}
	return RenderTable(headers, rows, 2, 4)
}
