package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/atajados/internal/contract"
	"github.com/alexanderramin/atajados/internal/domain"
)

// FormatUnitList renders units as a table ordered as given.
func FormatUnitList(units []*domain.Unit) string {
	if len(units) == 0 {
		return Dim("No units found.") + "\n"
	}

	headers := []string{"ID", "NO", "COMMUNITY", "BENEFICIARY", "CI", "STATUS", "START", "END"}
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", u.ID)),
			fmt.Sprintf("%d", u.Number),
			u.Location,
			u.BeneficiaryName,
			u.NationalID,
			StatusIndicator(u.Status),
			DateOrDash(u.StartDate),
			DateOrDash(u.EndDate),
		})
	}
	return RenderTable(headers, rows, 1)
}

// FormatUnitDetail renders a unit with its per-item progress lines.
func FormatUnitDetail(d *contract.UnitDetail) string {
	u := d.Unit
	var b strings.Builder

	b.WriteString(Bold(u.Label()) + "\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("community:  "), u.Location))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("national id:"), u.NationalID))
	b.WriteString(fmt.Sprintf("  %s %.2f E / %.2f N\n", Dim("coordinates:"), u.CoordE, u.CoordN))
	b.WriteString(fmt.Sprintf("  %s %s → %s\n", Dim("dates:      "), DateOrDash(u.StartDate), DateOrDash(u.EndDate)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("status:     "), StatusIndicator(u.Status)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("progress:   "), RenderProgress(d.Progress, 20)))
	if u.Observations != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("notes:      "), u.Observations))
	}
	b.WriteString("\n")

	if len(d.Lines) == 0 {
		b.WriteString(Dim("No active items.") + "\n")
	} else {
		headers := []string{"ITEM", "NAME", "QTY", "COST", "PROGRESS", "RECORDED", "INTERVAL"}
		rows := make([][]string, 0, len(d.Lines))
		for _, l := range d.Lines {
			interval := Dim("--")
			if l.IntervalStart != nil && l.IntervalEnd != nil {
				interval = fmt.Sprintf("%s → %s", DateOrDash(l.IntervalStart), DateOrDash(l.IntervalEnd))
			}
			rows = append(rows, []string{
				Dim(fmt.Sprintf("#%d", l.Item.ID)),
				Truncate(l.Item.Name, itemNameWidth),
				fmt.Sprintf("%s %s", Quantity(l.Quantity), l.Item.UnitOfMeasure),
				Money(l.Cost),
				RenderProgress(l.Percent, 10),
				DateOrDash(l.RecordedOn),
				interval,
			})
		}
		b.WriteString(RenderTable(headers, rows, 3))
	}

	if len(d.Photos) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatPhotoList(d.Photos))
	}
	return b.String()
}

// FormatPhotoList renders the photos attached to a unit.
func FormatPhotoList(photos []*domain.UnitPhoto) string {
	if len(photos) == 0 {
		return Dim("No photos attached.") + "\n"
	}
	headers := []string{"ID", "NAME", "ADDED", "PATH"}
	rows := make([][]string, 0, len(photos))
	for _, p := range photos {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", p.ID)),
			p.OriginalName,
			p.AddedAt.Format(domain.DateLayout),
			Dim(p.Path),
		})
	}
	return RenderTable(headers, rows)
}
