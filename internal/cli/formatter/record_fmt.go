package formatter

import (
	"fmt"

	"github.com/alexanderramin/atajados/internal/domain"
)

// FormatRecordList renders progress records. names maps item IDs to item
// names; unknown IDs show the bare ID.
func FormatRecordList(records []*domain.ProgressRecord, names map[int64]string) string {
	if len(records) == 0 {
		return Dim("No progress records found.") + "\n"
	}

	headers := []string{"ID", "UNIT", "ITEM", "DATE", "PERCENT", "START", "END"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		item := fmt.Sprintf("#%d", r.ItemID)
		if name, ok := names[r.ItemID]; ok {
			item = fmt.Sprintf("#%d %s", r.ItemID, Truncate(name, itemNameWidth))
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", r.ID)),
			fmt.Sprintf("#%d", r.UnitID),
			item,
			r.RecordedOn.Format(domain.DateLayout),
			Percent(r.Percent),
			DateOrDash(r.IntervalStart),
			DateOrDash(r.IntervalEnd),
		})
	}
	return RenderTable(headers, rows, 4)
}

// FormatMilestoneList renders milestones in the given order.
func FormatMilestoneList(ms []*domain.Milestone) string {
	if len(ms) == 0 {
		return Dim("No milestones found.") + "\n"
	}
	headers := []string{"ID", "NAME", "DATE", "NOTES"}
	rows := make([][]string, 0, len(ms))
	for _, m := range ms {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("#%d", m.ID)),
			StylePurple.Render("◆ ") + m.Name,
			m.Date.Format(domain.DateLayout),
			Dim(m.Notes),
		})
	}
	return RenderTable(headers, rows)
}
