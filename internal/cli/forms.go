package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/atajados/internal/cli/formatter"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func atajadosHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateOptionalDate accepts empty or YYYY-MM-DD.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validatePercentInput(s string) error {
	if _, err := domain.ParsePercent(s); err != nil {
		return fmt.Errorf("enter a percent between 0 and 100")
	}
	return nil
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("2025-06-30").
		Value(value).
		Validate(validateOptionalDate)
}

// progressFormFields is the raw text collected by the progress form.
type progressFormFields struct {
	unitID   int64
	itemID   int64
	percent  string
	recorded string
	start    string
	end      string
}

// record converts the form fields into a progress record. Empty dates stay
// unset; the service fills in today for a missing record date.
func (f *progressFormFields) record() (*domain.ProgressRecord, error) {
	pct, err := domain.ParsePercent(f.percent)
	if err != nil {
		return nil, err
	}
	rec := &domain.ProgressRecord{UnitID: f.unitID, ItemID: f.itemID, Percent: pct}

	var recorded, start, end dateFlag
	for _, d := range []struct {
		flag *dateFlag
		raw  string
	}{{&recorded, f.recorded}, {&start, f.start}, {&end, f.end}} {
		if err := d.flag.Set(d.raw); err != nil {
			return nil, err
		}
	}
	if recorded.t != nil {
		rec.RecordedOn = *recorded.t
	}
	rec.IntervalStart, rec.IntervalEnd = start.t, end.t
	return rec, nil
}

// progressForm asks for a unit, an active item, the percent and the
// optional dates of a progress record.
func progressForm(ctx context.Context, app *App, f *progressFormFields) (*huh.Form, error) {
	units, err := app.Units.List(ctx)
	if err != nil {
		return nil, err
	}
	active := true
	items, err := app.Items.List(ctx, repository.ItemFilter{Active: &active})
	if err != nil {
		return nil, err
	}
	if len(units) == 0 || len(items) == 0 {
		return nil, fmt.Errorf("progress needs at least one unit and one active item")
	}

	unitOpts := make([]huh.Option[int64], 0, len(units))
	for _, u := range units {
		unitOpts = append(unitOpts, huh.NewOption(u.Label(), u.ID))
	}
	itemOpts := make([]huh.Option[int64], 0, len(items))
	for _, it := range items {
		itemOpts = append(itemOpts, huh.NewOption(fmt.Sprintf("#%d %s", it.ID, it.Name), it.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int64]().Title("Unit").Options(unitOpts...).Value(&f.unitID),
			huh.NewSelect[int64]().Title("Item").Options(itemOpts...).Value(&f.itemID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Percent complete").
				Placeholder("50").
				Value(&f.percent).
				Validate(validatePercentInput),
			dateInput("Record date (blank for today)", &f.recorded),
			dateInput("Work started (optional)", &f.start),
			dateInput("Work finished (optional)", &f.end),
		),
	).WithTheme(atajadosHuhTheme()).WithShowHelp(false), nil
}
