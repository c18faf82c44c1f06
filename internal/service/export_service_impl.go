package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/atajados/internal/contract"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/export"
	"github.com/alexanderramin/atajados/internal/progress"
	"github.com/alexanderramin/atajados/internal/repository"
	"golang.org/x/sync/errgroup"
)

type exportService struct {
	units       repository.UnitRepo
	reports     ReportService
	hoursPerDay int
	observer    UseCaseObserver
}

func NewExportService(units repository.UnitRepo, reports ReportService, hoursPerDay int, observers ...UseCaseObserver) ExportService {
	return &exportService{units: units, reports: reports, hoursPerDay: hoursPerDay, observer: useCaseObserverOrNoop(observers)}
}

// Export writes items, units, the per-unit summary and the schedule to an
// .xlsx workbook.
func (s *exportService) Export(ctx context.Context, path string) (err error) {
	defer observe(ctx, s.observer, "export", time.Now().UTC(), map[string]any{"path": path}, &err)

	// The four reads are independent; on a pinned in-memory database they
	// simply queue for the one connection.
	var (
		breakdown []progress.ItemLine
		units     []*domain.Unit
		summaries []contract.UnitSummary
		sched     *contract.ScheduleView
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		breakdown, err = s.reports.ItemBreakdown(gctx)
		return err
	})
	g.Go(func() (err error) {
		if units, err = s.units.List(gctx); err != nil {
			return fmt.Errorf("loading units: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		summaries, err = s.reports.UnitSummaries(gctx)
		return err
	})
	g.Go(func() (err error) {
		sched, err = s.reports.Schedule(gctx)
		return err
	})
	if err = g.Wait(); err != nil {
		return err
	}

	items := export.Sheet{
		Name:    "Items",
		Headers: []string{"ID", "Descripción", "Unidad", "Cantidad", "P.U.", "Costo", "Activo", "Avance %"},
	}
	for _, l := range breakdown {
		it := l.Item
		items.Rows = append(items.Rows, []any{it.ID, it.Name, it.UnitOfMeasure, it.Quantity, it.UnitPrice,
			l.Cost, it.Active, l.Fraction * 100})
	}

	unitSheet := export.Sheet{
		Name:    "Atajados",
		Headers: []string{"ID", "Número", "Comunidad", "Beneficiario", "CI", "Este", "Norte", "Inicio", "Fin", "Estado", "Observaciones"},
	}
	for _, u := range units {
		unitSheet.Rows = append(unitSheet.Rows, []any{u.ID, u.Number, u.Location, u.BeneficiaryName, u.NationalID,
			u.CoordE, u.CoordN, domain.FormatDate(u.StartDate), domain.FormatDate(u.EndDate), u.Status.Label(), u.Observations})
	}

	summary := export.Sheet{Name: "Resumen", Headers: []string{"Atajado", "Última fecha", "Avance %"}}
	for _, sm := range summaries {
		summary.Rows = append(summary.Rows, []any{sm.Label, domain.FormatDate(sm.LastRecorded), sm.Progress})
	}

	gantt := export.Sheet{Name: "Cronograma", Headers: []string{"Actividad", "Tipo", "Inicio", "Fin", "Días", "Horas"}}
	for _, t := range sched.Sorted {
		gantt.Rows = append(gantt.Rows, []any{t.Label, string(t.Kind), t.Start.Format(domain.DateLayout),
			t.End.Format(domain.DateLayout), t.Days(), t.Hours(s.hoursPerDay)})
	}

	return export.WriteXLSX(export.Workbook{Sheets: []export.Sheet{items, unitSheet, summary, gantt}}, path)
}
