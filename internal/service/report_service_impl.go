package service

import (
	"context"
	"fmt"
	"iter"
	"sort"
	"time"

	"github.com/alexanderramin/atajados/internal/contract"
	"github.com/alexanderramin/atajados/internal/domain"
	"github.com/alexanderramin/atajados/internal/progress"
	"github.com/alexanderramin/atajados/internal/repository"
	"github.com/alexanderramin/atajados/internal/schedule"
)

// reportService loads snapshots from the store and delegates every
// computation to the progress and schedule packages.
type reportService struct {
	items      repository.ItemRepo
	units      repository.UnitRepo
	records    repository.ProgressRepo
	milestones repository.MilestoneRepo
	photos     repository.PhotoRepo
	now        func() time.Time
	observer   UseCaseObserver
}

func NewReportService(
	items repository.ItemRepo,
	units repository.UnitRepo,
	records repository.ProgressRepo,
	milestones repository.MilestoneRepo,
	photos repository.PhotoRepo,
	observers ...UseCaseObserver,
) ReportService {
	return &reportService{
		items:      items,
		units:      units,
		records:    records,
		milestones: milestones,
		photos:     photos,
		now:        time.Now,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *reportService) snapshot(ctx context.Context) (progress.Snapshot, error) {
	items, err := s.items.List(ctx, repository.ItemFilter{})
	if err != nil {
		return progress.Snapshot{}, fmt.Errorf("loading items: %w", err)
	}
	records, err := s.records.List(ctx, repository.ProgressFilter{})
	if err != nil {
		return progress.Snapshot{}, fmt.Errorf("loading progress records: %w", err)
	}
	return progress.Snapshot{Items: items, Records: records}, nil
}

func (s *reportService) ProjectProgress(ctx context.Context) (pct float64, err error) {
	defer observe(ctx, s.observer, "project-progress", time.Now().UTC(), nil, &err)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return progress.ProjectProgress(snap), nil
}

func (s *reportService) UnitProgress(ctx context.Context, unitID int64) (pct float64, err error) {
	defer observe(ctx, s.observer, "unit-progress", time.Now().UTC(), map[string]any{"unit_id": unitID}, &err)

	if _, err = s.units.GetByID(ctx, unitID); err != nil {
		return 0, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return progress.UnitProgress(snap, unitID), nil
}

func (s *reportService) ItemBreakdown(ctx context.Context) ([]progress.ItemLine, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return progress.ItemBreakdown(snap), nil
}

func (s *reportService) UnitDetail(ctx context.Context, unitID int64) (detail *contract.UnitDetail, err error) {
	defer observe(ctx, s.observer, "unit-detail", time.Now().UTC(), map[string]any{"unit_id": unitID}, &err)

	unit, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading units: %w", err)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	photos, err := s.photos.ListByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return &contract.UnitDetail{
		Unit:     unit,
		Progress: progress.UnitProgress(snap, unitID),
		Lines:    progress.UnitLines(snap, unitID, len(units)),
		Photos:   photos,
	}, nil
}

// UnitSummaries lists every unit with its weighted progress, most recently
// recorded first. Units never recorded come last, by number.
func (s *reportService) UnitSummaries(ctx context.Context) (out []contract.UnitSummary, err error) {
	defer observe(ctx, s.observer, "unit-summaries", time.Now().UTC(), nil, &err)

	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading units: %w", err)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	out = make([]contract.UnitSummary, 0, len(units))
	for _, u := range units {
		out = append(out, contract.UnitSummary{
			Unit:         u,
			Label:        u.Label(),
			LastRecorded: progress.LastRecorded(snap.Records, u.ID),
			Progress:     progress.UnitProgress(snap, u.ID),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].LastRecorded, out[j].LastRecorded
		switch {
		case a == nil && b == nil:
			return false
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
	return out, nil
}

func (s *reportService) Dashboard(ctx context.Context) (view *contract.DashboardView, err error) {
	defer observe(ctx, s.observer, "dashboard", time.Now().UTC(), nil, &err)

	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading units: %w", err)
	}
	counts, err := s.units.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	view = &contract.DashboardView{
		TotalUnits:      len(units),
		ExecutedUnits:   counts[domain.UnitExecuted],
		InProgressUnits: counts[domain.UnitInProgress],
		ProjectProgress: progress.ProjectProgress(snap),
	}
	view.PendingUnits = view.TotalUnits - view.ExecutedUnits - view.InProgressUnits
	for _, l := range progress.ItemBreakdown(snap) {
		view.TotalCost += l.Cost
		view.ExecutedCost += l.Contribution()
	}
	return view, nil
}

func (s *reportService) BuildSchedule(ctx context.Context) (iter.Seq[schedule.Task], error) {
	milestones, err := s.milestones.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading milestones: %w", err)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.Build(milestones, snap.Items, snap.Records), nil
}

func (s *reportService) Schedule(ctx context.Context) (view *contract.ScheduleView, err error) {
	defer observe(ctx, s.observer, "schedule", time.Now().UTC(), nil, &err)

	seq, err := s.BuildSchedule(ctx)
	if err != nil {
		return nil, err
	}
	return contract.NewScheduleView(seq, s.now()), nil
}
