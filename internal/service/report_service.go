package service

import (
	"context"
	"errors"
	"sort"

	"foodloop/internal/report"
	"foodloop/internal/repository"
)

// ErrNoData indicates there is nothing to chart; the renderer is not invoked.
var ErrNoData = errors.New("no data available for visualization")

// ReportService aggregates donation quantities and hands them to the chart
// renderer collaborator.
type ReportService interface {
	TotalsByArea(ctx context.Context) (map[string]int, error)
	Chart(ctx context.Context) error
}

type reportService struct {
	items    repository.InventoryRepository
	renderer report.Renderer
}

func NewReportService(items repository.InventoryRepository, renderer report.Renderer) ReportService {
	return &reportService{
		items:    items,
		renderer: renderer,
	}
}

// TotalsByArea maps each area with at least one item to its summed quantity.
// Areas without items never appear, not even with a zero value.
func (s *reportService) TotalsByArea(ctx context.Context) (map[string]int, error) {
	return s.items.TotalsByArea(ctx)
}

// Chart renders one bar per area, sorted by area name for a stable layout.
// Returns ErrNoData when the inventory is empty.
func (s *reportService) Chart(ctx context.Context) error {
	totals, err := s.items.TotalsByArea(ctx)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		return ErrNoData
	}

	areas := make([]string, 0, len(totals))
	for area := range totals {
		areas = append(areas, area)
	}
	sort.Strings(areas)

	bars := make([]report.Bar, 0, len(areas))
	for _, area := range areas {
		bars = append(bars, report.Bar{Area: area, Total: totals[area]})
	}
	return s.renderer.Render(bars)
}
