// Package app orchestrates one batch computation: enumerate, select, report.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mvaneyck/posology/config"
	"github.com/mvaneyck/posology/core/compose"
	"github.com/mvaneyck/posology/core/dose"
	"github.com/mvaneyck/posology/core/schedule"
	"github.com/mvaneyck/posology/infra/logger"
	"github.com/mvaneyck/posology/infra/plot"
	"github.com/mvaneyck/posology/pkg/export"
	"github.com/mvaneyck/posology/report"
)

// ErrTooManySchedules indicates a run whose theoretical enumeration size
// exceeds the configured guard. Checked before anything is generated.
var ErrTooManySchedules = errors.New("app: enumeration would exceed the schedule limit")

// Service runs the schedule engine against one configuration.
type Service struct {
	cfg *config.Config
	out io.Writer
	log logger.Logger
}

// New creates a Service writing its report to out.
func New(cfg *config.Config, out io.Writer) *Service {
	return &Service{cfg: cfg, out: out, log: logger.New("service")}
}

// Solve enumerates every schedule up to the configured max period and
// reduces the collection to one optimal schedule per achievable mean.
func (s *Service) Solve(ctx context.Context) (dose.Set, []schedule.Schedule, int, error) {
	doses, err := dose.ParseSet(s.cfg.Dosages)
	if err != nil {
		return nil, nil, 0, err
	}

	total := compose.TotalCount(len(doses), s.cfg.MaxPeriod)
	if total > s.cfg.MaxSchedules {
		return nil, nil, 0, fmt.Errorf("%w: %d dosages over %d days yield %d schedules, limit is %d",
			ErrTooManySchedules, len(doses), s.cfg.MaxPeriod, total, s.cfg.MaxSchedules)
	}

	s.log.Infof("enumerating %d dosage schedules (%d dosages, max period %d)", total, len(doses), s.cfg.MaxPeriod)
	all, err := schedule.Enumerate(doses, s.cfg.MaxPeriod)
	if err != nil {
		return nil, nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	optimal, err := schedule.Select(all)
	if err != nil {
		return nil, nil, 0, err
	}
	s.log.Infof("%d optimal dosage schedules found", len(optimal))
	return doses, optimal, total, nil
}

// Run performs the whole batch: solve, write the report, then the optional
// JSON, CSV and plot outputs.
func (s *Service) Run(ctx context.Context) error {
	doses, optimal, total, err := s.Solve(ctx)
	if err != nil {
		return err
	}

	params := report.Params{Dosages: doses, MaxPeriod: s.cfg.MaxPeriod, Enumerated: total}
	if err := report.Write(s.out, params, optimal); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	out := s.cfg.Output
	if out.JSONPath != "" || out.CSVPath != "" {
		rep, err := export.NewReport(doses, s.cfg.MaxPeriod, optimal)
		if err != nil {
			return err
		}
		if out.JSONPath != "" {
			if err := writeFile(out.JSONPath, func(w io.Writer) error { return export.WriteJSON(w, rep) }); err != nil {
				return fmt.Errorf("write json: %w", err)
			}
			s.log.Infof("wrote JSON export to %s", out.JSONPath)
		}
		if out.CSVPath != "" {
			if err := writeFile(out.CSVPath, func(w io.Writer) error { return export.WriteCSV(w, rep) }); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			s.log.Infof("wrote CSV export to %s", out.CSVPath)
		}
	}
	if out.PlotPath != "" {
		if err := plot.Render(out.PlotPath, optimal); err != nil {
			return fmt.Errorf("render plot: %w", err)
		}
		s.log.Infof("wrote scatter plot to %s", out.PlotPath)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
