// Package report renders the optimal schedule set as a line-based text
// report.
package report

import (
	"fmt"
	"io"

	"github.com/mvaneyck/posology/core/dose"
	"github.com/mvaneyck/posology/core/schedule"
)

// Params describes the run whose result is being rendered.
type Params struct {
	Dosages    dose.Set
	MaxPeriod  int
	Enumerated int
}

// Write renders a parameter header followed by one fixed-width line per
// optimal schedule, ascending by mean.
func Write(w io.Writer, params Params, optimal []schedule.Schedule) error {
	header := fmt.Sprintf(
		"# posology - optimal periodic dosing schedules\n"+
			"#\n"+
			"# Parameters:\n"+
			"#   dosages:    %s\n"+
			"#   max-period: %d\n"+
			"#\n"+
			"# %d schedules enumerated, %d optimal.\n\n",
		params.Dosages, params.MaxPeriod, params.Enumerated, len(optimal))
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	for _, s := range optimal {
		enc, err := s.Encoding()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "mean %10.6f    stddev %10.6f    period %6d    schedule  %s\n",
			s.Mean(), s.StdDev(), s.Period(), enc)
		if err != nil {
			return err
		}
	}
	return nil
}
