// Package export serializes the optimal schedule set for machine consumers.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mvaneyck/posology/core/dose"
	"github.com/mvaneyck/posology/core/schedule"
)

// Entry is one optimal schedule in exported form.
type Entry struct {
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"stddev"`
	Period   int     `json:"period"`
	Schedule string  `json:"schedule"`
}

// Report wraps the entries with run metadata so exported files are
// self-describing.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Dosages     string    `json:"dosages"`
	MaxPeriod   int       `json:"max_period"`
	Entries     []Entry   `json:"entries"`
}

// NewReport builds a Report from the optimal set, tagging it with a fresh
// run ID.
func NewReport(doses dose.Set, maxPeriod int, optimal []schedule.Schedule) (Report, error) {
	entries := make([]Entry, 0, len(optimal))
	for _, s := range optimal {
		enc, err := s.Encoding()
		if err != nil {
			return Report{}, err
		}
		entries = append(entries, Entry{
			Mean:     s.Mean(),
			StdDev:   s.StdDev(),
			Period:   s.Period(),
			Schedule: enc,
		})
	}
	return Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Dosages:     doses.String(),
		MaxPeriod:   maxPeriod,
		Entries:     entries,
	}, nil
}

// WriteJSON writes the report to w in JSON format.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	return enc.Encode(r)
}

// WriteCSV writes the report's entries to w in CSV format.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mean", "stddev", "period", "schedule"}); err != nil {
		return err
	}
	for _, e := range r.Entries {
		rec := []string{
			strconv.FormatFloat(e.Mean, 'f', -1, 64),
			strconv.FormatFloat(e.StdDev, 'f', -1, 64),
			strconv.Itoa(e.Period),
			e.Schedule,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
