// Package schedule models periodic dosing schedules and selects, per
// achievable mean dose, the schedule with minimum variability.
package schedule

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/mvaneyck/posology/core/compose"
	"github.com/mvaneyck/posology/core/dose"
)

// ErrInvalidSchedule indicates a composition whose length disagrees with the
// dosage set's cardinality. Defensive: generator output always matches.
var ErrInvalidSchedule = errors.New("schedule: composition does not match dosage set")

// Schedule pairs a dosage set with one composition of day counts over it.
// It is a value object; every derived quantity is recomputed on demand.
type Schedule struct {
	doses  dose.Set
	counts []int
}

// New builds a Schedule, failing fast when the composition's length does not
// match the dosage set's cardinality.
func New(doses dose.Set, counts []int) (Schedule, error) {
	if len(counts) != len(doses) {
		return Schedule{}, fmt.Errorf("%w: %d counts for %d doses", ErrInvalidSchedule, len(counts), len(doses))
	}
	return Schedule{doses: doses, counts: counts}, nil
}

// Enumerate builds every schedule over the dosage set with period 1 through
// maxPeriod, one generator pass per period.
func Enumerate(doses dose.Set, maxPeriod int) ([]Schedule, error) {
	out := make([]Schedule, 0, compose.TotalCount(len(doses), maxPeriod))
	for period := 1; period <= maxPeriod; period++ {
		for _, counts := range compose.Generate(len(doses), period) {
			s, err := New(doses, counts)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}

// Counts returns a copy of the per-dose day counts, in ascending dose order.
func (s Schedule) Counts() []int {
	out := make([]int, len(s.counts))
	copy(out, s.counts)
	return out
}

// Period returns the cycle length in days.
func (s Schedule) Period() int {
	period := 0
	for _, c := range s.counts {
		period += c
	}
	return period
}

// MeanRat returns the exact long-run average daily dose. A zero period
// yields a zero mean.
func (s Schedule) MeanRat() *big.Rat {
	period := s.Period()
	if period == 0 {
		return new(big.Rat)
	}
	sum := new(big.Rat)
	for i, c := range s.counts {
		if c == 0 {
			continue
		}
		term := s.doses[i].Rat()
		term.Mul(term, big.NewRat(int64(c), 1))
		sum.Add(sum, term)
	}
	return sum.Quo(sum, big.NewRat(int64(period), 1))
}

// Mean returns the mean as a float64 for presentation and reporting.
func (s Schedule) Mean() float64 {
	f, _ := s.MeanRat().Float64()
	return f
}

// VarianceRat returns the exact population variance of the daily dose over
// one period.
func (s Schedule) VarianceRat() *big.Rat {
	period := s.Period()
	if period == 0 {
		return new(big.Rat)
	}
	mean := s.MeanRat()
	sum := new(big.Rat)
	for i, c := range s.counts {
		if c == 0 {
			continue
		}
		dev := s.doses[i].Rat()
		dev.Sub(dev, mean)
		dev.Mul(dev, dev)
		dev.Mul(dev, big.NewRat(int64(c), 1))
		sum.Add(sum, dev)
	}
	return sum.Quo(sum, big.NewRat(int64(period), 1))
}

// StdDev returns the standard deviation of the daily dose.
func (s Schedule) StdDev() float64 {
	v, _ := s.VarianceRat().Float64()
	return math.Sqrt(v)
}

// Encoding returns the compact schedule string: each dose's symbol repeated
// count times, concatenated in ascending dose order, zero counts omitted.
func (s Schedule) Encoding() (string, error) {
	var b strings.Builder
	for i, c := range s.counts {
		if c == 0 {
			continue
		}
		sym, err := s.doses[i].Symbol()
		if err != nil {
			return "", err
		}
		b.WriteString(strings.Repeat(sym, c))
	}
	return b.String(), nil
}

// String implements fmt.Stringer. Unencodable doses cannot come out of the
// parsers, so the error case collapses to a marker.
func (s Schedule) String() string {
	enc, err := s.Encoding()
	if err != nil {
		return "<unencodable>"
	}
	return enc
}
