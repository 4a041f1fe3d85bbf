package schedule

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
)

// ErrAmbiguousOptimum indicates a mean group in which two structurally
// different compositions coincide in mean, stddev and period, so the
// two-stage tie-break failed to reduce the group to one schedule. Fatal:
// the whole run aborts.
var ErrAmbiguousOptimum = errors.New("schedule: tie-break left multiple optimal schedules")

// Select groups schedules by their exact rational mean and keeps, for each
// mean, the single optimal schedule: minimum stddev first, then minimum
// period. The result ascends by mean, one schedule per achievable mean.
//
// Grouping on the reduced-fraction mean rather than its float64 image keeps
// means that are mathematically equal in one group regardless of rounding.
func Select(all []Schedule) ([]Schedule, error) {
	type group struct {
		mean    *big.Rat
		members []Schedule
	}
	byMean := make(map[string]*group)
	for _, s := range all {
		mean := s.MeanRat()
		key := mean.RatString()
		g, ok := byMean[key]
		if !ok {
			g = &group{mean: mean}
			byMean[key] = g
		}
		g.members = append(g.members, s)
	}

	groups := make([]*group, 0, len(byMean))
	for _, g := range byMean {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].mean.Cmp(groups[j].mean) < 0 })

	out := make([]Schedule, 0, len(groups))
	for _, g := range groups {
		best, err := reduce(g.members)
		if err != nil {
			return nil, fmt.Errorf("mean %s: %w", g.mean.RatString(), err)
		}
		out = append(out, best)
	}
	return out, nil
}

// reduce applies the two-stage tie-break to one mean group. Lower
// variability matters more than a shorter cycle, so stddev filters first.
func reduce(members []Schedule) (Schedule, error) {
	minVar := members[0].VarianceRat()
	for _, s := range members[1:] {
		if v := s.VarianceRat(); v.Cmp(minVar) < 0 {
			minVar = v
		}
	}
	var survivors []Schedule
	for _, s := range members {
		if s.VarianceRat().Cmp(minVar) == 0 {
			survivors = append(survivors, s)
		}
	}

	minPeriod := survivors[0].Period()
	for _, s := range survivors[1:] {
		if p := s.Period(); p < minPeriod {
			minPeriod = p
		}
	}
	var shortest []Schedule
	for _, s := range survivors {
		if s.Period() == minPeriod {
			shortest = append(shortest, s)
		}
	}

	if len(shortest) != 1 {
		return Schedule{}, fmt.Errorf("%w: %d schedules with stddev %.6f and period %d",
			ErrAmbiguousOptimum, len(shortest), shortest[0].StdDev(), minPeriod)
	}
	return shortest[0], nil
}
