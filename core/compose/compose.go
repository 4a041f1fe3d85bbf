// Package compose enumerates compositions: ordered assignments of
// non-negative day counts to dosage slots summing to a target period.
package compose

import "gonum.org/v1/gonum/stat/combin"

// Generate returns every composition of total into numSlots non-negative
// integer parts. The last slot takes each value from 0 to total and the
// remainder is decomposed recursively, so the order is deterministic. The
// result count is C(total+numSlots-1, numSlots-1); callers must bound both
// arguments, there is no internal guard against runaway enumeration.
func Generate(numSlots, total int) [][]int {
	if numSlots < 0 || total < 0 {
		return nil
	}
	if numSlots == 0 {
		if total == 0 {
			return [][]int{{}}
		}
		return nil
	}
	var out [][]int
	for last := 0; last <= total; last++ {
		for _, head := range Generate(numSlots-1, total-last) {
			counts := make([]int, numSlots)
			copy(counts, head)
			counts[numSlots-1] = last
			out = append(out, counts)
		}
	}
	return out
}

// Count returns the number of compositions Generate(numSlots, total) yields,
// without enumerating them.
func Count(numSlots, total int) int {
	if numSlots < 0 || total < 0 {
		return 0
	}
	if numSlots == 0 {
		if total == 0 {
			return 1
		}
		return 0
	}
	return combin.Binomial(total+numSlots-1, numSlots-1)
}

// TotalCount returns the number of compositions over all periods from 1
// through maxPeriod. The service checks this against its enumeration guard
// before generating anything.
func TotalCount(numSlots, maxPeriod int) int {
	total := 0
	for period := 1; period <= maxPeriod; period++ {
		total += Count(numSlots, period)
	}
	return total
}
