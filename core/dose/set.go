package dose

import (
	"fmt"
	"sort"
	"strings"
)

// Set is a sorted, duplicate-free collection of allowed daily doses. Its
// cardinality is fixed for a whole run.
type Set []Dose

// ParseSet parses a comma-separated dosage list such as "0,0.5,1,2". Each
// entry is quantized to quarter units; the result is sorted ascending with
// duplicates removed.
func ParseSet(s string) (Set, error) {
	parts := strings.Split(s, ",")
	doses := make([]Dose, 0, len(parts))
	for _, p := range parts {
		d, err := Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		doses = append(doses, d)
	}
	sort.Slice(doses, func(i, j int) bool { return doses[i].Cmp(doses[j]) < 0 })

	set := make(Set, 0, len(doses))
	for _, d := range doses {
		if len(set) > 0 && set[len(set)-1].Cmp(d) == 0 {
			continue
		}
		set = append(set, d)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("dose: empty dosage set")
	}
	return set, nil
}

// Floats returns the doses as float64 values, in set order.
func (s Set) Floats() []float64 {
	out := make([]float64, len(s))
	for i, d := range s {
		out[i] = d.Float()
	}
	return out
}

// String joins the doses with commas, e.g. "0,1/2,1,2".
func (s Set) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return strings.Join(parts, ",")
}
