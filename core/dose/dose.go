package dose

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// ErrUnencodableDose indicates a dosage value that no encoding rule covers.
// The parenthesized-fraction fallback applies to every value the parsers can
// produce, so this only fires for doses built outside the constructors.
var ErrUnencodableDose = errors.New("dose: no encoding symbol for dosage")

// Dose is one day's medication amount: a non-negative exact rational,
// always a multiple of a quarter unit.
type Dose struct {
	r *big.Rat
}

var (
	half        = big.NewRat(1, 2)
	quarter     = big.NewRat(1, 4)
	threeHalves = big.NewRat(3, 2)
)

// Quantize rounds pills to the nearest quarter unit and returns the exact
// rational result.
func Quantize(pills float64) (Dose, error) {
	if math.IsNaN(pills) || math.IsInf(pills, 0) {
		return Dose{}, fmt.Errorf("dose: not a finite number: %v", pills)
	}
	if pills < 0 {
		return Dose{}, fmt.Errorf("dose: negative dosage %v", pills)
	}
	quarters := int64(math.Round(pills * 4))
	return Dose{r: big.NewRat(quarters, 4)}, nil
}

// Parse quantizes a decimal dosage string such as "0.5" or "2".
func Parse(s string) (Dose, error) {
	pills, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Dose{}, fmt.Errorf("dose: parse %q: %w", s, err)
	}
	return Quantize(pills)
}

func (d Dose) rat() *big.Rat {
	if d.r == nil {
		return new(big.Rat)
	}
	return d.r
}

// Rat returns a copy of the exact rational value.
func (d Dose) Rat() *big.Rat { return new(big.Rat).Set(d.rat()) }

// Float returns the dose as a float64 for presentation.
func (d Dose) Float() float64 {
	f, _ := d.rat().Float64()
	return f
}

// Cmp compares two doses, returning -1, 0 or +1.
func (d Dose) Cmp(o Dose) int { return d.rat().Cmp(o.rat()) }

// String returns the reduced fraction form, e.g. "3/2" or "2".
func (d Dose) String() string { return d.rat().RatString() }

// Symbol returns the one-symbol encoding used in schedule strings: integer
// doses 0-9 map to their digit, 1/2 to "h", 1/4 to "k" and 3/2 to "a". Any
// other value falls back to its reduced fraction in parentheses.
func (d Dose) Symbol() (string, error) {
	r := d.rat()
	if r.Sign() < 0 {
		return "", fmt.Errorf("%w: %s", ErrUnencodableDose, r.RatString())
	}
	if r.IsInt() {
		if n := r.Num().Int64(); n <= 9 {
			return strconv.FormatInt(n, 10), nil
		}
	}
	switch {
	case r.Cmp(half) == 0:
		return "h", nil
	case r.Cmp(quarter) == 0:
		return "k", nil
	case r.Cmp(threeHalves) == 0:
		return "a", nil
	}
	return "(" + r.RatString() + ")", nil
}
