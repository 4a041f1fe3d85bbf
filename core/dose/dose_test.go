package dose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantize_RoundsToQuarters(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{0.5, "1/2"},
		{0.25, "1/4"},
		{1.5, "3/2"},
		{2, "2"},
		{0.3, "1/4"},  // 1.2 quarters rounds down
		{0.4, "1/2"},  // 1.6 quarters rounds up
		{1.62, "3/2"}, // 6.48 quarters rounds to 6
	}
	for _, c := range cases {
		d, err := Quantize(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, d.String(), "Quantize(%v)", c.in)
	}
}

func TestQuantize_Rejects(t *testing.T) {
	if _, err := Quantize(-0.5); err == nil {
		t.Fatalf("expected error for negative dosage")
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("0.75")
	require.NoError(t, err)
	assert.Equal(t, "3/4", d.String())
	assert.InDelta(t, 0.75, d.Float(), 0)

	_, err = Parse("two")
	assert.Error(t, err)
}

func TestSymbol(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"9", "9"},
		{"0.5", "h"},
		{"0.25", "k"},
		{"1.5", "a"},
		{"1.25", "(5/4)"},
		{"3.5", "(7/2)"},
		{"12", "(12)"},
	}
	for _, c := range cases {
		d, err := Parse(c.in)
		require.NoError(t, err)
		sym, err := d.Symbol()
		require.NoError(t, err)
		assert.Equal(t, c.want, sym, "Symbol of %s", c.in)
	}
}

func TestParseSet(t *testing.T) {
	set, err := ParseSet("2, 1,0.5,1")
	require.NoError(t, err)
	assert.Equal(t, "1/2,1,2", set.String())
	assert.Equal(t, []float64{0.5, 1, 2}, set.Floats())

	_, err = ParseSet("")
	assert.Error(t, err)
	_, err = ParseSet("1,x")
	assert.Error(t, err)
	_, err = ParseSet("1,-1")
	assert.Error(t, err)
}
