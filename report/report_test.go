package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaneyck/posology/core/dose"
	"github.com/mvaneyck/posology/core/schedule"
)

func TestWrite(t *testing.T) {
	set, err := dose.ParseSet("0,1")
	require.NoError(t, err)
	all, err := schedule.Enumerate(set, 2)
	require.NoError(t, err)
	optimal, err := schedule.Select(all)
	require.NoError(t, err)

	var buf bytes.Buffer
	params := Params{Dosages: set, MaxPeriod: 2, Enumerated: len(all)}
	require.NoError(t, Write(&buf, params, optimal))
	out := buf.String()

	assert.Contains(t, out, "#   dosages:    0,1")
	assert.Contains(t, out, "#   max-period: 2")
	assert.Contains(t, out, "# 5 schedules enumerated, 3 optimal.")

	want := fmt.Sprintf("mean %10.6f    stddev %10.6f    period %6d    schedule  %s", 0.5, 0.5, 2, "01")
	assert.Contains(t, out, want)

	var lines int
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "mean ") {
			lines++
		}
	}
	assert.Equal(t, 3, lines)
}
