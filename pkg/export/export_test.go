package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaneyck/posology/core/dose"
	"github.com/mvaneyck/posology/core/schedule"
)

func buildReport(t *testing.T) Report {
	t.Helper()
	set, err := dose.ParseSet("0,1")
	require.NoError(t, err)
	all, err := schedule.Enumerate(set, 2)
	require.NoError(t, err)
	optimal, err := schedule.Select(all)
	require.NoError(t, err)
	rep, err := NewReport(set, 2, optimal)
	require.NoError(t, err)
	return rep
}

func TestNewReport_Metadata(t *testing.T) {
	rep := buildReport(t)
	_, err := uuid.Parse(rep.RunID)
	assert.NoError(t, err, "run_id must be a valid UUID")
	assert.Equal(t, "0,1", rep.Dosages)
	assert.Equal(t, 2, rep.MaxPeriod)
	assert.False(t, rep.GeneratedAt.IsZero())
	require.Len(t, rep.Entries, 3)
	assert.Equal(t, Entry{Mean: 0.5, StdDev: 0.5, Period: 2, Schedule: "01"}, rep.Entries[1])
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	rep := buildReport(t)
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, rep))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, rep.RunID, decoded.RunID)
	assert.Equal(t, rep.Entries, decoded.Entries)
}

func TestWriteCSV(t *testing.T) {
	rep := buildReport(t)
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rep))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, []string{"mean", "stddev", "period", "schedule"}, records[0])
	assert.Equal(t, []string{"0.5", "0.5", "2", "01"}, records[2])
}
