package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvaneyck/posology/core/dose"
	"github.com/mvaneyck/posology/core/schedule"
)

func TestRender(t *testing.T) {
	set, err := dose.ParseSet("0,0.5,1,2")
	require.NoError(t, err)
	all, err := schedule.Enumerate(set, 5)
	require.NoError(t, err)
	optimal, err := schedule.Select(all)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "schedules.png")
	require.NoError(t, Render(path, optimal))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRender_Empty(t *testing.T) {
	err := Render(filepath.Join(t.TempDir(), "none.png"), nil)
	assert.Error(t, err)
}

func TestRender_SinglePeriod(t *testing.T) {
	set, err := dose.ParseSet("0,1")
	require.NoError(t, err)
	s, err := schedule.New(set, []int{0, 1})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "single.png")
	require.NoError(t, Render(path, []schedule.Schedule{s}))
}
