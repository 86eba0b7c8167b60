package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndListSweep(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())

	points := []SweepPoint{
		{Mach: 0.1, FrictionCD: 0.01, PressureCD: 0.02, BaseCD: 0.03, CD: 0.06, Caxial: 0.06},
		{Mach: 0.2, FrictionCD: 0.011, PressureCD: 0.021, BaseCD: 0.031, CD: 0.063, Caxial: 0.063},
	}

	id, err := store.SaveSweep("alpha", 0, points)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	ids, err := store.List()
	require.NoError(t, err)
	require.Contains(t, ids, id)

	meta, err := store.LoadMetadata(id)
	require.NoError(t, err)
	require.Equal(t, "alpha", meta.Rocket)
	require.Equal(t, 2, meta.Points)
	require.InDelta(t, 0.1, meta.From, 1e-12)
	require.InDelta(t, 0.2, meta.To, 1e-12)
}

func TestSweepCSVContents(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	require.NoError(t, store.Init())

	id, err := store.SaveSweep("alpha", 2, []SweepPoint{
		{Mach: 0.5, FrictionCD: 0.01, PressureCD: 0.02, BaseCD: 0.03, CD: 0.06, Caxial: 0.061},
	})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, id, "sweep.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"mach", "friction_cd", "pressure_cd", "base_cd", "cd", "caxial"}, rows[0])
	require.Equal(t, "0.5", rows[1][0])
}

func TestSaveEmptySweepFails(t *testing.T) {
	store := New(t.TempDir())
	require.NoError(t, store.Init())
	_, err := store.SaveSweep("alpha", 0, nil)
	require.Error(t, err)
}

func TestListOnMissingDir(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nope"))
	ids, err := store.List()
	require.NoError(t, err)
	require.Empty(t, ids)
}
