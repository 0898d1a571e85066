package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nictuku/ooosplits/editor"
	"github.com/nictuku/ooosplits/run"
	"github.com/nictuku/ooosplits/timing"
)

func newTestRun(t *testing.T) *run.Run {
	t.Helper()
	r := run.New()
	r.GameName = "Test Game"
	r.CategoryName = "Any%"
	e := editor.New(r)
	e.InsertSegmentBelow(-1, "Level 1")
	e.InsertSegmentBelow(0, "Level 2")
	closed, err := e.Close()
	require.NoError(t, err)
	return closed
}

func TestSaveAndLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.db")
	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	r := newTestRun(t)
	d := timing.FromSeconds(12.5)
	r.Segments()[0].SetPersonalBestSplitTime(timing.Time{Real: &d})

	require.NoError(t, st.Save(r))

	loaded, err := st.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Test Game", loaded.GameName)
	require.Len(t, loaded.Segments(), 2)
	assert.Equal(t, "Level 1", loaded.Segments()[0].Name())
	require.NotNil(t, loaded.Segments()[0].PersonalBestSplitTime().Real)
	assert.Equal(t, d, *loaded.Segments()[0].PersonalBestSplitTime().Real)
}

func TestLoadOnEmptyDatabaseReturnsNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSaveTwiceReplacesPreviousState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.db")
	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	r := newTestRun(t)
	require.NoError(t, st.Save(r))

	e := editor.New(r)
	e.InsertSegmentBelow(1, "Level 3")
	closed, err := e.Close()
	require.NoError(t, err)
	require.NoError(t, st.Save(closed))

	loaded, err := st.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Segments(), 3)
	assert.Equal(t, "Level 3", loaded.Segments()[2].Name())
}
