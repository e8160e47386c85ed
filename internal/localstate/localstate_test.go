package localstate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T, dir string) *State {
	t.Helper()
	s, err := Open(dir)
	require.NoError(t, err)
	return s
}

func TestTokenExpiryAbsentByDefault(t *testing.T) {
	s := open(t, t.TempDir())
	_, ok := s.TokenExpiry()
	assert.False(t, ok)
}

func TestTokenExpiryRoundTrip(t *testing.T) {
	s := open(t, t.TempDir())
	want := time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

	require.NoError(t, s.SetTokenExpiry(want))
	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(want), "stored at millisecond precision")
}

func TestTokenExpirySurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	want := time.Now().Add(time.Hour).Truncate(time.Millisecond)
	require.NoError(t, open(t, dir).SetTokenExpiry(want))

	got, ok := open(t, dir).TokenExpiry()
	require.True(t, ok)
	assert.True(t, got.Equal(want))
}

func TestDeleteTokenExpiryKeepsPreferences(t *testing.T) {
	s := open(t, t.TempDir())
	require.NoError(t, s.SetTokenExpiry(time.Now()))
	require.NoError(t, s.SetSidebarCollapsed(true))

	require.NoError(t, s.DeleteTokenExpiry())

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
	assert.True(t, s.SidebarCollapsed(), "deleting the marker must not wipe preferences")
}

func TestSidebarDefaultsToExpanded(t *testing.T) {
	s := open(t, t.TempDir())
	assert.False(t, s.SidebarCollapsed())
}

func TestClearWipesEverything(t *testing.T) {
	s := open(t, t.TempDir())
	require.NoError(t, s.SetTokenExpiry(time.Now()))
	require.NoError(t, s.SetSidebarCollapsed(true))

	require.NoError(t, s.Clear())

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
	assert.False(t, s.SidebarCollapsed())

	// Clearing already-clear state is fine.
	require.NoError(t, s.Clear())
}

func TestCorruptFileBehavesAsEmpty(t *testing.T) {
	dir := t.TempDir()
	s := open(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte("{not json"), 0o600))

	_, ok := s.TokenExpiry()
	assert.False(t, ok)
	assert.False(t, s.SidebarCollapsed())

	// And is recoverable by the next write.
	require.NoError(t, s.SetTokenExpiry(time.UnixMilli(1234)))
	got, ok := s.TokenExpiry()
	require.True(t, ok)
	assert.Equal(t, int64(1234), got.UnixMilli())
}
