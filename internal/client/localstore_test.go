package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	s := OpenLocalStore(dir)
	s.Set("k", map[string]int{"a": 1})

	var got map[string]int
	require.True(t, s.Get("k", &got))
	assert.Equal(t, map[string]int{"a": 1}, got)

	// Written through: a fresh open sees the value.
	reopened := OpenLocalStore(dir)
	got = nil
	require.True(t, reopened.Get("k", &got))
	assert.Equal(t, map[string]int{"a": 1}, got)
}

func TestLocalStore_MissingKey(t *testing.T) {
	s := OpenLocalStore(t.TempDir())

	var got string
	assert.False(t, s.Get("absent", &got))
}

func TestLocalStore_Delete(t *testing.T) {
	dir := t.TempDir()

	s := OpenLocalStore(dir)
	s.Set("k", 1)
	s.Delete("k")

	var got int
	assert.False(t, s.Get("k", &got))
	assert.False(t, OpenLocalStore(dir).Get("k", &got))
}

func TestLocalStore_CorruptStateFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFile), []byte("{oops"), 0o644))

	s := OpenLocalStore(dir)

	var got string
	assert.False(t, s.Get("k", &got))

	// Still usable after the bad start.
	s.Set("k", "v")
	require.True(t, s.Get("k", &got))
	assert.Equal(t, "v", got)
}
