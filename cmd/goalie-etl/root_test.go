package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/goalie-stats/internal/store"
)

func TestMissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Usage:")
	assert.Contains(t, stderr.String(), "accepts 1 arg(s), received 0")
	assert.Empty(t, stdout.String())
}

func TestUnsupportedDatabaseURL(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"--base-dir", t.TempDir(), "mysql://root@localhost/db"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "unsupported")
	assert.NotContains(t, stderr.String(), "Usage:")
}

func TestInvalidLogLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"--log-level", "loud", "sqlite://" + filepath.Join(t.TempDir(), "g.db")}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid config")
}

func TestLoadEndToEnd(t *testing.T) {
	base := t.TempDir()
	mp := filepath.Join(base, "mp")
	require.NoError(t, os.MkdirAll(mp, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(mp, "mp_Regular_Season_2022.csv"),
		[]byte("Name,GP,SV%\n123John Doe,55,91.2%\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(mp, "badname.csv"), []byte("Name\nX\n"), 0o644))

	dbPath := filepath.Join(t.TempDir(), "goalies.db")
	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), []string{"--base-dir", base, "sqlite://" + dbPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "data loading complete")
	assert.Contains(t, out, `"table":"goalies"`)
	assert.Contains(t, out, `"dialect":"sqlite"`)
	assert.Contains(t, out, "mp_Regular_Season_2022.csv")
	assert.Contains(t, out, "badname.csv")

	s, err := store.NewStore("sqlite://" + dbPath)
	require.NoError(t, err)
	defer s.Close()
	n, err := s.Count(context.Background(), store.Filter{Player: "john"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
