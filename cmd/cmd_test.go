package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sysdesign/internal/progress"
)

// cliEnv isolates config lookup and storage in temp directories.
type cliEnv struct {
	t  *testing.T
	db string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("SYSDESIGN_DB", "")
	t.Setenv("SYSDESIGN_STORAGE", "")
	return &cliEnv{t: t, db: filepath.Join(t.TempDir(), "progress.db")}
}

func (e *cliEnv) run(args ...string) (string, string, error) {
	e.t.Helper()
	viper.Reset()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--db", e.db}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	env := newCLIEnv(t)
	out, _, err := env.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "sysdesign")
}

func TestSetStatusPersists(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run("set", "caching", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "caching")

	out, _, err = env.run("status", "caching")
	require.NoError(t, err)
	assert.Equal(t, "completed\n", out)

	out, _, err = env.run("status", "cdn")
	require.NoError(t, err)
	assert.Equal(t, "not-started\n", out)
}

func TestSetRejectsBadInput(t *testing.T) {
	env := newCLIEnv(t)

	_, _, err := env.run("set", "caching", "finished")
	require.ErrorIs(t, err, progress.ErrInvalidStatus)

	_, _, err = env.run("set", "no-such-topic", "completed")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = env.run("set", "no-such-topic", "completed", "--force")
	require.NoError(t, err)
}

func TestStatsJSON(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("set", "scalability", "completed")
	require.NoError(t, err)
	_, _, err = env.run("set", "sharding", "in-progress")
	require.NoError(t, err)

	out, _, err := env.run("stats", "--json")
	require.NoError(t, err)

	var stats struct {
		Total      int                       `json:"total"`
		ByStatus   map[string]int            `json:"byStatus"`
		ByCategory map[string]map[string]int `json:"byCategory"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, 16, stats.Total)
	assert.Equal(t, 1, stats.ByStatus["completed"])
	assert.Equal(t, 1, stats.ByStatus["in-progress"])
	assert.Equal(t, 14, stats.ByStatus["not-started"])
	assert.Equal(t, 0, stats.ByStatus["locked"])
	assert.Equal(t, map[string]int{"total": 4, "completed": 1}, stats.ByCategory["fundamentals"])
	assert.Equal(t, map[string]int{"total": 4, "completed": 0}, stats.ByCategory["patterns"])
}

func TestStatsRendered(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("set", "url-shortener", "completed")
	require.NoError(t, err)

	out, _, err := env.run("stats")
	require.NoError(t, err)
	for _, want := range []string{"Overall", "Fundamentals", "Building Blocks", "Patterns", "Problems", "1/3", "1/16"} {
		assert.Contains(t, out, want)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	env := newCLIEnv(t)
	_, _, err := env.run("set", "caching", "completed")
	require.NoError(t, err)

	_, _, err = env.run("reset")
	require.Error(t, err)

	out, _, err := env.run("status", "caching")
	require.NoError(t, err)
	assert.Equal(t, "completed\n", out)

	_, _, err = env.run("reset", "--yes")
	require.NoError(t, err)
	out, _, err = env.run("status", "caching")
	require.NoError(t, err)
	assert.Equal(t, "not-started\n", out)
}

func TestTopicsFilter(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run("topics", "--category", "problems")
	require.NoError(t, err)
	assert.Contains(t, out, "url-shortener")
	assert.NotContains(t, out, "scalability")
	assert.Contains(t, out, "3 topics")

	_, _, err = env.run("topics", "--category", "frontend")
	require.Error(t, err)
}

func TestShow(t *testing.T) {
	env := newCLIEnv(t)

	out, _, err := env.run("show", "databases")
	require.NoError(t, err)
	assert.Contains(t, out, "Databases")
	assert.Contains(t, out, "Leads to")
	assert.Contains(t, out, "replication")

	_, _, err = env.run("show", "missing")
	require.Error(t, err)
}

func TestCustomCatalog(t *testing.T) {
	env := newCLIEnv(t)
	path := filepath.Join(t.TempDir(), "roadmap.yaml")
	doc := "nodes:\n  - id: intro\n    category: fundamentals\n    title: Intro\n  - id: capstone\n    category: problems\n    title: Capstone\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, _, err := env.run("--catalog", path, "set", "intro", "completed")
	require.NoError(t, err)

	out, _, err := env.run("--catalog", path, "stats", "--json")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, `"total": 2`), "output: %s", out)
}

func TestFileStorageBackend(t *testing.T) {
	env := newCLIEnv(t)
	dir := filepath.Join(t.TempDir(), "kv")
	t.Setenv("SYSDESIGN_FILE_DIR", dir)

	_, _, err := env.run("--storage", "file", "set", "cdn", "in-progress")
	require.NoError(t, err)

	out, _, err := env.run("--storage", "file", "status", "cdn")
	require.NoError(t, err)
	assert.Equal(t, "in-progress\n", out)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestConfigFile(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(".sysdesign.yaml", []byte("storage: memory\n"), 0o644))

	_, _, err := env.run("set", "cdn", "completed")
	require.NoError(t, err)

	// Memory storage does not survive between invocations.
	out, _, err := env.run("status", "cdn")
	require.NoError(t, err)
	assert.Equal(t, "not-started\n", out)
}
