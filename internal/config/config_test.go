package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brogergvhs/evangelio/internal/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadMerged_NoFile(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)

	assert.Equal(t, "(default config in memory)", used)
	assert.Equal(t, ".", cfg.Output)
	assert.Equal(t, sources.Gateway, cfg.Source)
}

func TestLoadMerged_FileAndOptions(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "evangelio", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(`
output: /tmp/biblia
source: biblecom
user_agent: custom-agent
delay: 5s
timeout: 30s
`), 0644))

	cfg, used, err := LoadMerged(Options{Debug: true, Output: "salida"})
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "salida", cfg.Output)
	assert.Equal(t, sources.BibleCom, cfg.Source)
	assert.Equal(t, "custom-agent", cfg.UserAgent)
	assert.Equal(t, 5*time.Second, cfg.Delay)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
}

func TestLoadMerged_IgnoreConfig(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "evangelio", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("source: biblecom\n"), 0644))

	cfg, used, err := LoadMerged(Options{IgnoreConfig: true})
	require.NoError(t, err)

	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, sources.Gateway, cfg.Source)
}

func TestLoadMerged_BadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "evangelio", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("delay: [\n"), 0644))

	_, _, err := LoadMerged(Options{})
	assert.Error(t, err)
}

func TestInitDefaultConfig(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	_, err = InitDefaultConfig()
	assert.ErrorIs(t, err, os.ErrExist)

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, sources.Gateway, cfg.Source)
}

func TestApply(t *testing.T) {
	p, err := sources.Lookup(sources.Gateway)
	require.NoError(t, err)

	cfg := &Config{UserAgent: "ua", AcceptLanguage: "es-AR", Timeout: time.Minute, Delay: time.Second}
	cfg.Apply(&p)

	assert.Equal(t, "ua", p.Headers["User-Agent"])
	assert.Equal(t, "es-AR", p.Headers["Accept-Language"])
	assert.Equal(t, MaxTimeout, p.Timeout)
	assert.Equal(t, 2*time.Second, p.Delay, "delay never shrinks below the profile default")

	cfg.Delay = 10 * time.Second
	cfg.Apply(&p)
	assert.Equal(t, 10*time.Second, p.Delay)
}

func TestApply_TimeoutWindow(t *testing.T) {
	cases := []struct {
		in, want time.Duration
	}{
		{0, 20 * time.Second},
		{time.Second, MinTimeout},
		{18 * time.Second, 18 * time.Second},
		{time.Hour, MaxTimeout},
	}

	for _, tc := range cases {
		p, err := sources.Lookup(sources.Gateway)
		require.NoError(t, err)

		(&Config{Timeout: tc.in}).Apply(&p)
		assert.Equal(t, tc.want, p.Timeout, "timeout %s", tc.in)
	}
}
