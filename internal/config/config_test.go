package config

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmc/macperms/fulldisk"
	"github.com/tmc/macperms/internal/logging"
)

const sample = `
log:
  level: debug
  format: json
  dest: both:/tmp/macperms.log
full_disk_access:
  probe_paths:
    - Library/Mail
    - /Library/Application Support/com.apple.TCC
settings:
  opener:
    command: /usr/bin/open
    args: ["-g"]
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"Library/Mail", "/Library/Application Support/com.apple.TCC"}, cfg.FullDiskAccess.ProbePaths)
	assert.Equal(t, "/usr/bin/open", cfg.Settings.Opener.Command)
	assert.Equal(t, []string{"-g"}, cfg.Settings.Opener.Args)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"bad dest", "log:\n  dest: syslog\n"},
		{"empty file dest", "log:\n  dest: \"file:\"\n"},
		{"empty probe path", "full_disk_access:\n  probe_paths: [\"\"]\n"},
		{"args without command", "settings:\n  opener:\n    args: [\"-g\"]\n"},
		{"not yaml", "log: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadDefault_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLogOptions(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	opts, err := cfg.LogOptions(logging.Options{Level: slog.LevelInfo})
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, opts.Level)
	assert.True(t, opts.JSON)
	assert.Equal(t, "both:/tmp/macperms.log", opts.Dest)

	base := logging.Options{Level: slog.LevelWarn, JSON: true, Dest: "stderr"}
	opts, err = (&Config{}).LogOptions(base)
	require.NoError(t, err)
	assert.Equal(t, base, opts)
}

func TestProberOptions(t *testing.T) {
	assert.Nil(t, (&Config{}).ProberOptions())

	cfg := &Config{FullDiskAccess: FullDiskAccessConfig{ProbePaths: []string{"probe"}}}
	p := fulldisk.New(cfg.ProberOptions()...)
	assert.Equal(t, []string{"/h/probe"}, p.Paths("/h"))
}

func TestOpener(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	o := cfg.Opener(nil)
	assert.Equal(t, "/usr/bin/open", o.Command)
	assert.Equal(t, []string{"-g"}, o.Args)

	assert.Empty(t, (&Config{}).Opener(nil).Command)
}
