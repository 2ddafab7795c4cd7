package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderLeaderboard(t *testing.T) {
	out, err := runCLI(t, "render", "/")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "Kindness Survey")
	assert.Contains(t, out, "Gemini 2.5 Pro")
}

func TestRenderBattle(t *testing.T) {
	out, err := runCLI(t, "render", "/battle")
	require.NoError(t, err)
	assert.Contains(t, out, "Assistant A")
	assert.Contains(t, out, "<strong>Wealth inequality</strong>")
}

func TestRenderUnknownPath(t *testing.T) {
	_, err := runCLI(t, "render", "/nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no page at this path")
}

func TestRenderCustomCatalog(t *testing.T) {
	doc := `
site:
  name: Test Arena
  navigation:
    - { label: Leaderboard, href: / }
leaderboard:
  - title: Honesty Survey
    rows:
      - { model: Model X, survey: "5.50", elo: 1400 }
battle:
  responses:
    - { label: Assistant A, model: X, content: "hi" }
    - { label: Assistant B, model: Y, content: "there" }
  rating_choices:
    - { label: Left, hint: A }
    - { label: Tie, hint: Same }
    - { label: Neither, hint: Both }
    - { label: Right, hint: B }
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := runCLI(t, "--catalog", path, "render", "/")
	require.NoError(t, err)
	assert.Contains(t, out, "Honesty Survey")
	assert.Contains(t, out, "Model X")
	assert.NotContains(t, out, "Kindness Survey")
}

func TestRenderBadCatalog(t *testing.T) {
	_, err := runCLI(t, "--catalog", filepath.Join(t.TempDir(), "missing.yaml"), "render", "/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open catalog")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("VALUEARENA_WEB_PORT", "9090")
	t.Setenv("VALUEARENA_SSH_PORT", "")
	t.Setenv("VALUEARENA_VERBOSE", "true")

	cfg := loadConfig()
	assert.Equal(t, "9090", cfg.WebPort)
	assert.Equal(t, "", cfg.SSHPort)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "dark", cfg.GlamourStyle)
}

func TestLoggerSyncedAfterFailure(t *testing.T) {
	cmd, a := newApp()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"render", "/nope"})
	require.Error(t, cmd.Execute())
	require.NotNil(t, a.logger, "logger is built before the command runs")

	var buf bytes.Buffer
	ws := &zapcore.BufferedWriteSyncer{WS: zapcore.AddSync(&buf)}
	defer ws.Stop()
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	a.logger = zap.New(zapcore.NewCore(enc, ws, zapcore.InfoLevel))

	a.logger.Info("render failed")
	assert.Empty(t, buf.String())
	a.sync()
	assert.Contains(t, buf.String(), "render failed")
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("VALUEARENA_WEB_PORT", "9090")

	cmd := newRootCommand()
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	require.NoError(t, serve.ParseFlags([]string{"--web-port", "7070"}))

	port, err := serve.Flags().GetString("web-port")
	require.NoError(t, err)
	assert.Equal(t, "7070", port)
	assert.Equal(t, "9090", serve.Flags().Lookup("web-port").DefValue)
}
