package render_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/blogwatch/internal/config"
	"github.com/jonesrussell/blogwatch/internal/logger"
	"github.com/jonesrussell/blogwatch/internal/render"
)

func TestChromeRendererDisabled(t *testing.T) {
	t.Parallel()

	renderer := render.NewChromeRenderer(&config.BrowserConfig{
		Enabled: false,
		Timeout: 30 * time.Second,
	}, logger.NewNoOp())

	assert.False(t, renderer.Available())
}

func TestChromeRendererNoBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	renderer := render.NewChromeRenderer(&config.BrowserConfig{
		Enabled: true,
		Timeout: 30 * time.Second,
	}, logger.NewNoOp())

	assert.False(t, renderer.Available())
}

func TestChromeRendererBinaryOnPath(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "google-chrome")
	require.NoError(t, os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755))

	t.Setenv("PATH", dir)

	renderer := render.NewChromeRenderer(&config.BrowserConfig{
		Enabled: true,
		Timeout: 30 * time.Second,
	}, logger.NewNoOp())

	assert.True(t, renderer.Available())
}
