package config

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamic-static/dstsys/internal/window"
)

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	SetConfigPath("")
	Set(nil)
	t.Cleanup(func() {
		viper.Reset()
		SetConfigPath("")
		Set(nil)
	})
}

// isolate runs the test from an empty directory with no user config.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestInitDefaults(t *testing.T) {
	resetConfig(t)
	isolate(t)

	require.NoError(t, Init())
	assert.Equal(t, DefaultConfig, *Get())
	assert.Equal(t, "", ConfigFileUsed())
}

func TestGetBeforeInit(t *testing.T) {
	resetConfig(t)
	assert.Same(t, &DefaultConfig, Get())
}

func TestInitFromFile(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "dstsys.toml")
	toml := `
[window]
name = "demo"
width = 640
height = 480
cursor_mode = "disabled"

[gl]
vsync = false

[render]
frame_limit = 30
`
	require.NoError(t, os.WriteFile(path, []byte(toml), 0o644))
	SetConfigPath(path)

	require.NoError(t, Init())
	cfg := Get()

	assert.Equal(t, "demo", cfg.Window.Name)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, 320, cfg.Window.X, "unset keys keep their default")
	assert.False(t, cfg.GL.VSync)
	assert.Equal(t, 30, cfg.Render.FrameLimit)
	assert.Equal(t, path, ConfigFileUsed())
}

func TestInitInvalidTOML(t *testing.T) {
	resetConfig(t)

	path := filepath.Join(t.TempDir(), "dstsys.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nname = 1"), 0o644))
	SetConfigPath(path)

	assert.Error(t, Init())
}

func TestEnvOverride(t *testing.T) {
	resetConfig(t)
	isolate(t)
	t.Setenv("DSTSYS_WINDOW_NAME", "from-env")
	t.Setenv("DSTSYS_LOGGING_LOG_LEVEL", "debug")

	require.NoError(t, Init())
	assert.Equal(t, "from-env", Get().Window.Name)
	assert.Equal(t, "debug", Get().Logging.LogLevel)
}

func TestWindowInfoMatchesDefaults(t *testing.T) {
	info, err := DefaultConfig.WindowInfo()
	require.NoError(t, err)

	assert.Equal(t, window.DefaultInfo(), info)
}

func TestWindowInfo(t *testing.T) {
	cfg := DefaultConfig
	cfg.Window.Decorated = false
	cfg.Window.Fullscreen = true
	cfg.Window.CursorMode = "hidden"
	cfg.Window.Width = 800
	cfg.GL.VSync = false

	info, err := cfg.WindowInfo()
	require.NoError(t, err)
	assert.False(t, info.Flags.Has(window.Decorated))
	assert.True(t, info.Flags.Has(window.Fullscreen))
	assert.Equal(t, window.CursorHidden, info.CursorMode)
	assert.Equal(t, image.Pt(800, 720), info.Extent)
	assert.False(t, info.GL.Flags.Has(window.VSync))
	assert.True(t, info.GL.Flags.Has(window.DoubleBuffer))

	cfg.Window.CursorMode = "wobbly"
	_, err = cfg.WindowInfo()
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#1a1f29", want: color.RGBA{R: 0x1a, G: 0x1f, B: 0x29, A: 0xff}},
		{in: "ff000080", want: color.RGBA{R: 0xff, A: 0x80}},
		{in: "#fff", wantErr: true},
		{in: "#gg0000", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
