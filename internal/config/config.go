// Package config loads demo settings with Viper
package config

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/dynamic-static/dstsys/internal/window"
)

// Config represents the application configuration
type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	GL      GLConfig      `mapstructure:"gl"`
	Render  RenderConfig  `mapstructure:"render"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// WindowConfig describes the main window
type WindowConfig struct {
	Name       string `mapstructure:"name"`
	X          int    `mapstructure:"x"`
	Y          int    `mapstructure:"y"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Decorated  bool   `mapstructure:"decorated"`
	Resizable  bool   `mapstructure:"resizable"`
	Visible    bool   `mapstructure:"visible"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	CursorMode string `mapstructure:"cursor_mode"` // visible, hidden, disabled
}

// GLConfig describes the OpenGL context
type GLConfig struct {
	Major        int  `mapstructure:"major"`
	Minor        int  `mapstructure:"minor"`
	DoubleBuffer bool `mapstructure:"double_buffer"`
	VSync        bool `mapstructure:"vsync"`
	DepthBits    int  `mapstructure:"depth_bits"`
	StencilBits  int  `mapstructure:"stencil_bits"`
}

// RenderConfig contains frame loop settings
type RenderConfig struct {
	FrameLimit int    `mapstructure:"frame_limit"` // 0 leaves pacing to vsync
	ClearColor string `mapstructure:"clear_color"` // #rrggbb or #rrggbbaa
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig mirrors window.DefaultInfo
	DefaultConfig = Config{
		Window: WindowConfig{
			Name:       "Dynamic_Static",
			X:          320,
			Y:          180,
			Width:      1280,
			Height:     720,
			Decorated:  true,
			Resizable:  true,
			Visible:    true,
			Fullscreen: false,
			CursorMode: "visible",
		},
		GL: GLConfig{
			Major:        4,
			Minor:        5,
			DoubleBuffer: true,
			VSync:        true,
			DepthBits:    24,
			StencilBits:  8,
		},
		Render: RenderConfig{
			FrameLimit: 0,
			ClearColor: "#1a1f29",
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
	}

	cfg *Config

	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init reads dstsys.toml and DSTSYS_* environment variables on top of the defaults
func Init() error {
	viper.SetConfigName("dstsys")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(dir, "dstsys"))
		}
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("DSTSYS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("window.name", DefaultConfig.Window.Name)
	viper.SetDefault("window.x", DefaultConfig.Window.X)
	viper.SetDefault("window.y", DefaultConfig.Window.Y)
	viper.SetDefault("window.width", DefaultConfig.Window.Width)
	viper.SetDefault("window.height", DefaultConfig.Window.Height)
	viper.SetDefault("window.decorated", DefaultConfig.Window.Decorated)
	viper.SetDefault("window.resizable", DefaultConfig.Window.Resizable)
	viper.SetDefault("window.visible", DefaultConfig.Window.Visible)
	viper.SetDefault("window.fullscreen", DefaultConfig.Window.Fullscreen)
	viper.SetDefault("window.cursor_mode", DefaultConfig.Window.CursorMode)

	viper.SetDefault("gl.major", DefaultConfig.GL.Major)
	viper.SetDefault("gl.minor", DefaultConfig.GL.Minor)
	viper.SetDefault("gl.double_buffer", DefaultConfig.GL.DoubleBuffer)
	viper.SetDefault("gl.vsync", DefaultConfig.GL.VSync)
	viper.SetDefault("gl.depth_bits", DefaultConfig.GL.DepthBits)
	viper.SetDefault("gl.stencil_bits", DefaultConfig.GL.StencilBits)

	viper.SetDefault("render.frame_limit", DefaultConfig.Render.FrameLimit)
	viper.SetDefault("render.clear_color", DefaultConfig.Render.ClearColor)

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c := &Config{}
	if err := viper.Unmarshal(c); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	cfg = c
	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// ConfigFileUsed returns the file Init read, or "" when only defaults applied
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// WindowInfo converts the window and gl sections into a window.Info
func (c *Config) WindowInfo() (window.Info, error) {
	mode, err := window.ParseCursorMode(c.Window.CursorMode)
	if err != nil {
		return window.Info{}, err
	}

	var flags window.Flags
	if c.Window.Decorated {
		flags |= window.Decorated
	}
	if c.Window.Resizable {
		flags |= window.Resizable
	}
	if c.Window.Visible {
		flags |= window.Visible
	}
	if c.Window.Fullscreen {
		flags |= window.Fullscreen
	}

	var glFlags window.GLFlags
	if c.GL.DoubleBuffer {
		glFlags |= window.DoubleBuffer
	}
	if c.GL.VSync {
		glFlags |= window.VSync
	}

	return window.Info{
		Flags:      flags,
		Name:       c.Window.Name,
		Position:   image.Pt(c.Window.X, c.Window.Y),
		Extent:     image.Pt(c.Window.Width, c.Window.Height),
		CursorMode: mode,
		GL: &window.GLInfo{
			Flags:       glFlags,
			Version:     window.GLVersion{Major: c.GL.Major, Minor: c.GL.Minor},
			DepthBits:   c.GL.DepthBits,
			StencilBits: c.GL.StencilBits,
		},
	}, nil
}

// ClearColor parses render.clear_color
func (c *Config) ClearColor() (color.Color, error) {
	return ParseColor(c.Render.ClearColor)
}

// ParseColor accepts #rrggbb or #rrggbbaa
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	c := color.RGBA{A: 0xff}
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = errors.New("want 6 or 8 hex digits")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
