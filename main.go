package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/spf13/cobra"

	"github.com/dynamic-static/dstsys/internal/config"
	"github.com/dynamic-static/dstsys/internal/gl"
	"github.com/dynamic-static/dstsys/internal/graphics"
	"github.com/dynamic-static/dstsys/internal/gui"
	"github.com/dynamic-static/dstsys/internal/input"
	"github.com/dynamic-static/dstsys/internal/logger"
	"github.com/dynamic-static/dstsys/internal/window"
	"github.com/dynamic-static/dstsys/internal/window/glfwbackend"
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

var (
	configPath     string
	screenshotPath string
	logLevel       string

	rootCmd = &cobra.Command{
		Use:          "dstsys",
		Short:        "Window, input, OpenGL and ImGui demo",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				config.SetConfigPath(configPath)
			}
			if err := config.Init(); err != nil {
				return err
			}
			level := config.Get().Logging.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = logLevel
			}
			if level != "" {
				logger.SetLevel(level)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(config.Get())
		},
	}
)

func main() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default: dstsys.toml in the user config dir or .)")
	rootCmd.Flags().StringVar(&screenshotPath, "screenshot", "", "write the first frame to this PNG file and exit")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	info, err := cfg.WindowInfo()
	if err != nil {
		return err
	}
	clearColor, err := cfg.ClearColor()
	if err != nil {
		return err
	}

	backend, err := glfwbackend.New()
	if err != nil {
		return err
	}
	platform := window.NewPlatform(backend)
	defer platform.Close()

	win, err := platform.NewWindow(info)
	if err != nil {
		return err
	}
	win.MakeContextCurrent()

	ogl, err := gl.Load(glfwbackend.ProcAddress)
	if err != nil {
		return err
	}
	logger.Info("OpenGL context",
		"vendor", ogl.GetString(gl.Vendor),
		"renderer", ogl.GetString(gl.Renderer),
		"version", ogl.GetString(gl.Version),
	)

	win.OnResize.Subscribe(func(size image.Point) {
		logger.Debug("framebuffer resized", "width", size.X, "height", size.Y)
	})

	loop := graphics.New(platform, win, ogl)
	defer loop.Close()
	loop.SetClearColor(clearColor)
	loop.SetFrameLimit(cfg.Render.FrameLimit)

	tex, err := makeCheckerTexture(loop)
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}
	defer tex.Close()

	ui, err := gui.New(func(fonts imgui.FontAtlas) (gui.Renderer, error) {
		return gui.NewOpenGL3Renderer(ogl, fonts)
	})
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	defer ui.Close()

	const quadSize = 200.0

	return loop.Run(func(f *graphics.Frame) error {
		in := f.Input()
		uiKeyboard, uiMouse := ui.WantsInput()
		if !uiKeyboard {
			if in.Keyboard.Pressed(input.KeyEscape) {
				return graphics.ErrStop
			}
			if in.Keyboard.Pressed(input.KeyF1) {
				switch f.Window().Info().CursorMode {
				case window.CursorVisible:
					f.Window().SetCursorMode(window.CursorHidden)
				default:
					f.Window().SetCursorMode(window.CursorVisible)
				}
			}
		}

		pos := in.Mouse.Position()
		tint := graphics.ColorWhite
		if !uiMouse && in.Mouse.Down(input.ButtonLeft) {
			tint = graphics.ColorYellow
		}
		f.RenderQuad(pos.X(), pos.Y(), quadSize, quadSize, tex, tint)

		ui.BeginFrame(f.Delta(), f.Window())
		drawOverlay(f)
		ui.EndFrame()

		if screenshotPath != "" {
			return writeScreenshot(f, screenshotPath)
		}
		return nil
	})
}

func drawOverlay(f *graphics.Frame) {
	in := f.Input()
	imgui.Begin("dstsys")
	if dt := f.Delta().Seconds(); dt > 0 {
		imgui.Text(fmt.Sprintf("%.1f fps", 1/dt))
	}
	size := f.Size()
	imgui.Text(fmt.Sprintf("framebuffer %dx%d", size.X, size.Y))
	pos := in.Mouse.Position()
	imgui.Text(fmt.Sprintf("cursor %.0f, %.0f", pos.X(), pos.Y()))
	imgui.Text(fmt.Sprintf("shift %v  ctrl %v  alt %v",
		in.Keyboard.Down(input.KeyShift),
		in.Keyboard.Down(input.KeyCtrl),
		in.Keyboard.Down(input.KeyAlt),
	))
	if in.Keyboard.Down(input.KeyAny) {
		imgui.Text("a key is down")
	}
	imgui.Text("F1 toggles the cursor, Escape quits")
	imgui.End()
}

func writeScreenshot(f *graphics.Frame, path string) error {
	shot, err := f.Screenshot()
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create screenshot file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, shot); err != nil {
		return fmt.Errorf("encode screenshot: %w", err)
	}
	logger.Info("taken screenshot", "path", path)
	return graphics.ErrStop
}

func makeCheckerTexture(loop *graphics.Loop) (*gl.Texture, error) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	red := color.NRGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}
	green := color.NRGBA{R: 0x66, G: 0xff, B: 0x66, A: 0xff}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if (x+y)%2 == 0 {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, green)
			}
		}
	}

	return loop.NewTexture(img)
}
