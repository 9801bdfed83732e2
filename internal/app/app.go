// Package app implements the main loop: input dispatch, roll animation
// stepping, CPU frame rendering, and presentation.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bd/arbitrary-dice/internal/config"
	"github.com/bd/arbitrary-dice/internal/die"
	"github.com/bd/arbitrary-dice/internal/engine/debug"
	"github.com/bd/arbitrary-dice/internal/engine/input"
	"github.com/bd/arbitrary-dice/internal/engine/renderer"
	"github.com/bd/arbitrary-dice/internal/engine/window"
	"github.com/bd/arbitrary-dice/internal/logger"
	"github.com/bd/arbitrary-dice/internal/render"
	"github.com/veandco/go-sdl2/sdl"
)

const baseTitle = "Arbitrary Dice"

// App is the visualization instance.
type App struct {
	cfg     *config.Config
	running bool

	window  *window.Window
	blitter *renderer.Renderer
	input   *input.Input
	shots   *debug.ScreenshotCapture

	poly     *die.Polyhedron
	animator *die.Animator
	mode     render.Mode
	frame    *render.Frame

	// result is the last settled roll, cleared on reseed.
	result *die.Result
}

// New creates the app: window and GL context first, then the die state.
func New(cfg *config.Config) (*App, error) {
	mode, err := render.ParseMode(cfg.Die.Mode)
	if err != nil {
		return nil, err
	}

	faces := cfg.Die.Faces
	if faces == 0 {
		faces = mode.DefaultFaces()
	}

	a := &App{
		cfg:  cfg,
		mode: mode,
	}

	a.poly = die.NewPolyhedron(faces)
	if cfg.Die.Offset > 0 {
		a.poly.SetOffset(float32(cfg.Die.Offset))
	}

	seed, err := rollSeed()
	if err != nil {
		logger.Warn("falling back to clock for roll seed", zap.Error(err))
		seed = time.Now().UnixNano()
	}
	a.animator = die.NewAnimator(a.poly, cfg.Die.RollDuration, seed)

	logger.Info("die initialized",
		zap.Int("faces", a.poly.Count()),
		zap.String("mode", cfg.Die.Mode),
		zap.Float32("offset", a.poly.Offset()),
	)

	a.window, err = window.New(window.Config{
		Title:      a.title(),
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	drawW, drawH := a.window.DrawableSize()
	a.blitter, err = renderer.New(drawW, drawH)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	winW, winH := a.window.GetSize()
	fw, fh := frameSize(drawW, drawH, winW, winH, cfg.Graphics.RenderScale)
	a.frame = render.NewFrame(fw, fh)

	a.input = input.New()
	a.shots = debug.NewScreenshotCapture("", "dice")

	logger.Info("app initialized",
		zap.Int("frame_width", fw),
		zap.Int("frame_height", fh),
	)
	return a, nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.resize()
			case input.EventKeyDown:
				a.handleKey(event.Key)
			case input.EventMouseDown:
				// Click rolls; double-click toggles fullscreen.
				if event.Clicks >= 2 {
					a.window.ToggleFullscreen()
					a.resize()
				} else if event.Button == sdl.BUTTON_LEFT {
					a.animator.RollRandom(time.Now())
				}
			}
		}

		a.update(time.Now())
		a.render()
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up app resources.
func (a *App) Close() {
	logger.Info("closing app")

	if a.blitter != nil {
		a.blitter.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// update advances the roll animation and publishes a settled result.
func (a *App) update(now time.Time) {
	res, done := a.animator.Advance(now)
	if !done {
		return
	}
	a.result = &res
	a.window.SetTitle(a.title())
	logger.Info("roll settled",
		zap.Int("result", res.Face),
		zap.Int("faces", res.Count),
	)
}

// render fills the CPU frame and presents it.
func (a *App) render() {
	render.Render(a.frame, a.poly, a.mode)
	a.blitter.Blit(a.frame.Pix, a.frame.W, a.frame.H)
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_SPACE:
		face := a.animator.RollRandom(time.Now())
		logger.Debug("roll started", zap.Int("target", face))
	case sdl.SCANCODE_R:
		a.reseed(a.poly.Count())
	case sdl.SCANCODE_UP, sdl.SCANCODE_EQUALS:
		a.reseed(a.poly.Count() + 1)
	case sdl.SCANCODE_DOWN, sdl.SCANCODE_MINUS:
		a.reseed(a.poly.Count() - 1)
	case sdl.SCANCODE_F:
		a.window.ToggleFullscreen()
		a.resize()
	case sdl.SCANCODE_F12:
		a.screenshot()
	}
}

// reseed regenerates the faces with the given count (clamped), drops any
// in-flight roll, and clears the displayed result.
func (a *App) reseed(faces int) {
	count := a.poly.SetSeeds(faces)
	a.animator.Stop()
	a.result = nil
	a.window.SetTitle(a.title())
	logger.Info("reseeded", zap.Int("faces", count))
}

// resize re-fits the GL viewport and the CPU frame to the drawable.
func (a *App) resize() {
	drawW, drawH := a.window.DrawableSize()
	winW, winH := a.window.GetSize()
	a.blitter.Resize(drawW, drawH)
	fw, fh := frameSize(drawW, drawH, winW, winH, a.cfg.Graphics.RenderScale)
	a.frame.Resize(fw, fh)
}

func (a *App) screenshot() {
	path, err := a.shots.CaptureFromPixels(a.frame.Pix, a.frame.W, a.frame.H)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// title formats the window title, including the settled result when one
// is displayed, e.g. "Arbitrary Dice (d13) - Result: 4 / d13".
func (a *App) title() string {
	t := fmt.Sprintf("%s (d%d)", baseTitle, a.poly.Count())
	if a.result != nil {
		t = fmt.Sprintf("%s - Result: %d / d%d", t, a.result.Face, a.result.Count)
	}
	return t
}

// frameSize picks the CPU frame resolution: the drawable scaled down by
// the configured render scale, with the sampling factor relative to the
// window capped at 2 so high-DPI displays do not quadruple the per-pixel
// work.
func frameSize(drawW, drawH, winW, winH int, scale float64) (int, int) {
	if scale < 0.5 {
		scale = 1
	}
	w := int(float64(drawW) / scale)
	h := int(float64(drawH) / scale)
	if winW > 0 && w > winW*2 {
		w = winW * 2
	}
	if winH > 0 && h > winH*2 {
		h = winH * 2
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
