//go:build ebiten

package app

import (
	"context"
	"fmt"
	"log"

	"vista/internal/core"
	"vista/internal/render"
	"vista/internal/scene"
	"vista/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the landscape renderer to the ebiten.Game interface.
type Game struct {
	ctrl    *scene.Controller
	eval    *scene.Evaluator
	frame   *core.Frame
	painter *render.FramePainter
	clock   *core.FixedStep

	shader *ebiten.Shader
	gpuImg *ebiten.Image
	useGPU bool

	hud     *ui.HUD
	overlay *ui.Overlay

	size  core.Size
	scale int
	tps   int
}

// New constructs a Game for the scene described by sc. The GPU shader is
// compiled up front so a broken shader fails at startup.
func New(cfg *Config, sc scene.Config) (*Game, error) {
	shader, err := render.NewLandscapeShader()
	if err != nil {
		return nil, err
	}
	size := core.Size{W: sc.Width, H: sc.Height}
	ctrl := scene.NewController(sc, cfg.RenderRate)
	eval := scene.NewEvaluator(cfg.Workers)
	eval.Compositor.FOV = sc.FOV

	g := &Game{
		ctrl:    ctrl,
		eval:    eval,
		frame:   core.NewFrame(size.W, size.H),
		painter: render.NewFramePainter(size.W, size.H),
		clock:   core.NewFixedStep(cfg.RenderRate),
		shader:  shader,
		gpuImg:  ebiten.NewImage(size.W, size.H),
		useGPU:  cfg.GPU,
		hud:     ui.NewHUD(ctrl, cfg.HUDWidth),
		size:    size,
		scale:   cfg.Scale,
		tps:     cfg.TPS,
	}
	g.overlay = ui.NewOverlay(&g.eval.Compositor, cfg.Scale)
	return g, nil
}

// Size returns the logical landscape resolution.
func (g *Game) Size() core.Size { return g.size }

// Update handles per-frame logic and advances the scene clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.ctrl.NudgePrecipitation(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.ctrl.NudgePrecipitation(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePaused()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.ResetTime()
		g.clock.Trigger()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.useGPU = !g.useGPU
		g.clock.Trigger()
		log.Printf("render path: %s", g.pathName())
	}

	g.overlay.Update()
	g.hud.Update(g.size.W * g.scale)

	g.ctrl.Advance(1 / float64(g.tps))
	g.clock.SetRate(g.ctrl.RenderRate())

	if g.clock.ShouldStep() {
		p := g.ctrl.Params(g.size)
		if !g.useGPU {
			if err := g.eval.Render(context.Background(), p, g.frame); err != nil {
				return fmt.Errorf("render frame: %w", err)
			}
			g.painter.UploadFrame(g.frame)
		}
		g.overlay.Refresh(p)
	} else if g.overlay.NeedsRefresh() {
		g.overlay.Refresh(g.ctrl.Params(g.size))
	}
	return nil
}

func (g *Game) pathName() string {
	if g.useGPU {
		return "gpu"
	}
	return "cpu"
}

// Draw renders the current landscape, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.useGPU {
		render.DrawLandscape(g.gpuImg, g.shader, g.ctrl.Params(g.size), g.ctrl.FOV())
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(g.scale), float64(g.scale))
		screen.DrawImage(g.gpuImg, op)
	} else {
		g.painter.Draw(screen, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.size.W*g.scale, g.size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.W*g.scale + g.hud.Width(), g.size.H * g.scale
}
