package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/verlet/common"
	"github.com/milk9111/verlet/prefabs"
	"github.com/milk9111/verlet/render"
	"github.com/milk9111/verlet/scene"
	"github.com/milk9111/verlet/verlet"
	"golang.design/x/clipboard"
)

type Game struct {
	frames int
	debug  bool
	paused bool

	// substeps overrides the scene's own value when positive.
	substeps int

	scenes   []string
	sceneIdx int
	current  string
	scene    *scene.Scene

	input   *Input
	screen  *render.Screen
	ui      *ebitenui.UI
	watcher *prefabs.Watcher

	clipboardReady bool
	status         string
}

func NewGame(sceneName string, substeps int, debug, watch bool) (*Game, error) {
	names, err := prefabs.SceneNames()
	if err != nil {
		return nil, err
	}
	if sceneName == "" {
		sceneName = "shapes"
	}

	g := &Game{
		debug:    debug,
		substeps: substeps,
		scenes:   names,
		input:    NewInput(),
		screen:   render.NewScreen(nil),
	}
	sceneName = prefabs.SceneName(sceneName)
	for i, name := range names {
		if name == sceneName {
			g.sceneIdx = i
		}
	}
	if err := g.loadScene(sceneName); err != nil {
		return nil, err
	}
	g.ui = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardReady = true
	}

	if watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) loadScene(name string) error {
	name = prefabs.SceneName(name)
	s, err := scene.Load(name)
	if err != nil {
		return err
	}
	if g.substeps > 0 {
		s.Substeps = g.substeps
	}
	g.scene = s
	g.current = name
	g.status = fmt.Sprintf("loaded %s", s.Name)
	ebiten.SetWindowTitle(fmt.Sprintf("verlet - %s", s.Name))
	return nil
}

// Reset rebuilds the current scene from its spec.
func (g *Game) Reset() {
	next, err := g.scene.Rebuild()
	if err != nil {
		log.Printf("reset %s: %v", g.scene.Name, err)
		return
	}
	g.scene = next
	g.status = fmt.Sprintf("reset %s", next.Name)
}

// NextScene switches to the next embedded scene.
func (g *Game) NextScene() {
	if len(g.scenes) == 0 {
		return
	}
	g.sceneIdx = (g.sceneIdx + 1) % len(g.scenes)
	if err := g.loadScene(g.scenes[g.sceneIdx]); err != nil {
		log.Printf("load %s: %v", g.scenes[g.sceneIdx], err)
	}
}

func (g *Game) Resume() {
	g.paused = false
}

// Close releases the file watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	g.hotReload()

	if g.input.ResetPressed {
		g.Reset()
	}
	if g.input.NextPressed {
		g.NextScene()
	}
	if g.input.GravityPressed {
		if g.scene.ToggleGravity() {
			g.status = "gravity on"
		} else {
			g.status = "gravity off"
		}
	}

	sim := g.scene.Sim()
	// the cursor can leave the window while dragging
	pointer := verlet.V(
		common.Clamp(g.input.PointerX, 0, sim.Width()-1),
		common.Clamp(g.input.PointerY, 0, sim.Height()-1),
	)
	sim.SetPointer(pointer)
	if g.input.PointerPressed {
		sim.PointerDown()
	}
	if g.input.PointerReleased {
		sim.PointerUp()
	}
	if g.input.CopyPressed {
		g.copyPointer(pointer)
	}

	return g.scene.Update()
}

func (g *Game) hotReload() {
	if err, ok := g.watcher.PollError(); ok {
		log.Printf("hot reload watcher: %v", err)
	}
	change, ok := g.watcher.Poll()
	if !ok {
		return
	}
	if change.Kind == prefabs.ChangeScene && change.Name() != g.current {
		return
	}
	if err := g.loadScene(g.current); err != nil {
		log.Printf("hot reload %s: %v", change.Path, err)
		g.status = "reload failed, see log"
	}
}

// copyPointer puts the pointer position on the clipboard as a YAML vertex,
// ready to paste into a scene file.
func (g *Game) copyPointer(p verlet.Vec2) {
	snippet := fmt.Sprintf("{x: %.0f, y: %.0f}", p.X, p.Y)
	if !g.clipboardReady {
		g.status = snippet
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(snippet))
	g.status = "copied " + snippet
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Image = screen
	g.scene.Draw(g.screen)

	if g.debug {
		sim := g.scene.Sim()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Scene: %s  Particles: %d  Substeps: %d", g.scene.Name, sim.ParticleCount(), g.scene.Substeps), 0, 16)
		gravity := sim.Gravity()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Gravity: (%.2f, %.2f)  Friction: %.2f  Pick radius: %.0f", gravity.X, gravity.Y, sim.Friction(), sim.SelectionRadius()), 0, 32)
		ebitenutil.DebugPrintAt(screen, g.status, 0, 48)
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if g.scene == nil {
		return common.BaseWidth, common.BaseHeight
	}
	sim := g.scene.Sim()
	return sim.Width(), sim.Height()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
