// Command verlet-tui runs a prefab scene in the terminal. Grab particles and
// pins with the left mouse button. Press g to toggle gravity, r to reset and
// q or Esc to quit.
// Logs are discarded unless -debug is given.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/verlet/render/term"
	"github.com/milk9111/verlet/scene"
	"github.com/milk9111/verlet/verlet"
)

const frameInterval = 16 * time.Millisecond

type app struct {
	screen  tcell.Screen
	surface *term.Surface
	scene   *scene.Scene

	dragging  bool
	audioInit bool
}

func newApp(sceneName string, substeps int, sound bool) (*app, error) {
	sc, err := scene.Load(sceneName)
	if err != nil {
		return nil, err
	}
	if substeps > 0 {
		sc.Substeps = substeps
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	sim := sc.Sim()
	a := &app{
		screen:  screen,
		surface: term.NewSurface(screen, sim.Width(), sim.Height()),
		scene:   sc,
	}

	if sound {
		if err := a.initAudio(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return a, nil
}

func (a *app) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		a.audioInit = true
	}
	return err
}

// playGrab plays a short blip when something is picked up.
func (a *app) playGrab(kind verlet.EntityKind) {
	if !a.audioInit {
		return
	}
	freq := 660.0
	if kind == verlet.EntityPin {
		freq = 990
	}
	sampleRate := beep.SampleRate(44100)
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == 'g':
			a.scene.ToggleGravity()
		case ev.Rune() == 'r':
			next, err := a.scene.Rebuild()
			if err != nil {
				log.Printf("reset %s: %v", a.scene.Name, err)
				break
			}
			a.scene = next
			a.dragging = false
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := a.surface.World(col, row)
		sim := a.scene.Sim()
		sim.SetPointer(verlet.V(x, y))

		down := ev.Buttons()&tcell.Button1 != 0
		switch {
		case down && !a.dragging:
			a.dragging = true
			if e, ok := sim.PointerDown(); ok {
				a.playGrab(e.Kind)
			}
		case !down && a.dragging:
			a.dragging = false
			sim.PointerUp()
		}

	case *tcell.EventResize:
		a.screen.Sync()
		sim := a.scene.Sim()
		a.surface.Fit(sim.Width(), sim.Height())
	}
	return true
}

func (a *app) draw() {
	a.scene.Draw(a.surface)
	w, h := a.screen.Size()
	status := fmt.Sprintf(" %s  frame %d  particles %d  [drag] move  [g] gravity  [r] reset  [q] quit ",
		a.scene.Name, a.scene.Frame(), a.scene.Sim().ParticleCount())
	for i, r := range status {
		if i >= w {
			break
		}
		a.screen.SetContent(i, h-1, r, nil, tcell.StyleDefault.Reverse(true))
	}
	a.screen.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			if err := a.scene.Update(); err != nil {
				log.Printf("%v", err)
			}
			a.draw()
		}
	}
}

func (a *app) cleanup() {
	if a.audioInit {
		speaker.Close()
	}
	a.screen.Fini()
}

func main() {
	sceneName := flag.String("scene", "shapes", "scene name in prefabs/ (basename, .yaml optional)")
	substeps := flag.Int("substeps", 0, "constraint relaxation passes per step (0 uses the scene's value)")
	sound := flag.Bool("sound", false, "play a blip when grabbing")
	debug := flag.Bool("debug", false, "write logs to logs/verlet-tui.log")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	a, err := newApp(*sceneName, *substeps, *sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.cleanup()

	a.run()
}
