package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "show frame and scene stats")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", "shapes", "scene name in prefabs/ (basename, .yaml optional)")
	substeps := flag.Int("substeps", 0, "constraint relaxation passes per step (0 uses the scene's value)")
	watch := flag.Bool("watch", false, "reload scenes and scripts from prefabs/ when they change on disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*sceneName, *substeps, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	sim := game.scene.Sim()
	ebiten.SetWindowSize(int(sim.Width()), int(sim.Height()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
