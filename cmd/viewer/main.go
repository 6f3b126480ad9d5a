package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/levelc/config"
)

func main() {
	configPath := flag.String("config", "", "configuration file (default $LEVELC_CONFIG or levelc.yaml)")
	levelName := flag.String("level", "castle", "stored level, or built-in level when not stored")
	locale := flag.String("locale", "", "translate level strings to this locale")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *locale != "" {
		cfg.Locale = *locale
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("levelc viewer")

	game, err := NewGame(cfg, *levelName)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
