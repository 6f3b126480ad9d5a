package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/levelc/config"
	"github.com/milk9111/levelc/loader"
	"github.com/milk9111/levelc/preload"
	"github.com/milk9111/levelc/prefabs"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	barWidth  = 640
	barHeight = 24
)

type Game struct {
	frames int

	source *levelSource
	frame  time.Duration
	ratio  float64

	job       *preload.Job
	resources *loader.ResourceSet
	level     *loader.Level
	loadedIn  int
	err       error

	ui   *ebitenui.UI
	quit bool

	face   ebtext.Face
	barBg  *ebiten.Image
	barImg *ebiten.Image
}

func NewGame(cfg config.Config, levelName string) (*Game, error) {
	var (
		reg *prefabs.Registry
		err error
	)
	if cfg.Classes != "" {
		reg, err = prefabs.LoadRegistryFS(os.DirFS(cfg.Classes))
	} else {
		reg, err = prefabs.Default()
	}
	if err != nil {
		return nil, err
	}

	frame := cfg.Preload.Frame
	if frame <= 0 {
		frame = time.Second / 60
	}

	g := &Game{
		source: &levelSource{cfg: cfg, name: levelName, registry: reg},
		frame:  frame,
		ratio:  cfg.Preload.Ratio,
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		barBg:  ebiten.NewImage(barWidth, barHeight),
		barImg: ebiten.NewImage(barWidth, barHeight),
	}
	g.barBg.Fill(colornames.Dimgray)
	g.barImg.Fill(colornames.Gold)
	g.restart()
	return g, nil
}

// restart drops the current level and loads it again from its source.
func (g *Game) restart() {
	g.level, g.ui, g.err, g.loadedIn = nil, nil, nil, 0
	g.resources = &loader.ResourceSet{}

	l, err := g.source.open(g.resources)
	if err != nil {
		g.err = err
		return
	}
	g.job = preload.NewJob(l, g.ratio)
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return ebiten.Termination
	}

	if g.job != nil {
		g.loadedIn++
		done, err := g.job.Progress(g.frame)
		switch {
		case err != nil:
			g.err = err
		case done:
			g.level = g.job.Take()
			g.ui = NewSummaryUI(g, g.level)
		}
		if done || err != nil {
			g.job = nil
		}
		return nil
	}

	if g.ui != nil {
		g.ui.Update()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	switch {
	case g.err != nil:
		ebitenutil.DebugPrint(screen, fmt.Sprintf("failed to load %s:\n%v", g.source.name, g.err))
	case g.job != nil:
		g.drawProgress(screen)
	case g.ui != nil:
		g.ui.Draw(screen)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()), 4, baseHeight-20)
}

func (g *Game) drawProgress(screen *ebiten.Image) {
	x := float64(baseWidth-barWidth) / 2
	y := float64(baseHeight-barHeight) / 2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(g.barBg, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.job.Fraction(), 1)
	op.GeoM.Translate(x, y)
	screen.DrawImage(g.barImg, op)

	label := fmt.Sprintf("Loading %s  %d / %d", g.source.name, g.job.ItemIndex(), g.job.ItemsCount())
	top := &ebtext.DrawOptions{}
	top.GeoM.Translate(x, y-24)
	top.ColorScale.ScaleWithColor(colornames.White)
	ebtext.Draw(screen, label, g.face, top)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
