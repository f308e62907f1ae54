package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/config"
	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/log"
	"github.com/deitrix/blocks/piece"
	"github.com/deitrix/blocks/sound"
	"github.com/deitrix/blocks/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

const (
	// floorThickness is the thickness of the floor drawn below the board.
	floorThickness = 1
	// wallThickness is the thickness of the walls drawn on the left and right of the board.
	wallThickness = 1
	// ghostOpacity is the alpha applied to the drop preview.
	ghostOpacity = 160
	// panelCells is the width of the side panels in cells.
	panelCells = 6
	// softDropFrames is the number of frames between soft drops while the down key is held.
	softDropFrames = 2
	// repeatFrames is how long a move key must be held before it repeats.
	repeatFrames = 10
)

type Game struct {
	game  *game.Game
	bag   *piece.Bag
	sound *sound.Manager
	unit  int
	// TicksSinceFall is the number of frames since the last gravity tick.
	TicksSinceFall int
	// TicksSinceDrop is the number of frames since the last soft drop.
	TicksSinceDrop int
	// ScreenWidth is the width of the screen in pixels
	ScreenWidth int
	// ScreenHeight is the height of the screen in pixels
	ScreenHeight int
	// ShowDebug is a flag that indicates whether debug information should be shown
	ShowDebug bool
}

func NewGame(cfg config.Config, snd *sound.Manager) *Game {
	return &Game{
		game:  game.New(cfg.Board()),
		bag:   piece.NewBag(cfg.BagSeed(time.Now())),
		sound: snd,
		unit:  cfg.Unit,
	}
}

func (g *Game) Update() error {
	before := g.game.State()
	g.handleInput()
	g.fall()
	g.observe(before, g.game.State())
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Command(game.CmdToggleGaming)
		g.TicksSinceFall = 0
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.ShowDebug = !g.ShowDebug
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.game.Command(game.CmdTogglePlay)
		return
	}

	s := g.game.State()
	if !s.IsTimeRunning || s.GameOver {
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.KeyPressDuration(ebiten.KeyLeft) > repeatFrames {
		g.game.Command(game.CmdMoveLeft)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.KeyPressDuration(ebiten.KeyRight) > repeatFrames {
		g.game.Command(game.CmdMoveRight)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.game.Command(game.CmdRotate)
	}

	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		if g.TicksSinceDrop >= softDropFrames {
			g.game.Command(game.CmdSoftDrop)
			g.TicksSinceDrop = 0
		} else {
			g.TicksSinceDrop++
		}
	}
}

// fall counts frames and feeds a gravity tick to the game every FallFrames frames.
func (g *Game) fall() {
	s := g.game.State()
	if !s.IsGaming || !s.IsTimeRunning || s.GameOver {
		return
	}
	if g.TicksSinceFall >= game.FallFrames(s.Level) {
		g.game.Tick(g.bag.Next)
		g.TicksSinceFall = 0
	} else {
		g.TicksSinceFall++
	}
}

func (g *Game) observe(before, after game.State) {
	if after.Lines > before.Lines {
		log.Debug("Cleared %d lines, score %d", after.Lines-before.Lines, after.Score)
		g.sound.PlayLineClear(after.Lines - before.Lines)
	}
	if after.Level > before.Level {
		log.Info("Reached level %d", after.Level)
	}
	if after.GameOver && !before.GameOver {
		log.Info("Game over: score %d, lines %d", after.Score, after.Lines)
		g.sound.PlayGameOver()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.game.Snapshot()
	g.drawWalls(screen, snap)
	for _, s := range snap.Archived {
		g.renderShape(screen, sprite.Cell, s, 255)
	}
	if snap.Ghost != nil {
		g.renderShape(screen, sprite.Ghost, *snap.Ghost, ghostOpacity)
	}
	if snap.Current != nil {
		g.renderShape(screen, sprite.Cell, *snap.Current, 255)
	}
	g.drawNext(screen)
	g.drawScore(screen, snap)
	g.drawStatus(screen, snap)
	g.drawDebug(screen, snap)
}

func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	b := g.game.Board()
	g.ScreenWidth = (panelCells*2 + b.Cols + wallThickness*2) * g.unit
	g.ScreenHeight = (b.Rows + floorThickness) * g.unit
	return g.ScreenWidth, g.ScreenHeight
}

// boardOrigin is the pixel position of board cell (0, 0).
func (g *Game) boardOrigin() (int, int) {
	return (panelCells + wallThickness) * g.unit, 0
}

func (g *Game) drawWalls(screen *ebiten.Image, snap game.Snapshot) {
	xoff, yoff := g.boardOrigin()
	for y := 0; y < snap.Rows+floorThickness; y++ {
		for x := -wallThickness; x < snap.Cols+wallThickness; x++ {
			if x >= 0 && x < snap.Cols && y < snap.Rows {
				continue
			}
			drawCell(screen, sprite.Cell, xoff+x*g.unit, yoff+y*g.unit, g.unit, cell.Wall, 255)
		}
	}
}

func (g *Game) drawNext(screen *ebiten.Image) {
	next := piece.Build(g.bag.Peek(), 0, cell.Point{})
	xoff := (panelCells+g.game.Board().Cols+wallThickness*2)*g.unit + (panelCells*g.unit-next.Width()*g.unit)/2
	yoff := 2 * g.unit
	drawText(screen, sprite.HUD, "Next", xoff, yoff-g.unit/2, color.White)
	for _, c := range next.Cells() {
		drawCell(screen, sprite.Cell, xoff+c.X*g.unit, yoff+c.Y*g.unit, g.unit, next.Tint, 255)
	}
}

func (g *Game) drawScore(screen *ebiten.Image, snap game.Snapshot) {
	rows := []struct {
		label string
		value int
	}{
		{"Score", snap.Score},
		{"Level", snap.Level + 1},
		{"Lines", snap.Lines},
	}
	for i, r := range rows {
		y := g.ScreenHeight - (len(rows)-i)*g.unit
		drawText(screen, sprite.HUD, r.label, g.unit/2, y, color.White)
		drawText(screen, sprite.HUD, fmt.Sprintf("%d", r.value), g.unit*3, y, color.White)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image, snap game.Snapshot) {
	var msg string
	switch {
	case snap.GameOver:
		msg = "Game over - press Enter"
	case !snap.IsGaming:
		msg = "Press Enter to start"
	case !snap.IsTimeRunning:
		msg = "Paused"
	default:
		return
	}
	xoff, _ := g.boardOrigin()
	drawText(screen, sprite.Title, msg, xoff+g.unit/2, g.ScreenHeight/2, color.White)
}

func (g *Game) drawDebug(screen *ebiten.Image, snap game.Snapshot) {
	if !g.ShowDebug {
		return
	}
	drawText(screen, sprite.Debug, strings.Join([]string{
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("Tick: %d", snap.Tick),
		fmt.Sprintf("Tick Speed: %s", snap.TickSpeed),
		fmt.Sprintf("Fall Frames: %d", game.FallFrames(snap.Level)),
		fmt.Sprintf("Ticks Since Fall: %d", g.TicksSinceFall),
		fmt.Sprintf("Archived: %d", len(snap.Archived)),
	}, "\n"), g.unit/2, g.unit, color.White)
}

func drawText(img *ebiten.Image, face font.Face, t string, x, y int, c color.Color) {
	text.Draw(img, t, face, x, y, c)
}

func (g *Game) renderShape(screen, sprite *ebiten.Image, s game.ShapeView, opacity uint8) {
	xoff, yoff := g.boardOrigin()
	for _, c := range s.Cells {
		drawCell(screen, sprite, xoff+c.X*g.unit, yoff+c.Y*g.unit, g.unit, s.Tint, opacity)
	}
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, size int, tint cell.Tint, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(size)/float64(img.Bounds().Dx()), float64(size)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetDefault(log.New(os.Stdout, "", log.DefaultFlags, level))

	if err := sprite.Load(cfg.Unit); err != nil {
		log.Fatal("Failed to load sprites: %v", err)
	}

	snd := sound.NewManager()
	if !cfg.Mute {
		if err := snd.Initialize(); err != nil {
			log.Warn("Audio initialization failed: %v", err)
		}
	}
	defer snd.Cleanup()

	log.Info("Starting %dx%d board", cfg.Cols, cfg.Rows)

	g := NewGame(cfg, snd)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("Blocks")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(game.FramesPerSecond)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("Failed to run game: %v", err)
	}
}
