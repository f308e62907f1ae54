package main

import (
	"fmt"

	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/game"
	"github.com/gdamore/tcell/v2"
)

const (
	// cellWidth is the number of terminal columns used for one board cell.
	cellWidth = 2
	// wallWidth is the width of each side wall in terminal columns.
	wallWidth = cellWidth
	// panelGap separates the board from the stats panel.
	panelGap = 3
)

const (
	blockRune = '█'
	ghostRune = '░'
	wallRune  = '▒'
)

var textStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)

func tintColor(t cell.Tint) tcell.Color {
	return tcell.NewRGBColor(int32(t.R), int32(t.G), int32(t.B))
}

// screenPos converts a board cell to the terminal position of its left column.
func screenPos(p cell.Point) (int, int) {
	return wallWidth + p.X*cellWidth, p.Y
}

func fill(screen tcell.Screen, p cell.Point, r rune, style tcell.Style) {
	x, y := screenPos(p)
	for i := 0; i < cellWidth; i++ {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func drawShape(screen tcell.Screen, s game.ShapeView, r rune) {
	style := tcell.StyleDefault.Foreground(tintColor(s.Tint))
	for _, c := range s.Cells {
		fill(screen, c, r, style)
	}
}

// render draws snap onto screen and shows it.
func render(screen tcell.Screen, snap game.Snapshot) {
	screen.Clear()

	wall := tcell.StyleDefault.Foreground(tintColor(cell.Wall))
	for y := 0; y <= snap.Rows; y++ {
		fill(screen, cell.Point{X: -1, Y: y}, wallRune, wall)
		fill(screen, cell.Point{X: snap.Cols, Y: y}, wallRune, wall)
	}
	for x := 0; x < snap.Cols; x++ {
		fill(screen, cell.Point{X: x, Y: snap.Rows}, wallRune, wall)
	}

	for _, s := range snap.Archived {
		drawShape(screen, s, blockRune)
	}
	if snap.Ghost != nil {
		drawShape(screen, *snap.Ghost, ghostRune)
	}
	if snap.Current != nil {
		drawShape(screen, *snap.Current, blockRune)
	}

	px := wallWidth*2 + snap.Cols*cellWidth + panelGap
	drawString(screen, px, 1, fmt.Sprintf("Score %d", snap.Score), textStyle)
	drawString(screen, px, 2, fmt.Sprintf("Level %d", snap.Level+1), textStyle)
	drawString(screen, px, 3, fmt.Sprintf("Lines %d", snap.Lines), textStyle)
	drawString(screen, px, 5, status(snap), textStyle)
	drawString(screen, px, snap.Rows-1, "q quit  p pause  enter new", textStyle)

	screen.Show()
}

func status(snap game.Snapshot) string {
	switch {
	case snap.GameOver:
		return "Game over"
	case !snap.IsGaming:
		return "Press Enter to start"
	case !snap.IsTimeRunning:
		return "Paused"
	default:
		return "Playing"
	}
}
