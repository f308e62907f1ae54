package main

import (
	"testing"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/game"
	"github.com/deitrix/blocks/piece"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Command
		ok   bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.CmdMoveLeft, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.CmdMoveRight, true},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.CmdRotate, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.CmdSoftDrop, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), game.CmdToggleGaming, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.CmdTogglePlay, true},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), game.CmdMoveLeft, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.CmdSoftDrop, true},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), game.CmdTogglePlay, true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := commandFor(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, isQuit(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.False(t, isQuit(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
}

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestRender(t *testing.T) {
	screen := newScreen(t)
	g := game.New(board.New(10, 20))
	g.Dispatch(game.NewGame{}, game.SpawnShape{Kind: piece.O})
	snap := g.Snapshot()
	require.NotNil(t, snap.Current)

	render(screen, snap)

	for _, c := range snap.Current.Cells {
		x, y := screenPos(c)
		assert.Equal(t, blockRune, runeAt(screen, x, y))
		assert.Equal(t, blockRune, runeAt(screen, x+1, y))
	}
	for _, c := range snap.Ghost.Cells {
		x, y := screenPos(c)
		assert.Equal(t, ghostRune, runeAt(screen, x, y))
	}

	assert.Equal(t, wallRune, runeAt(screen, 0, 0), "left wall")
	x, y := screenPos(cell.Point{X: 10, Y: 20})
	assert.Equal(t, wallRune, runeAt(screen, x, y), "floor corner")
	x, y = screenPos(cell.Point{X: 0, Y: 10})
	assert.Equal(t, ' ', runeAt(screen, x, y), "empty cell")

	_, _, style, _ := screen.GetContent(screenPos(snap.Current.Cells[0]))
	fg, _, _ := style.Decompose()
	assert.Equal(t, tintColor(cell.Yellow), fg)
}

func TestRender_Status(t *testing.T) {
	screen := newScreen(t)
	g := game.New(board.New(10, 20))
	render(screen, g.Snapshot())

	px := wallWidth*2 + 10*cellWidth + panelGap
	var line []rune
	for i := 0; i < len("Press Enter to start"); i++ {
		line = append(line, runeAt(screen, px+i, 5))
	}
	assert.Equal(t, "Press Enter to start", string(line))
}
