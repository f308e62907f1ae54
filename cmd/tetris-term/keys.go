package main

import (
	"github.com/deitrix/blocks/game"
	"github.com/gdamore/tcell/v2"
)

// commandFor maps a key press to a game command.
func commandFor(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.CmdMoveLeft, true
	case tcell.KeyRight:
		return game.CmdMoveRight, true
	case tcell.KeyUp:
		return game.CmdRotate, true
	case tcell.KeyDown:
		return game.CmdSoftDrop, true
	case tcell.KeyEnter:
		return game.CmdToggleGaming, true
	case tcell.KeyEscape:
		return game.CmdTogglePlay, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h', 'a':
			return game.CmdMoveLeft, true
		case 'l', 'd':
			return game.CmdMoveRight, true
		case 'k', 'w':
			return game.CmdRotate, true
		case 'j', 's', ' ':
			return game.CmdSoftDrop, true
		case 'p':
			return game.CmdTogglePlay, true
		case 'n':
			return game.CmdToggleGaming, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
