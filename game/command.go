package game

// Command is an abstract player input.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdRotate
	CmdSoftDrop
	CmdTogglePlay
	CmdToggleGaming
)

func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdRotate:
		return "rotate"
	case CmdSoftDrop:
		return "soft-drop"
	case CmdTogglePlay:
		return "toggle-play"
	case CmdToggleGaming:
		return "toggle-gaming"
	default:
		return "unknown"
	}
}

// EventFor returns the event that c triggers in state s. The toggles depend on s.
func EventFor(s State, c Command) (Event, bool) {
	switch c {
	case CmdMoveLeft:
		return MoveLeft{}, true
	case CmdMoveRight:
		return MoveRight{}, true
	case CmdRotate:
		return Rotate{}, true
	case CmdSoftDrop:
		return MoveBottom{}, true
	case CmdTogglePlay:
		if s.IsTimeRunning {
			return Pause{}, true
		}
		return Play{}, true
	case CmdToggleGaming:
		if s.IsGaming {
			return ResetGame{}, true
		}
		return NewGame{}, true
	default:
		return nil, false
	}
}
