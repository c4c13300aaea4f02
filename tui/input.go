package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/sheikhrachel/life-grid/model"
	"github.com/sheikhrachel/life-grid/player"
)

// SpeedStep is how much one +/- key press changes the playback speed
const SpeedStep = 0.5

// Action tells the caller what an event did
type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionRestart
	ActionQuit
)

// Controls is the part of the player driven by keyboard and mouse input
type Controls interface {
	Toggle(row, col int)
	Play()
	Pause()
	Playing() bool
	SetSpeed(speed float64)
	Speed() float64
	Step() model.Snapshot
	Restart()
}

// Input translates terminal events into player commands:
//
//	left click   toggle the cell under the pointer
//	space        play / pause
//	n            advance one generation
//	r            clear the board and pause
//	+ / -        speed up / slow down
//	q, Esc, ^C   quit
type Input struct {
	controls Controls
	buttons  tcell.ButtonMask
}

// NewInput returns an Input driving c
func NewInput(c Controls) *Input {
	return &Input{controls: c}
}

// Handle applies ev to the controls
func (in *Input) Handle(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.handleKey(ev)
	case *tcell.EventMouse:
		// toggle on press only, a held button must not flip the cell back
		buttons := ev.Buttons()
		pressed := buttons&tcell.Button1 != 0 && in.buttons&tcell.Button1 == 0
		in.buttons = buttons
		if !pressed {
			return ActionNone
		}
		in.controls.Toggle(CellAt(ev.Position()))
		return ActionRedraw
	case *tcell.EventResize:
		return ActionRedraw
	}
	return ActionNone
}

func (in *Input) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	c := in.controls
	switch ev.Rune() {
	case 'q', 'Q':
		return ActionQuit
	case ' ':
		if c.Playing() {
			c.Pause()
		} else {
			c.Play()
		}
	case 'n', 'N':
		c.Step()
	case 'r', 'R':
		c.Restart()
		return ActionRestart
	case '+', '=':
		c.SetSpeed(min(c.Speed()+SpeedStep, player.MaxSpeed))
	case '-', '_':
		c.SetSpeed(max(c.Speed()-SpeedStep, player.MinSpeed))
	default:
		return ActionNone
	}
	return ActionRedraw
}
