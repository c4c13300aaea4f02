package tui

import (
	"context"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-grid/model"
)

// cellWidth is the number of terminal columns drawn per grid cell
const cellWidth = 2

// ErrQuit may be returned from an event handler to end Listen without an error.
var ErrQuit = errors.New("quit")

// View draws snapshots on a tcell screen and feeds its events to a handler
type View struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	text   tcell.Style
}

// Open initializes the terminal screen with mouse button reporting
func Open() (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "[Open] creating screen")
	}
	if err = screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[Open] initializing screen")
	}
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.Clear()
	return NewView(screen), nil
}

// NewView wraps an initialized screen
func NewView(screen tcell.Screen) *View {
	return &View{
		screen: screen,
		alive:  tcell.StyleDefault.Background(tcell.ColorWhite),
		dead:   tcell.StyleDefault.Background(tcell.ColorBlack),
		text:   tcell.StyleDefault,
	}
}

// Close restores the terminal
func (v *View) Close() {
	v.screen.Fini()
}

// CellAt maps a screen position to the grid cell drawn there
func CellAt(x, y int) (row, col int) {
	return y, x / cellWidth
}

// Render draws the snapshot followed by the status text one line below it
func (v *View) Render(snap model.Snapshot, status string) error {
	v.screen.Clear()
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			style := v.dead
			if snap.Alive(row, col) {
				style = v.alive
			}
			for i := 0; i < cellWidth; i++ {
				v.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
			}
		}
	}

	for i, line := range strings.Split(status, "\n") {
		for x, r := range []rune(line) {
			v.screen.SetContent(x, snap.Rows+1+i, r, nil, v.text)
		}
	}
	v.screen.Show()
	return nil
}

// Listen passes screen events to handle until ctx is done or handle returns
// ErrQuit. Resize events resync the screen before they are handed over.
func (v *View) Listen(ctx context.Context, handle func(tcell.Event) error) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				v.screen.Sync()
			}
			if err := handle(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return errors.Wrap(err, "[Listen] event handler failed")
			}
		}
	}
}
