package display

import (
	"fmt"
	"strings"
	"sync"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

// StatusBar renders the composed status line as a single borderless
// paragraph pinned to the top row of the terminal. Font family and size are
// terminal-controlled and therefore ignored; color and weight map onto
// termui text styles.
type StatusBar struct {
	mu  sync.Mutex
	par *widgets.Paragraph
}

// NewStatusBar initializes the terminal UI and returns the bar. Close must
// be called to restore the terminal.
func NewStatusBar() (*StatusBar, error) {
	if err := ui.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal ui: %w", err)
	}

	par := widgets.NewParagraph()
	par.Border = false
	width, _ := ui.TerminalDimensions()
	par.SetRect(0, 0, width, 1)

	return &StatusBar{par: par}, nil
}

func (b *StatusBar) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.par.Text = text
	ui.Render(b.par)
}

func (b *StatusBar) ApplyStyle(style Style) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := ui.NewStyle(colorByName(style.Color))
	if style.Bold {
		st.Modifier = ui.ModifierBold
	}
	b.par.TextStyle = st
	ui.Render(b.par)
}

// Resize fits the bar to a new terminal width.
func (b *StatusBar) Resize(width int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.par.SetRect(0, 0, width, 1)
	ui.Clear()
	ui.Render(b.par)
}

// Close restores the terminal.
func (b *StatusBar) Close() {
	ui.Close()
}

func colorByName(name string) ui.Color {
	switch strings.ToLower(name) {
	case "red":
		return ui.ColorRed
	case "green":
		return ui.ColorGreen
	case "yellow":
		return ui.ColorYellow
	case "blue":
		return ui.ColorBlue
	case "magenta":
		return ui.ColorMagenta
	case "cyan":
		return ui.ColorCyan
	case "white":
		return ui.ColorWhite
	case "black":
		return ui.ColorBlack
	default: // including "default" and ""
		return ui.ColorClear
	}
}
