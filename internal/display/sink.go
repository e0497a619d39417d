package display

import (
	"fmt"
	"io"
)

// Style carries presentation parameters for a sink. It is applied
// independently of the per-tick text.
type Style struct {
	FontFamily string
	FontSize   int
	Color      string // color name, or "default" for the sink's own choice
	Bold       bool
}

// Sink is the minimal capability a display target must provide.
type Sink interface {
	SetText(text string)
	ApplyStyle(style Style)
}

// WriterSink writes the status line to an io.Writer, one line per tick.
// Style parameters do not apply to a plain writer and are ignored.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) SetText(text string) {
	fmt.Fprintln(s.w, text)
}

func (s *WriterSink) ApplyStyle(Style) {}
