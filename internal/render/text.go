package render

import (
	"bufio"
	"io"

	"github.com/sadopc/gtree/internal/model"
	"github.com/sadopc/gtree/internal/options"
)

// errWriter wraps an io.Writer and captures the first write error.
// Subsequent writes after an error are no-ops, avoiding verbose per-call
// checks.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) WriteString(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

// TreeWriter emits the classic line-oriented tree. It implements the
// traversal visitor contract.
type TreeWriter struct {
	bw      *bufio.Writer
	ew      *errWriter
	opts    *options.Options
	palette *Palette
}

// NewTreeWriter writes tree lines to out. palette may be nil to disable
// colorization.
func NewTreeWriter(out io.Writer, opts *options.Options, palette *Palette) *TreeWriter {
	bw := bufio.NewWriterSize(out, 64*1024)
	return &TreeWriter{bw: bw, ew: &errWriter{w: bw}, opts: opts, palette: palette}
}

func (t *TreeWriter) Begin(rootName string) {
	t.ew.WriteString(rootName)
	t.ew.WriteString("\n")
}

func (t *TreeWriter) Entry(e model.Entry, indent []bool, isLast bool) {
	t.ew.WriteString(Line(e, t.opts, indent, isLast, t.palette))
	t.ew.WriteString("\n")
}

func (t *TreeWriter) Descend(model.Entry) {}

func (t *TreeWriter) Ascend() {}

func (t *TreeWriter) End(dirs, files int) {
	if t.opts.NoReport {
		return
	}
	t.ew.WriteString("\n")
	t.ew.WriteString(Summary(dirs, files))
	t.ew.WriteString("\n")
}

// Flush drains the buffer and returns the first error seen on the sink.
func (t *TreeWriter) Flush() error {
	if t.ew.err != nil {
		return t.ew.err
	}
	return t.bw.Flush()
}
