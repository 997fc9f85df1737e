package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/sadopc/gtree/internal/model"
	"github.com/sadopc/gtree/internal/options"
)

// JSONWriter streams the tree as a JSON document: a top-level array holding
// the root directory object (entries nested under "contents") followed by a
// report object with the directory and file counts.
type JSONWriter struct {
	bw   *bufio.Writer
	ew   *errWriter
	opts *options.Options

	// pending is true while the most recent entry's object is still
	// open, waiting to learn whether it grows a "contents" array.
	pending bool
	// first tracks whether a separator is needed at the current level.
	first []bool
}

// NewJSONWriter writes the JSON rendition to out.
func NewJSONWriter(out io.Writer, opts *options.Options) *JSONWriter {
	bw := bufio.NewWriterSize(out, 64*1024)
	return &JSONWriter{bw: bw, ew: &errWriter{w: bw}, opts: opts}
}

func (j *JSONWriter) Begin(rootName string) {
	j.ew.WriteString("[\n")
	j.ew.WriteString(fmt.Sprintf(`  {"type":"directory","name":%s,"contents":[`, jsonString(rootName)))
	j.ew.WriteString("\n")
	j.first = append(j.first, true)
}

func (j *JSONWriter) Entry(e model.Entry, indent []bool, isLast bool) {
	j.closePending()

	level := len(j.first) - 1
	if !j.first[level] {
		j.ew.WriteString(",\n")
	}
	j.first[level] = false

	j.ew.WriteString(fmt.Sprintf(`{"type":%s,"name":%s`, jsonString(entryType(e)), jsonString(e.Name())))
	if size, ok := e.Size(); ok && !e.IsDir() {
		j.ew.WriteString(fmt.Sprintf(`,"size":%d`, size))
	}
	if j.opts.PrintModDate {
		if mtime, ok := e.ModTime(); ok {
			j.ew.WriteString(fmt.Sprintf(`,"time":%s`, jsonString(mtime.Format(modDateLayout))))
		}
	}
	j.pending = true
}

func (j *JSONWriter) Descend(model.Entry) {
	j.ew.WriteString(`,"contents":[`)
	j.pending = false
	j.first = append(j.first, true)
}

func (j *JSONWriter) Ascend() {
	j.closePending()
	j.ew.WriteString("]}")
	j.first = j.first[:len(j.first)-1]
}

func (j *JSONWriter) End(dirs, files int) {
	j.closePending()
	j.ew.WriteString("\n  ]}")
	j.first = j.first[:len(j.first)-1]
	if !j.opts.NoReport {
		j.ew.WriteString(fmt.Sprintf(",\n  {\"type\":\"report\",\"directories\":%d,\"files\":%d}", dirs, files))
	}
	j.ew.WriteString("\n]\n")
}

func (j *JSONWriter) closePending() {
	if j.pending {
		j.ew.WriteString("}")
		j.pending = false
	}
}

// Flush drains the buffer and returns the first error seen on the sink.
func (j *JSONWriter) Flush() error {
	if j.ew.err != nil {
		return j.ew.err
	}
	return j.bw.Flush()
}

func entryType(e model.Entry) string {
	switch {
	case e.IsDir():
		return "directory"
	case e.IsSymlink():
		return "link"
	default:
		return "file"
	}
}

func jsonString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
