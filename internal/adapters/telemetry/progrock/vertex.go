package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/npmbridge/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex  *progrock.VertexRecorder
	console io.Writer
}

// Stdout returns a writer for the standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return io.MultiWriter(v.vertex.Stdout(), v.console)
}

// Stderr returns a writer for the error output stream.
func (v *Vertex) Stderr() io.Writer {
	return io.MultiWriter(v.vertex.Stderr(), v.console)
}

// Log records a message on the vertex's output stream.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex as finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as satisfied without doing any work.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
