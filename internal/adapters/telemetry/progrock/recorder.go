// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/npmbridge/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the progrock library.
// Vertex output is recorded and echoed to the console writer; vertex states
// go to the progrock.Writer, which New sets to a Summary.
type Recorder struct {
	w       progrock.Writer
	rec     *progrock.Recorder
	console io.Writer

	closeOnce sync.Once
	closeErr  error
}

// New creates a new Recorder echoing output to stderr and summarizing the run through logger.
func New(logger ports.Logger) ports.Telemetry {
	return NewRecorder(NewSummary(logger), os.Stderr)
}

// NewRecorder creates a new Recorder with the given writer and console.
// A nil console records without echoing.
func NewRecorder(w progrock.Writer, console io.Writer) *Recorder {
	if console == nil {
		console = io.Discard
	}
	return &Recorder{
		w:       w,
		rec:     progrock.NewRecorder(w),
		console: console,
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v, console: r.console}
}

// Close flushes and closes the recording session. Later calls return the first result.
func (r *Recorder) Close() error {
	r.closeOnce.Do(func() {
		if c, ok := r.w.(interface{ Close() error }); ok {
			r.closeErr = c.Close()
		}
	})
	return r.closeErr
}
