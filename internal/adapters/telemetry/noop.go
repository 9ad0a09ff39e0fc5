// Package telemetry provides telemetry adapters that do not record anything.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/npmbridge/internal/core/domain"
	"go.trai.ch/npmbridge/internal/core/ports"
)

// NoOp implements ports.Telemetry without recording. Vertex output goes to a fixed writer.
type NoOp struct {
	out io.Writer
}

// NewNoOp creates a NoOp telemetry whose vertices write their output to out.
// A nil out discards output.
func NewNoOp(out io.Writer) *NoOp {
	if out == nil {
		out = io.Discard
	}
	return &NoOp{out: out}
}

// Record returns a vertex that only forwards output.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{out: n.out}
}

// Close does nothing.
func (n *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct {
	out io.Writer
}

// Stdout returns the configured writer.
func (v *NoOpVertex) Stdout() io.Writer { return v.out }

// Stderr returns the configured writer.
func (v *NoOpVertex) Stderr() io.Writer { return v.out }

// Log does nothing.
func (v *NoOpVertex) Log(_ domain.LogLevel, _ string) {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
