package output

import (
	"github.com/Mad-Pixels/ci-actions/internal/masker"
)

// Router binds a masking pipeline to one sink per child stream.
// Emit and EmitErr are the only paths to the sinks, so no line can reach
// a sink without passing through the full pipeline. A Router is safe for
// concurrent use by the two stream drains of a single execution.
type Router struct {
	pipeline *masker.Pipeline
	out      Sink
	errOut   Sink
}

// NewRouter creates a router that redacts through pipeline and writes
// stdout lines to out and stderr lines to errOut.
func NewRouter(pipeline *masker.Pipeline, out, errOut Sink) *Router {
	return &Router{pipeline: pipeline, out: out, errOut: errOut}
}

// Redact applies the full pipeline to a line without writing it.
// Callers that need a loggable form of a command or line use this so the
// same rules apply everywhere.
func (r *Router) Redact(line string) string {
	return r.pipeline.Apply(line)
}

// Emit redacts a stdout line and writes it to the out sink.
func (r *Router) Emit(line string) error {
	return r.out.WriteLine(r.pipeline.Apply(line))
}

// EmitErr redacts a stderr line and writes it to the err sink.
func (r *Router) EmitErr(line string) error {
	return r.errOut.WriteLine(r.pipeline.Apply(line))
}
