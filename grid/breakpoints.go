package grid

import (
	"fmt"

	"go.uber.org/zap"

	"gridgen/css"
)

// Breakpoint is a named responsive threshold pairing a minimum viewport
// width with an optional maximum content (wrapper) width.
type Breakpoint struct {
	Prefix          string
	MinWidth        css.Value
	MaxWrapperWidth css.Value
	HasWrapperWidth bool
}

// UnknownBreakpointError reports a media alias referencing a prefix that was
// never registered.
type UnknownBreakpointError struct {
	Prefix string
}

func (e *UnknownBreakpointError) Error() string {
	return fmt.Sprintf("unknown breakpoint prefix %q", e.Prefix)
}

// Registry is an ordered collection of named breakpoints. Registrations only
// append - the registry grows monotonically for the lifetime of a
// stylesheet build. Not safe for concurrent use.
type Registry struct {
	breakpoints []Breakpoint
	log         *zap.Logger
}

// NewRegistry creates an empty breakpoint registry.
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{log: log.Named("breakpoints")}
}

// Register appends a new breakpoint. Duplicate prefixes are allowed, Lookup
// returns the first match (see Lookup).
func (r *Registry) Register(prefix string, minWidth css.Value, maxWrapperWidth ...css.Value) Breakpoint {
	bp := Breakpoint{Prefix: prefix, MinWidth: minWidth}
	if len(maxWrapperWidth) > 0 {
		bp.MaxWrapperWidth = maxWrapperWidth[0]
		bp.HasWrapperWidth = true
	}
	r.breakpoints = append(r.breakpoints, bp)
	r.log.Debug("Registered breakpoint",
		zap.String("prefix", prefix), zap.String("min_width", minWidth.Raw), zap.Bool("has_wrapper_width", bp.HasWrapperWidth))
	return bp
}

// Len returns the number of registered breakpoints.
func (r *Registry) Len() int {
	return len(r.breakpoints)
}

// All returns registered breakpoints in registration order.
func (r *Registry) All() []Breakpoint {
	out := make([]Breakpoint, len(r.breakpoints))
	copy(out, r.breakpoints)
	return out
}

// Lookup finds a breakpoint by prefix. Linear scan, FIRST match wins - with
// duplicate prefixes later registrations are unreachable here. This mirrors
// the historic behavior old grid definitions may depend on and is kept
// intact on purpose.
func (r *Registry) Lookup(prefix string) (Breakpoint, bool) {
	for _, bp := range r.breakpoints {
		if bp.Prefix == prefix {
			return bp, true
		}
	}
	return Breakpoint{}, false
}

// WithActiveMedia runs body with the context's active media flag raised.
// The flag is restored on every exit path, including a body error. The
// breakpoint passed to body is the Lookup result for prefix.
func (r *Registry) WithActiveMedia(ctx *Context, prefix string, body func(Breakpoint) error) error {
	bp, ok := r.Lookup(prefix)
	if !ok {
		return &UnknownBreakpointError{Prefix: prefix}
	}

	prev := ctx.activeMedia
	ctx.activeMedia = true
	defer func() {
		ctx.activeMedia = prev
	}()

	return body(bp)
}
