// If you are AI: This file defines the trace sink the decoder reports decode
// events through, plus the value rendering used by those events.

package amf

import (
	"fmt"
	"log"
	"strconv"
	"time"
)

// Tracer receives decoder observability events. The decoder emits a debug
// event for every decoded value and table access, so implementations must be
// cheap. Events never affect decoding.
type Tracer interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
}

// nopTracer drops every event.
type nopTracer struct{}

// Debugf discards the event.
func (nopTracer) Debugf(string, ...interface{}) {}

// Infof discards the event.
func (nopTracer) Infof(string, ...interface{}) {}

// NopTracer returns a tracer that discards everything. It is the default for
// new decoders.
func NopTracer() Tracer {
	return nopTracer{}
}

// logTracer forwards events to a standard library logger.
type logTracer struct {
	logger *log.Logger
	debug  bool
}

// NewLogTracer returns a tracer writing through logger. Debug events are
// dropped unless debug is true. A nil logger uses log.Default.
func NewLogTracer(logger *log.Logger, debug bool) Tracer {
	if logger == nil {
		logger = log.Default()
	}
	return &logTracer{logger: logger, debug: debug}
}

// Debugf logs a debug event when enabled.
func (t *logTracer) Debugf(format string, args ...interface{}) {
	if !t.debug {
		return
	}
	t.logger.Printf("DEBUG "+format, args...)
}

// Infof logs an info event.
func (t *logTracer) Infof(format string, args ...interface{}) {
	t.logger.Printf("INFO "+format, args...)
}

// renderValue renders a value for trace output, one level deep. Deeper
// composites are summarized so self-referential values stay printable.
func renderValue(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case *TypedObject:
		return t.String()
	case Array:
		out := "["
		for i, e := range t {
			if i > 0 {
				out += ", "
			}
			out += renderShallow(e)
		}
		return out + "]"
	default:
		return renderShallow(v)
	}
}

// renderShallow summarizes a value without descending into composites.
func renderShallow(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case *TypedObject:
		name := t.ClassName
		if name == "" {
			name = "object"
		}
		return fmt.Sprintf("%s{%d}", name, t.Len())
	case Array:
		return fmt.Sprintf("array[%d]", len(t))
	case []byte:
		return fmt.Sprintf("bytes[%d]", len(t))
	case string:
		return strconv.Quote(t)
	case time.Time:
		return t.Format(time.RFC3339)
	case objectEnd:
		return "object end"
	default:
		return fmt.Sprint(t)
	}
}
