// SPDX-License-Identifier: MIT

package diag

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrUndefined marks a point where a basis integral has no finite value.
var ErrUndefined = errors.New("oneloop: function undefined at this point")

// Diagnostic names the function that hit a genuine singularity and why.
type Diagnostic struct {
	Func    string
	Message string
}

// Error implements error.
func (d Diagnostic) Error() string { return d.Func + ": " + d.Message }

// Is reports whether target is ErrUndefined.
func (d Diagnostic) Is(target error) bool { return target == ErrUndefined }

// Handler receives diagnostics. Implementations must be safe for concurrent use.
type Handler interface {
	Handle(Diagnostic)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(Diagnostic)

// Handle calls f(d).
func (f HandlerFunc) Handle(d Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Handler = HandlerFunc(func(Diagnostic) {})

type logrusHandler struct {
	log *logrus.Logger
}

// NewLogrusHandler returns a Handler that logs each diagnostic at warning level
// with the fields "func" and "reason". A nil logger means the standard logger.
func NewLogrusHandler(l *logrus.Logger) Handler {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return logrusHandler{log: l}
}

func (h logrusHandler) Handle(d Diagnostic) {
	h.log.WithFields(logrus.Fields{
		"func":   d.Func,
		"reason": d.Message,
	}).Warn("undefined basis integral")
}

// Multi fans every diagnostic out to hs in order. Nil handlers are skipped.
func Multi(hs ...Handler) Handler {
	out := make([]Handler, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			out = append(out, h)
		}
	}
	return HandlerFunc(func(d Diagnostic) {
		for _, h := range out {
			h.Handle(d)
		}
	})
}

// Default returns the handler used when none is configured.
func Default() Handler { return NewLogrusHandler(nil) }

// Recorder stores diagnostics in arrival order.
type Recorder struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Handle appends d.
func (r *Recorder) Handle(d Diagnostic) {
	r.mu.Lock()
	r.items = append(r.items, d)
	r.mu.Unlock()
}

// Diagnostics returns a copy of everything recorded so far.
func (r *Recorder) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of recorded diagnostics.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.items = nil
	r.mu.Unlock()
}
