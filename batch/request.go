// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/oneloop/basis"
)

const (
	// DefaultScale is used when a request omits scale.
	DefaultScale = 1.0

	// DefaultTolerance is the absolute and relative tolerance for expect
	// comparisons when a request omits tolerance.
	DefaultTolerance = 1e-9
)

// Complex is a YAML complex number: a bare number or a one or two element
// sequence [re, im].
type Complex complex128

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Complex) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var re float64
		if err := n.Decode(&re); err != nil {
			return fmt.Errorf("line %d: %w", n.Line, ErrBadMomentum)
		}
		*c = Complex(complex(re, 0))
		return nil
	case yaml.SequenceNode:
		var parts []float64
		if err := n.Decode(&parts); err != nil || len(parts) == 0 || len(parts) > 2 {
			return fmt.Errorf("line %d: %w", n.Line, ErrBadMomentum)
		}
		if len(parts) == 1 {
			parts = append(parts, 0)
		}
		*c = Complex(complex(parts[0], parts[1]))
		return nil
	}
	return fmt.Errorf("line %d: %w", n.Line, ErrBadMomentum)
}

// MarshalYAML implements yaml.Marshaler as [re, im].
func (c Complex) MarshalYAML() (interface{}, error) {
	return []float64{real(c), imag(c)}, nil
}

// Entry is one requested evaluation.
type Entry struct {
	Func   string   `yaml:"func"`
	X      float64  `yaml:"x,omitempty"`
	Y      float64  `yaml:"y,omitempty"`
	S      Complex  `yaml:"s,omitempty"`
	QQ     *float64 `yaml:"qq,omitempty"`
	Expect *Complex `yaml:"expect,omitempty"`
}

// Request is a decoded batch file.
type Request struct {
	Scale     float64 `yaml:"scale,omitempty"`
	Tolerance float64 `yaml:"tolerance,omitempty"`
	Points    []Entry `yaml:"points"`
}

// Decode reads one YAML request from r, fills defaults and validates it.
// Unknown keys are rejected.
func Decode(r io.Reader) (*Request, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var req Request
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		if errors.Is(err, ErrBadMomentum) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if req.Scale == 0 {
		req.Scale = DefaultScale
	}
	if req.Tolerance == 0 {
		req.Tolerance = DefaultTolerance
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &req, nil
}

// Validate checks the request without evaluating anything. The first
// problem found is returned.
func (r *Request) Validate() error {
	if len(r.Points) == 0 {
		return ErrEmpty
	}
	if !finite(r.Scale) || r.Scale <= 0 {
		return ErrBadScale
	}
	if !finite(r.Tolerance) || r.Tolerance < 0 {
		return ErrBadTolerance
	}
	for i := range r.Points {
		if _, _, err := r.Resolve(i); err != nil {
			return fmt.Errorf("points[%d]: %w", i, err)
		}
	}
	return nil
}

// Resolve returns the function and point of entry i, with qq defaulted to
// the request scale.
func (r *Request) Resolve(i int) (basis.Func, basis.Point, error) {
	e := r.Points[i]
	f, ok := basis.ParseFunc(e.Func)
	if !ok {
		return 0, basis.Point{}, fmt.Errorf("%q: %w", e.Func, ErrUnknownFunc)
	}
	qq := r.Scale
	if e.QQ != nil {
		qq = *e.QQ
	}
	s := complex128(e.S)
	for _, v := range []float64{e.X, e.Y, real(s), imag(s), qq} {
		if !finite(v) {
			return 0, basis.Point{}, ErrNonFinite
		}
	}
	if e.Expect != nil && (!finite(real(*e.Expect)) || !finite(imag(*e.Expect))) {
		return 0, basis.Point{}, ErrNonFinite
	}
	if qq <= 0 {
		return 0, basis.Point{}, ErrBadScale
	}
	return f, basis.Point{X: e.X, Y: e.Y, S: s, QQ: qq}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
