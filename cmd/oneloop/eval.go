// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/oneloop/basis"
	"github.com/katalvlaran/oneloop/numeric"
)

var (
	errNoFunc   = errors.New("missing function name")
	errBadInput = errors.New("arguments must be finite")
)

func evalCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "evaluate one basis integral",
		ArgsUsage: "<func>",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "x", Usage: "first squared mass"},
			&cli.Float64Flag{Name: "y", Usage: "second squared mass"},
			&cli.Float64Flag{Name: "s-re", Usage: "real part of the squared momentum"},
			&cli.Float64Flag{Name: "s-im", Usage: "imaginary part of the squared momentum"},
			&cli.Float64Flag{Name: "qq", Usage: "renormalization scale squared", Value: 1},
			&cli.BoolFlag{Name: "explain", Usage: "show the selected branch"},
		},
		Action: func(ctx *cli.Context) error {
			return s.eval(ctx)
		},
	}
}

func (s *session) eval(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return errNoFunc
	}
	f, ok := basis.ParseFunc(name)
	if !ok {
		return fmt.Errorf("unknown function %q (see 'oneloop funcs')", name)
	}
	p := basis.Point{
		X:  ctx.Float64("x"),
		Y:  ctx.Float64("y"),
		S:  complex(ctx.Float64("s-re"), ctx.Float64("s-im")),
		QQ: ctx.Float64("qq"),
	}
	for _, v := range []float64{p.X, p.Y, real(p.S), imag(p.S), p.QQ} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errBadInput
		}
	}
	if p.QQ <= 0 {
		return fmt.Errorf("--qq must be > 0, got %g", p.QQ)
	}

	v := s.ev.Eval(f, p)
	row := resultRow{
		fn:     f,
		p:      p,
		value:  v,
		status: statusOK,
	}
	if numeric.IsInfinite(v) {
		row.status = statusUndefined
	}
	explain := ctx.Bool("explain")
	if explain {
		row.branch = s.ev.Branch(f, p)
	}
	s.log.WithFields(logrus.Fields{"func": f.String(), "branch": row.branch}).Debug("evaluated")
	renderTable(ctx.App.Writer, []resultRow{row}, explain)
	return nil
}

func funcsCommand() *cli.Command {
	return &cli.Command{
		Name:  "funcs",
		Usage: "list the available functions and their parameters",
		Action: func(ctx *cli.Context) error {
			for _, f := range basis.Funcs() {
				fmt.Fprintf(ctx.App.Writer, "%-13s %v\n", f, f.Params())
			}
			return nil
		},
	}
}
