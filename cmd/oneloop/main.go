// SPDX-License-Identifier: MIT

// Command oneloop evaluates one-loop self-energy basis integrals from the
// command line.
//
//	oneloop eval --x 1 --y 2 --s-re 10 --qq 1 --explain B
//	oneloop batch --workers 4 --output yaml points.yaml
//
// Flags precede the positional argument.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/oneloop/basis"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "log level: 0=panic 1=fatal 2=error 3=warn 4=info 5=debug 6=trace",
		Value: int(logrus.WarnLevel),
	}
	toleranceFlag = &cli.Float64Flag{
		Name:  "tol",
		Usage: "zero/coincidence tolerance of the branch predicates",
		Value: basis.DefaultTolerance,
	}
	noColorFlag = &cli.BoolFlag{
		Name:  "nocolor",
		Usage: "disable colored status cells",
	}
)

// session carries what the Before hook builds for the commands.
type session struct {
	log *logrus.Logger
	ev  *basis.Evaluator
}

func newApp(stdout, stderr io.Writer) *cli.App {
	s := &session{}
	app := &cli.App{
		Name:      "oneloop",
		Usage:     "evaluate one-loop self-energy basis integrals",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     []cli.Flag{verbosityFlag, toleranceFlag, noColorFlag},
		Before: func(ctx *cli.Context) error {
			return s.setup(ctx)
		},
		Commands: []*cli.Command{
			evalCommand(s),
			batchCommand(s),
			funcsCommand(),
		},
	}
	return app
}

func (s *session) setup(ctx *cli.Context) error {
	v := ctx.Int(verbosityFlag.Name)
	if v < int(logrus.PanicLevel) || v > int(logrus.TraceLevel) {
		return fmt.Errorf("--%s %d out of range [0, 6]", verbosityFlag.Name, v)
	}
	tol := ctx.Float64(toleranceFlag.Name)
	if !(tol > 0) || tol > 1 {
		return fmt.Errorf("--%s must be in (0, 1], got %g", toleranceFlag.Name, tol)
	}

	s.log = logrus.New()
	s.log.SetOutput(ctx.App.ErrWriter)
	s.log.SetLevel(logrus.Level(v))
	s.ev = basis.New(basis.WithTolerance(tol), basis.WithLogger(s.log))

	setColor(!ctx.Bool(noColorFlag.Name))
	s.log.WithField("tol", tol).Debug("evaluator ready")
	return nil
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "oneloop:", err)
		os.Exit(1)
	}
}
