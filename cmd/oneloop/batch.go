// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/oneloop/batch"
)

var errMismatch = errors.New("results differ from expected values")

func batchCommand(s *session) *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "evaluate every point of a YAML request",
		ArgsUsage: "<file.yaml>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "workers", Usage: "parallel evaluations", Value: 1},
			&cli.StringFlag{Name: "output", Usage: "table or yaml", Value: "table"},
			&cli.BoolFlag{Name: "strict", Usage: "fail when a result misses its expect value"},
		},
		Action: func(ctx *cli.Context) error {
			return s.batch(ctx)
		},
	}
}

func (s *session) batch(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "" {
		return errors.New("missing request file")
	}
	output := ctx.String("output")
	if output != "table" && output != "yaml" {
		return fmt.Errorf("--output must be table or yaml, got %q", output)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	req, err := batch.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	rs, err := batch.EvaluateContext(ctx.Context, s.ev, req, ctx.Int("workers"))
	if err != nil {
		return err
	}
	sum := batch.Summarize(rs)
	s.log.WithField("file", path).
		WithField("total", sum.Total).
		WithField("undefined", sum.Undefined).
		WithField("mismatched", sum.Mismatched).
		Info("batch evaluated")

	if output == "yaml" {
		if err := batch.Encode(ctx.App.Writer, rs); err != nil {
			return err
		}
	} else {
		rows := make([]resultRow, len(rs))
		for i, r := range rs {
			rows[i] = rowOf(r)
		}
		renderTable(ctx.App.Writer, rows, true)
	}
	if ctx.Bool("strict") && sum.Mismatched > 0 {
		return fmt.Errorf("%d of %d: %w", sum.Mismatched, sum.Total, errMismatch)
	}
	return nil
}
