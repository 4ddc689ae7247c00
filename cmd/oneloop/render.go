// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/oneloop/basis"
	"github.com/katalvlaran/oneloop/batch"
)

type status int

const (
	statusOK status = iota
	statusUndefined
	statusMismatch
)

var (
	okColor        = color.New(color.FgGreen).SprintFunc()
	undefinedColor = color.New(color.FgYellow).SprintFunc()
	mismatchColor  = color.New(color.FgHiRed).SprintFunc()
)

// setColor forces colors on or off. Color stays off on non-terminals.
func setColor(on bool) {
	if !on {
		color.NoColor = true
	}
}

func (st status) String() string {
	switch st {
	case statusUndefined:
		return undefinedColor("undefined")
	case statusMismatch:
		return mismatchColor("mismatch")
	}
	return okColor("ok")
}

// resultRow is one rendered line.
type resultRow struct {
	fn     basis.Func
	p      basis.Point
	value  complex128
	branch string
	status status
}

func rowOf(r batch.Result) resultRow {
	row := resultRow{fn: r.Func, p: r.Point, value: r.Value, branch: r.Branch}
	switch {
	case r.Undefined:
		row.status = statusUndefined
	case !r.Match:
		row.status = statusMismatch
	}
	return row
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', 12, 64) }

func cplx(z complex128) string {
	if imag(z) == 0 {
		return num(real(z))
	}
	return "(" + num(real(z)) + ", " + num(imag(z)) + ")"
}

// renderTable prints rows with only the columns each function reads filled in.
func renderTable(w io.Writer, rows []resultRow, withBranch bool) {
	header := []string{"Func", "x", "y", "s", "qq", "Re", "Im", "Status"}
	if withBranch {
		header = append(header, "Branch")
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, r := range rows {
		cell := func(param, v string) string {
			if r.fn.Uses(param) {
				return v
			}
			return "-"
		}
		line := []string{
			r.fn.String(),
			cell(basis.ParamX, num(r.p.X)),
			cell(basis.ParamY, num(r.p.Y)),
			cell(basis.ParamS, cplx(r.p.S)),
			cell(basis.ParamQQ, num(r.p.QQ)),
			num(real(r.value)),
			num(imag(r.value)),
			r.status.String(),
		}
		if withBranch {
			line = append(line, r.branch)
		}
		table.Append(line)
	}
	table.Render()
}
