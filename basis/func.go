// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"strings"
)

// Func names one basis integral.
type Func int

const (
	FuncA Func = iota
	FuncAp
	FuncAeps
	FuncB
	FuncB00
	FuncB0x
	FuncBp
	FuncDBds
	FuncBeps
	FuncBeps0x
	FuncBepsAtZero
	FuncBAtZero
	FuncBprimeAtZero
	numFuncs
)

var funcNames = [numFuncs]string{
	FuncA:            "A",
	FuncAp:           "Ap",
	FuncAeps:         "Aeps",
	FuncB:            "B",
	FuncB00:          "B00",
	FuncB0x:          "B0x",
	FuncBp:           "Bp",
	FuncDBds:         "dBds",
	FuncBeps:         "Beps",
	FuncBeps0x:       "Beps0x",
	FuncBepsAtZero:   "BepsAtZero",
	FuncBAtZero:      "BAtZero",
	FuncBprimeAtZero: "BprimeAtZero",
}

// Parameter names as used by Func.Params.
const (
	ParamX  = "x"
	ParamY  = "y"
	ParamS  = "s"
	ParamQQ = "qq"
)

var funcParams = [numFuncs][]string{
	FuncA:            {ParamX, ParamQQ},
	FuncAp:           {ParamX, ParamQQ},
	FuncAeps:         {ParamX, ParamQQ},
	FuncB:            {ParamX, ParamY, ParamS, ParamQQ},
	FuncB00:          {ParamS, ParamQQ},
	FuncB0x:          {ParamX, ParamS, ParamQQ},
	FuncBp:           {ParamX, ParamY, ParamS, ParamQQ},
	FuncDBds:         {ParamX, ParamY, ParamS, ParamQQ},
	FuncBeps:         {ParamX, ParamY, ParamS, ParamQQ},
	FuncBeps0x:       {ParamX, ParamS, ParamQQ},
	FuncBepsAtZero:   {ParamX, ParamY, ParamQQ},
	FuncBAtZero:      {ParamX, ParamY, ParamQQ},
	FuncBprimeAtZero: {ParamX, ParamY, ParamQQ},
}

// Funcs lists every function in declaration order.
func Funcs() []Func {
	out := make([]Func, numFuncs)
	for i := range out {
		out[i] = Func(i)
	}
	return out
}

// Valid reports whether f names a known function.
func (f Func) Valid() bool { return f >= 0 && f < numFuncs }

// String implements fmt.Stringer.
func (f Func) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Func(%d)", int(f))
	}
	return funcNames[f]
}

// Params returns the Point fields f reads, in call order.
func (f Func) Params() []string {
	if !f.Valid() {
		return nil
	}
	return append([]string(nil), funcParams[f]...)
}

// Uses reports whether f reads the named parameter.
func (f Func) Uses(param string) bool {
	if !f.Valid() {
		return false
	}
	for _, p := range funcParams[f] {
		if p == param {
			return true
		}
	}
	return false
}

// ParseFunc resolves a function name case-insensitively.
func ParseFunc(name string) (Func, bool) {
	for i, n := range funcNames {
		if strings.EqualFold(n, name) {
			return Func(i), true
		}
	}
	return 0, false
}

func (f Func) table() *table {
	switch f {
	case FuncA:
		return &aTable
	case FuncAp:
		return &apTable
	case FuncAeps:
		return &aepsTable
	case FuncB:
		return &bTable
	case FuncB00:
		return &b00Table
	case FuncB0x:
		return &b0xTable
	case FuncBp:
		return &bpTable
	case FuncDBds:
		return &dbdsTable
	case FuncBeps:
		return &bepsTable
	case FuncBeps0x:
		return &beps0xTable
	case FuncBepsAtZero:
		return &bepsAtZeroTable
	case FuncBAtZero:
		return &bAtZeroTable
	case FuncBprimeAtZero:
		return &bprimeAtZeroTable
	}
	return nil
}
