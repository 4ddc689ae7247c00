// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Record is the YAML form of a Result.
type Record struct {
	Index       int      `yaml:"index"`
	Func        string   `yaml:"func"`
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	S           Complex  `yaml:"s"`
	QQ          float64  `yaml:"qq"`
	Value       Complex  `yaml:"value"`
	Branch      string   `yaml:"branch"`
	Undefined   bool     `yaml:"undefined,omitempty"`
	Diagnostics []string `yaml:"diagnostics,omitempty"`
	Expected    *Complex `yaml:"expected,omitempty"`
	Mismatch    bool     `yaml:"mismatch,omitempty"`
}

// Records converts results for encoding.
func Records(rs []Result) []Record {
	out := make([]Record, len(rs))
	for i, r := range rs {
		rec := Record{
			Index:     r.Index,
			Func:      r.Func.String(),
			X:         r.Point.X,
			Y:         r.Point.Y,
			S:         Complex(r.Point.S),
			QQ:        r.Point.QQ,
			Value:     Complex(r.Value),
			Branch:    r.Branch,
			Undefined: r.Undefined,
			Mismatch:  !r.Match,
		}
		for _, d := range r.Diagnostics {
			rec.Diagnostics = append(rec.Diagnostics, d.Error())
		}
		if r.Expected != nil {
			e := Complex(*r.Expected)
			rec.Expected = &e
		}
		out[i] = rec
	}
	return out
}

// Encode writes rs to w as a YAML document with a single "results" key.
func Encode(w io.Writer, rs []Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := struct {
		Results []Record `yaml:"results"`
	}{Records(rs)}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
