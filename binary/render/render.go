// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package render prints audit reports for terminals. Findings are grouped
// by category; passing checks show a green marker, failing checks a red one
// with the failure detail.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/google/sbomaudit/report"
	"github.com/mattn/go-isatty"
)

const (
	csi   = "\x1b["
	reset = csi + "0m"
	bold  = csi + "1m"
	red   = csi + "31m"
	green = csi + "32m"
)

// Renderer writes a report to one output stream.
type Renderer struct {
	w       io.Writer
	color   bool
	verbose bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithColor forces colors on or off; the default is to colorize only when
// writing to a terminal.
func WithColor(on bool) Option {
	return func(r *Renderer) { r.color = on }
}

// WithVerbose makes the renderer print passing findings too. The default
// prints only failures plus the summary.
func WithVerbose(on bool) Option {
	return func(r *Renderer) { r.verbose = on }
}

// New returns a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, color: isTerminal(w)}
	for _, o := range opts {
		o(r)
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (r *Renderer) paint(color, s string) string {
	if !r.color {
		return s
	}
	return color + s + reset
}

// Render writes the report grouped by category, then the overall summary
// with the pass and fail counts. In terse mode a fully-passing category
// collapses to a single green line; failing lines are always shown.
func (r *Renderer) Render(rep *report.Report) {
	for _, cat := range report.Categories {
		findings := rep.Category(cat)
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(r.w, "\n%s\n", r.paint(bold, cat.String()+" Summary"))
		failed := 0
		for _, f := range findings {
			if f.Status == report.Fail {
				failed++
			}
		}
		if failed == 0 && !r.verbose {
			fmt.Fprintf(r.w, "%s %d checks passed\n", r.paint(green, "[x]"), len(findings))
			continue
		}
		for _, f := range findings {
			if f.Status == report.Pass && !r.verbose {
				continue
			}
			r.finding(f)
		}
	}

	fmt.Fprintf(r.w, "\n%s\n", r.paint(bold, "SBOM Audit Summary"))
	fmt.Fprintf(r.w, "Checks passed %d\n", rep.Passed)
	fmt.Fprintf(r.w, "Checks failed %d\n", rep.Failed)
}

func (r *Renderer) finding(f report.Finding) {
	marker := r.paint(green, "[x]")
	if f.Status == report.Fail {
		marker = r.paint(red, "[ ]")
	}
	line := f.Check
	if f.Subject != "" {
		line = f.Subject + ": " + line
	}
	if f.Status == report.Fail && f.Detail != "" {
		line += " - " + f.Detail
	}
	fmt.Fprintf(r.w, "%s %s\n", marker, line)
}
