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

package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/sbomaudit/binary/render"
	"github.com/google/sbomaudit/report"
)

func sampleReport() *report.Report {
	r := &report.Report{}
	r.Add(report.Finding{Category: report.Format, Check: "SBOM Creator identified", Status: report.Pass})
	r.Add(report.Finding{Category: report.Package, Subject: "click", Check: "Supplier included", Status: report.Fail, Detail: "MISSING"})
	r.Add(report.Finding{Category: report.Relationship, Check: "Dependency relationships provided", Status: report.Pass})
	r.Add(report.Finding{Category: report.NTIA, Check: "NTIA conformant", Status: report.Fail, Detail: "FAILED"})
	return r
}

func TestRenderTerse(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, render.WithColor(false)).Render(sampleReport())
	out := buf.String()

	if !strings.Contains(out, "[ ] click: Supplier included - MISSING") {
		t.Errorf("output is missing the failure line:\n%s", out)
	}
	// Fully-passing categories collapse to one line in terse mode.
	if strings.Contains(out, "SBOM Creator identified") {
		t.Errorf("terse output shows passing findings:\n%s", out)
	}
	if !strings.Contains(out, "[x] 1 checks passed") {
		t.Errorf("terse output is missing the collapsed passing category:\n%s", out)
	}
	if !strings.Contains(out, "Checks passed 2") || !strings.Contains(out, "Checks failed 2") {
		t.Errorf("output is missing the summary counts:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output contains ANSI escapes with color disabled:\n%s", out)
	}
}

func TestRenderVerbose(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, render.WithColor(false), render.WithVerbose(true)).Render(sampleReport())
	out := buf.String()

	if !strings.Contains(out, "[x] SBOM Creator identified") {
		t.Errorf("verbose output is missing the passing finding:\n%s", out)
	}
	for _, heading := range []string{"SBOM Format Summary", "Package Summary", "Relationships Summary", "NTIA Summary", "SBOM Audit Summary"} {
		if !strings.Contains(out, heading) {
			t.Errorf("verbose output is missing heading %q:\n%s", heading, out)
		}
	}
}

func TestRenderColor(t *testing.T) {
	var buf bytes.Buffer
	render.New(&buf, render.WithColor(true)).Render(sampleReport())
	out := buf.String()

	if !strings.Contains(out, "\x1b[31m[ ]\x1b[0m") {
		t.Errorf("output is missing the red failure marker:\n%s", out)
	}
}
