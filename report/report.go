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

// Package report defines the findings emitted by audit checks and the
// aggregated audit report handed to renderers. Findings are immutable once
// emitted; the report only accumulates and counts them.
package report

// Status is the outcome of a single check.
type Status int

// Status values.
const (
	Fail Status = iota
	Pass
)

// String returns the human-readable status.
func (s Status) String() string {
	if s == Pass {
		return "Pass"
	}
	return "Fail"
}

// Category groups findings for rendering and aggregation.
type Category int

// Category values, in report order.
const (
	Format Category = iota
	File
	Package
	Relationship
	NTIA
)

// Categories lists all categories in the fixed report order.
var Categories = []Category{Format, File, Package, Relationship, NTIA}

// String returns the heading name of the category.
func (c Category) String() string {
	switch c {
	case Format:
		return "SBOM Format"
	case File:
		return "File"
	case Package:
		return "Package"
	case Relationship:
		return "Relationships"
	case NTIA:
		return "NTIA"
	default:
		return "unknown"
	}
}

// Finding is the result of one check against one subject. Detail carries
// the explanation for failures, e.g. the offending value or "MISSING".
type Finding struct {
	Category Category
	// Subject scopes the finding to a package or file name. Empty for
	// document-wide checks.
	Subject string
	Check   string
	Status  Status
	Detail  string
}

// Report is the ordered collection of findings plus summary counts. Append
// only; findings are never edited after being added.
type Report struct {
	Findings []Finding
	Passed   int
	Failed   int
}

// Add appends a finding and updates the counts.
func (r *Report) Add(f Finding) {
	r.Findings = append(r.Findings, f)
	if f.Status == Pass {
		r.Passed++
	} else {
		r.Failed++
	}
}

// Category returns the findings of one category, in emission order.
func (r *Report) Category(c Category) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}

// NTIAConformant reports the status of the composite NTIA finding. False
// when the audit produced none.
func (r *Report) NTIAConformant() bool {
	for _, f := range r.Findings {
		if f.Category == NTIA {
			return f.Status == Pass
		}
	}
	return false
}
