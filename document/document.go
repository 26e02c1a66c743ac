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

// Package document defines the format-agnostic SBOM model that all audit
// checks operate on. Format adapters populate it once per run; checks and
// the report aggregator only read it.
package document

import "strings"

const (
	// Missing marks a field that was absent from the source document or
	// carried a NOASSERTION/NONE placeholder. It is distinct from the empty
	// string so that checks can report "MISSING" instead of a blank value.
	Missing = "MISSING"

	// UnknownVersion is the sentinel used when a document doesn't declare
	// its spec version. The version field is never left empty.
	UnknownVersion = "unknown"
)

// Present reports whether a field carries a real value, i.e. it is neither
// empty nor the Missing sentinel.
func Present(v string) bool {
	return v != "" && v != Missing
}

// Normalize maps absent values and the SPDX non-assertion placeholders onto
// the Missing sentinel. A NOASSERTION or NONE value must never satisfy a
// presence check.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "NOASSERTION" || v == "NONE" {
		return Missing
	}
	return v
}

// Format identifies the SBOM document family.
type Format int

// Format values.
const (
	FormatUnknown Format = iota
	FormatSPDX
	FormatCycloneDX
)

// String returns the human-readable name of the format.
func (f Format) String() string {
	switch f {
	case FormatSPDX:
		return "SPDX"
	case FormatCycloneDX:
		return "CycloneDX"
	default:
		return "unknown"
	}
}

// Document is the root of the canonical model. Format and SpecVersion are
// always populated by the adapters, with explicit sentinels when the source
// doesn't declare them.
type Document struct {
	Format      Format
	SpecVersion string
	// Creators lists the document authors/tools, e.g. "Tool: sbom4python".
	// Empty when the document declares none.
	Creators []string
	// Created is the creation timestamp, or Missing.
	Created       string
	Packages      []*Package
	Files         []*File
	Relationships []*Relationship
}

// Package is one software component of the document.
type Package struct {
	// Ref is the identifier used by relationships to point at this package.
	// Unique within a document.
	Ref      string
	Name     string
	Version  string
	Supplier string
	// License is the concluded license expression, verbatim from the source,
	// or Missing. Compound expressions (AND/OR/WITH) are passed through
	// unresolved.
	License string
	// LicenseIDs holds the individual identifiers found in License. Empty
	// when no license was declared.
	LicenseIDs []string
	PURL       string
	CPE        string
}

// Subject returns the name used to scope findings to this package.
func (p *Package) Subject() string {
	if Present(p.Name) {
		return p.Name
	}
	return p.Ref
}

// File is one file entry of the document.
type File struct {
	Ref       string
	Name      string
	Type      string
	License   string
	Copyright string
}

// Subject returns the name used to scope findings to this file.
func (f *File) Subject() string {
	if Present(f.Name) {
		return f.Name
	}
	return f.Ref
}

// Relationship records that the source element relates to the target
// element. The type is kept as the raw string from the document; the audit
// only cares about relationship presence, not graph structure.
type Relationship struct {
	Source string
	Target string
	Type   string
}
