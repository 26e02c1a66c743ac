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

// Package cdx maps CycloneDX JSON documents onto the canonical audit model.
package cdx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/sbomaudit/document"
)

// Decode parses a CycloneDX JSON BOM and converts it to the canonical model.
// A BOM without a metadata block is structurally invalid and fails the whole
// run.
func Decode(r io.Reader) (*document.Document, error) {
	var bom cyclonedx.BOM
	if err := cyclonedx.NewBOMDecoder(r, cyclonedx.BOMFileFormatJSON).Decode(&bom); err != nil {
		return nil, fmt.Errorf("cyclonedx: %w", err)
	}
	if bom.Metadata == nil {
		return nil, errors.New("cyclonedx: document has no metadata block")
	}
	return convert(&bom), nil
}

func convert(bom *cyclonedx.BOM) *document.Document {
	doc := &document.Document{
		Format:      document.FormatCycloneDX,
		SpecVersion: specVersion(bom.SpecVersion),
		Creators:    creators(bom.Metadata),
		Created:     document.Normalize(bom.Metadata.Timestamp),
	}
	if bom.Components != nil {
		appendComponents(doc, *bom.Components)
	}
	if bom.Dependencies != nil {
		for _, dep := range *bom.Dependencies {
			if dep.Dependencies == nil {
				continue
			}
			for _, target := range *dep.Dependencies {
				doc.Relationships = append(doc.Relationships, &document.Relationship{
					Source: dep.Ref,
					Target: target,
					Type:   "DEPENDS_ON",
				})
			}
		}
	}
	return doc
}

// appendComponents walks the component tree in document order. Nested
// components are flattened into the package list.
func appendComponents(doc *document.Document, components []cyclonedx.Component) {
	for _, c := range components {
		doc.Packages = append(doc.Packages, convertComponent(c))
		if c.Components != nil {
			appendComponents(doc, *c.Components)
		}
	}
}

func convertComponent(c cyclonedx.Component) *document.Package {
	pkg := &document.Package{
		Ref:      c.BOMRef,
		Name:     document.Normalize(c.Name),
		Version:  document.Normalize(c.Version),
		Supplier: supplier(c),
		License:  license(c.Licenses),
		PURL:     document.Normalize(c.PackageURL),
		CPE:      document.Normalize(c.CPE),
	}
	if pkg.Ref == "" {
		// Relationships key off the bom-ref; fall back to the purl like the
		// CycloneDX spec recommends, then the name.
		if c.PackageURL != "" {
			pkg.Ref = c.PackageURL
		} else {
			pkg.Ref = pkg.Name
		}
	}
	if document.Present(pkg.License) {
		pkg.LicenseIDs = []string{pkg.License}
	}
	return pkg
}

func supplier(c cyclonedx.Component) string {
	if c.Supplier != nil && c.Supplier.Name != "" {
		return c.Supplier.Name
	}
	if c.Publisher != "" {
		return c.Publisher
	}
	if c.Author != "" {
		return c.Author
	}
	return document.Missing
}

// license returns the first declared license of a component: the SPDX id if
// set, otherwise the free-form name, otherwise the expression. CycloneDX's
// absence-of-license is the Missing sentinel.
func license(licenses *cyclonedx.Licenses) string {
	if licenses == nil {
		return document.Missing
	}
	for _, choice := range *licenses {
		if choice.License != nil {
			if choice.License.ID != "" {
				return choice.License.ID
			}
			if choice.License.Name != "" {
				return choice.License.Name
			}
		}
		if choice.Expression != "" {
			return choice.Expression
		}
	}
	return document.Missing
}

func creators(md *cyclonedx.Metadata) []string {
	var out []string
	if md.Tools != nil {
		if md.Tools.Tools != nil {
			for _, t := range *md.Tools.Tools {
				name := strings.TrimSpace(strings.TrimSpace(t.Vendor) + " " + t.Name)
				if t.Version != "" {
					name = strings.TrimSpace(name + " " + t.Version)
				}
				if name != "" {
					out = append(out, "Tool: "+name)
				}
			}
		}
		if md.Tools.Components != nil {
			for _, c := range *md.Tools.Components {
				if c.Name != "" {
					out = append(out, "Tool: "+strings.TrimSpace(c.Name+" "+c.Version))
				}
			}
		}
	}
	if md.Authors != nil {
		for _, a := range *md.Authors {
			if a.Name != "" {
				out = append(out, "Person: "+a.Name)
			}
		}
	}
	return out
}

// specVersion renders the BOM's declared version, e.g. "1.4". Unversioned
// documents get the explicit unknown sentinel.
func specVersion(v cyclonedx.SpecVersion) string {
	if s := v.String(); s != "" {
		return s
	}
	return document.UnknownVersion
}
