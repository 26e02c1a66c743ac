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

// Package spdx maps SPDX documents onto the canonical audit model.
// Tag-value, JSON and YAML serializations are supported.
package spdx

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/sbomaudit/document"
	"github.com/google/sbomaudit/format"
	spdxjson "github.com/spdx/tools-golang/json"
	"github.com/spdx/tools-golang/spdx"
	"github.com/spdx/tools-golang/spdx/v2/common"
	"github.com/spdx/tools-golang/tagvalue"
	spdxyaml "github.com/spdx/tools-golang/yaml"
)

type readFunc = func(io.Reader) (*spdx.Document, error)

var readers = map[format.Serialization]readFunc{
	format.TagValue: tagvalue.Read,
	format.JSON:     spdxjson.Read,
	format.YAML:     spdxyaml.Read,
}

// Decode parses an SPDX document in the given serialization and converts it
// to the canonical model. A document without a creation info block is
// structurally invalid and fails the whole run.
func Decode(r io.Reader, s format.Serialization) (*document.Document, error) {
	read, ok := readers[s]
	if !ok {
		return nil, fmt.Errorf("spdx: unsupported serialization %v", s)
	}
	src, err := read(r)
	if err != nil {
		return nil, fmt.Errorf("spdx: %w", err)
	}
	if src.CreationInfo == nil {
		return nil, errors.New("spdx: document has no creation info block")
	}
	return convert(src), nil
}

func convert(src *spdx.Document) *document.Document {
	doc := &document.Document{
		Format:      document.FormatSPDX,
		SpecVersion: specVersion(src.SPDXVersion),
		Created:     document.Normalize(src.CreationInfo.Created),
	}
	for _, c := range src.CreationInfo.Creators {
		if c.Creator == "" {
			continue
		}
		doc.Creators = append(doc.Creators, strings.TrimSpace(c.CreatorType+": "+c.Creator))
	}
	for _, p := range src.Packages {
		if p == nil {
			continue
		}
		doc.Packages = append(doc.Packages, convertPackage(p))
	}
	for _, f := range src.Files {
		if f == nil {
			continue
		}
		doc.Files = append(doc.Files, convertFile(f))
	}
	for _, r := range src.Relationships {
		if r == nil {
			continue
		}
		doc.Relationships = append(doc.Relationships, &document.Relationship{
			Source: elementRef(r.RefA),
			Target: elementRef(r.RefB),
			Type:   r.Relationship,
		})
	}
	return doc
}

func convertPackage(src *spdx.Package) *document.Package {
	pkg := &document.Package{
		Ref:      "SPDXRef-" + string(src.PackageSPDXIdentifier),
		Name:     document.Normalize(src.PackageName),
		Version:  document.Normalize(src.PackageVersion),
		Supplier: document.Missing,
		License:  document.Normalize(src.PackageLicenseConcluded),
		PURL:     document.Missing,
		CPE:      document.Missing,
	}
	if s := src.PackageSupplier; s != nil {
		pkg.Supplier = document.Normalize(s.Supplier)
	}
	if document.Present(pkg.License) {
		pkg.LicenseIDs = []string{pkg.License}
	}
	for _, ref := range src.PackageExternalReferences {
		if ref == nil {
			continue
		}
		switch {
		// Both spellings of the package manager category occur in the wild.
		case ref.RefType == "purl" || ref.Category == "PACKAGE-MANAGER" || ref.Category == "PACKAGE_MANAGER":
			pkg.PURL = document.Normalize(ref.Locator)
		case ref.RefType == "cpe22Type" || ref.RefType == "cpe23Type":
			pkg.CPE = document.Normalize(ref.Locator)
		}
	}
	return pkg
}

func convertFile(src *spdx.File) *document.File {
	f := &document.File{
		Ref:       "SPDXRef-" + string(src.FileSPDXIdentifier),
		Name:      document.Normalize(src.FileName),
		Type:      document.Missing,
		License:   document.Normalize(src.LicenseConcluded),
		Copyright: document.Normalize(src.FileCopyrightText),
	}
	if len(src.FileTypes) > 0 {
		f.Type = strings.Join(src.FileTypes, ", ")
	}
	return f
}

// specVersion keeps the declared version string, e.g. "SPDX-2.3". The field
// is never left empty.
func specVersion(v string) string {
	if v == "" {
		return document.UnknownVersion
	}
	return v
}

// elementRef renders a relationship endpoint. Special values such as
// NOASSERTION are preserved as-is.
func elementRef(id common.DocElementID) string {
	if id.SpecialID != "" {
		return id.SpecialID
	}
	ref := "SPDXRef-" + string(id.ElementRefID)
	if id.DocumentRefID != "" {
		return "DocumentRef-" + id.DocumentRefID + ":" + ref
	}
	return ref
}
