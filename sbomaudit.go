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

// Package sbomaudit audits Software Bills of Materials for completeness and
// policy conformance. It normalizes SPDX and CycloneDX documents into one
// canonical model, runs the audit check catalog against it, and reports the
// findings, including an NTIA minimum-elements verdict.
package sbomaudit

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/sbomaudit/check"
	"github.com/google/sbomaudit/document"
	"github.com/google/sbomaudit/enrich"
	"github.com/google/sbomaudit/format"
	"github.com/google/sbomaudit/format/cdx"
	"github.com/google/sbomaudit/format/spdx"
	"github.com/google/sbomaudit/log"
	"github.com/google/sbomaudit/report"
)

// Config describes one audit run.
type Config struct {
	// Path of the SBOM file. Used for format detection, and opened for
	// reading when Reader is nil.
	Path string
	// Reader optionally supplies the document content; Path then only
	// selects the decoder.
	Reader io.Reader
	// Client resolves latest published versions for the currency check.
	// Nil disables enrichment, as does Options.Offline.
	Client enrich.Client
	// Options selects the optional checks; nil runs the defaults.
	Options *check.Options
}

// Auditor decodes and audits SBOM documents.
type Auditor struct{}

// New returns an Auditor.
func New() *Auditor {
	return &Auditor{}
}

// Audit runs the configured audit: detect the encoding, decode the document
// into the canonical model, and execute the check catalog. Decode failures
// abort the run; check failures are findings, not errors.
func (a *Auditor) Audit(ctx context.Context, cfg *Config) (*report.Report, error) {
	doc, err := a.Decode(cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("Auditing %s document %s", doc.Format, cfg.Path)
	return check.Run(ctx, doc, cfg.Options, cfg.Client), nil
}

// Decode reads the configured SBOM into the canonical document model.
func (a *Auditor) Decode(cfg *Config) (*document.Document, error) {
	enc, err := format.Detect(cfg.Path)
	if err != nil {
		return nil, err
	}

	r := cfg.Reader
	if r == nil {
		f, err := os.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	switch enc.Format {
	case document.FormatSPDX:
		doc, err := spdx.Decode(r, enc.Serialization)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", cfg.Path, err)
		}
		return doc, nil
	case document.FormatCycloneDX:
		doc, err := cdx.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", cfg.Path, err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: %q", format.ErrUnsupported, cfg.Path)
	}
}
