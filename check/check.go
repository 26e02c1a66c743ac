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

// Package check runs the ordered audit rule catalog against a canonical
// SBOM document. Checks are pure and independent: per-entity failures are
// recorded as findings, never returned as errors, so one malformed package
// never prevents others from being checked.
package check

import (
	"context"

	"github.com/google/sbomaudit/document"
	"github.com/google/sbomaudit/enrich"
	"github.com/google/sbomaudit/policy"
	"github.com/google/sbomaudit/report"
	"github.com/package-url/packageurl-go"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentLookups bounds the parallel latest-version lookups. The
// lookups are a performance optimization only; findings are identical
// whether they run sequentially or concurrently.
const maxConcurrentLookups = 8

// Options selects which optional checks run. The zero value runs the
// default catalog with license identifier validation enabled.
type Options struct {
	// Offline disables all enrichment lookups; the version currency check
	// is skipped for every package.
	Offline bool
	// CPECheck enables the CPE presence check.
	CPECheck bool
	// PURLCheck enables the PURL presence and name consistency checks.
	PURLCheck bool
	// DisableLicenseCheck suppresses the SPDX identifier validity checks.
	// License presence checks always run.
	DisableLicenseCheck bool
	// Policy holds the allow/deny lists. Nil means no policy constraints.
	Policy *policy.Policy
}

func (o *Options) policy() *policy.Policy {
	if o.Policy == nil {
		return &policy.Policy{}
	}
	return o.Policy
}

// runContext carries the read-only inputs shared by all package checks.
type runContext struct {
	opts *Options
	// latest holds the prefetched latest-version lookups, keyed by package
	// ref. Packages outside the supported ecosystem have no entry.
	latest map[string]enrich.Result
}

// Run executes the full catalog in its fixed order and returns the
// aggregated report: document checks, then per-file and per-package checks
// in document order, the relationship check, and finally the composite
// NTIA verdict derived from the emitted findings.
func Run(ctx context.Context, doc *document.Document, opts *Options, client enrich.Client) *report.Report {
	if opts == nil {
		opts = &Options{}
	}
	rc := &runContext{
		opts:   opts,
		latest: fetchLatestVersions(ctx, doc, opts, client),
	}

	rep := &report.Report{}
	for _, c := range documentChecks {
		if c.applies != nil && !c.applies(doc, opts) {
			continue
		}
		res := c.eval(doc)
		rep.Add(report.Finding{Category: report.Format, Check: c.name, Status: res.status, Detail: res.detail})
	}
	for _, f := range doc.Files {
		for _, c := range fileChecks {
			if c.applies != nil && !c.applies(f, opts) {
				continue
			}
			res := c.eval(f, opts)
			rep.Add(report.Finding{Category: report.File, Subject: f.Subject(), Check: c.name, Status: res.status, Detail: res.detail})
		}
	}
	for _, p := range doc.Packages {
		for _, c := range packageChecks {
			if c.applies != nil && !c.applies(p, rc) {
				continue
			}
			res := c.eval(p, rc)
			rep.Add(report.Finding{Category: report.Package, Subject: p.Subject(), Check: c.name, Status: res.status, Detail: res.detail})
		}
	}

	relationships := result{status: report.Pass}
	if len(doc.Relationships) == 0 {
		relationships = fail("MISSING")
	}
	rep.Add(report.Finding{Category: report.Relationship, Check: CheckRelationships, Status: relationships.status, Detail: relationships.detail})

	rep.Add(ntiaFinding(rep))
	return rep
}

// fetchLatestVersions looks up the latest published version for every
// package in the supported ecosystem (PyPI, selected by PURL type). Each
// lookup writes only its own slot, so the merge into the result map is
// deterministic regardless of completion order.
func fetchLatestVersions(ctx context.Context, doc *document.Document, opts *Options, client enrich.Client) map[string]enrich.Result {
	if opts.Offline || client == nil {
		return nil
	}

	eligible := make([]bool, len(doc.Packages))
	results := make([]enrich.Result, len(doc.Packages))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLookups)
	for i, pkg := range doc.Packages {
		if !document.Present(pkg.PURL) || !document.Present(pkg.Name) {
			continue
		}
		purl, err := packageurl.FromString(pkg.PURL)
		if err != nil || purl.Type != packageurl.TypePyPi {
			continue
		}
		eligible[i] = true
		i, pkg := i, pkg
		g.Go(func() error {
			results[i] = client.LatestVersion(ctx, pkg.Name)
			return nil
		})
	}
	// Lookups report failure as an unavailable result, never as an error.
	_ = g.Wait()

	latest := make(map[string]enrich.Result)
	for i, pkg := range doc.Packages {
		if eligible[i] {
			latest[pkg.Ref] = results[i]
		}
	}
	return latest
}

// ntiaFinding computes the composite NTIA minimum-elements verdict. It is
// re-derived from the findings emitted so far: the document fails when any
// contributing check failed.
func ntiaFinding(rep *report.Report) report.Finding {
	for _, f := range rep.Findings {
		if f.Status != report.Fail {
			continue
		}
		if ntiaContributing[f.Category][f.Check] {
			return report.Finding{Category: report.NTIA, Check: CheckNTIA, Status: report.Fail, Detail: "FAILED"}
		}
	}
	return report.Finding{Category: report.NTIA, Check: CheckNTIA, Status: report.Pass}
}
