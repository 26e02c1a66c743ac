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

package check_test

import (
	"context"
	"strings"
	"testing"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/go-cmp/cmp"
	"github.com/google/sbomaudit/check"
	"github.com/google/sbomaudit/document"
	"github.com/google/sbomaudit/enrich"
	"github.com/google/sbomaudit/policy"
	"github.com/google/sbomaudit/report"
)

// fakeClient serves canned latest versions from a map; unlisted packages
// resolve as unavailable.
type fakeClient struct {
	versions map[string]string
}

func (c fakeClient) LatestVersion(_ context.Context, name string) enrich.Result {
	v, ok := c.versions[name]
	if !ok {
		return enrich.Result{}
	}
	return enrich.Result{Available: true, Version: v}
}

// completeDoc returns a CycloneDX document that passes every default and
// optional check: one fully described package plus one relationship.
func completeDoc() *document.Document {
	return &document.Document{
		Format:      document.FormatCycloneDX,
		SpecVersion: "1.4",
		Creators:    []string{"Tool: sbom4python 0.10.0"},
		Created:     "2023-01-12T09:10:00Z",
		Packages: []*document.Package{
			{
				Ref:      "1-click",
				Name:     "click",
				Version:  "8.1.3",
				Supplier: "click developers",
				License:  "BSD-3-Clause",
				PURL:     "pkg:pypi/click@8.1.3",
				CPE:      "cpe:2.3:a:click_developers:click:8.1.3:*:*:*:*:*:*:*",
			},
		},
		Relationships: []*document.Relationship{
			{Source: "CDXRef-DOCUMENT", Target: "1-click", Type: "DEPENDS_ON"},
		},
	}
}

func findingsByCheck(rep *report.Report, name string) []report.Finding {
	var out []report.Finding
	for _, f := range rep.Findings {
		if f.Check == name {
			out = append(out, f)
		}
	}
	return out
}

func TestRunCompleteDocument(t *testing.T) {
	opts := &check.Options{Offline: true, CPECheck: true, PURLCheck: true}
	rep := check.Run(context.Background(), completeDoc(), opts, nil)

	if rep.Failed != 0 {
		t.Errorf("Run: got %d failed findings, want 0:\n%+v", rep.Failed, rep.Findings)
	}
	if len(rep.Findings) != 14 {
		t.Errorf("Run: got %d findings, want 14:\n%+v", len(rep.Findings), rep.Findings)
	}
	if !rep.NTIAConformant() {
		t.Error("NTIAConformant: got false, want true")
	}
	// Offline mode must skip the version currency check entirely.
	if got := findingsByCheck(rep, check.CheckPackageLatestVersion); len(got) != 0 {
		t.Errorf("latest version findings in offline mode: got %+v, want none", got)
	}
}

func TestRunMissingLicense(t *testing.T) {
	doc := completeDoc()
	doc.Packages[0].License = document.Missing
	opts := &check.Options{Offline: true, CPECheck: true, PURLCheck: true}
	rep := check.Run(context.Background(), doc, opts, nil)

	// Presence and identifier validity fail; the OSI check is skipped
	// because there is no license value to judge.
	if got := findingsByCheck(rep, check.CheckPackageLicense); len(got) != 1 || got[0].Status != report.Fail || got[0].Detail != document.Missing {
		t.Errorf("license presence: got %+v, want one Fail with detail MISSING", got)
	}
	if got := findingsByCheck(rep, check.CheckPackageLicenseValid); len(got) != 1 || got[0].Status != report.Fail {
		t.Errorf("license validity: got %+v, want one Fail", got)
	}
	if got := findingsByCheck(rep, check.CheckPackageLicenseOSI); len(got) != 0 {
		t.Errorf("OSI findings for missing license: got %+v, want none", got)
	}
	if rep.NTIAConformant() {
		t.Error("NTIAConformant with missing license: got true, want false")
	}
}

func TestRunSingleMissingField(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*document.Document)
		failCheck string
		ntia      bool
	}{
		{
			name:      "missing supplier",
			mutate:    func(d *document.Document) { d.Packages[0].Supplier = document.Missing },
			failCheck: check.CheckPackageSupplier,
			ntia:      false,
		},
		{
			name:      "missing version",
			mutate:    func(d *document.Document) { d.Packages[0].Version = document.Missing },
			failCheck: check.CheckPackageVersion,
			ntia:      false,
		},
		{
			name:      "missing creation time",
			mutate:    func(d *document.Document) { d.Created = document.Missing },
			failCheck: check.CheckCreated,
			ntia:      false,
		},
		{
			name:      "no relationships",
			mutate:    func(d *document.Document) { d.Relationships = nil },
			failCheck: check.CheckRelationships,
			ntia:      false,
		},
		{
			name:      "stale spec version",
			mutate:    func(d *document.Document) { d.SpecVersion = "1.2" },
			failCheck: check.CheckCDXVersion,
			ntia:      true, // spec version currency doesn't gate NTIA
		},
		{
			name:      "missing CPE",
			mutate:    func(d *document.Document) { d.Packages[0].CPE = document.Missing },
			failCheck: check.CheckPackageCPE,
			ntia:      true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := completeDoc()
			tc.mutate(doc)
			opts := &check.Options{Offline: true, CPECheck: true, PURLCheck: true}
			rep := check.Run(context.Background(), doc, opts, nil)

			if rep.Failed == 0 {
				t.Fatalf("Run: got no failed findings, want %q to fail", tc.failCheck)
			}
			for _, f := range rep.Findings {
				if f.Status != report.Fail || f.Category == report.NTIA {
					continue
				}
				if f.Check != tc.failCheck {
					t.Errorf("unexpected failure %+v, want only %q to fail", f, tc.failCheck)
				}
			}
			if got := rep.NTIAConformant(); got != tc.ntia {
				t.Errorf("NTIAConformant: got %v, want %v", got, tc.ntia)
			}
		})
	}
}

func TestRunLatestVersion(t *testing.T) {
	client := fakeClient{versions: map[string]string{"click": "8.1.7"}}
	doc := completeDoc()
	rep := check.Run(context.Background(), doc, &check.Options{}, client)

	got := findingsByCheck(rep, check.CheckPackageLatestVersion)
	want := []report.Finding{{
		Category: report.Package,
		Subject:  "click",
		Check:    check.CheckPackageLatestVersion,
		Status:   report.Fail,
		Detail:   "Version is 8.1.3; latest is 8.1.7",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("latest version finding (-want +got):\n%s", diff)
	}
	// Version currency is advisory: it never fails NTIA conformance.
	if !rep.NTIAConformant() {
		t.Error("NTIAConformant with stale version: got false, want true")
	}

	doc.Packages[0].Version = "8.1.7"
	rep = check.Run(context.Background(), doc, &check.Options{}, client)
	got = findingsByCheck(rep, check.CheckPackageLatestVersion)
	if len(got) != 1 || got[0].Status != report.Pass {
		t.Errorf("latest version on current package: got %+v, want one Pass", got)
	}
}

func TestRunLatestVersionSkips(t *testing.T) {
	client := fakeClient{versions: map[string]string{"click": "8.1.7", "left-pad": "1.3.0"}}
	doc := completeDoc()
	doc.Packages = append(doc.Packages,
		// Different ecosystem: no lookup.
		&document.Package{Ref: "2-left-pad", Name: "left-pad", Version: "1.3.0", Supplier: "npm", License: "MIT", PURL: "pkg:npm/left-pad@1.3.0", CPE: "cpe:2.3:a:npm:left-pad:1.3.0:*:*:*:*:*:*:*"},
		// Unknown to the registry: lookup fails quietly.
		&document.Package{Ref: "3-internal", Name: "internal-tool", Version: "0.1.0", Supplier: "example", License: "MIT", PURL: "pkg:pypi/internal-tool@0.1.0", CPE: "cpe:2.3:a:example:internal-tool:0.1.0:*:*:*:*:*:*:*"},
	)
	rep := check.Run(context.Background(), doc, &check.Options{CPECheck: true, PURLCheck: true}, client)

	got := findingsByCheck(rep, check.CheckPackageLatestVersion)
	if len(got) != 1 || got[0].Subject != "click" || got[0].Status != report.Fail {
		t.Errorf("latest version findings: got %+v, want a single Fail for click", got)
	}
}

func TestRunNoAssertionNeverPasses(t *testing.T) {
	doc := completeDoc()
	// Decoders normalize NOASSERTION to the missing sentinel; a raw value
	// that slipped through must still not be treated as present.
	doc.Packages[0].Supplier = document.Normalize("NOASSERTION")
	rep := check.Run(context.Background(), doc, &check.Options{Offline: true}, nil)

	got := findingsByCheck(rep, check.CheckPackageSupplier)
	if len(got) != 1 || got[0].Status != report.Fail {
		t.Errorf("supplier findings: got %+v, want one Fail", got)
	}
}

func TestRunPolicy(t *testing.T) {
	pol := &policy.Policy{
		Allow: policy.List{Licenses: stringset.New("Apache-2.0"), Packages: stringset.New()},
		Deny:  policy.List{Licenses: stringset.New(), Packages: stringset.New("click")},
	}
	doc := completeDoc()
	rep := check.Run(context.Background(), doc, &check.Options{Offline: true, Policy: pol}, nil)

	got := findingsByCheck(rep, check.CheckPackageLicenseAllowed)
	if len(got) != 1 || got[0].Status != report.Fail || got[0].Detail != "BSD-3-Clause not allowed" {
		t.Errorf("allowed license findings: got %+v, want one Fail for BSD-3-Clause", got)
	}
	got = findingsByCheck(rep, check.CheckPackageDenied)
	if len(got) != 1 || got[0].Status != report.Fail || got[0].Detail != "click not allowed" {
		t.Errorf("denied package findings: got %+v, want one Fail for click", got)
	}
	// Empty lists skip their checks entirely.
	if got := findingsByCheck(rep, check.CheckPackageAllowed); len(got) != 0 {
		t.Errorf("allowed package findings with empty list: got %+v, want none", got)
	}
	if got := findingsByCheck(rep, check.CheckPackageLicenseDenied); len(got) != 0 {
		t.Errorf("denied license findings with empty list: got %+v, want none", got)
	}
	// Policy failures never affect NTIA conformance.
	if !rep.NTIAConformant() {
		t.Error("NTIAConformant with policy failures: got false, want true")
	}
}

func TestRunDisableLicenseCheck(t *testing.T) {
	doc := completeDoc()
	doc.Packages[0].License = "not-a-real-license"
	rep := check.Run(context.Background(), doc, &check.Options{Offline: true, DisableLicenseCheck: true}, nil)

	if got := findingsByCheck(rep, check.CheckPackageLicenseValid); len(got) != 0 {
		t.Errorf("validity findings with license check disabled: got %+v, want none", got)
	}
	// Presence still runs and passes: a value is recorded even if invalid.
	got := findingsByCheck(rep, check.CheckPackageLicense)
	if len(got) != 1 || got[0].Status != report.Pass {
		t.Errorf("license presence findings: got %+v, want one Pass", got)
	}
}

func TestRunPURLNameMismatch(t *testing.T) {
	doc := completeDoc()
	doc.Packages[0].PURL = "pkg:pypi/clack@8.1.3"
	rep := check.Run(context.Background(), doc, &check.Options{Offline: true, PURLCheck: true}, nil)

	got := findingsByCheck(rep, check.CheckPackagePURLName)
	if len(got) != 1 || got[0].Status != report.Fail {
		t.Fatalf("purl name findings: got %+v, want one Fail", got)
	}
	if !strings.Contains(got[0].Detail, "clack") || !strings.Contains(got[0].Detail, "click") {
		t.Errorf("purl name detail: got %q, want both names mentioned", got[0].Detail)
	}
}

func TestRunFileChecks(t *testing.T) {
	doc := completeDoc()
	doc.Format = document.FormatSPDX
	doc.SpecVersion = "SPDX-2.3"
	doc.Files = []*document.File{
		{Ref: "SPDXRef-File-1", Name: "click/__init__.py", Type: "SOURCE", License: "BSD-3-Clause", Copyright: document.Missing},
		{Ref: "SPDXRef-File-2", Name: document.Missing, Type: document.Missing, License: document.Missing, Copyright: document.Missing},
	}
	rep := check.Run(context.Background(), doc, &check.Options{Offline: true}, nil)

	files := rep.Category(report.File)
	// First file: name/type/license pass, copyright fails, OSI runs on the
	// present license. Second file: OSI skipped, everything else fails.
	if len(files) != 11 {
		t.Fatalf("file findings: got %d, want 11:\n%+v", len(files), files)
	}
	for _, f := range files {
		if f.Subject == "click/__init__.py" && f.Check == check.CheckFileName && f.Status != report.Pass {
			t.Errorf("file name for named file: got %+v, want Pass", f)
		}
		if f.Subject == "SPDXRef-File-2" && f.Check == check.CheckFileLicenseOSI {
			t.Errorf("OSI finding for file without license: got %+v, want skipped", f)
		}
	}
	// A file without a name fails NTIA conformance.
	if rep.NTIAConformant() {
		t.Error("NTIAConformant with unnamed file: got true, want false")
	}
}

func TestRunDeterministic(t *testing.T) {
	client := fakeClient{versions: map[string]string{"click": "8.1.7"}}
	doc := completeDoc()
	for i := 0; i < 4; i++ {
		doc.Packages = append(doc.Packages, &document.Package{
			Ref:     string(rune('a' + i)),
			Name:    "pkg" + string(rune('a'+i)),
			Version: "1.0.0",
			PURL:    "pkg:pypi/pkg" + string(rune('a'+i)) + "@1.0.0",
		})
	}
	opts := &check.Options{CPECheck: true, PURLCheck: true}

	first := check.Run(context.Background(), doc, opts, client)
	second := check.Run(context.Background(), doc, opts, client)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Run is not deterministic (-first +second):\n%s", diff)
	}
}
