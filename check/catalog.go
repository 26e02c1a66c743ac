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

package check

import (
	"fmt"

	"github.com/google/sbomaudit/document"
	"github.com/google/sbomaudit/licenses"
	"github.com/google/sbomaudit/report"
	"github.com/package-url/packageurl-go"
)

// Check names, as they appear in the report. Stable: the NTIA verdict and
// renderers key off them.
const (
	CheckSPDXVersion = "Up to date SPDX Version"
	CheckCDXVersion  = "Up to date CycloneDX Version"
	CheckCreator     = "SBOM Creator identified"
	CheckCreated     = "SBOM Creation time defined"

	CheckFileName            = "File name specified"
	CheckFileType            = "File type identified"
	CheckFileLicense         = "License specified"
	CheckFileLicenseValid    = "SPDX compatible license id included"
	CheckFileLicenseOSI      = "OSI approved license"
	CheckFileLicenseAllowed  = "Allowed license check"
	CheckFileLicenseDenied   = "Denied license check"
	CheckFileCopyright       = "Copyright defined"

	CheckPackageName           = "Package name specified"
	CheckPackageSupplier       = "Supplier included"
	CheckPackageVersion        = "Version included"
	CheckPackageLatestVersion  = "Using latest version"
	CheckPackageLicense        = "License included"
	CheckPackageLicenseValid   = "SPDX compatible license id included"
	CheckPackageLicenseOSI     = "OSI approved license"
	CheckPackageLicenseAllowed = "Allowed license check"
	CheckPackageLicenseDenied  = "Denied license check"
	CheckPackageAllowed        = "Allowed package check"
	CheckPackageDenied         = "Denied package check"
	CheckPackagePURL           = "PURL included"
	CheckPackagePURLName       = "PURL name consistent with package name"
	CheckPackageCPE            = "CPE name included"

	CheckRelationships = "Dependency relationships provided"
	CheckNTIA          = "NTIA conformant"
)

// Spec versions accepted by the up-to-date version check, per format
// family. Comparison is exact.
var (
	spdxVersions = []string{"SPDX-2.2", "SPDX-2.3"}
	cdxVersions  = []string{"1.3", "1.4"}
)

// ntiaContributing names the (category, check) pairs whose failure fails
// NTIA conformance: complete packages, named files, document creator and
// creation time, and at least one relationship. Policy and optional checks
// don't contribute.
var ntiaContributing = map[report.Category]map[string]bool{
	report.Format: {
		CheckCreator: true,
		CheckCreated: true,
	},
	report.File: {
		CheckFileName: true,
	},
	report.Package: {
		CheckPackageName:     true,
		CheckPackageSupplier: true,
		CheckPackageVersion:  true,
		CheckPackageLicense:  true,
	},
	report.Relationship: {
		CheckRelationships: true,
	},
}

// result is the outcome of one check evaluation. Checks whose preconditions
// aren't met are skipped by their applicability predicate and never reach
// this point.
type result struct {
	status report.Status
	detail string
}

func pass() result { return result{status: report.Pass} }

func fail(detail string) result { return result{status: report.Fail, detail: detail} }

// present evaluates a plain presence check: Fail reports "MISSING".
func present(v string) result {
	if document.Present(v) {
		return pass()
	}
	return fail(document.Missing)
}

// validLicense evaluates the SPDX identifier validity check. The failure
// detail quotes the offending value, or "MISSING" for absent licenses.
func validLicense(lic string) result {
	if licenses.Valid(lic) {
		return pass()
	}
	return fail(lic)
}

// osiLicense evaluates the OSI approval check for a present license value.
func osiLicense(lic string) result {
	if licenses.OSIApproved(lic) {
		return pass()
	}
	return fail(lic)
}

type documentCheck struct {
	name    string
	applies func(*document.Document, *Options) bool
	eval    func(*document.Document) result
}

type fileCheck struct {
	name    string
	applies func(*document.File, *Options) bool
	eval    func(*document.File, *Options) result
}

type packageCheck struct {
	name    string
	applies func(*document.Package, *runContext) bool
	eval    func(*document.Package, *runContext) result
}

// documentChecks is the Format category: each check runs exactly once per
// document.
var documentChecks = []documentCheck{
	{
		name:    CheckSPDXVersion,
		applies: func(d *document.Document, _ *Options) bool { return d.Format == document.FormatSPDX },
		eval:    func(d *document.Document) result { return versionInSet(d.SpecVersion, spdxVersions) },
	},
	{
		name:    CheckCDXVersion,
		applies: func(d *document.Document, _ *Options) bool { return d.Format == document.FormatCycloneDX },
		eval:    func(d *document.Document) result { return versionInSet(d.SpecVersion, cdxVersions) },
	},
	{
		name: CheckCreator,
		eval: func(d *document.Document) result {
			if len(d.Creators) > 0 {
				return pass()
			}
			return fail(document.Missing)
		},
	},
	{
		name: CheckCreated,
		eval: func(d *document.Document) result { return present(d.Created) },
	},
}

func versionInSet(version string, accepted []string) result {
	for _, v := range accepted {
		if version == v {
			return pass()
		}
	}
	return fail(version)
}

// fileChecks runs for each file entity, in document order.
var fileChecks = []fileCheck{
	{
		name: CheckFileName,
		eval: func(f *document.File, _ *Options) result { return present(f.Name) },
	},
	{
		name: CheckFileType,
		eval: func(f *document.File, _ *Options) result { return present(f.Type) },
	},
	{
		name: CheckFileLicense,
		eval: func(f *document.File, _ *Options) result { return present(f.License) },
	},
	{
		name:    CheckFileLicenseValid,
		applies: func(_ *document.File, o *Options) bool { return !o.DisableLicenseCheck },
		eval:    func(f *document.File, _ *Options) result { return validLicense(f.License) },
	},
	{
		name:    CheckFileLicenseOSI,
		applies: func(f *document.File, _ *Options) bool { return document.Present(f.License) },
		eval:    func(f *document.File, _ *Options) result { return osiLicense(f.License) },
	},
	{
		name:    CheckFileLicenseAllowed,
		applies: func(_ *document.File, o *Options) bool { return !o.policy().Allow.Licenses.Empty() },
		eval: func(f *document.File, o *Options) result {
			return allowed(o.policy().Allow.Licenses.Contains(f.License), f.License)
		},
	},
	{
		name:    CheckFileLicenseDenied,
		applies: func(_ *document.File, o *Options) bool { return !o.policy().Deny.Licenses.Empty() },
		eval: func(f *document.File, o *Options) result {
			return allowed(!o.policy().Deny.Licenses.Contains(f.License), f.License)
		},
	},
	{
		name: CheckFileCopyright,
		eval: func(f *document.File, _ *Options) result { return present(f.Copyright) },
	},
}

// allowed renders a policy check outcome; failures report which value was
// rejected.
func allowed(ok bool, value string) result {
	if ok {
		return pass()
	}
	return fail(value + " not allowed")
}

// packageChecks runs for each package entity, in document order.
var packageChecks = []packageCheck{
	{
		name: CheckPackageName,
		eval: func(p *document.Package, _ *runContext) result { return present(p.Name) },
	},
	{
		name: CheckPackageSupplier,
		eval: func(p *document.Package, _ *runContext) result { return present(p.Supplier) },
	},
	{
		name: CheckPackageVersion,
		eval: func(p *document.Package, _ *runContext) result { return present(p.Version) },
	},
	{
		// Runs only when the lookup succeeded; offline mode, other
		// ecosystems and lookup failures all skip it.
		name: CheckPackageLatestVersion,
		applies: func(p *document.Package, rc *runContext) bool {
			return rc.latest[p.Ref].Available
		},
		eval: func(p *document.Package, rc *runContext) result {
			latest := rc.latest[p.Ref].Version
			if p.Version == latest {
				return pass()
			}
			return fail(fmt.Sprintf("Version is %s; latest is %s", p.Version, latest))
		},
	},
	{
		name: CheckPackageLicense,
		eval: func(p *document.Package, _ *runContext) result { return present(p.License) },
	},
	{
		name:    CheckPackageLicenseValid,
		applies: func(_ *document.Package, rc *runContext) bool { return !rc.opts.DisableLicenseCheck },
		eval:    func(p *document.Package, _ *runContext) result { return validLicense(p.License) },
	},
	{
		name:    CheckPackageLicenseOSI,
		applies: func(p *document.Package, _ *runContext) bool { return document.Present(p.License) },
		eval:    func(p *document.Package, _ *runContext) result { return osiLicense(p.License) },
	},
	{
		name:    CheckPackageLicenseAllowed,
		applies: func(_ *document.Package, rc *runContext) bool { return !rc.opts.policy().Allow.Licenses.Empty() },
		eval: func(p *document.Package, rc *runContext) result {
			return allowed(rc.opts.policy().Allow.Licenses.Contains(p.License), p.License)
		},
	},
	{
		name:    CheckPackageLicenseDenied,
		applies: func(_ *document.Package, rc *runContext) bool { return !rc.opts.policy().Deny.Licenses.Empty() },
		eval: func(p *document.Package, rc *runContext) result {
			return allowed(!rc.opts.policy().Deny.Licenses.Contains(p.License), p.License)
		},
	},
	{
		name:    CheckPackageAllowed,
		applies: func(_ *document.Package, rc *runContext) bool { return !rc.opts.policy().Allow.Packages.Empty() },
		eval: func(p *document.Package, rc *runContext) result {
			return allowed(rc.opts.policy().Allow.Packages.Contains(p.Name), p.Name)
		},
	},
	{
		name:    CheckPackageDenied,
		applies: func(_ *document.Package, rc *runContext) bool { return !rc.opts.policy().Deny.Packages.Empty() },
		eval: func(p *document.Package, rc *runContext) result {
			return allowed(!rc.opts.policy().Deny.Packages.Contains(p.Name), p.Name)
		},
	},
	{
		name:    CheckPackagePURL,
		applies: func(_ *document.Package, rc *runContext) bool { return rc.opts.PURLCheck },
		eval:    func(p *document.Package, _ *runContext) result { return present(p.PURL) },
	},
	{
		name: CheckPackagePURLName,
		applies: func(p *document.Package, rc *runContext) bool {
			return rc.opts.PURLCheck && document.Present(p.PURL)
		},
		eval: func(p *document.Package, _ *runContext) result {
			purl, err := packageurl.FromString(p.PURL)
			if err != nil {
				return fail(p.PURL)
			}
			if purl.Name == p.Name {
				return pass()
			}
			return fail(fmt.Sprintf("purl name %s does not match %s", purl.Name, p.Name))
		},
	},
	{
		name:    CheckPackageCPE,
		applies: func(_ *document.Package, rc *runContext) bool { return rc.opts.CPECheck },
		eval:    func(p *document.Package, _ *runContext) result { return present(p.CPE) },
	},
}
