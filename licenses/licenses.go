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

// Package licenses holds the reference list of published SPDX license
// identifiers, with their OSI-approval flag. The list is immutable static
// data; matching is case-sensitive exact match, so compound expressions
// (AND/OR/WITH) are only valid if the whole string is itself a published
// identifier.
package licenses

// Valid reports whether id exactly matches a published SPDX license
// identifier.
func Valid(id string) bool {
	_, ok := index[id]
	return ok
}

// OSIApproved reports whether id is a published SPDX license identifier
// that is on the OSI approved list.
func OSIApproved(id string) bool {
	return index[id]
}

// index maps SPDX license identifiers to their OSI-approval flag, from the
// SPDX license list (https://spdx.org/licenses/). Deprecated identifiers
// that still occur in published SBOMs (e.g. GPL-2.0) are kept.
var index = map[string]bool{
	"0BSD":                true,
	"AAL":                 true,
	"AFL-1.1":             true,
	"AFL-1.2":             true,
	"AFL-2.0":             true,
	"AFL-2.1":             true,
	"AFL-3.0":             true,
	"AGPL-1.0-only":       false,
	"AGPL-1.0-or-later":   false,
	"AGPL-3.0":            true,
	"AGPL-3.0-only":       true,
	"AGPL-3.0-or-later":   true,
	"APL-1.0":             true,
	"APSL-1.0":            true,
	"APSL-1.1":            true,
	"APSL-1.2":            true,
	"APSL-2.0":            true,
	"Apache-1.0":          false,
	"Apache-1.1":          true,
	"Apache-2.0":          true,
	"Artistic-1.0":        true,
	"Artistic-1.0-Perl":   false,
	"Artistic-1.0-cl8":    true,
	"Artistic-2.0":        true,
	"BSD-1-Clause":        true,
	"BSD-2-Clause":        true,
	"BSD-2-Clause-Patent": true,
	"BSD-3-Clause":        true,
	"BSD-3-Clause-Clear":  false,
	"BSD-3-Clause-LBNL":   true,
	"BSD-4-Clause":        false,
	"BSL-1.0":             true,
	"BUSL-1.1":            false,
	"Beerware":            false,
	"CATOSL-1.1":          true,
	"CC-BY-3.0":           false,
	"CC-BY-4.0":           false,
	"CC-BY-NC-4.0":        false,
	"CC-BY-SA-3.0":        false,
	"CC-BY-SA-4.0":        false,
	"CC0-1.0":             false,
	"CDDL-1.0":            true,
	"CDDL-1.1":            false,
	"CECILL-2.0":          false,
	"CECILL-2.1":          true,
	"CECILL-B":            false,
	"CECILL-C":            false,
	"CNRI-Python":         true,
	"CPAL-1.0":            true,
	"CPL-1.0":             true,
	"CUA-OPL-1.0":         true,
	"ECL-1.0":             true,
	"ECL-2.0":             true,
	"EFL-1.0":             true,
	"EFL-2.0":             true,
	"EPL-1.0":             true,
	"EPL-2.0":             true,
	"EUDatagrid":          true,
	"EUPL-1.0":            false,
	"EUPL-1.1":            true,
	"EUPL-1.2":            true,
	"Elastic-2.0":         false,
	"Entessa":             true,
	"Fair":                true,
	"Frameworx-1.0":       true,
	"GFDL-1.2-only":       false,
	"GFDL-1.3-only":       false,
	"GPL-1.0-only":        false,
	"GPL-1.0-or-later":    false,
	"GPL-2.0":             true,
	"GPL-2.0+":            true,
	"GPL-2.0-only":        true,
	"GPL-2.0-or-later":    true,
	"GPL-3.0":             true,
	"GPL-3.0+":            true,
	"GPL-3.0-only":        true,
	"GPL-3.0-or-later":    true,
	"HPND":                true,
	"ICU":                 false,
	"IPA":                 true,
	"IPL-1.0":             true,
	"ISC":                 true,
	"JSON":                false,
	"LGPL-2.0":            true,
	"LGPL-2.0-only":       true,
	"LGPL-2.0-or-later":   true,
	"LGPL-2.1":            true,
	"LGPL-2.1+":           true,
	"LGPL-2.1-only":       true,
	"LGPL-2.1-or-later":   true,
	"LGPL-3.0":            true,
	"LGPL-3.0+":           true,
	"LGPL-3.0-only":       true,
	"LGPL-3.0-or-later":   true,
	"LPL-1.0":             true,
	"LPL-1.02":            true,
	"LiLiQ-P-1.1":         true,
	"LiLiQ-R-1.1":         true,
	"LiLiQ-Rplus-1.1":     true,
	"MIT":                 true,
	"MIT-0":               true,
	"MIT-Modern-Variant":  true,
	"MPL-1.0":             true,
	"MPL-1.1":             true,
	"MPL-2.0":             true,
	"MS-PL":               true,
	"MS-RL":               true,
	"MirOS":               true,
	"Motosoto":            true,
	"MulanPSL-2.0":        true,
	"Multics":             true,
	"NASA-1.3":            true,
	"NCSA":                true,
	"NGPL":                true,
	"NPOSL-3.0":           true,
	"NTP":                 true,
	"Naumen":              true,
	"OCLC-2.0":            true,
	"ODbL-1.0":            false,
	"OFL-1.1":             true,
	"OGTSL":               true,
	"OLDAP-2.8":           true,
	"OSET-PL-2.1":         true,
	"OSL-1.0":             true,
	"OSL-2.0":             true,
	"OSL-2.1":             true,
	"OSL-3.0":             true,
	"OpenSSL":             false,
	"PHP-3.0":             true,
	"PHP-3.01":            true,
	"PostgreSQL":          true,
	"Python-2.0":          true,
	"QPL-1.0":             true,
	"RPL-1.1":             true,
	"RPL-1.5":             true,
	"RPSL-1.0":            true,
	"RSCPL":               true,
	"Ruby":                false,
	"SGI-B-2.0":           false,
	"SISSL":               true,
	"SPL-1.0":             true,
	"SSPL-1.0":            false,
	"SimPL-2.0":           true,
	"Sleepycat":           true,
	"TCL":                 false,
	"UPL-1.0":             true,
	"Unicode-DFS-2016":    true,
	"Unlicense":           true,
	"VSL-1.0":             true,
	"Vim":                 false,
	"W3C":                 true,
	"WTFPL":               false,
	"Watcom-1.0":          true,
	"X11":                 false,
	"XFree86-1.1":         false,
	"Xnet":                true,
	"ZPL-2.0":             true,
	"ZPL-2.1":             true,
	"Zend-2.0":            false,
	"Zlib":                true,
	"curl":                false,
	"libpng-2.0":          false,
}
