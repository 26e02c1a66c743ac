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

// Main entry point of the sbomaudit command line tool.
package main

import (
	"flag"
	"os"

	"github.com/google/sbomaudit/binary/auditrunner"
	"github.com/google/sbomaudit/binary/cli"
	"github.com/google/sbomaudit/log"
)

func main() {
	flags := parseFlags()
	if err := cli.ValidateFlags(flags); err != nil {
		log.Errorf("Error parsing CLI args: %v", err)
		os.Exit(auditrunner.ExitFailure)
	}
	os.Exit(auditrunner.RunAudit(flags))
}

func parseFlags() *cli.Flags {
	input := flag.String("input", "", "The SBOM file to audit (SPDX tag-value/json/yaml or CycloneDX json)")
	offline := flag.Bool("offline", false, "Skip registry lookups for latest package versions")
	cpecheck := flag.Bool("cpecheck", false, "Check that packages carry a CPE identifier")
	purlcheck := flag.Bool("purlcheck", false, "Check that packages carry a PURL consistent with their name")
	disableLicense := flag.Bool("disable-license-check", false, "Skip SPDX license identifier validation")
	allow := flag.String("allow", "", "Path to an allow list policy file")
	deny := flag.String("deny", "", "Path to a deny list policy file")
	verbose := flag.Bool("verbose", false, "Print passing checks in addition to failures")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	flags := &cli.Flags{
		InputFile:           *input,
		Offline:             *offline,
		CPECheck:            *cpecheck,
		PURLCheck:           *purlcheck,
		DisableLicenseCheck: *disableLicense,
		AllowList:           *allow,
		DenyList:            *deny,
		Verbose:             *verbose,
		NoColor:             *noColor,
	}
	log.SetLogger(&log.DefaultLogger{Verbose: *verbose})
	return flags
}
