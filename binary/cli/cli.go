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

// Package cli defines the command line interface of the sbomaudit binary.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/sbomaudit/check"
	"github.com/google/sbomaudit/policy"
)

// Flags contains the parsed command line flags.
type Flags struct {
	// InputFile is the SBOM to audit. Required.
	InputFile string
	// Offline disables the latest-version registry lookups.
	Offline bool
	// CPECheck enables the per-package CPE presence check.
	CPECheck bool
	// PURLCheck enables the per-package PURL checks.
	PURLCheck bool
	// DisableLicenseCheck turns off SPDX license identifier validation.
	DisableLicenseCheck bool
	// AllowList and DenyList name policy files with [license] and
	// [package] sections.
	AllowList string
	DenyList  string
	// Verbose prints passing findings as well as failures.
	Verbose bool
	// NoColor disables ANSI colors in the output.
	NoColor bool
}

// ValidateFlags checks that the flag values can form a valid audit run.
func ValidateFlags(flags *Flags) error {
	if flags.InputFile == "" {
		return errors.New("--input must be set")
	}
	if _, err := os.Stat(flags.InputFile); err != nil {
		return fmt.Errorf("--input %s: %w", flags.InputFile, err)
	}
	return nil
}

// Options converts the flags into check options, reading the policy files
// if any were given.
func (f *Flags) Options() (*check.Options, error) {
	opts := &check.Options{
		Offline:             f.Offline,
		CPECheck:            f.CPECheck,
		PURLCheck:           f.PURLCheck,
		DisableLicenseCheck: f.DisableLicenseCheck,
	}

	pol := &policy.Policy{}
	havePolicy := false
	if f.AllowList != "" {
		list, err := loadList(f.AllowList)
		if err != nil {
			return nil, err
		}
		pol.Allow = list
		havePolicy = true
	}
	if f.DenyList != "" {
		list, err := loadList(f.DenyList)
		if err != nil {
			return nil, err
		}
		pol.Deny = list
		havePolicy = true
	}
	if havePolicy {
		opts.Policy = pol
	}
	return opts, nil
}

func loadList(path string) (policy.List, error) {
	f, err := os.Open(path)
	if err != nil {
		return policy.List{}, fmt.Errorf("reading policy %s: %w", path, err)
	}
	defer f.Close()
	list, err := policy.Parse(f)
	if err != nil {
		return policy.List{}, fmt.Errorf("parsing policy %s: %w", path, err)
	}
	return list, nil
}
