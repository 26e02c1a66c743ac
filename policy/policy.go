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

// Package policy parses and holds the allow/deny lists used by license and
// package checks. Matching is case-sensitive exact string match. An empty
// set imposes no constraint: the corresponding check is skipped entirely.
package policy

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"go.uber.org/multierr"
)

// List holds the entries of one policy file: license identifiers and
// package names.
type List struct {
	Licenses stringset.Set
	Packages stringset.Set
}

// Policy combines the allow and deny lists of a run. The zero value imposes
// no constraints.
type Policy struct {
	Allow List
	Deny  List
}

// Parse reads a policy list file. The format is plain text with two
// optional section headers, [license] and [package]; blank lines and lines
// starting with # are ignored, every other line is an entry of the current
// section. Malformed lines are collected and reported together; a partial
// policy is never returned without an error.
func Parse(r io.Reader) (List, error) {
	list := List{Licenses: stringset.New(), Packages: stringset.New()}
	var section *stringset.Set
	var errs error

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			switch strings.TrimSpace(strings.Trim(line, "[]")) {
			case "license":
				section = &list.Licenses
			case "package":
				section = &list.Packages
			default:
				errs = multierr.Append(errs, fmt.Errorf("line %d: unknown section %q", n, line))
				section = nil
			}
			continue
		}
		if section == nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: entry %q outside of a [license] or [package] section", n, line))
			continue
		}
		section.Add(line)
	}
	if err := scanner.Err(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return list, errs
}
