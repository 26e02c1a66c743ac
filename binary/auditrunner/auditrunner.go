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

// Package auditrunner wires the audit together from parsed flags: policy
// loading, decoding, checks and rendering.
package auditrunner

import (
	"context"
	"os"

	"github.com/google/sbomaudit"
	"github.com/google/sbomaudit/binary/cli"
	"github.com/google/sbomaudit/binary/render"
	"github.com/google/sbomaudit/enrich"
	"github.com/google/sbomaudit/log"
)

// Exit codes of the sbomaudit binary.
const (
	ExitConformant    = 0
	ExitNotConformant = 1
	ExitFailure       = 2
)

// RunAudit executes the audit described by the flags and renders the report
// to stdout. The exit code reports NTIA conformance; pipeline errors (bad
// flags, unreadable input, malformed documents) exit with ExitFailure.
func RunAudit(flags *cli.Flags) int {
	opts, err := flags.Options()
	if err != nil {
		log.Errorf("%v", err)
		return ExitFailure
	}

	var client enrich.Client = enrich.Offline{}
	if !flags.Offline {
		client = enrich.NewPyPIClient("")
	}

	rep, err := sbomaudit.New().Audit(context.Background(), &sbomaudit.Config{
		Path:    flags.InputFile,
		Client:  client,
		Options: opts,
	})
	if err != nil {
		log.Errorf("Audit of %s failed: %v", flags.InputFile, err)
		return ExitFailure
	}

	var renderOpts []render.Option
	if flags.Verbose {
		renderOpts = append(renderOpts, render.WithVerbose(true))
	}
	if flags.NoColor {
		renderOpts = append(renderOpts, render.WithColor(false))
	}
	render.New(os.Stdout, renderOpts...).Render(rep)

	if rep.NTIAConformant() {
		return ExitConformant
	}
	return ExitNotConformant
}
