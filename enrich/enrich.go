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

// Package enrich defines the registry lookup used by the version currency
// check. Lookups never fail the audit pipeline: any error is reported as an
// unavailable Result, which makes the check skip rather than fail.
package enrich

import "context"

// Result is the outcome of a latest-version lookup. The zero Result means
// the information is unavailable and the corresponding check is skipped.
type Result struct {
	Available bool
	Version   string
}

// Client queries a package registry for the latest published version of a
// named package.
type Client interface {
	LatestVersion(ctx context.Context, name string) Result
}

// Offline is the Client for runs without network access. Every lookup is
// unavailable.
type Offline struct{}

// LatestVersion always reports the version as unavailable.
func (Offline) LatestVersion(context.Context, string) Result { return Result{} }
