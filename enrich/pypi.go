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

package enrich

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/sbomaudit/log"
)

// pypiAPI holds the base URL of the PyPI JSON API.
const pypiAPI = "https://pypi.org/pypi"

// lookupTimeout bounds a single registry query. A timed-out lookup resolves
// to the skip outcome, it never blocks the overall run.
const lookupTimeout = 5 * time.Second

// PyPIClient fetches the latest published version of a package from the
// PyPI JSON API. Responses are cached for the lifetime of the client so
// repeated occurrences of a package in one document cost a single request.
// Safe for concurrent use.
type PyPIClient struct {
	registry string
	client   *http.Client

	mu    sync.Mutex
	cache map[string]Result
}

// NewPyPIClient returns a client for the given registry base URL. An empty
// registry selects pypi.org.
func NewPyPIClient(registry string) *PyPIClient {
	if registry == "" {
		registry = pypiAPI
	}
	return &PyPIClient{
		registry: registry,
		client:   &http.Client{},
		cache:    make(map[string]Result),
	}
}

type projectResponse struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

// LatestVersion queries the registry for the latest published version of
// the named project. Any failure (timeout, not found, malformed response)
// is an unavailable Result, never an error.
func (p *PyPIClient) LatestVersion(ctx context.Context, name string) Result {
	p.mu.Lock()
	if res, ok := p.cache[name]; ok {
		p.mu.Unlock()
		return res
	}
	p.mu.Unlock()

	res := p.lookup(ctx, name)

	p.mu.Lock()
	p.cache[name] = res
	p.mu.Unlock()
	return res
}

func (p *PyPIClient) lookup(ctx context.Context, name string) Result {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	reqURL, err := url.JoinPath(p.registry, name, "json")
	if err != nil {
		log.Warnf("pypi: bad project name %q: %v", name, err)
		return Result{}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Warnf("pypi: building request for %q: %v", name, err)
		return Result{}
	}
	resp, err := p.client.Do(req)
	if err != nil {
		log.Debugf("pypi: query for %q failed: %v", name, err)
		return Result{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Debugf("pypi: query for %q returned status %d", name, resp.StatusCode)
		return Result{}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Debugf("pypi: reading response for %q: %v", name, err)
		return Result{}
	}
	var project projectResponse
	if err := json.Unmarshal(body, &project); err != nil {
		log.Debugf("pypi: decoding response for %q: %v", name, err)
		return Result{}
	}
	if project.Info.Version == "" {
		return Result{}
	}
	return Result{Available: true, Version: project.Info.Version}
}
