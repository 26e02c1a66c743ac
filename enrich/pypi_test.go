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

package enrich_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/sbomaudit/enrich"
)

func TestLatestVersion(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Path {
		case "/click/json":
			fmt.Fprint(w, `{"info": {"name": "click", "version": "8.1.7"}}`)
		case "/garbage/json":
			fmt.Fprint(w, `not json`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := enrich.NewPyPIClient(srv.URL)
	ctx := context.Background()

	got := client.LatestVersion(ctx, "click")
	want := enrich.Result{Available: true, Version: "8.1.7"}
	if got != want {
		t.Errorf("LatestVersion(click): got %+v, want %+v", got, want)
	}

	// Not found resolves to unavailable, not an error.
	if got := client.LatestVersion(ctx, "no-such-package"); got.Available {
		t.Errorf("LatestVersion(no-such-package): got %+v, want unavailable", got)
	}

	// Malformed responses resolve to unavailable too.
	if got := client.LatestVersion(ctx, "garbage"); got.Available {
		t.Errorf("LatestVersion(garbage): got %+v, want unavailable", got)
	}
}

func TestLatestVersionCaches(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, `{"info": {"version": "1.0.0"}}`)
	}))
	defer srv.Close()

	client := enrich.NewPyPIClient(srv.URL)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if got := client.LatestVersion(ctx, "click"); got.Version != "1.0.0" {
			t.Fatalf("LatestVersion(click): got %+v, want version 1.0.0", got)
		}
	}
	if requests != 1 {
		t.Errorf("LatestVersion made %d requests for the same package, want 1", requests)
	}
}

func TestLatestVersionUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // shut down immediately so the query fails

	client := enrich.NewPyPIClient(srv.URL)
	if got := client.LatestVersion(context.Background(), "click"); got.Available {
		t.Errorf("LatestVersion against unreachable registry: got %+v, want unavailable", got)
	}
}

func TestOffline(t *testing.T) {
	var client enrich.Client = enrich.Offline{}
	if got := client.LatestVersion(context.Background(), "click"); got.Available {
		t.Errorf("Offline.LatestVersion: got %+v, want unavailable", got)
	}
}
