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

// Package format detects which SBOM format and serialization an input file
// uses, based on its naming convention. The format is decided once here and
// all downstream logic operates on the canonical model only.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/sbomaudit/document"
)

// ErrUnsupported is returned when the file name matches no known SBOM
// naming convention. There is no content-based fallback; callers must fail
// fast.
var ErrUnsupported = errors.New("unsupported SBOM format")

// Serialization identifies the wire encoding of a document.
type Serialization int

// Serialization values.
const (
	TagValue Serialization = iota
	JSON
	YAML
)

// String returns the human-readable name of the serialization.
func (s Serialization) String() string {
	switch s {
	case TagValue:
		return "tag-value"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Encoding is a (format, serialization) pair selected at detection time.
type Encoding struct {
	Format        document.Format
	Serialization Serialization
}

// suffixRules is ordered: the SPDX suffixes must be tried before the generic
// .json rule so that .spdx.json is not mistaken for CycloneDX.
var suffixRules = []struct {
	suffix string
	enc    Encoding
}{
	{".spdx.json", Encoding{document.FormatSPDX, JSON}},
	{".spdx.yaml", Encoding{document.FormatSPDX, YAML}},
	{".spdx.yml", Encoding{document.FormatSPDX, YAML}},
	{".spdx", Encoding{document.FormatSPDX, TagValue}},
	{".json", Encoding{document.FormatCycloneDX, JSON}},
}

// Detect returns the encoding to use for the given file path. The first
// matching suffix rule wins; unrecognized names are an error.
func Detect(path string) (Encoding, error) {
	p := strings.ToLower(filepath.ToSlash(path))
	for _, rule := range suffixRules {
		if strings.HasSuffix(p, rule.suffix) {
			return rule.enc, nil
		}
	}
	return Encoding{}, fmt.Errorf("%w: %q", ErrUnsupported, path)
}
