// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pattern

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPattern indicates that the route pattern text is empty.
	ErrEmptyPattern = errors.New("route pattern must not be empty")

	// ErrUnterminatedBrace indicates an opening brace without a matching close.
	ErrUnterminatedBrace = errors.New("unterminated '{' in route pattern")

	// ErrEmptyParameter indicates a parameter segment with no name ("{}").
	ErrEmptyParameter = errors.New("route parameter name must not be empty")

	// ErrCatchAllPosition indicates a catch-all parameter that is not the final segment.
	ErrCatchAllPosition = errors.New("catch-all parameter must be the final segment")

	// ErrDuplicateParameter indicates the same parameter name appearing twice.
	ErrDuplicateParameter = errors.New("duplicate route parameter")
)

// Parameter describes one named parameter in a route template, in
// declaration order.
type Parameter struct {
	Name     string
	CatchAll bool
}

// segment is one slash-delimited piece of a template: either literal text
// or a parameter reference.
type segment struct {
	literal  string
	param    string
	catchAll bool
}

// Template is a parsed, immutable route template.
//
// Templates use brace syntax: "/items/{id}" declares an "id" parameter and
// "/{*path}" declares a trailing catch-all. A Template never matches
// requests itself; it only describes the shape of the path so that callers
// can combine prefixes, enumerate parameters, and render display text.
//
// Example:
//
//	t := pattern.MustParse("/users/{id}/files/{*rest}")
//	t.ParameterNames() // ["id", "rest"]
type Template struct {
	raw      string
	segments []segment
}

// Parse parses text into a Template.
//
// Rules:
//   - segments are separated by "/"
//   - "{name}" declares a parameter
//   - "{*name}" declares a catch-all parameter, allowed only in the final segment
//   - parameter names must be unique within one template
//
// Example:
//
//	t, err := pattern.Parse("/items/{id}")
func Parse(text string) (*Template, error) {
	if text == "" {
		return nil, ErrEmptyPattern
	}

	trimmed := strings.Trim(text, "/")
	var segs []segment
	seen := make(map[string]struct{})

	parts := strings.Split(trimmed, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}

		if !strings.HasPrefix(part, "{") {
			if strings.Contains(part, "{") || strings.Contains(part, "}") {
				return nil, fmt.Errorf("%w: segment %q", ErrUnterminatedBrace, part)
			}
			segs = append(segs, segment{literal: part})
			continue
		}

		if !strings.HasSuffix(part, "}") {
			return nil, fmt.Errorf("%w: segment %q", ErrUnterminatedBrace, part)
		}

		name := part[1 : len(part)-1]
		catchAll := strings.HasPrefix(name, "*")
		if catchAll {
			name = name[1:]
		}
		if name == "" {
			return nil, fmt.Errorf("%w: segment %q", ErrEmptyParameter, part)
		}
		if catchAll && i != len(parts)-1 {
			return nil, fmt.Errorf("%w: %q", ErrCatchAllPosition, name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateParameter, name)
		}
		seen[name] = struct{}{}

		segs = append(segs, segment{param: name, catchAll: catchAll})
	}

	return &Template{raw: text, segments: segs}, nil
}

// MustParse parses text into a Template and panics on error.
// Use in tests or static route tables where invalid patterns are
// programming errors.
func MustParse(text string) *Template {
	t, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("pattern.MustParse: %v", err))
	}

	return t
}

// Combine joins a prefix template with a route template into a new Template.
// A nil prefix leaves the template unchanged. Parameters keep their
// declaration order: prefix parameters first, then route parameters.
//
// Combine concatenates two already-parsed templates and does not re-validate
// the result. The caller must ensure the prefix declares no catch-all and
// that prefix and route parameter names are disjoint; otherwise the combined
// ParameterNames carries duplicates that alias the same request value at
// dispatch time.
func Combine(prefix, t *Template) *Template {
	if prefix == nil {
		return t
	}
	if t == nil {
		return prefix
	}

	raw := joinPaths(prefix.raw, t.raw)

	segs := make([]segment, 0, len(prefix.segments)+len(t.segments))
	segs = append(segs, prefix.segments...)
	segs = append(segs, t.segments...)

	return &Template{raw: raw, segments: segs}
}

// joinPaths joins two path strings with exactly one slash between them.
func joinPaths(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}

	aslash := strings.HasSuffix(a, "/")
	bslash := strings.HasPrefix(b, "/")
	switch {
	case aslash && bslash:
		return a + b[1:]
	case !aslash && !bslash:
		return a + "/" + b
	default:
		return a + b
	}
}

// RawText returns the original pattern text the template was parsed from,
// or the joined text for combined templates.
func (t *Template) RawText() string {
	return t.raw
}

// DebugString renders the template from its parsed segments. It is used
// for display when no raw text is available.
func (t *Template) DebugString() string {
	if len(t.segments) == 0 {
		return "/"
	}

	var sb strings.Builder
	for _, s := range t.segments {
		sb.WriteByte('/')
		switch {
		case s.param == "":
			sb.WriteString(s.literal)
		case s.catchAll:
			sb.WriteString("{*")
			sb.WriteString(s.param)
			sb.WriteByte('}')
		default:
			sb.WriteByte('{')
			sb.WriteString(s.param)
			sb.WriteByte('}')
		}
	}

	return sb.String()
}

// String returns the raw text when present, the debug rendering otherwise.
func (t *Template) String() string {
	if t.raw != "" {
		return t.raw
	}

	return t.DebugString()
}

// Parameters returns the template's parameters in declaration order.
func (t *Template) Parameters() []Parameter {
	var params []Parameter
	for _, s := range t.segments {
		if s.param != "" {
			params = append(params, Parameter{Name: s.param, CatchAll: s.catchAll})
		}
	}

	return params
}

// ParameterNames returns the parameter names in declaration order.
func (t *Template) ParameterNames() []string {
	var names []string
	for _, s := range t.segments {
		if s.param != "" {
			names = append(names, s.param)
		}
	}

	return names
}

// Engine parses and combines Templates. It is stateless and safe for
// concurrent use. The zero value is ready to use.
type Engine struct{}

// NewEngine returns a new pattern Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Parse parses text into a Template.
func (*Engine) Parse(text string) (*Template, error) {
	return Parse(text)
}

// Combine joins a prefix with a template.
func (*Engine) Combine(prefix, t *Template) *Template {
	return Combine(prefix, t)
}
