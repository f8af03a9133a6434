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

package endpoints

import "rivaas.dev/endpoints/pattern"

// Engine parses route pattern text and combines group prefixes with route
// templates. The endpoints package never interprets pattern syntax itself;
// it delegates to the engine.
//
// pattern.Engine is the standard implementation and the default for
// data sources created without WithPatternEngine.
type Engine interface {
	// Parse parses pattern text into a template.
	Parse(text string) (*pattern.Template, error)

	// Combine joins a group prefix with a route template. A nil prefix
	// must leave the template unchanged.
	//
	// Both inputs were accepted by Parse; Combine concatenates without
	// re-validating. Callers supplying a group prefix are responsible for
	// keeping prefix and route parameter names disjoint and for not using
	// a catch-all prefix, since the combined template is never re-parsed.
	Combine(prefix, t *pattern.Template) *pattern.Template
}
