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

// Group scopes a snapshot read: an optional path prefix prepended to every
// compiled route, and conventions applied to every endpoint in the snapshot
// before any entry-level convention runs.
//
// Groups are supplied per snapshot call and never stored by the data
// source, so the same declarations can be compiled under different groups.
//
// Example:
//
//	eps, err := ds.GroupedEndpoints(endpoints.Group{
//	    Prefix:      pattern.MustParse("/api/v1"),
//	    Conventions: []endpoints.Convention{requireAuth},
//	})
type Group struct {
	// Prefix is combined with each route's template. Nil leaves templates
	// unchanged.
	Prefix *pattern.Template

	// Conventions run against every endpoint in the snapshot, in order,
	// before entry-level conventions.
	Conventions []Convention
}
