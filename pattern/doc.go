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

// Package pattern parses brace-syntax route templates ("/items/{id}",
// "/{*path}") and combines them with group prefixes.
//
// Templates are immutable descriptions of a path's shape: literal segments,
// named parameters, and an optional trailing catch-all. The package does not
// match requests; matching belongs to the dispatch layer that consumes
// compiled endpoints.
package pattern
