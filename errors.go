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

import "errors"

var (
	// ErrConventionsFrozen indicates an attempt to add a convention after the
	// owning route was compiled for the first time. Conventions must be
	// registered before any endpoint snapshot is taken.
	ErrConventionsFrozen = errors.New("conventions frozen after first compile")

	// ErrDispatchBeforeReady indicates that an endpoint's dispatch function
	// was invoked before request binding completed. This happens when a
	// convention calls the captured dispatch during compilation.
	ErrDispatchBeforeReady = errors.New("endpoint dispatch invoked before binding completed")

	// ErrNotSingleRoute indicates that a single-endpoint query ran against a
	// data source holding zero or more than one route.
	ErrNotSingleRoute = errors.New("expected exactly one registered route")

	// ErrNilHandler indicates that a route was registered with a nil handler.
	ErrNilHandler = errors.New("route handler must not be nil")

	// ErrNilPatternEngine indicates that the data source was configured with
	// a nil pattern engine.
	ErrNilPatternEngine = errors.New("pattern engine must not be nil")

	// ErrSynthesizerRequired indicates that a typed or filtered route needs
	// request binding but no synthesizer is configured.
	ErrSynthesizerRequired = errors.New("no synthesizer configured for typed or filtered routes")
)
