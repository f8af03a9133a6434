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

import "sync"

// Convention customizes an endpoint under construction. Conventions run at
// compile time, in registration order, and may mutate any builder field:
// order, display name, metadata, dispatch, filter factories.
type Convention func(*Builder)

// conventionState tracks the two-phase lifecycle of a convention collection.
type conventionState uint8

const (
	conventionsOpen conventionState = iota
	conventionsFrozen
)

// Conventions is the append-only convention collection owned by one route.
// Registration returns the collection as a handle for caller appends; the
// collection freezes permanently the first time the owning route compiles.
//
// Appends are expected during the single-writer setup phase; freezing is the
// synchronization boundary between setup and compiled phases.
type Conventions struct {
	mu    sync.Mutex
	state conventionState
	fns   []Convention
}

// Add appends a convention to the collection. It fails with
// ErrConventionsFrozen once the owning route has been compiled by any
// snapshot call. Successful appends preserve registration order.
func (c *Conventions) Add(fn Convention) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == conventionsFrozen {
		return ErrConventionsFrozen
	}
	c.fns = append(c.fns, fn)

	return nil
}

// freeze transitions the collection to its terminal state. The transition
// is one-way; repeated freezes are no-ops.
func (c *Conventions) freeze() {
	c.mu.Lock()
	c.state = conventionsFrozen
	c.mu.Unlock()
}

// snapshot returns the frozen convention list. Callers must freeze first;
// after freezing the slice can no longer grow, so sharing it is safe.
func (c *Conventions) snapshot() []Convention {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fns
}
