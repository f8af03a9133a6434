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

package binding

import "errors"

var (
	// ErrNilHandler indicates that synthesis was requested for a nil handler.
	ErrNilHandler = errors.New("binding: handler must not be nil")

	// ErrUnsupportedSignature indicates a typed handler whose signature the
	// synthesizer cannot bind. Supported shapes take a context.Context and
	// an optional request struct, and return an optional result before a
	// trailing error.
	ErrUnsupportedSignature = errors.New("binding: unsupported handler signature")

	// ErrUnknownPathParameter indicates a path-tagged field referring to a
	// parameter the route does not declare.
	ErrUnknownPathParameter = errors.New("binding: path parameter not declared by route")

	// ErrUnsupportedFieldType indicates a request field whose type cannot be
	// converted from a string parameter.
	ErrUnsupportedFieldType = errors.New("binding: unsupported field type")

	// ErrMalformedRequest indicates request data that could not be bound to
	// the handler's inputs.
	ErrMalformedRequest = errors.New("binding: malformed request")

	// ErrUnsupportedMediaType indicates a request body in a media type no
	// configured decoder accepts.
	ErrUnsupportedMediaType = errors.New("binding: unsupported media type")

	// ErrNoDecoders indicates a synthesizer configured without any body
	// decoder.
	ErrNoDecoders = errors.New("binding: at least one body decoder required")
)
