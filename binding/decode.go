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

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// DecodeFunc unmarshals a request body into the handler's request model.
type DecodeFunc func(data []byte, out any) error

// Media types with a default decoder.
const (
	MediaTypeJSON    = "application/json"
	MediaTypeYAML    = "application/yaml"
	MediaTypeTOML    = "application/toml"
	MediaTypeMsgPack = "application/msgpack"
	MediaTypeProto   = "application/x-protobuf"
)

// defaultDecoders maps normalized media types to decoders: JSON, YAML, TOML,
// MessagePack, and Protocol Buffers, matching the common request body
// formats. Requests without a Content-Type header decode as JSON.
//
// The protobuf decoder requires the request model to be a generated message
// type; handlers using it take a pointer model (proto.Message is implemented
// on the pointer).
func defaultDecoders() map[string]DecodeFunc {
	jsonDecode := func(data []byte, out any) error { return json.Unmarshal(data, out) }
	yamlDecode := func(data []byte, out any) error { return yaml.Unmarshal(data, out) }
	tomlDecode := func(data []byte, out any) error { return toml.Unmarshal(data, out) }
	msgpackDecode := func(data []byte, out any) error { return msgpack.Unmarshal(data, out) }
	protoDecode := func(data []byte, out any) error {
		m, ok := out.(proto.Message)
		if !ok {
			return fmt.Errorf("%T is not a protobuf message", out)
		}
		return proto.Unmarshal(data, m)
	}

	return map[string]DecodeFunc{
		MediaTypeJSON:           jsonDecode,
		MediaTypeYAML:           yamlDecode,
		"application/x-yaml":    yamlDecode,
		"text/yaml":             yamlDecode,
		MediaTypeTOML:           tomlDecode,
		"application/x-toml":    tomlDecode,
		MediaTypeMsgPack:        msgpackDecode,
		"application/x-msgpack": msgpackDecode,
		MediaTypeProto:          protoDecode,
		"application/protobuf":  protoDecode,
	}
}

// normalizeMediaType lowercases a Content-Type header value and strips its
// parameters ("application/json; charset=utf-8" -> "application/json").
// An empty value defaults to JSON.
func normalizeMediaType(contentType string) string {
	mt, _, _ := strings.Cut(contentType, ";")
	mt = strings.ToLower(strings.TrimSpace(mt))
	if mt == "" {
		return MediaTypeJSON
	}

	return mt
}
