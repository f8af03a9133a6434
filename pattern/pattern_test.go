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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		params []string
	}{
		{"root", "/", nil},
		{"static", "/health", nil},
		{"single parameter", "/items/{id}", []string{"id"}},
		{"multiple parameters", "/users/{uid}/posts/{pid}", []string{"uid", "pid"}},
		{"catch-all", "/{*path}", []string{"path"}},
		{"catch-all after literals", "/files/{dir}/{*rest}", []string{"dir", "rest"}},
		{"no leading slash", "items/{id}", []string{"id"}},
		{"trailing slash", "/items/{id}/", []string{"id"}},
		{"double slash collapses", "/a//b", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.text, tmpl.RawText())
			assert.Equal(t, tt.params, tmpl.ParameterNames())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrEmptyPattern},
		{"unterminated brace", "/items/{id", ErrUnterminatedBrace},
		{"brace inside literal", "/ite{ms", ErrUnterminatedBrace},
		{"stray close brace", "/items/id}", ErrUnterminatedBrace},
		{"empty parameter", "/items/{}", ErrEmptyParameter},
		{"empty catch-all", "/items/{*}", ErrEmptyParameter},
		{"catch-all not final", "/{*rest}/items", ErrCatchAllPosition},
		{"duplicate parameter", "/a/{id}/b/{id}", ErrDuplicateParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("/items/{id")
	})
	assert.NotPanics(t, func() {
		MustParse("/items/{id}")
	})
}

func TestParameters(t *testing.T) {
	tmpl := MustParse("/users/{id}/files/{*rest}")

	assert.Equal(t, []Parameter{
		{Name: "id"},
		{Name: "rest", CatchAll: true},
	}, tmpl.Parameters())
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		route  string
		raw    string
		params []string
	}{
		{"simple", "/api", "/items/{id}", "/api/items/{id}", []string{"id"}},
		{"prefix with parameter", "/tenants/{tid}", "/items/{id}", "/tenants/{tid}/items/{id}", []string{"tid", "id"}},
		{"trailing and leading slash", "/api/", "/items", "/api/items", nil},
		{"neither slash", "api", "items", "api/items", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Combine(MustParse(tt.prefix), MustParse(tt.route))
			assert.Equal(t, tt.raw, got.RawText())
			assert.Equal(t, tt.params, got.ParameterNames())
		})
	}

	t.Run("nil prefix returns template", func(t *testing.T) {
		tmpl := MustParse("/items")
		assert.Same(t, tmpl, Combine(nil, tmpl))
	})

	t.Run("nil template returns prefix", func(t *testing.T) {
		prefix := MustParse("/api")
		assert.Same(t, prefix, Combine(prefix, nil))
	})

	t.Run("no revalidation of the joined result", func(t *testing.T) {
		// Combine concatenates parsed templates as documented; a shared
		// parameter name surfaces as a duplicate for the caller to avoid,
		// not as an error.
		got := Combine(MustParse("/tenants/{id}"), MustParse("/items/{id}"))
		assert.Equal(t, []string{"id", "id"}, got.ParameterNames())
	})

	t.Run("inputs are untouched", func(t *testing.T) {
		prefix := MustParse("/api")
		tmpl := MustParse("/items/{id}")
		_ = Combine(prefix, tmpl)

		assert.Equal(t, "/api", prefix.RawText())
		assert.Equal(t, "/items/{id}", tmpl.RawText())
		assert.Nil(t, prefix.ParameterNames())
	})
}

func TestDebugString(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"/", "/"},
		{"/items/{id}", "/items/{id}"},
		{"items/{id}/", "/items/{id}"},
		{"/files/{*rest}", "/files/{*rest}"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParse(tt.text).DebugString())
		})
	}
}

func TestEngine(t *testing.T) {
	e := NewEngine()

	tmpl, err := e.Parse("/items/{id}")
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, tmpl.ParameterNames())

	combined := e.Combine(MustParse("/api"), tmpl)
	assert.Equal(t, "/api/items/{id}", combined.RawText())
}
