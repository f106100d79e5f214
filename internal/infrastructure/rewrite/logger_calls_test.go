//go:build unit
// +build unit

package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixLoggerCalls(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		wantChanged bool
	}{
		{
			name:        "single argument untouched",
			input:       `log.info("server started")`,
			expected:    `log.info("server started")`,
			wantChanged: false,
		},
		{
			name:        "message plus object untouched",
			input:       `log.warn("slow query", { durationMs: 1200 })`,
			expected:    `log.warn("slow query", { durationMs: 1200 })`,
			wantChanged: false,
		},
		{
			name:        "identifier becomes shorthand property",
			input:       `log.error("failed to fetch orders", error)`,
			expected:    `log.error("failed to fetch orders", { error })`,
			wantChanged: true,
		},
		{
			name:        "expression gets a positional key",
			input:       `log.error("request failed", err.message)`,
			expected:    `log.error("request failed", { arg1: err.message })`,
			wantChanged: true,
		},
		{
			name:        "mixed extra arguments",
			input:       `log.debug("lookup", userId, res.status)`,
			expected:    `log.debug("lookup", { userId, arg2: res.status })`,
			wantChanged: true,
		},
		{
			name:        "nested call argument",
			input:       `log.info("payload", JSON.stringify(data))`,
			expected:    `log.info("payload", { arg1: JSON.stringify(data) })`,
			wantChanged: true,
		},
		{
			name:        "comma inside string does not split",
			input:       `log.info("a, b", count)`,
			expected:    `log.info("a, b", { count })`,
			wantChanged: true,
		},
		{
			name:        "unrelated code untouched",
			input:       `console.log("not a logger call", x)`,
			expected:    `console.log("not a logger call", x)`,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := FixLoggerCalls(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestFixLoggerCallsMultipleCallSites(t *testing.T) {
	input := `log.info("ok");
log.error("boom", error);
log.warn("careful", detail, code);`

	got, changed := FixLoggerCalls(input)
	assert.True(t, changed)
	assert.Contains(t, got, `log.info("ok")`)
	assert.Contains(t, got, `log.error("boom", { error })`)
	assert.Contains(t, got, `log.warn("careful", { detail, code })`)
}

func TestSplitCallArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		expected []string
	}{
		{
			name:     "top level commas",
			args:     `"msg", a, b`,
			expected: []string{`"msg"`, "a", "b"},
		},
		{
			name:     "comma inside parens",
			args:     `"msg", fn(a, b)`,
			expected: []string{`"msg"`, "fn(a, b)"},
		},
		{
			name:     "comma inside object literal",
			args:     `"msg", { a: 1, b: 2 }`,
			expected: []string{`"msg"`, "{ a: 1, b: 2 }"},
		},
		{
			name:     "comma inside template string",
			args:     "`a, b`, c",
			expected: []string{"`a, b`", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitCallArgs(tt.args))
		})
	}
}
