package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

// loggerCallPattern matches log.error/warn/info/debug call sites, tolerating
// one level of nested parentheses inside the argument list.
var loggerCallPattern = regexp.MustCompile(`log\.(error|warn|info|debug)\(([^)]+(?:\([^)]*\))?[^)]*)\)`)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// FixLoggerCalls normalizes logger call signatures to
// log.level(message, meta?) form: extra positional arguments are wrapped into
// a single metadata object. Calls already in the correct shape are left
// untouched.
func FixLoggerCalls(content string) (string, bool) {
	fixed := loggerCallPattern.ReplaceAllStringFunc(content, fixLoggerCall)
	return fixed, fixed != content
}

func fixLoggerCall(call string) string {
	groups := loggerCallPattern.FindStringSubmatch(call)
	if groups == nil {
		return call
	}
	level, args := groups[1], groups[2]

	parts := splitCallArgs(args)
	if len(parts) <= 1 {
		return call
	}
	if len(parts) == 2 {
		second := strings.TrimSpace(parts[1])
		if strings.HasPrefix(second, "{") && strings.HasSuffix(second, "}") {
			return call
		}
	}

	message := parts[0]
	entries := make([]string, 0, len(parts)-1)
	for i, arg := range parts[1:] {
		arg = strings.TrimSpace(arg)
		if identifierPattern.MatchString(arg) {
			// Simple variable names become shorthand properties.
			entries = append(entries, arg)
		} else {
			entries = append(entries, fmt.Sprintf("arg%d: %s", i+1, arg))
		}
	}

	return fmt.Sprintf("log.%s(%s, { %s })", level, message, strings.Join(entries, ", "))
}

// splitCallArgs splits an argument list on top-level commas: commas inside
// strings, parentheses or object literals do not split.
func splitCallArgs(args string) []string {
	var (
		parts      []string
		current    strings.Builder
		parenDepth int
		braceDepth int
		inString   bool
		quote      rune
	)

	for _, ch := range args {
		switch {
		case !inString && (ch == '"' || ch == '\'' || ch == '`'):
			inString = true
			quote = ch
		case inString && ch == quote:
			inString = false
		case !inString && ch == '(':
			parenDepth++
		case !inString && ch == ')':
			parenDepth--
		case !inString && ch == '{':
			braceDepth++
		case !inString && ch == '}':
			braceDepth--
		case !inString && ch == ',' && parenDepth == 0 && braceDepth == 0:
			parts = append(parts, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}

	if last := strings.TrimSpace(current.String()); last != "" {
		parts = append(parts, last)
	}
	return parts
}
