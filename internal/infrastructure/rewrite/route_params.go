package rewrite

import (
	"fmt"
	"regexp"
	"strings"
)

const trackingNumberParam = "trackingNumber"

var (
	useImportedPattern    = regexp.MustCompile(`import\s*\{[^}]*\buse\b[^}]*\}\s*from\s*["']react["']`)
	reactImportPattern    = regexp.MustCompile(`(import\s*\{)([^}]*)(\}\s*from\s*["']react["'])`)
	paramsObjectPattern   = regexp.MustCompile(`params:\s*\{`)
	paramsPropSigPattern  = regexp.MustCompile(`function[^\n]*\{\s*params\s*\}:`)
	pageFuncParamsPattern = regexp.MustCompile(`export\s+default\s+function\s+\w+\s*\([^)]*params[^)]*\)\s*\{`)
	pageFuncPattern       = regexp.MustCompile(`export\s+default\s+function\s+\w+`)
	emptySigPattern       = regexp.MustCompile(`(export\s+default\s+function\s+\w+)\(\)`)

	useParamsCallPattern       = regexp.MustCompile(`const\s+params\s*=\s*useParams\(\);\s*\n`)
	useParamsTrailingComma     = regexp.MustCompile(`\buseParams\s*,\s*`)
	useParamsLeadingComma      = regexp.MustCompile(`,\s*useParams\b`)
	useParamsOnlyImportPattern = regexp.MustCompile(`import\s*\{\s*useParams\s*\}\s*from\s*["'][^"']*["'];?\s*\n`)
	oldIDExtractPattern        = regexp.MustCompile(`const\s+\w+\s*=\s*params\??\.\w+\s+as\s+string;\s*\n`)
)

// idVariableNames are the page-specific names older pages used for the
// route id; they are normalized to plain "id" during migration.
var idVariableNames = []string{
	"taskId", "orderId", "paymentId", "invoiceId",
	"shipmentId", "inspectionId", "jobId", "documentId",
}

// DetectParamName returns the dynamic route parameter a page uses.
func DetectParamName(content string) string {
	if strings.Contains(content, "[trackingNumber]") || strings.Contains(content, trackingNumberParam) {
		return trackingNumberParam
	}
	return "id"
}

// MigrateRouteParams converts a dynamic route page to the Promise-params
// pattern: params becomes Promise<{ id: string }> and is unwrapped with
// use(params) at the top of the component. Already-migrated files and files
// with an unrecognized shape are left untouched.
func MigrateRouteParams(content string) (string, bool) {
	if alreadyMigrated(content) {
		return content, false
	}

	original := content
	param := DetectParamName(content)

	if hasReactImport(content) && !useImportedPattern.MatchString(content) {
		content = replaceFirst(content, reactImportPattern, "${1} use, ${2}${3}")
	}

	switch {
	case usesParamsProp(content):
		content = migrateParamsProp(content, param)
	case strings.Contains(content, "useParams()"):
		content = migrateUseParamsHook(content, param)
	default:
		return original, false
	}

	return content, content != original
}

func alreadyMigrated(content string) bool {
	return strings.Contains(content, "use(params)")
}

func hasReactImport(content string) bool {
	return strings.Contains(content, `from "react"`) || strings.Contains(content, `from 'react'`)
}

func usesParamsProp(content string) bool {
	return paramsObjectPattern.MatchString(content) || paramsPropSigPattern.MatchString(content)
}

// migrateParamsProp handles pages that already receive params as a prop.
func migrateParamsProp(content, param string) string {
	propTypePattern := regexp.MustCompile(`params:\s*\{\s*` + param + `:\s*string\s*\}`)
	content = propTypePattern.ReplaceAllString(content, fmt.Sprintf("params: Promise<{ %s: string }>", param))

	content = insertUnwrap(content, param)

	accessPattern := regexp.MustCompile(`\bparams\.` + param + `\b`)
	return accessPattern.ReplaceAllString(content, param)
}

// migrateUseParamsHook converts pages using the useParams() hook to the
// params prop pattern.
func migrateUseParamsHook(content, param string) string {
	content = useParamsOnlyImportPattern.ReplaceAllString(content, "")
	content = useParamsTrailingComma.ReplaceAllString(content, "")
	content = useParamsLeadingComma.ReplaceAllString(content, "")
	content = useParamsCallPattern.ReplaceAllString(content, "")
	content = oldIDExtractPattern.ReplaceAllString(content, "")

	if loc := pageFuncPattern.FindStringIndex(content); loc != nil {
		pageProps := fmt.Sprintf("interface PageProps {\n  params: Promise<{ %s: string }>;\n}\n\n", param)
		content = content[:loc[0]] + pageProps + content[loc[0]:]

		content = replaceFirst(content, emptySigPattern, "${1}({ params }: PageProps)")
		content = insertUnwrap(content, param)
	}

	for _, name := range idVariableNames {
		namePattern := regexp.MustCompile(`\b` + name + `\b`)
		content = namePattern.ReplaceAllString(content, "id")
	}
	return content
}

// insertUnwrap adds `const { id } = use(params);` on the line after the
// component's opening brace.
func insertUnwrap(content, param string) string {
	loc := pageFuncParamsPattern.FindStringIndex(content)
	if loc == nil {
		return content
	}
	newline := strings.IndexByte(content[loc[1]:], '\n')
	if newline < 0 {
		return content
	}

	insertAt := loc[1] + newline + 1
	unwrap := fmt.Sprintf("  const { %s } = use(params);\n", param)
	return content[:insertAt] + unwrap + content[insertAt:]
}

// replaceFirst applies a regexp substitution to the first match only.
func replaceFirst(content string, pattern *regexp.Regexp, template string) string {
	loc := pattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return content
	}
	expanded := pattern.ExpandString(nil, template, content, loc)
	return content[:loc[0]] + string(expanded) + content[loc[1]:]
}
