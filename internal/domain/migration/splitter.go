package migration

import (
	"regexp"
	"strings"
)

// dollarTagPattern matches PostgreSQL dollar-quote delimiters: the anonymous
// form $$ as well as tagged forms like $body$. Tags follow identifier rules
// (letters, digits, underscore, not starting with a digit).
var dollarTagPattern = regexp.MustCompile(`\$[A-Za-z_][A-Za-z0-9_]*\$|\$\$`)

// SplitStatements splits multi-statement SQL text into independently
// executable units, in order.
//
// Scanning is line based, matching how the migration files are written:
// outside a dollar-quoted block a statement terminates at a line ending in
// ";", and comment-only ("--") and blank lines are dropped. Lines inside a
// dollar-quoted block are accumulated verbatim until the matching terminator
// tag, regardless of embedded semicolons. Trailing partial content is emitted
// as a final statement if non-empty; an unterminated block is therefore not a
// split-time error and surfaces later as a database syntax error.
//
// Any dollar-quote tag is recognized, not just the literal $$. A differently
// tagged delimiter inside an open block is literal text and does not close
// the block.
func SplitStatements(sqlText string) []string {
	var (
		statements []string
		current    strings.Builder
		blockTag   string
	)

	flush := func() {
		stmt := strings.TrimSpace(current.String())
		if stmt != "" {
			statements = append(statements, stmt)
		}
		current.Reset()
	}

	for _, line := range strings.Split(sqlText, "\n") {
		trimmed := strings.TrimSpace(line)

		if blockTag == "" && (trimmed == "" || strings.HasPrefix(trimmed, "--")) {
			continue
		}

		current.WriteString(line)
		current.WriteString("\n")

		for _, tag := range dollarTagPattern.FindAllString(line, -1) {
			switch {
			case blockTag == "":
				blockTag = tag
			case tag == blockTag:
				blockTag = ""
			}
		}

		if blockTag == "" && strings.HasSuffix(trimmed, ";") {
			flush()
		}
	}

	flush()
	return statements
}
