package main

import (
	"regexp"
	"strings"
)

// splitDDLStatements strips "--" comments and splits a migration file on semicolons.
func splitDDLStatements(content string) []string {
	var cleaned []string
	for _, line := range strings.Split(content, "\n") {
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			cleaned = append(cleaned, line)
		}
	}

	var result []string
	for _, stmt := range strings.Split(strings.Join(cleaned, "\n"), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			result = append(result, stmt)
		}
	}
	return result
}

var createObject = regexp.MustCompile("(?i)^CREATE\\s+(?:UNIQUE\\s+)?(?:NULL_FILTERED\\s+)?(TABLE|INDEX)\\s+`?(\\w+)`?")

// objectName returns "TABLE name" or "INDEX name" for CREATE statements.
func objectName(stmt string) (string, bool) {
	m := createObject.FindStringSubmatch(strings.TrimSpace(stmt))
	if m == nil {
		return "", false
	}
	return strings.ToUpper(m[1]) + " " + strings.ToLower(m[2]), true
}

// pendingStatements drops CREATE statements for objects the schema already has.
// Other statements are always kept.
func pendingStatements(statements, existing []string) []string {
	have := make(map[string]bool, len(existing))
	for _, stmt := range existing {
		if name, ok := objectName(stmt); ok {
			have[name] = true
		}
	}

	var pending []string
	for _, stmt := range statements {
		if name, ok := objectName(stmt); ok && have[name] {
			continue
		}
		pending = append(pending, stmt)
	}
	return pending
}
