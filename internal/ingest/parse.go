// Package ingest parses uploaded delimited user lists. Two variants exist:
// ParseRoster for full name/email/username/department rosters (the truth
// set import) and ParseLogins for per-system exports where only the first
// column matters.
//
// The format is deliberately naive: lines split on newline, fields split on
// raw commas, surrounding double quotes stripped per field. Quoted fields
// containing embedded commas are therefore split incorrectly. This mirrors
// the behavior the console's operators already rely on; see the package
// tests for the pinned limitation.
package ingest

import (
	"strings"

	"github.com/rmoraesb/sentinela/internal/common"
)

// Record is one parsed roster row.
type Record struct {
	Name       string
	Email      string
	Username   string
	Department string
}

type field int

const (
	fieldNone field = iota
	fieldName
	fieldEmail
	fieldUsername
	fieldDepartment
)

// headerFields maps header keywords to target fields by substring
// containment, covering both Portuguese and English exports. Order matters:
// "username" contains "name", so the username keywords are checked first.
var headerFields = []struct {
	keyword string
	field   field
}{
	{"usuario", fieldUsername},
	{"username", fieldUsername},
	{"departamento", fieldDepartment},
	{"department", fieldDepartment},
	{"email", fieldEmail},
	{"nome", fieldName},
	{"name", fieldName},
}

// resolveHeader maps one lower-cased header token to its target field.
// Unrecognized headers resolve to fieldNone and the column is ignored.
func resolveHeader(token string) field {
	for _, h := range headerFields {
		if strings.Contains(token, h.keyword) {
			return h.field
		}
	}
	return fieldNone
}

// cleanField strips surrounding whitespace and double quotes from a raw
// field value. No escaped-quote unescaping is performed.
func cleanField(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"`)
	return strings.TrimSpace(s)
}

// usableLines splits the upload into trimmed non-blank lines.
func usableLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}
	return lines
}

// ParseRoster parses a full roster upload. The first non-blank line is the
// header; its column order is irrelevant because columns are matched by
// keyword. A row is accepted only when its resolved name field is
// non-empty; the second return value counts the rows dropped for lacking
// one. Missing trailing columns map to empty strings.
//
// Returns common.ErrorEmptyFile when the upload has no usable lines.
func ParseRoster(text string) ([]Record, int, error) {
	lines := usableLines(text)
	if len(lines) == 0 {
		return nil, 0, common.ErrorEmptyFile
	}

	columns := make([]field, 0, 8)
	for _, token := range strings.Split(lines[0], ",") {
		columns = append(columns, resolveHeader(strings.ToLower(strings.TrimSpace(token))))
	}

	var records []Record
	rejected := 0

	for _, line := range lines[1:] {
		values := strings.Split(line, ",")

		var rec Record
		for i, col := range columns {
			if i >= len(values) {
				break
			}
			v := cleanField(values[i])
			switch col {
			case fieldName:
				rec.Name = v
			case fieldEmail:
				rec.Email = v
			case fieldUsername:
				rec.Username = v
			case fieldDepartment:
				rec.Department = v
			}
		}

		if rec.Name == "" {
			rejected++
			continue
		}
		records = append(records, rec)
	}

	return records, rejected, nil
}

// ParseLogins parses the simpler per-system export: the header row is
// skipped and only the first comma-delimited column of each remaining row
// is taken as the raw identity string.
//
// Returns common.ErrorEmptyFile when the upload has no usable lines.
func ParseLogins(text string) ([]string, error) {
	lines := usableLines(text)
	if len(lines) == 0 {
		return nil, common.ErrorEmptyFile
	}

	var logins []string
	for _, line := range lines[1:] {
		first, _, _ := strings.Cut(line, ",")
		// Empty first columns are kept: downstream reconciliation still
		// compares them (they land in missing) rather than hiding the row.
		logins = append(logins, cleanField(first))
	}

	return logins, nil
}
