package ris

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// tagLineRe matches a RIS tag line: two-character tag, two spaces,
// a hyphen, then the value ("AU  - Smith, J.").
var tagLineRe = regexp.MustCompile(`^([A-Z][A-Z0-9])  - ?(.*)$`)

// Parse reads RIS-formatted text and returns the records it contains.
// Identifiers are assigned sequentially starting at base+1.
//
// Parsing is lenient: a "TY" line opens a record, an "ER" line closes
// it, repeated tags within one record are joined with "; ", and lines
// that match no tag pattern are appended to the previous tag's value
// (RIS long-value continuation) or skipped when there is none.
func Parse(r io.Reader, base int) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var records []Record
	var current *Record
	var lastTag string
	next := base

	flush := func() {
		if current != nil && len(current.Tags) > 0 {
			records = append(records, *current)
		}
		current = nil
		lastTag = ""
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		m := tagLineRe.FindStringSubmatch(line)
		if m == nil {
			// Continuation of the previous tag's value.
			if current != nil && lastTag != "" && strings.TrimSpace(line) != "" {
				current.Tags[lastTag] += " " + strings.TrimSpace(line)
			}
			continue
		}

		tag, value := m[1], strings.TrimSpace(m[2])
		switch tag {
		case "TY":
			flush()
			next++
			rec := NewRecord(next)
			rec.Tags["TY"] = value
			current = &rec
			lastTag = "TY"
		case "ER":
			flush()
		default:
			if current == nil {
				continue // Tag outside any record
			}
			if existing, ok := current.Tags[tag]; ok && existing != "" {
				current.Tags[tag] = existing + "; " + value
			} else {
				current.Tags[tag] = value
			}
			lastTag = tag
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return records, err
	}
	return records, nil
}
