package ris

import (
	"fmt"
	"io"
)

// Write renders records as RIS text: "TY" first, remaining tags in
// sorted order, "ER" terminator, blank line between records.
func Write(w io.Writer, records []Record) error {
	for i, rec := range records {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeRecord(w, rec); err != nil {
			return fmt.Errorf("writing record %d: %w", rec.RISID, err)
		}
	}
	return nil
}

func writeRecord(w io.Writer, rec Record) error {
	if rec.Has("TY") {
		if _, err := fmt.Fprintf(w, "TY  - %s\n", rec.Get("TY")); err != nil {
			return err
		}
	}
	for _, tag := range rec.TagList() {
		if tag == "TY" || tag == "ER" {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s  - %s\n", tag, rec.Tags[tag]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "ER  - ")
	return err
}
