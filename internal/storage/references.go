package storage

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/selwood/qcref/internal/reference"
	"github.com/selwood/qcref/internal/ris"
)

// Reference pairs a raw tag record with its derived view. The derived
// view is recomputed on every load, never stored.
type Reference struct {
	Record ris.Record           `json:"record"`
	Norm   reference.Normalized `json:"normalized"`
}

// LoadAll loads every source document (ordered case-insensitively by
// name) and every reference (tag rows grouped by risid, sorted
// ascending by the derived details field). The document-to-reference
// join is left to callers via the shared risid.
func (d *DB) LoadAll() ([]Document, []Reference, error) {
	docs, err := d.Documents()
	if err != nil {
		return nil, nil, err
	}
	refs, err := d.References()
	if err != nil {
		return nil, nil, err
	}
	return docs, refs, nil
}

// References loads all tag records grouped by risid and returns them
// with derived views, sorted ascending by details (byte order).
func (d *DB) References() ([]Reference, error) {
	rows, err := d.db.Query("SELECT risid, tag, value FROM ris ORDER BY risid")
	if err != nil {
		return nil, fmt.Errorf("querying ris rows: %w", err)
	}
	defer rows.Close()

	byID := make(map[int]ris.Record)
	var order []int
	for rows.Next() {
		var risid int
		var tag string
		var value sql.NullString
		if err := rows.Scan(&risid, &tag, &value); err != nil {
			return nil, fmt.Errorf("scanning ris row: %w", err)
		}
		rec, ok := byID[risid]
		if !ok {
			rec = ris.NewRecord(risid)
			byID[risid] = rec
			order = append(order, risid)
		}
		rec.Tags[tag] = value.String
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading ris rows: %w", err)
	}

	refs := make([]Reference, 0, len(order))
	for _, risid := range order {
		rec := byID[risid]
		refs = append(refs, Reference{Record: rec, Norm: reference.Normalize(rec)})
	}
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].Norm.Details < refs[j].Norm.Details
	})
	return refs, nil
}

// GetRecord loads the tag record for one reference. Returns
// ErrMissingReference if no tag rows exist for the risid.
func (d *DB) GetRecord(risid int) (ris.Record, error) {
	rows, err := d.db.Query("SELECT tag, value FROM ris WHERE risid = ?", risid)
	if err != nil {
		return ris.Record{}, fmt.Errorf("querying reference %d: %w", risid, err)
	}
	defer rows.Close()

	rec := ris.NewRecord(risid)
	for rows.Next() {
		var tag string
		var value sql.NullString
		if err := rows.Scan(&tag, &value); err != nil {
			return ris.Record{}, fmt.Errorf("scanning reference %d: %w", risid, err)
		}
		rec.Tags[tag] = value.String
	}
	if err := rows.Err(); err != nil {
		return ris.Record{}, fmt.Errorf("reading reference %d: %w", risid, err)
	}
	if len(rec.Tags) == 0 {
		return ris.Record{}, fmt.Errorf("reference %d: %w", risid, ErrMissingReference)
	}
	return rec, nil
}

// MaxRISID returns the highest assigned reference identifier, or 0
// when the store holds no references.
func (d *DB) MaxRISID() (int, error) {
	var max sql.NullInt64
	if err := d.db.QueryRow("SELECT MAX(risid) FROM ris").Scan(&max); err != nil {
		return 0, fmt.Errorf("querying max risid: %w", err)
	}
	return int(max.Int64), nil
}

// InsertRecords writes imported tag records in a single transaction.
func (d *DB) InsertRecords(records []ris.Record) error {
	return d.inTx(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("INSERT INTO ris (risid, tag, value) VALUES (?, ?, ?)")
		if err != nil {
			return fmt.Errorf("preparing ris insert: %w", err)
		}
		defer stmt.Close()

		for _, rec := range records {
			for _, tag := range rec.TagList() {
				if _, err := stmt.Exec(rec.RISID, tag, rec.Tags[tag]); err != nil {
					return fmt.Errorf("inserting reference %d tag %s: %w", rec.RISID, tag, err)
				}
			}
		}
		return nil
	})
}

// EditField writes a single tag value for a single reference and
// reports whether a change actually occurred. Editing a tag to its
// current value is a no-op. Mirrored attribute slots on linked
// documents are deliberately not touched; they refresh on the next
// explicit link.
func (d *DB) EditField(risid int, tag, value string) (bool, error) {
	rec, err := d.GetRecord(risid)
	if err != nil {
		return false, err
	}
	if existing, ok := rec.Tags[tag]; ok && existing == value {
		return false, nil
	}

	err = d.inTx(func(tx *sql.Tx) error {
		if rec.Has(tag) {
			_, err := tx.Exec("UPDATE ris SET value = ? WHERE risid = ? AND tag = ?", value, risid, tag)
			return err
		}
		_, err := tx.Exec("INSERT INTO ris (risid, tag, value) VALUES (?, ?, ?)", risid, tag, value)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("editing reference %d tag %s: %w", risid, tag, err)
	}
	return true, nil
}

// DeleteReference removes a reference in one transaction: the risid of
// every linked document is nulled, then the tag rows are deleted.
// Mirrored attribute slots keep their values.
func (d *DB) DeleteReference(risid int) error {
	err := d.inTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec("UPDATE source SET risid = NULL WHERE risid = ?", risid); err != nil {
			return fmt.Errorf("unlinking documents: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM ris WHERE risid = ?", risid); err != nil {
			return fmt.Errorf("deleting tag rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting reference %d: %w", risid, err)
	}
	return nil
}
