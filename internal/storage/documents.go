package storage

import (
	"database/sql"
	"fmt"
)

// Document is one source document row. RISID is nil while unlinked.
type Document struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	RISID *int   `json:"risid"`
	Memo  string `json:"memo,omitempty"`
	Date  string `json:"date,omitempty"`
}

// RefSlots are the attribute slots mirrored from a linked reference.
// They exist on every document from creation, empty until a link
// writes them.
var RefSlots = []string{"Ref_Authors", "Ref_Title", "Ref_Type", "Ref_Year", "Ref_Journal"}

// Documents returns all source documents ordered case-insensitively by
// name.
func (d *DB) Documents() ([]Document, error) {
	rows, err := d.db.Query("SELECT id, name, risid, memo, date FROM source ORDER BY lower(name)")
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading documents: %w", err)
	}
	return docs, nil
}

// GetDocument returns one document by id, or ErrMissingDocument.
func (d *DB) GetDocument(id int) (Document, error) {
	row := d.db.QueryRow("SELECT id, name, risid, memo, date FROM source WHERE id = ?", id)
	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return Document{}, fmt.Errorf("document %d: %w", id, ErrMissingDocument)
	}
	return doc, err
}

func scanDocument(scan func(...any) error) (Document, error) {
	var doc Document
	var risid sql.NullInt64
	var memo, date sql.NullString
	if err := scan(&doc.ID, &doc.Name, &risid, &memo, &date); err != nil {
		if err == sql.ErrNoRows {
			return Document{}, err
		}
		return Document{}, fmt.Errorf("scanning document: %w", err)
	}
	if risid.Valid {
		id := int(risid.Int64)
		doc.RISID = &id
	}
	doc.Memo = memo.String
	doc.Date = date.String
	return doc, nil
}

// AddDocument inserts a source document with its extracted text and
// seeds its Ref_* attribute slots empty. Returns the new document id.
func (d *DB) AddDocument(name, memo, fulltext string) (int, error) {
	var id int64
	err := d.inTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("INSERT INTO source (name, fulltext, risid, memo, date) VALUES (?, ?, NULL, ?, ?)",
			name, fulltext, memo, now())
		if err != nil {
			return fmt.Errorf("inserting document: %w", err)
		}
		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading new document id: %w", err)
		}
		for _, slot := range RefSlots {
			if _, err := tx.Exec("INSERT INTO attribute (id, name, value) VALUES (?, ?, '')", id, slot); err != nil {
				return fmt.Errorf("seeding attribute %s: %w", slot, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// Fulltext returns the stored text of one document, or
// ErrMissingDocument.
func (d *DB) Fulltext(id int) (string, error) {
	var text sql.NullString
	err := d.db.QueryRow("SELECT fulltext FROM source WHERE id = ?", id).Scan(&text)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("document %d: %w", id, ErrMissingDocument)
	}
	if err != nil {
		return "", fmt.Errorf("reading document %d text: %w", id, err)
	}
	return text.String, nil
}

// Attributes returns the document's named attribute slots.
func (d *DB) Attributes(id int) (map[string]string, error) {
	rows, err := d.db.Query("SELECT name, value FROM attribute WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("querying attributes for document %d: %w", id, err)
	}
	defer rows.Close()

	attrs := make(map[string]string)
	for rows.Next() {
		var name string
		var value sql.NullString
		if err := rows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("scanning attribute: %w", err)
		}
		attrs[name] = value.String
	}
	return attrs, rows.Err()
}

// ApplyLink points one document at a reference and overwrites its
// attribute slots with the derived values, all in one transaction.
func (d *DB) ApplyLink(docID, risid int, attrs map[string]string) error {
	err := d.inTx(func(tx *sql.Tx) error {
		res, err := tx.Exec("UPDATE source SET risid = ? WHERE id = ?", risid, docID)
		if err != nil {
			return fmt.Errorf("setting risid: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrMissingDocument
		}
		for name, value := range attrs {
			if _, err := tx.Exec(
				"INSERT INTO attribute (id, name, value) VALUES (?, ?, ?) "+
					"ON CONFLICT(id, name) DO UPDATE SET value = excluded.value",
				docID, name, value); err != nil {
				return fmt.Errorf("setting attribute %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("linking document %d: %w", docID, err)
	}
	return nil
}

// ClearDocumentRef sets the document's risid to null. Attribute slots
// keep their values. Clearing an unlinked document is a no-op.
func (d *DB) ClearDocumentRef(docID int) error {
	if _, err := d.db.Exec("UPDATE source SET risid = NULL WHERE id = ?", docID); err != nil {
		return fmt.Errorf("unlinking document %d: %w", docID, err)
	}
	return nil
}
