// Package linkage attaches references to source documents: it derives
// the mirrored attribute values for a reference and applies them to
// each targeted document.
package linkage

import (
	"fmt"
	"sort"

	"github.com/selwood/qcref/internal/reference"
	"github.com/selwood/qcref/internal/ris"
)

// Store is the persistence surface the engine needs. *storage.DB
// implements it.
type Store interface {
	// GetRecord loads one tag record, or storage.ErrMissingReference.
	GetRecord(risid int) (ris.Record, error)
	// ApplyLink commits one document's risid and attribute slots
	// atomically.
	ApplyLink(docID, risid int, attrs map[string]string) error
	// ClearDocumentRef nulls one document's risid; idempotent.
	ClearDocumentRef(docID int) error
	// DeleteReference unlinks all documents and removes the tag rows
	// in one transaction.
	DeleteReference(risid int) error
}

// Engine runs link/unlink/delete operations against a Store.
type Engine struct {
	store Store
}

// NewEngine creates an engine backed by the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Failure records one document that could not be updated.
type Failure struct {
	DocID int    `json:"doc_id"`
	Err   string `json:"error"`
}

// Result reports the per-document outcome of a batch operation.
// Documents already updated when a later one fails stay updated.
type Result struct {
	Applied []int     `json:"applied"`
	Failed  []Failure `json:"failed,omitempty"`
}

// Link points every targeted document at the reference and overwrites
// its mirrored attribute slots with values derived once from the
// reference's current tags. The reference must exist; an empty
// document set is a no-op. Each document commits independently, so one
// failure does not block the rest of the batch.
func (e *Engine) Link(risid int, docIDs []int) (Result, error) {
	var res Result
	if len(docIDs) == 0 {
		return res, nil
	}

	rec, err := e.store.GetRecord(risid)
	if err != nil {
		return res, err
	}
	attrs := SlotValues(rec)

	for _, docID := range sortedIDs(docIDs) {
		if err := e.store.ApplyLink(docID, risid, attrs); err != nil {
			res.Failed = append(res.Failed, Failure{DocID: docID, Err: err.Error()})
			continue
		}
		res.Applied = append(res.Applied, docID)
	}
	return res, nil
}

// Unlink nulls the risid on every targeted document. Attribute slots
// keep their historical values. Idempotent; an empty set is a no-op.
func (e *Engine) Unlink(docIDs []int) (Result, error) {
	var res Result
	for _, docID := range sortedIDs(docIDs) {
		if err := e.store.ClearDocumentRef(docID); err != nil {
			res.Failed = append(res.Failed, Failure{DocID: docID, Err: err.Error()})
			continue
		}
		res.Applied = append(res.Applied, docID)
	}
	return res, nil
}

// Delete removes a reference: every linked document's risid is nulled
// and the tag rows deleted, atomically. The reference must exist.
func (e *Engine) Delete(risid int) error {
	if _, err := e.store.GetRecord(risid); err != nil {
		return err
	}
	if err := e.store.DeleteReference(risid); err != nil {
		return fmt.Errorf("deleting reference %d: %w", risid, err)
	}
	return nil
}

// SlotValues derives the five mirrored attribute values from a tag
// record using the normalizer's precedence rules. Ref_Journal carries
// the journal-volume-issue composite, not the bare journal field.
func SlotValues(rec ris.Record) map[string]string {
	n := reference.Normalize(rec)
	return map[string]string{
		"Ref_Authors": n.Authors,
		"Ref_Title":   n.Title,
		"Ref_Type":    n.TypeOfRef,
		"Ref_Year":    n.Year,
		"Ref_Journal": n.JournalVolIssue,
	}
}

// sortedIDs returns a deduplicated, ascending copy of the id set.
func sortedIDs(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}
