// Package reference derives normalized, display-ready views over raw
// RIS tag records: the per-field precedence rules, the composite
// details block, and the Vancouver/APA citation strings.
package reference

import (
	"strings"

	"github.com/selwood/qcref/internal/ris"
)

// Tag precedence chains for derived fields. First present tag wins.
var (
	titleTags   = []string{"TI", "T1", "ST", "TT"}
	yearTags    = []string{"PY", "Y1"}
	journalTags = []string{"JO", "JF", "J2", "T2"}
)

// authorTags are concatenated, not first-wins: AU first, then each
// secondary tag appended with a leading space when present.
var authorTags = []string{"A1", "A2", "A3", "A4"}

// Normalized is the derived view over one tag record. It is recomputed
// on load, never persisted. Every field degrades to "" when its source
// tags are absent.
type Normalized struct {
	RISID           int    `json:"risid"`
	Authors         string `json:"authors"`
	Title           string `json:"title"`
	TypeOfRef       string `json:"type_of_ref"`
	Year            string `json:"year"`
	Journal         string `json:"journal"`
	Volume          string `json:"volume"`
	Issue           string `json:"issue"`
	Keywords        string `json:"keywords"`
	JournalVolIssue string `json:"journal_vol_issue"`
	Details         string `json:"details"`
	Vancouver       string `json:"vancouver"`
	APA             string `json:"apa"`
}

// Normalize derives the normalized view for a tag record. Pure and
// total: it never fails, whatever tags the record does or does not
// carry.
func Normalize(rec ris.Record) Normalized {
	n := Normalized{
		RISID:     rec.RISID,
		Authors:   joinAuthors(rec),
		Title:     rec.First(titleTags...),
		TypeOfRef: rec.Get("TY"),
		Year:      digitsOnly(rec.First(yearTags...)),
		Journal:   rec.First(journalTags...),
		Volume:    rec.Get("VL"),
		Issue:     rec.Get("IS"),
		Keywords:  rec.Get("KW"),
	}
	n.JournalVolIssue = journalVolIssue(n.Journal, n.Volume, n.Issue)
	n.Details = details(n)
	n.Vancouver = Vancouver(n)
	n.APA = APA(n)
	return n
}

// joinAuthors concatenates AU then A1..A4 in fixed order, each
// secondary tag contributing " " + value only when present.
func joinAuthors(rec ris.Record) string {
	authors := rec.Get("AU")
	for _, tag := range authorTags {
		if !rec.Has(tag) {
			continue
		}
		if authors == "" {
			authors = rec.Get(tag)
		} else {
			authors += " " + rec.Get(tag)
		}
	}
	return authors
}

// digitsOnly strips every non-digit rune, so a raw year like "2019///"
// renders as "2019".
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// journalVolIssue renders "Journal 12(3)", dropping the volume or
// issue piece when its source field is empty.
func journalVolIssue(journal, volume, issue string) string {
	s := journal
	if volume != "" {
		if s != "" {
			s += " "
		}
		s += volume
	}
	if issue != "" {
		s += "(" + issue + ")"
	}
	return s
}

// details renders the composite block used as the default sort key and
// search body: the non-empty derived fields in fixed order, one per
// line.
func details(n Normalized) string {
	var parts []string
	for _, p := range []string{n.Title, n.Authors, n.JournalVolIssue, n.Year, n.TypeOfRef, n.Keywords} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}
