// Package ris defines the raw tag-record model for RIS-formatted
// references and the parsing/rendering of RIS text.
package ris

import "sort"

// Record is one imported reference: a flat mapping from a two-letter
// RIS tag to its value, plus the integer identifier assigned at import.
// Not every record carries every tag.
type Record struct {
	RISID int               `json:"risid"`
	Tags  map[string]string `json:"tags"`
}

// NewRecord creates an empty record with the given identifier.
func NewRecord(risid int) Record {
	return Record{RISID: risid, Tags: make(map[string]string)}
}

// Get returns the value for tag, or "" if the tag is absent.
func (r Record) Get(tag string) string {
	return r.Tags[tag]
}

// Has reports whether the record carries the tag.
func (r Record) Has(tag string) bool {
	_, ok := r.Tags[tag]
	return ok
}

// First returns the value of the first present tag from the candidate
// list, or "" if none is present. Every derived field that follows a
// first-present-tag-wins precedence chain goes through here.
func (r Record) First(tags ...string) string {
	for _, tag := range tags {
		if v, ok := r.Tags[tag]; ok {
			return v
		}
	}
	return ""
}

// TagList returns the record's tags in sorted order.
func (r Record) TagList() []string {
	tags := make([]string, 0, len(r.Tags))
	for tag := range r.Tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
