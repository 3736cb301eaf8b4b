package ris

// TagNames maps the RIS tags in active use to their human-readable
// meaning. Used for display and edit tooltips; records may carry tags
// outside this table and the rest of the package does not care.
var TagNames = map[string]string{
	"TY": "Type of reference",
	"TI": "Title",
	"T1": "Primary title",
	"T2": "Secondary title",
	"ST": "Short title",
	"TT": "Translated title",
	"AU": "Author",
	"A1": "Primary author",
	"A2": "Secondary author",
	"A3": "Tertiary author",
	"A4": "Subsidiary author",
	"AB": "Abstract",
	"PY": "Publication year",
	"Y1": "Primary date",
	"JO": "Journal name",
	"JF": "Journal full name",
	"J2": "Alternate journal",
	"VL": "Volume",
	"IS": "Issue",
	"SP": "Start page",
	"EP": "End page",
	"KW": "Keywords",
	"DO": "DOI",
	"UR": "URL",
	"PB": "Publisher",
	"SN": "ISBN/ISSN",
	"N1": "Notes",
	"ER": "End of reference",
}

// TagName returns the human-readable name for a tag, or "" if the tag
// is not in the active subset.
func TagName(tag string) string {
	return TagNames[tag]
}
