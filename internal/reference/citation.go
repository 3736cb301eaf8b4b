package reference

import "strings"

// Vancouver renders the short author-year-title summary line used in
// reference listings. Pure function of the normalized view; all parts
// are optional and an all-empty record renders as "".
func Vancouver(n Normalized) string {
	var parts []string
	for _, p := range []string{n.Authors, n.Year, n.Title, n.JournalVolIssue} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// APA renders a full APA-style citation:
//
//	Authors (Year). Title. Journal, Volume(Issue).
//
// Empty parts are omitted together with their surrounding punctuation;
// an all-empty record renders as "".
func APA(n Normalized) string {
	var b strings.Builder

	if n.Authors != "" {
		b.WriteString(n.Authors)
	}
	if n.Year != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("(" + n.Year + ")")
	}
	if b.Len() > 0 {
		b.WriteString(". ")
	}
	if n.Title != "" {
		b.WriteString(n.Title + ". ")
	}
	if n.Journal != "" {
		b.WriteString(n.Journal)
		if n.Volume != "" {
			b.WriteString(", " + n.Volume)
			if n.Issue != "" {
				b.WriteString("(" + n.Issue + ")")
			}
		}
		b.WriteString(".")
	}
	return strings.TrimSpace(b.String())
}
