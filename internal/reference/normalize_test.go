package reference

import (
	"strings"
	"testing"

	"github.com/selwood/qcref/internal/ris"
)

func record(risid int, tags map[string]string) ris.Record {
	rec := ris.NewRecord(risid)
	for k, v := range tags {
		rec.Tags[k] = v
	}
	return rec
}

func TestNormalizeEmptyRecord(t *testing.T) {
	n := Normalize(ris.NewRecord(1))

	if n.RISID != 1 {
		t.Errorf("RISID = %d, want 1", n.RISID)
	}
	for name, got := range map[string]string{
		"Authors":         n.Authors,
		"Title":           n.Title,
		"TypeOfRef":       n.TypeOfRef,
		"Year":            n.Year,
		"Journal":         n.Journal,
		"Volume":          n.Volume,
		"Issue":           n.Issue,
		"Keywords":        n.Keywords,
		"JournalVolIssue": n.JournalVolIssue,
		"Details":         n.Details,
		"Vancouver":       n.Vancouver,
		"APA":             n.APA,
	} {
		if got != "" {
			t.Errorf("%s = %q, want empty string for empty record", name, got)
		}
	}
}

func TestNormalizeAuthorsOrder(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{
			name: "AU then secondaries",
			tags: map[string]string{"AU": "Smith J", "A1": "Doe R"},
			want: "Smith J Doe R",
		},
		{
			name: "A1 before A2 regardless of map order",
			tags: map[string]string{"A2": "X", "A1": "Y"},
			want: "Y X",
		},
		{
			name: "all five",
			tags: map[string]string{"AU": "a", "A1": "b", "A2": "c", "A3": "d", "A4": "e"},
			want: "a b c d e",
		},
		{
			name: "gaps are skipped",
			tags: map[string]string{"AU": "a", "A3": "d"},
			want: "a d",
		},
		{
			name: "no author tags",
			tags: map[string]string{"TI": "no authors"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(record(1, tt.tags))
			if n.Authors != tt.want {
				t.Errorf("Authors = %q, want %q", n.Authors, tt.want)
			}
		})
	}
}

func TestNormalizeTitlePrecedence(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{"TI wins over T1", map[string]string{"TI": "A", "T1": "B"}, "A"},
		{"T1 wins over ST", map[string]string{"T1": "B", "ST": "C"}, "B"},
		{"ST wins over TT", map[string]string{"ST": "C", "TT": "D"}, "C"},
		{"TT alone", map[string]string{"TT": "D"}, "D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(record(1, tt.tags))
			if n.Title != tt.want {
				t.Errorf("Title = %q, want %q", n.Title, tt.want)
			}
		})
	}
}

func TestNormalizeYear(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{"digits extracted", map[string]string{"PY": "2019///"}, "2019"},
		{"PY wins over Y1", map[string]string{"PY": "2020", "Y1": "1999"}, "2020"},
		{"Y1 fallback", map[string]string{"Y1": "2018/06/01"}, "20180601"},
		{"no year tags", map[string]string{"TI": "x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(record(1, tt.tags))
			if n.Year != tt.want {
				t.Errorf("Year = %q, want %q", n.Year, tt.want)
			}
		})
	}
}

func TestNormalizeJournalVolIssue(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{"all parts", map[string]string{"JO": "Nature", "VL": "12", "IS": "3"}, "Nature 12(3)"},
		{"no issue", map[string]string{"JO": "Nature", "VL": "12"}, "Nature 12"},
		{"journal only", map[string]string{"JO": "Nature"}, "Nature"},
		{"volume only", map[string]string{"VL": "12"}, "12"},
		{"JF fallback", map[string]string{"JF": "Nature Medicine"}, "Nature Medicine"},
		{"T2 last resort", map[string]string{"T2": "Proceedings"}, "Proceedings"},
		{"empty", map[string]string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(record(1, tt.tags))
			if n.JournalVolIssue != tt.want {
				t.Errorf("JournalVolIssue = %q, want %q", n.JournalVolIssue, tt.want)
			}
		})
	}
}

func TestNormalizeDetailsStable(t *testing.T) {
	tags := map[string]string{
		"AU": "Smith J", "TI": "Study", "JO": "Nature", "VL": "1",
		"PY": "2020", "TY": "JOUR", "KW": "health",
	}
	a := Normalize(record(7, tags))
	b := Normalize(record(7, tags))
	if a.Details != b.Details {
		t.Errorf("Details not deterministic: %q vs %q", a.Details, b.Details)
	}
	for _, want := range []string{"Study", "Smith J", "Nature 1", "2020", "JOUR", "health"} {
		if !strings.Contains(a.Details, want) {
			t.Errorf("Details missing %q: %q", want, a.Details)
		}
	}
	// Title leads so references sort by title first.
	if !strings.HasPrefix(a.Details, "Study") {
		t.Errorf("Details should start with the title: %q", a.Details)
	}
}
