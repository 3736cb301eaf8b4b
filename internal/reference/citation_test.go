package reference

import (
	"strings"
	"testing"
)

func TestVancouver(t *testing.T) {
	n := Normalize(record(1, map[string]string{
		"AU": "Smith J", "A1": "Doe R", "TI": "Study", "PY": "2020",
	}))

	for _, want := range []string{"Smith J Doe R", "2020", "Study"} {
		if !strings.Contains(n.Vancouver, want) {
			t.Errorf("Vancouver missing %q: %q", want, n.Vancouver)
		}
	}
	if strings.Contains(n.Vancouver, "\n") {
		t.Errorf("Vancouver should be a single line: %q", n.Vancouver)
	}
}

func TestVancouverEmpty(t *testing.T) {
	n := Normalized{}
	if got := Vancouver(n); got != "" {
		t.Errorf("Vancouver of empty record = %q, want empty", got)
	}
}

func TestAPA(t *testing.T) {
	tests := []struct {
		name string
		tags map[string]string
		want string
	}{
		{
			name: "full record",
			tags: map[string]string{
				"AU": "Smith J", "TI": "A study", "PY": "2020",
				"JO": "Nature", "VL": "12", "IS": "3",
			},
			want: "Smith J (2020). A study. Nature, 12(3).",
		},
		{
			name: "no issue",
			tags: map[string]string{"AU": "Smith J", "TI": "A study", "PY": "2020", "JO": "Nature", "VL": "12"},
			want: "Smith J (2020). A study. Nature, 12.",
		},
		{
			name: "no journal",
			tags: map[string]string{"AU": "Smith J", "TI": "A study", "PY": "2020"},
			want: "Smith J (2020). A study.",
		},
		{
			name: "year only",
			tags: map[string]string{"PY": "2020"},
			want: "(2020).",
		},
		{
			name: "empty record",
			tags: map[string]string{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(record(1, tt.tags))
			if n.APA != tt.want {
				t.Errorf("APA = %q, want %q", n.APA, tt.want)
			}
		})
	}
}
