package pdf

import "testing"

func TestFindDOI(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "plain doi",
			text: "doi: 10.1038/s41586-020-2649-2",
			want: "10.1038/s41586-020-2649-2",
		},
		{
			name: "doi url",
			text: "available at https://doi.org/10.1000/xyz123 in full",
			want: "10.1000/xyz123",
		},
		{
			name: "trailing period stripped",
			text: "See 10.1234/abcd.5678. for details",
			want: "10.1234/abcd.5678",
		},
		{
			name: "no doi",
			text: "just some text without identifiers",
			want: "",
		},
		{
			name: "too few registrant digits",
			text: "version 10.2/1 of the software",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDOI(tt.text); got != tt.want {
				t.Errorf("FindDOI(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
