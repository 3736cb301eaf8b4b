package crossref

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const workJSON = `{
  "message": {
    "DOI": "10.1038/test.123",
    "type": "journal-article",
    "title": ["A landmark study"],
    "container-title": ["Nature"],
    "volume": "12",
    "issue": "3",
    "URL": "https://doi.org/10.1038/test.123",
    "author": [
      {"given": "Jane", "family": "Smith"},
      {"given": "Robert", "family": "Doe"}
    ],
    "issued": {"date-parts": [[2020, 6, 1]]}
  }
}`

func TestWork(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(workJSON))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithMailto("team@example.org"))
	work, err := client.Work(context.Background(), "10.1038/test.123")
	if err != nil {
		t.Fatalf("Work: %v", err)
	}

	if gotPath != "/works/10.1038%2Ftest.123" && gotPath != "/works/10.1038/test.123" {
		t.Errorf("request path = %q", gotPath)
	}
	if gotQuery != "mailto=team%40example.org" {
		t.Errorf("request query = %q, want mailto parameter", gotQuery)
	}
	if work.DOI != "10.1038/test.123" {
		t.Errorf("DOI = %q", work.DOI)
	}
	if len(work.Author) != 2 {
		t.Errorf("got %d authors, want 2", len(work.Author))
	}
}

func TestWorkNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Resource not found.", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	_, err := client.Work(context.Background(), "10.9999/nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestToRecord(t *testing.T) {
	w := &Work{
		DOI:            "10.1038/test.123",
		Type:           "journal-article",
		Title:          []string{"A landmark study"},
		ContainerTitle: []string{"Nature"},
		Volume:         "12",
		Issue:          "3",
		URL:            "https://doi.org/10.1038/test.123",
	}
	w.Author = append(w.Author, struct {
		Given  string `json:"given"`
		Family string `json:"family"`
	}{Given: "Jane", Family: "Smith"})
	w.Issued.DateParts = [][]int{{2020, 6, 1}}

	rec := ToRecord(w, 5)

	want := map[string]string{
		"TY": "JOUR",
		"TI": "A landmark study",
		"JO": "Nature",
		"AU": "Smith, Jane",
		"PY": "2020",
		"VL": "12",
		"IS": "3",
		"DO": "10.1038/test.123",
		"UR": "https://doi.org/10.1038/test.123",
	}
	if rec.RISID != 5 {
		t.Errorf("RISID = %d, want 5", rec.RISID)
	}
	for tag, v := range want {
		if got := rec.Get(tag); got != v {
			t.Errorf("tag %s = %q, want %q", tag, got, v)
		}
	}
}

func TestToRecordSparseWork(t *testing.T) {
	rec := ToRecord(&Work{Type: "weird-type"}, 1)
	if got := rec.Get("TY"); got != "GEN" {
		t.Errorf("unknown type maps to %q, want GEN", got)
	}
	for _, tag := range []string{"TI", "JO", "AU", "PY", "VL", "IS", "DO", "UR"} {
		if rec.Has(tag) {
			t.Errorf("sparse work should not produce tag %s", tag)
		}
	}
}
