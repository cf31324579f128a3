package dedup

import (
	"reflect"
	"testing"

	"github.com/jobsentry/jobsentry/internal/model"
)

func posting(source, company, title string) model.Posting {
	return model.Posting{Source: source, Company: company, Title: title}
}

func TestDedupe_FirstSeenWins(t *testing.T) {
	in := []model.Posting{
		posting("linkedin", "Acme", "Java Developer Fresher"),
		posting("naukri", "Acme", "Java Developer Fresher"),
		posting("naukri", "Beta", "React Developer"),
		posting("wellfound", "Acme", "Java Developer Fresher"),
	}

	out := Dedupe(in)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if out[0].Source != "linkedin" {
		t.Errorf("first occurrence should win, got source %s", out[0].Source)
	}
	if out[1].Company != "Beta" {
		t.Errorf("order not preserved: %+v", out[1])
	}
}

func TestDedupe_Idempotent(t *testing.T) {
	in := []model.Posting{
		posting("linkedin", "Acme", "Java Developer"),
		posting("naukri", "Acme", "Java Developer"),
		posting("naukri", "Beta", "Node Developer"),
	}

	once := Dedupe(in)
	twice := Dedupe(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("dedupe not idempotent: %+v vs %+v", once, twice)
	}
}

func TestDedupe_KeyIsCompanyAndTitle(t *testing.T) {
	in := []model.Posting{
		posting("a", "Acme", "Java Developer"),
		posting("a", "Beta", "Java Developer"), // same title, different company
		posting("a", "Acme", "Node Developer"), // same company, different title
	}
	if got := len(Dedupe(in)); got != 3 {
		t.Errorf("len = %d, want 3 (distinct keys kept)", got)
	}
}

func TestDedupe_Empty(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Errorf("Dedupe(nil) = %v, want empty", got)
	}
}
