package analytics

import (
	"testing"

	"github.com/jobpulse/jobpulse/internal/models"
)

func sampleRecords() []models.JobApplication {
	return []models.JobApplication{
		{ID: "1", Title: "Backend Engineer", Company: "Acme", Status: models.StatusApplied, Notes: "referred by Dana"},
		{ID: "2", Title: "Frontend Engineer", Company: "Globex", Status: models.StatusInterview},
		{ID: "3", Title: "Data Engineer", Company: "Initech", Status: models.StatusOffer, Tags: []string{"remote", "fullstack"}},
		{ID: "4", Title: "Backend Engineer", Company: "Umbrella", Status: models.StatusRejected},
	}
}

func ids(records []models.JobApplication) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.JobApplication, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestFilterEmptySpecIsIdentity(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, FilterSpec{})
	assertIDs(t, got, "1", "2", "3", "4")
}

func TestFilterByStatus(t *testing.T) {
	offer := models.StatusOffer
	got := Filter(sampleRecords(), FilterSpec{Status: &offer})
	assertIDs(t, got, "3")
}

func TestFilterStatusIsCaseSensitive(t *testing.T) {
	lower := models.Status("offer")
	got := Filter(sampleRecords(), FilterSpec{Status: &lower})
	if len(got) != 0 {
		t.Fatalf("lowercase status should not match %q records, got %v", models.StatusOffer, ids(got))
	}
}

func TestFilterSearchFields(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title substring", "backend", []string{"1", "4"}},
		{"company substring", "globex", []string{"2"}},
		{"notes substring", "dana", []string{"1"}},
		{"tag match", "remote", []string{"3"}},
		{"case insensitive", "ACME", []string{"1"}},
		{"no match", "astronaut", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleRecords(), FilterSpec{Search: tt.search})
			assertIDs(t, got, tt.want...)
		})
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	records := sampleRecords()
	rejected := models.StatusRejected

	both := Filter(records, FilterSpec{Status: &rejected, Search: "backend"})
	assertIDs(t, both, "4")

	// Must equal the intersection of the two single-condition filters.
	byStatus := Filter(records, FilterSpec{Status: &rejected})
	bySearch := Filter(records, FilterSpec{Search: "backend"})

	inStatus := make(map[string]bool)
	for _, r := range byStatus {
		inStatus[r.ID] = true
	}
	var intersection []string
	for _, r := range bySearch {
		if inStatus[r.ID] {
			intersection = append(intersection, r.ID)
		}
	}
	assertIDs(t, both, intersection...)
}

func TestFilterIdempotent(t *testing.T) {
	records := sampleRecords()
	interview := models.StatusInterview

	specs := []FilterSpec{
		{},
		{Status: &interview},
		{Search: "engineer"},
		{Status: &interview, Search: "front"},
	}

	for _, spec := range specs {
		once := Filter(records, spec)
		twice := Filter(once, spec)
		if len(once) != len(twice) {
			t.Fatalf("spec %+v: filter not idempotent: %v vs %v", spec, ids(once), ids(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Fatalf("spec %+v: filter not idempotent: %v vs %v", spec, ids(once), ids(twice))
			}
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter(sampleRecords(), FilterSpec{Search: "engineer"})
	assertIDs(t, got, "1", "2", "3", "4")
}
