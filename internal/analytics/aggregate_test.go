package analytics

import (
	"testing"
	"time"

	"github.com/jobpulse/jobpulse/internal/models"
)

// fixedNow crosses a year boundary on purpose: the six-month window runs
// Aug 2025 through Jan 2026.
var fixedNow = time.Date(2026, time.January, 15, 10, 0, 0, 0, time.Local)

func appliedOn(t time.Time, status models.Status, title string) models.JobApplication {
	return models.JobApplication{
		Title:           title,
		Company:         "Acme",
		Status:          status,
		ApplicationDate: t,
	}
}

func TestAggregateEmptyRecordSet(t *testing.T) {
	m := Aggregate(nil, fixedNow)

	if m.TotalApplications != 0 {
		t.Errorf("expected 0 total, got %d", m.TotalApplications)
	}
	for name, rate := range map[string]int{
		"interview": m.InterviewRate, "offer": m.OfferRate,
		"rejection": m.RejectionRate, "response": m.ResponseRate,
		"interview-to-offer": m.InterviewToOfferRate,
	} {
		if rate != 0 {
			t.Errorf("expected %s rate 0 on empty set, got %d", name, rate)
		}
	}
	if m.MostFrequentTitle != "N/A" {
		t.Errorf("expected most frequent title N/A, got %q", m.MostFrequentTitle)
	}
	if len(m.MonthlyCounts) != 6 {
		t.Fatalf("expected 6 monthly buckets, got %d", len(m.MonthlyCounts))
	}
	for _, b := range m.MonthlyCounts {
		if b.Count != 0 {
			t.Errorf("expected zero count for %s %d, got %d", b.Label, b.Year, b.Count)
		}
	}
}

func TestAggregateStatusCountsSumToTotal(t *testing.T) {
	statuses := []models.Status{
		models.StatusApplied, models.StatusInterview, models.StatusOffer,
		models.StatusRejected, models.Status("Ghosted"), // unknown key must not break anything
	}

	for size := 1; size <= 25; size++ {
		var records []models.JobApplication
		for i := 0; i < size; i++ {
			records = append(records, appliedOn(fixedNow, statuses[i%len(statuses)], "Engineer"))
		}

		m := Aggregate(records, fixedNow)
		sum := 0
		for _, c := range m.StatusCounts {
			sum += c
		}
		if sum != len(records) {
			t.Fatalf("size %d: status counts sum to %d, want %d", size, sum, len(records))
		}

		for name, rate := range map[string]int{
			"interview": m.InterviewRate, "offer": m.OfferRate,
			"rejection": m.RejectionRate, "response": m.ResponseRate,
			"interview-to-offer": m.InterviewToOfferRate,
		} {
			if rate < 0 || rate > 100 {
				t.Fatalf("size %d: %s rate %d out of [0,100]", size, name, rate)
			}
		}
	}
}

func TestAggregateSingleInterviewRecord(t *testing.T) {
	records := []models.JobApplication{appliedOn(fixedNow, models.StatusInterview, "Engineer")}
	m := Aggregate(records, fixedNow)

	if m.InterviewRate != 100 {
		t.Errorf("interview rate = %d, want 100", m.InterviewRate)
	}
	if m.OfferRate != 0 {
		t.Errorf("offer rate = %d, want 0", m.OfferRate)
	}
	// Responded includes interviews, so a single Interview record means a
	// 100% response rate.
	if m.ResponseRate != 100 {
		t.Errorf("response rate = %d, want 100", m.ResponseRate)
	}
	if m.InterviewToOfferRate != 0 {
		t.Errorf("interview-to-offer = %d, want 0", m.InterviewToOfferRate)
	}
}

func TestAggregateOfferCountsAsInterviewed(t *testing.T) {
	records := []models.JobApplication{
		appliedOn(fixedNow, models.StatusOffer, "Engineer"),
		appliedOn(fixedNow, models.StatusApplied, "Engineer"),
	}
	m := Aggregate(records, fixedNow)

	if m.InterviewRate != 50 {
		t.Errorf("interview rate = %d, want 50 (offer passed through interview)", m.InterviewRate)
	}
	if m.OfferRate != 50 {
		t.Errorf("offer rate = %d, want 50", m.OfferRate)
	}
	// 100 * 50/50, from the rounded percentages.
	if m.InterviewToOfferRate != 100 {
		t.Errorf("interview-to-offer = %d, want 100", m.InterviewToOfferRate)
	}
}

func TestAggregateRatesRoundHalfUp(t *testing.T) {
	// 1 interview out of 8 = 12.5% -> 13.
	records := []models.JobApplication{appliedOn(fixedNow, models.StatusInterview, "Engineer")}
	for i := 0; i < 7; i++ {
		records = append(records, appliedOn(fixedNow, models.StatusApplied, "Engineer"))
	}

	m := Aggregate(records, fixedNow)
	if m.InterviewRate != 13 {
		t.Errorf("interview rate = %d, want 13 (12.5 rounded half-up)", m.InterviewRate)
	}
}

func TestAggregateMonthlyWindow(t *testing.T) {
	wantLabels := []string{"Aug", "Sep", "Oct", "Nov", "Dec", "Jan"}
	wantYears := []int{2025, 2025, 2025, 2025, 2025, 2026}

	records := []models.JobApplication{
		appliedOn(time.Date(2025, time.August, 3, 0, 0, 0, 0, time.Local), models.StatusApplied, "A"),
		appliedOn(time.Date(2025, time.August, 28, 0, 0, 0, 0, time.Local), models.StatusApplied, "B"),
		appliedOn(time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local), models.StatusApplied, "C"),
		appliedOn(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.Local), models.StatusApplied, "D"),
		// Outside the window: too old and in the future.
		appliedOn(time.Date(2025, time.July, 31, 0, 0, 0, 0, time.Local), models.StatusApplied, "E"),
		appliedOn(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), models.StatusApplied, "F"),
	}

	m := Aggregate(records, fixedNow)
	if len(m.MonthlyCounts) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(m.MonthlyCounts))
	}

	wantCounts := []int{2, 0, 0, 0, 1, 1}
	for i, b := range m.MonthlyCounts {
		if b.Label != wantLabels[i] || b.Year != wantYears[i] {
			t.Errorf("bucket %d = %s %d, want %s %d", i, b.Label, b.Year, wantLabels[i], wantYears[i])
		}
		if b.Count != wantCounts[i] {
			t.Errorf("bucket %s %d count = %d, want %d", b.Label, b.Year, b.Count, wantCounts[i])
		}
	}
}

func TestAggregateMonthlyWindowAlwaysSixBuckets(t *testing.T) {
	nows := []time.Time{
		fixedNow,
		time.Date(2026, time.June, 30, 23, 59, 0, 0, time.Local),
		time.Date(2024, time.February, 29, 12, 0, 0, 0, time.Local), // leap day
	}
	for _, now := range nows {
		m := Aggregate(nil, now)
		if len(m.MonthlyCounts) != 6 {
			t.Fatalf("now=%v: expected 6 buckets, got %d", now, len(m.MonthlyCounts))
		}
		for i := 1; i < len(m.MonthlyCounts); i++ {
			prev, cur := m.MonthlyCounts[i-1], m.MonthlyCounts[i]
			prevOrd := prev.Year*12 + int(prev.Month)
			if cur.Year*12+int(cur.Month) != prevOrd+1 {
				t.Fatalf("now=%v: buckets not consecutive months: %+v", now, m.MonthlyCounts)
			}
		}
	}
}

func TestMostFrequentTitle(t *testing.T) {
	records := []models.JobApplication{
		appliedOn(fixedNow, models.StatusApplied, "backend engineer"),
		appliedOn(fixedNow, models.StatusApplied, "Backend Engineer"),
		appliedOn(fixedNow, models.StatusApplied, "Data Scientist"),
	}

	m := Aggregate(records, fixedNow)
	if m.MostFrequentTitle != "Backend engineer" {
		t.Errorf("most frequent title = %q, want %q", m.MostFrequentTitle, "Backend engineer")
	}
}

func TestAggregateUnknownStatusIsCountedNotDropped(t *testing.T) {
	records := []models.JobApplication{
		appliedOn(fixedNow, models.Status("Ghosted"), "Engineer"),
		appliedOn(fixedNow, models.StatusApplied, "Engineer"),
	}

	m := Aggregate(records, fixedNow)
	if m.StatusCounts[models.Status("Ghosted")] != 1 {
		t.Errorf("unknown status not counted: %v", m.StatusCounts)
	}
	if m.TotalApplications != 2 {
		t.Errorf("total = %d, want 2", m.TotalApplications)
	}
	// Unknown statuses contribute to no rate numerator.
	if m.InterviewRate != 0 || m.ResponseRate != 0 {
		t.Errorf("unknown status leaked into rates: interview=%d response=%d", m.InterviewRate, m.ResponseRate)
	}
}
