package analytics

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jobpulse/jobpulse/internal/models"
)

// MonthlyCount is one bucket of the trailing six-month application count.
// Buckets are identified by (Year, Month); Label is only for display, since
// short month names repeat across years.
type MonthlyCount struct {
	Year  int        `json:"year"`
	Month time.Month `json:"-"`
	Label string     `json:"month"`
	Count int        `json:"count"`
}

// Metrics is everything the dashboard derives from the record set. It is
// never persisted; callers recompute it (or hit the memo cache) whenever the
// records change.
type Metrics struct {
	TotalApplications int                   `json:"total_applications"`
	StatusCounts      map[models.Status]int `json:"status_counts"`
	MonthlyCounts     []MonthlyCount        `json:"monthly_counts"`

	// Percentages in [0,100], rounded half-up to the nearest integer.
	InterviewRate        int `json:"interview_rate"`
	OfferRate            int `json:"offer_rate"`
	RejectionRate        int `json:"rejection_rate"`
	ResponseRate         int `json:"response_rate"`
	InterviewToOfferRate int `json:"interview_to_offer_rate"`

	MostFrequentTitle string `json:"most_frequent_title"`
}

// Aggregate computes Metrics over records as of now. It never fails: unknown
// statuses count under their own key, missing dates simply fall outside the
// monthly window, and the empty record set yields zeroed metrics.
func Aggregate(records []models.JobApplication, now time.Time) Metrics {
	m := Metrics{
		TotalApplications: len(records),
		StatusCounts:      make(map[models.Status]int, len(models.KnownStatuses)),
		MonthlyCounts:     monthlyBuckets(records, now),
		MostFrequentTitle: mostFrequentTitle(records),
	}

	for _, r := range records {
		m.StatusCounts[r.Status]++
	}

	// Offer implies the application made it through an interview.
	interviewed := m.StatusCounts[models.StatusInterview] + m.StatusCounts[models.StatusOffer]
	offers := m.StatusCounts[models.StatusOffer]
	rejected := m.StatusCounts[models.StatusRejected]
	responded := interviewed + rejected

	m.InterviewRate = roundedPercent(interviewed, m.TotalApplications)
	m.OfferRate = roundedPercent(offers, m.TotalApplications)
	m.RejectionRate = roundedPercent(rejected, m.TotalApplications)
	m.ResponseRate = roundedPercent(responded, m.TotalApplications)

	// Computed from the already-rounded percentages, matching the dashboard
	// this replaces. Slightly lossy versus using raw counts.
	m.InterviewToOfferRate = roundedPercent(m.OfferRate, m.InterviewRate)

	return m
}

// roundedPercent returns round(100*part/whole), half away from zero, or 0
// when whole is 0.
func roundedPercent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// monthlyBuckets returns exactly six buckets, oldest first, covering the
// current calendar month and the five before it.
func monthlyBuckets(records []models.JobApplication, now time.Time) []MonthlyCount {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)

	buckets := make([]MonthlyCount, 6)
	for i := range buckets {
		t := start.AddDate(0, i, 0)
		buckets[i] = MonthlyCount{
			Year:  t.Year(),
			Month: t.Month(),
			Label: t.Format("Jan"),
		}
	}

	for _, r := range records {
		d := r.ApplicationDate
		if d.Before(start) {
			continue
		}
		idx := (d.Year()-start.Year())*12 + int(d.Month()) - int(start.Month())
		if idx < 0 || idx >= len(buckets) {
			// Future-dated applications fall outside the window.
			continue
		}
		buckets[idx].Count++
	}

	return buckets
}

// mostFrequentTitle counts titles case-insensitively and returns the winner
// with its first letter upper-cased, or "N/A" for an empty record set. Ties
// go to the title seen first.
func mostFrequentTitle(records []models.JobApplication) string {
	if len(records) == 0 {
		return "N/A"
	}

	counts := make(map[string]int, len(records))
	order := make([]string, 0, len(records))
	for _, r := range records {
		key := strings.ToLower(r.Title)
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	best := ""
	bestCount := 0
	for _, key := range order {
		if counts[key] > bestCount {
			best = key
			bestCount = counts[key]
		}
	}

	return capitalize(best)
}

func capitalize(s string) string {
	if s == "" {
		return "N/A"
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
