package analytics

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/jobpulse/jobpulse/internal/models"
)

// MetricsCache memoizes Aggregate keyed by a fingerprint of every input the
// computation reads: record ids, update stamps, statuses, titles, application
// dates, and the calendar month of "now" (the monthly window moves when the
// month rolls over). Because the key covers all inputs, a hit can never serve
// stale metrics.
type MetricsCache struct {
	mu      sync.Mutex
	key     uint64
	valid   bool
	metrics Metrics
}

// Get returns the metrics for records as of now, recomputing only when the
// fingerprint differs from the last call.
func (c *MetricsCache) Get(records []models.JobApplication, now time.Time) Metrics {
	key := fingerprint(records, now)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.key == key {
		return c.metrics
	}
	c.metrics = Aggregate(records, now)
	c.key = key
	c.valid = true
	return c.metrics
}

// Invalidate drops the cached value; the next Get recomputes unconditionally.
func (c *MetricsCache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}

func fingerprint(records []models.JobApplication, now time.Time) uint64 {
	h := fnv.New64a()

	var buf [8]byte
	writeInt := func(v int64) {
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}

	writeInt(int64(now.Year())*12 + int64(now.Month()))
	writeInt(int64(len(records)))
	for _, r := range records {
		h.Write([]byte(r.ID))
		h.Write([]byte(r.Status))
		h.Write([]byte(r.Title))
		writeInt(r.ApplicationDate.Unix())
		writeInt(r.UpdatedAt.Unix())
	}
	return h.Sum64()
}
