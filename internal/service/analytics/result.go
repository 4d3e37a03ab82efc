package analytics

// Report is the aggregate view over the matched events.
//
// ByDay keys are "2006-01-02" dates, ByMonth keys are "2006-01" months.
// ByCategory and ByArea are keyed by name. Weekday always has 7 buckets,
// Sunday first. An empty event set yields an all-zero report, never an error.
type Report struct {
	TotalEvents          int
	TotalDurationMinutes int
	ByDay                map[string]int
	ByMonth              map[string]int
	ByCategory           map[string]int
	ByArea               map[string]int
	Weekday              [7]int
}
