package model

// SourceReport records what one adapter contributed to a run.
type SourceReport struct {
	Source  string
	Fetched int   // raw candidates returned by the adapter
	Kept    int   // candidates that survived normalize+filter
	Err     error // non-nil when the adapter failed and contributed nothing
}

// RunResult is the transient outcome of a single run. Nothing here is
// persisted; the next run starts from scratch.
type RunResult struct {
	Postings   []Posting              // final deduplicated, classified set
	ByCategory map[Category][]Posting // same postings partitioned by category
	Reports    []SourceReport
	Invalid    int // dropped by the normalizer (empty title/company)
	Filtered   int // dropped by the keyword filter
	Duplicates int // collapsed by the deduplicator
}
