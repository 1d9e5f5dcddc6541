package report

// Filter narrows exported/aggregated inquiries. Unlike the list screen,
// reports cut on the record creation date.
type Filter struct {
	Status    string
	StartDate string
	EndDate   string
}

// StatusCount is one per-status bucket in the stats aggregate.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DateCount is one per-calendar-date bucket in the stats aggregate.
type DateCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Stats is the aggregate counts payload.
type Stats struct {
	Total        int64         `json:"total"`
	StatusCounts []StatusCount `json:"statusCounts"`
	DateCounts   []DateCount   `json:"dateCounts"`
}
