package models

// Granularity selects the timeline resolution.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ValidGranularity reports whether s names a supported resolution.
func ValidGranularity(s string) bool {
	switch Granularity(s) {
	case GranularityHour, GranularityDay, GranularityWeek, GranularityMonth:
		return true
	}
	return false
}

// TimeMark is one discrete point on the interactive timeline. Selecting a
// mark re-filters the raw datasets into [StartDate, EndDate] (plus Hour for
// hourly marks) and re-aggregates the subset as a transient preview.
type TimeMark struct {
	Granularity Granularity `json:"granularity"`
	Label       string      `json:"label"`
	StartDate   string      `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate     string      `json:"end_date"`   // YYYY-MM-DD, inclusive
	Hour        int         `json:"hour"`       // hourly marks only
}
