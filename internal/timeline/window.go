package timeline

import (
	"time"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/aggregate"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/normalize"
)

// WindowedView is the transient result of selecting one timeline mark. It
// is built from a filtered copy of the raw datasets and never replaces the
// canonical full-range snapshot; the timeline is a preview, not a state
// change.
type WindowedView struct {
	Mark     models.TimeMark                            `json:"mark"`
	Bundles  map[models.Dataset]*models.AggregateBundle `json:"bundles"`
	Drops    map[models.Dataset]models.DropCounts       `json:"drops"`
	RawCount map[models.Dataset]int                     `json:"raw_count"`
}

// Window filters the raw datasets into the mark's window and re-runs the
// normalizer and aggregator on the subset.
func Window(n *normalize.Normalizer, raw *models.RawDatasets, mark models.TimeMark) *WindowedView {
	filtered := FilterRaw(raw, mark)
	records, drops := n.All(filtered)
	return &WindowedView{
		Mark:     mark,
		Bundles:  aggregate.BuildAll(records),
		Drops:    drops,
		RawCount: filtered.Counts(),
	}
}

// FilterRaw returns the subset of each raw dataset matching the mark's
// window: exact date+hour for hourly marks, date match for daily, inclusive
// date range for weekly and monthly. Events are kept on overlap between the
// event's [start, end] interval and the window, not containment. The input
// is never mutated.
func FilterRaw(raw *models.RawDatasets, mark models.TimeMark) *models.RawDatasets {
	winStart, winEnd, ok := markWindow(mark)
	if !ok {
		return &models.RawDatasets{}
	}

	out := &models.RawDatasets{}
	for _, row := range raw.Calls311 {
		if tsInWindow(row.CreatedDate, winStart, winEnd) {
			out.Calls311 = append(out.Calls311, row)
		}
	}
	for _, row := range raw.Transit {
		if tsInWindow(row.TransitTimestamp, winStart, winEnd) {
			out.Transit = append(out.Transit, row)
		}
	}
	for _, row := range raw.Taxi {
		// A trip belongs to the window when either endpoint falls inside.
		if tsInWindow(row.PickupDatetime, winStart, winEnd) || tsInWindow(row.DropoffDatetime, winStart, winEnd) {
			out.Taxi = append(out.Taxi, row)
		}
	}
	for _, row := range raw.Events {
		if eventOverlaps(row, winStart, winEnd) {
			out.Events = append(out.Events, row)
		}
	}
	return out
}

// markWindow converts a mark into a half-open [start, end) time interval.
func markWindow(mark models.TimeMark) (time.Time, time.Time, bool) {
	start, err := time.Parse(dateLayout, mark.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(dateLayout, mark.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	if mark.Granularity == models.GranularityHour {
		start = start.Add(time.Duration(mark.Hour) * time.Hour)
		return start, start.Add(time.Hour), true
	}
	return start, end.AddDate(0, 0, 1), true
}

func tsInWindow(raw string, winStart, winEnd time.Time) bool {
	ts, ok := normalize.ParseTimestamp(raw)
	if !ok {
		return false
	}
	return !ts.Before(winStart) && ts.Before(winEnd)
}

// eventOverlaps tests interval overlap between the event's [start, end] and
// the window. A missing or unparsable end time falls back to the start, so
// single-moment events still participate.
func eventOverlaps(row models.RawEventRow, winStart, winEnd time.Time) bool {
	start, ok := normalize.ParseTimestamp(row.StartDatetime)
	if !ok {
		return false
	}
	end, ok := normalize.ParseTimestamp(row.EndDatetime)
	if !ok || end.Before(start) {
		end = start
	}
	return start.Before(winEnd) && !end.Before(winStart)
}
