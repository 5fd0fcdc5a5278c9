package models

// Dataset identifies one of the ingested NYC open-data feeds.
type Dataset string

const (
	DatasetCalls311 Dataset = "calls311"
	DatasetTransit  Dataset = "transit"
	DatasetTaxi     Dataset = "taxi"
	DatasetEvents   Dataset = "events"
)

// AllDatasets returns the feeds that participate in aggregation and
// correlation, in their canonical order.
func AllDatasets() []Dataset {
	return []Dataset{DatasetCalls311, DatasetTransit, DatasetTaxi, DatasetEvents}
}

// ValidDataset reports whether s names a known feed.
func ValidDataset(s string) bool {
	switch Dataset(s) {
	case DatasetCalls311, DatasetTransit, DatasetTaxi, DatasetEvents:
		return true
	}
	return false
}
