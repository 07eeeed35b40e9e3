package models

import "time"

// JoinDrops counts district-date keys discarded by the inner join between
// the aggregated demographic and enrollment series. The join deliberately
// trades coverage for precision, so the shrinkage is tracked and reported.
type JoinDrops struct {
	Demographic int `json:"demographic_only"`
	Enrollment  int `json:"enrollment_only"`
}

// Snapshot is one fully built result of the batch pipeline: the master
// dataset plus everything derived from it. A snapshot is immutable after
// construction; a refresh builds a complete replacement and swaps it in
// atomically, so readers never observe partial state.
type Snapshot struct {
	Master   []MasterRow        `json:"master"`
	Features []DistrictFeatures `json:"features"`
	Scores   []RiskScore        `json:"scores"`

	Dropped     JoinDrops `json:"dropped"`
	SourceFiles []string  `json:"source_files"`
	LoadedAt    time.Time `json:"loaded_at"`
}
