package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lakshitasisodia/Ni3S/normalize"
)

// Deployments that land the raw snapshot drops in a warehouse instead of
// flat files can point the pipeline at Postgres. The tables mirror the
// file columns one to one; region names are normalized here exactly as
// the file readers do, so both backends produce identical master data.

const pgQueryTimeout = 2 * time.Minute

const demographicQuery = `
	SELECT state, district, date, demo_age_5_17, demo_age_17_
	  FROM demographic_snapshots`

const enrollmentQuery = `
	SELECT state, district, date, age_0_5, age_5_17, age_18_greater
	  FROM enrollment_snapshots`

// LoadPostgres reads both source series from the warehouse tables.
func LoadPostgres(db *sql.DB) ([]DemographicRecord, []EnrollmentRecord, error) {
	if db == nil {
		return nil, nil, &ConfigError{Path: "postgres", Err: errors.New("database connection not initialized")}
	}
	ctx, cancel := context.WithTimeout(context.Background(), pgQueryTimeout)
	defer cancel()

	demo, err := loadDemographicRows(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	enroll, err := loadEnrollmentRows(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	return demo, enroll, nil
}

func loadDemographicRows(ctx context.Context, db *sql.DB) ([]DemographicRecord, error) {
	rows, err := db.QueryContext(ctx, demographicQuery)
	if err != nil {
		return nil, &ConfigError{Path: "postgres:demographic_snapshots", Err: err}
	}
	defer rows.Close()

	var records []DemographicRecord
	for n := 1; rows.Next(); n++ {
		var state, district string
		var date time.Time
		var youth, adult float64
		if err := rows.Scan(&state, &district, &date, &youth, &adult); err != nil {
			return nil, &DataError{File: "postgres:demographic_snapshots", Row: n, Err: err}
		}
		records = append(records, DemographicRecord{
			State:    normalize.State(state),
			District: normalize.District(district),
			Date:     date,
			Youth:    youth,
			Adult:    adult,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &ConfigError{Path: "postgres:demographic_snapshots", Err: err}
	}
	return records, nil
}

func loadEnrollmentRows(ctx context.Context, db *sql.DB) ([]EnrollmentRecord, error) {
	rows, err := db.QueryContext(ctx, enrollmentQuery)
	if err != nil {
		return nil, &ConfigError{Path: "postgres:enrollment_snapshots", Err: err}
	}
	defer rows.Close()

	var records []EnrollmentRecord
	for n := 1; rows.Next(); n++ {
		var state, district string
		var date time.Time
		var child, youth, adult float64
		if err := rows.Scan(&state, &district, &date, &child, &youth, &adult); err != nil {
			return nil, &DataError{File: "postgres:enrollment_snapshots", Row: n, Err: err}
		}
		records = append(records, EnrollmentRecord{
			State:    normalize.State(state),
			District: normalize.District(district),
			Date:     date,
			Child:    child,
			Youth:    youth,
			Adult:    adult,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &ConfigError{Path: "postgres:enrollment_snapshots", Err: err}
	}
	return records, nil
}
