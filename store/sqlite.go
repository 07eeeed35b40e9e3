// Package store persists a fully computed snapshot to a local SQLite file
// so a restart can republish in seconds instead of re-running the batch
// pipeline. The cache is a pure optimization: it is written only after a
// successful refresh, and a missing, stale or unreadable cache simply
// falls back to a full pipeline run.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lakshitasisodia/Ni3S/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS master_rows (
	state TEXT NOT NULL, district TEXT NOT NULL, date TEXT NOT NULL,
	youth_population REAL NOT NULL, adult_population REAL NOT NULL, total_population REAL NOT NULL,
	child_enrollment REAL NOT NULL, youth_enrollment REAL NOT NULL, adult_enrollment REAL NOT NULL,
	total_enrollment REAL NOT NULL,
	penetration_rate REAL NOT NULL, youth_enrollment_rate REAL NOT NULL, adult_enrollment_rate REAL NOT NULL,
	PRIMARY KEY (state, district, date)
);
CREATE TABLE IF NOT EXISTS district_features (
	state TEXT NOT NULL, district TEXT NOT NULL,
	total_enrollments INTEGER NOT NULL, total_population INTEGER NOT NULL,
	avg_penetration_rate REAL NOT NULL, latest_penetration_rate REAL NOT NULL,
	youth_inclusion_rate REAL NOT NULL, adult_inclusion_rate REAL NOT NULL, youth_adult_gap REAL NOT NULL,
	growth_slope REAL NOT NULL, growth_volatility REAL NOT NULL, stagnation_periods INTEGER NOT NULL,
	time_span_days INTEGER NOT NULL, data_points INTEGER NOT NULL,
	PRIMARY KEY (state, district)
);
CREATE TABLE IF NOT EXISTS risk_scores (
	state TEXT NOT NULL, district TEXT NOT NULL,
	penetration_risk REAL NOT NULL, growth_risk REAL NOT NULL, youth_risk REAL NOT NULL,
	volatility_risk REAL NOT NULL, stagnation_risk REAL NOT NULL,
	composite_score REAL NOT NULL, category TEXT NOT NULL,
	PRIMARY KEY (state, district)
);`

const timeLayout = time.RFC3339Nano

// Save writes the snapshot to path, replacing any previous cache in one
// transaction so a crash mid-write never leaves a half-usable file.
func Save(path string, snap *models.Snapshot) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening snapshot cache %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating snapshot cache schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"meta", "master_rows", "district_features", "risk_scores"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES
		('loaded_at', ?), ('dropped_demographic', ?), ('dropped_enrollment', ?)`,
		snap.LoadedAt.Format(timeLayout), snap.Dropped.Demographic, snap.Dropped.Enrollment); err != nil {
		return err
	}
	for _, f := range snap.SourceFiles {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, "source:"+f, f); err != nil {
			return err
		}
	}

	insertRow, err := tx.Prepare(`INSERT INTO master_rows VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer insertRow.Close()
	for _, r := range snap.Master {
		if _, err := insertRow.Exec(r.State, r.District, r.Date.Format(timeLayout),
			r.YouthPopulation, r.AdultPopulation, r.TotalPopulation,
			r.ChildEnrollment, r.YouthEnrollment, r.AdultEnrollment, r.TotalEnrollment,
			r.PenetrationRate, r.YouthEnrollmentRate, r.AdultEnrollmentRate); err != nil {
			return err
		}
	}

	insertFeature, err := tx.Prepare(`INSERT INTO district_features VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer insertFeature.Close()
	for _, f := range snap.Features {
		if _, err := insertFeature.Exec(f.State, f.District,
			f.TotalEnrollments, f.TotalPopulation,
			f.AvgPenetrationRate, f.LatestPenetrationRate,
			f.YouthInclusionRate, f.AdultInclusionRate, f.YouthAdultGap,
			f.GrowthSlope, f.GrowthVolatility, f.StagnationPeriods,
			f.TimeSpanDays, f.DataPoints); err != nil {
			return err
		}
	}

	insertScore, err := tx.Prepare(`INSERT INTO risk_scores VALUES (?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer insertScore.Close()
	for _, s := range snap.Scores {
		if _, err := insertScore.Exec(s.State, s.District,
			s.PenetrationRisk, s.GrowthRisk, s.YouthRisk,
			s.VolatilityRisk, s.StagnationRisk,
			s.CompositeScore, s.Category); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load reads a previously saved snapshot. The caller decides whether the
// cache is fresh enough to serve.
func Load(path string) (*models.Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("snapshot cache %s: %w", path, err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot cache %s: %w", path, err)
	}
	defer db.Close()

	snap := &models.Snapshot{}

	rows, err := db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		switch {
		case key == "loaded_at":
			if snap.LoadedAt, err = time.Parse(timeLayout, value); err != nil {
				return nil, fmt.Errorf("snapshot cache meta loaded_at: %w", err)
			}
		case key == "dropped_demographic":
			fmt.Sscanf(value, "%d", &snap.Dropped.Demographic)
		case key == "dropped_enrollment":
			fmt.Sscanf(value, "%d", &snap.Dropped.Enrollment)
		default:
			snap.SourceFiles = append(snap.SourceFiles, value)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	masterRows, err := db.Query(`SELECT * FROM master_rows ORDER BY state, district, date`)
	if err != nil {
		return nil, err
	}
	defer masterRows.Close()
	for masterRows.Next() {
		var r models.MasterRow
		var date string
		if err := masterRows.Scan(&r.State, &r.District, &date,
			&r.YouthPopulation, &r.AdultPopulation, &r.TotalPopulation,
			&r.ChildEnrollment, &r.YouthEnrollment, &r.AdultEnrollment, &r.TotalEnrollment,
			&r.PenetrationRate, &r.YouthEnrollmentRate, &r.AdultEnrollmentRate); err != nil {
			return nil, err
		}
		if r.Date, err = time.Parse(timeLayout, date); err != nil {
			return nil, fmt.Errorf("snapshot cache master row date: %w", err)
		}
		snap.Master = append(snap.Master, r)
	}
	if err := masterRows.Err(); err != nil {
		return nil, err
	}

	featureRows, err := db.Query(`SELECT * FROM district_features ORDER BY state, district`)
	if err != nil {
		return nil, err
	}
	defer featureRows.Close()
	for featureRows.Next() {
		var f models.DistrictFeatures
		if err := featureRows.Scan(&f.State, &f.District,
			&f.TotalEnrollments, &f.TotalPopulation,
			&f.AvgPenetrationRate, &f.LatestPenetrationRate,
			&f.YouthInclusionRate, &f.AdultInclusionRate, &f.YouthAdultGap,
			&f.GrowthSlope, &f.GrowthVolatility, &f.StagnationPeriods,
			&f.TimeSpanDays, &f.DataPoints); err != nil {
			return nil, err
		}
		snap.Features = append(snap.Features, f)
	}
	if err := featureRows.Err(); err != nil {
		return nil, err
	}

	scoreRows, err := db.Query(`SELECT * FROM risk_scores ORDER BY state, district`)
	if err != nil {
		return nil, err
	}
	defer scoreRows.Close()
	for scoreRows.Next() {
		var s models.RiskScore
		if err := scoreRows.Scan(&s.State, &s.District,
			&s.PenetrationRisk, &s.GrowthRisk, &s.YouthRisk,
			&s.VolatilityRisk, &s.StagnationRisk,
			&s.CompositeScore, &s.Category); err != nil {
			return nil, err
		}
		snap.Scores = append(snap.Scores, s)
	}
	if err := scoreRows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}
