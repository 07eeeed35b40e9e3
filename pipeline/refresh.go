package pipeline

import (
	"database/sql"
	"log"
	"sync/atomic"
	"time"

	"github.com/lakshitasisodia/Ni3S/analytics"
	"github.com/lakshitasisodia/Ni3S/models"
	"github.com/lakshitasisodia/Ni3S/risk"
)

// Config selects where a refresh reads its source tables from.
type Config struct {
	// DataDir holds the DEMOGRAPHIC_* / ENROLLMENT_* files when Backend
	// is "files".
	DataDir string
	// Backend is "files" (default) or "postgres".
	Backend string
	// DB is the open connection used by the postgres backend.
	DB *sql.DB
}

// System is one published generation of the whole computation: the
// snapshot plus the query engines built over it. A System is immutable;
// queries that run against one keep a consistent view even while a
// refresh builds its replacement.
type System struct {
	Snapshot  *models.Snapshot
	Analytics *analytics.Engine
	Risk      *risk.Engine
}

var current atomic.Pointer[System]

// Publish atomically swaps the serving System. Readers holding the
// previous one finish against it undisturbed.
func Publish(s *System) { current.Store(s) }

// Current returns the serving System, nil before the first successful
// refresh.
func Current() *System { return current.Load() }

// Assemble builds the query engines over an already computed snapshot,
// recomputing derived collections only when the snapshot lacks them (a
// cache written by an older version, for instance).
func Assemble(snap *models.Snapshot) *System {
	if snap.Features == nil {
		snap.Features = analytics.ComputeFeatures(snap.Master)
	}
	if snap.Scores == nil {
		snap.Scores = risk.ComputeScores(snap.Features)
	}
	return &System{
		Snapshot:  snap,
		Analytics: analytics.New(snap.Master, snap.Features),
		Risk:      risk.New(snap.Features, snap.Scores),
	}
}

// Build runs the full batch pass: load, aggregate, derive features and
// scores. It never publishes; a failure leaves whatever System is serving
// untouched.
func Build(cfg Config) (*System, error) {
	started := time.Now()

	var (
		demo   []DemographicRecord
		enroll []EnrollmentRecord
		files  []string
		err    error
	)
	if cfg.Backend == "postgres" {
		demo, enroll, err = LoadPostgres(cfg.DB)
		files = []string{"postgres:demographic_snapshots", "postgres:enrollment_snapshots"}
	} else {
		demo, enroll, files, err = LoadSources(cfg.DataDir)
	}
	if err != nil {
		return nil, err
	}
	log.Printf("pipeline: loaded %d demographic and %d enrollment rows from %d sources",
		len(demo), len(enroll), len(files))

	master, drops := BuildMaster(demo, enroll)
	log.Printf("pipeline: master dataset built with %d district-date rows", len(master))

	snap := &models.Snapshot{
		Master:      master,
		Dropped:     drops,
		SourceFiles: files,
		LoadedAt:    time.Now(),
	}
	sys := Assemble(snap)
	log.Printf("pipeline: refresh complete in %s", time.Since(started).Round(time.Millisecond))
	return sys, nil
}

// Refresh builds a complete replacement System and publishes it only on
// success. All-or-nothing: any stage failure keeps the previous snapshot
// serving and returns the original error with its file and row context.
func Refresh(cfg Config) (*System, error) {
	sys, err := Build(cfg)
	if err != nil {
		log.Printf("pipeline: refresh failed, previous snapshot (if any) remains published: %v", err)
		return nil, err
	}
	Publish(sys)
	return sys, nil
}
