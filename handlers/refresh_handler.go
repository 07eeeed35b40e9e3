package handlers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/lakshitasisodia/Ni3S/config"
	"github.com/lakshitasisodia/Ni3S/pipeline"
	"github.com/lakshitasisodia/Ni3S/store"
)

// RefreshConfig assembles the pipeline source configuration from the
// environment. Shared by the startup load and the refresh endpoint.
func RefreshConfig() pipeline.Config {
	return pipeline.Config{
		DataDir: config.GetEnvWithDefault("DATA_DIR", "data"),
		Backend: config.GetEnvWithDefault("DATA_BACKEND", "files"),
		DB:      config.DB,
	}
}

// PostRefresh re-runs the full pipeline and publishes the result. A
// failed run answers with the offending file and row and leaves the
// previously published snapshot serving.
func PostRefresh(w http.ResponseWriter, r *http.Request) {
	sys, err := pipeline.Refresh(RefreshConfig())
	if err != nil {
		var dataErr *pipeline.DataError
		status := http.StatusInternalServerError
		if errors.As(err, &dataErr) {
			status = http.StatusUnprocessableEntity
		}
		respondError(w, status, "Refresh failed, previous snapshot still serving: "+err.Error())
		return
	}

	config.ClearAllCaches()

	if path := os.Getenv("SNAPSHOT_CACHE"); path != "" {
		go func() {
			if err := store.Save(path, sys.Snapshot); err != nil {
				log.Printf("Error writing snapshot cache: %v", err)
			}
		}()
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "refreshed",
		"master_rows":  len(sys.Snapshot.Master),
		"districts":    len(sys.Snapshot.Features),
		"source_files": sys.Snapshot.SourceFiles,
		"dropped_keys": sys.Snapshot.Dropped,
		"loaded_at":    sys.Snapshot.LoadedAt,
	})
}
