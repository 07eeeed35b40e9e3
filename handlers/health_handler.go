package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/lakshitasisodia/Ni3S/config"
	"github.com/lakshitasisodia/Ni3S/pipeline"
)

var startedAt = time.Now()

// GetHealth is the basic liveness probe.
func GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if pipeline.Current() == nil {
		status = "loading"
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status": status,
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}

// GetDetailedHealth reports snapshot statistics and backend health.
func GetDetailedHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	}

	sys := pipeline.Current()
	if sys == nil {
		response["status"] = "loading"
		response["snapshot"] = nil
	} else {
		response["snapshot"] = map[string]interface{}{
			"loaded_at":    sys.Snapshot.LoadedAt,
			"master_rows":  len(sys.Snapshot.Master),
			"districts":    len(sys.Snapshot.Features),
			"source_files": sys.Snapshot.SourceFiles,
			"dropped_keys": sys.Snapshot.Dropped,
		}
	}

	if os.Getenv("DATA_BACKEND") == "postgres" {
		if err := config.CheckPostgresHealth(); err != nil {
			response["status"] = "degraded"
			response["postgres"] = err.Error()
		} else {
			response["postgres"] = "ok"
		}
	}

	respondJSON(w, http.StatusOK, response)
}
