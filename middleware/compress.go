package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CompressionMiddleware gzips responses for clients that accept it. The
// analytics payloads (heatmaps, rankings) compress well.
func CompressionMiddleware(next http.Handler) http.Handler {
	return handlers.CompressHandler(next)
}
