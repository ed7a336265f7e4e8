package handler

import (
	"net/http"

	"github.com/rnacentral/rnacentral-go/pkg/middle"
	"go.uber.org/zap"
)

// NewRouter wires the API routes and wraps them with request id and request
// logging middleware.
func NewRouter(dbctx *DBContext, requestLogger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	// Error route
	mux.HandleFunc("GET /favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	})

	mux.HandleFunc("GET /api/v1/health", HealthCheck)

	// Genome browser
	mux.HandleFunc("GET /api/v1/overlap/region/{species}/{region}", dbctx.GenomeAnnotationsHandler)
	mux.HandleFunc("GET /api/v1/genomes", dbctx.GenomesHandler)

	// Sequences
	mux.HandleFunc("GET /api/v1/rna/{upi}", dbctx.RnaDescriptionHandler)
	mux.HandleFunc("GET /api/v1/rna/{upi}/{taxid}", dbctx.RnaSpeciesSpecificHandler)

	// Expert databases
	mux.HandleFunc("GET /api/v1/expert-dbs", ExpertDatabasesHandler)
	mux.HandleFunc("GET /api/v1/expert-dbs/{label}", ExpertDatabaseHandler)

	logging := middle.LoggingMiddleware(requestLogger)
	requestID := middle.RequestIDMiddleware(requestLogger)

	return requestID(logging(mux))
}
