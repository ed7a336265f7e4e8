// Handler for miscellaneous endpoints such as health check

package handler

import (
	"net/http"
	"time"

	"github.com/rnacentral/rnacentral-go/pkg/model"
	"go.uber.org/zap"
)

type HealthResponse struct {
	Health    string    `json:"health"`
	Timestamp time.Time `json:"timestamp"`
}

func HealthCheck(w http.ResponseWriter, r *http.Request) {

	response := HealthResponse{
		Health:    "ok",
		Timestamp: time.Now(),
	}

	writeJSON(w, http.StatusOK, response)
}

// GET /api/v1/expert-dbs
func ExpertDatabasesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.EXPERT_DATABASES)
}

// GET /api/v1/expert-dbs/{label}
func ExpertDatabaseHandler(w http.ResponseWriter, r *http.Request) {

	label := r.PathValue("label")
	expertDB, ok := model.ExpertDatabaseByLabel(label)
	if !ok {
		writeError(w, http.StatusNotFound, "expert database "+label+" not found")
		return
	}
	writeJSON(w, http.StatusOK, expertDB)
}

// GET /api/v1/genomes
func (dbctx *DBContext) GenomesHandler(w http.ResponseWriter, r *http.Request) {

	assemblies, err := dbctx.Store.Assemblies(r.Context())
	if err != nil {
		requestLog(r).Error("List assemblies failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list genomes")
		return
	}
	writeJSON(w, http.StatusOK, assemblies)
}
