package handler

import (
	"errors"
	"net/http"

	"github.com/rnacentral/rnacentral-go/pkg/handler/request"
	"github.com/rnacentral/rnacentral-go/pkg/model"
	"go.uber.org/zap"
)

// GET /api/v1/rna/{upi}
func (dbctx *DBContext) RnaDescriptionHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "fasta" {
		dbctx.RnaFastaHandler(w, r)
		return
	}
	dbctx.describe(w, r, r.PathValue("upi"), 0)
}

// GET /api/v1/rna/{upi}/{taxid}
func (dbctx *DBContext) RnaSpeciesSpecificHandler(w http.ResponseWriter, r *http.Request) {

	taxid, err := request.ParseTaxid(r.PathValue("taxid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dbctx.describe(w, r, r.PathValue("upi"), taxid)
}

func (dbctx *DBContext) describe(w http.ResponseWriter, r *http.Request, upi string, taxid int) {

	description, err := model.Describe(r.Context(), dbctx.Store, dbctx.Description, upi, taxid)

	switch {
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "sequence "+upi+" not found")
	case err != nil:
		requestLog(r).Error("Describe failed", zap.String("upi", upi), zap.Int("taxid", taxid), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to describe sequence")
	default:
		writeJSON(w, http.StatusOK, description)
	}
}
